package llmprovider

import (
	"context"

	"smart-todo-assistant/pkg/deepseek"
	"smart-todo-assistant/pkg/gemini"
)

// geminiAdapter adapts the Gemini client to the Provider interface.
type geminiAdapter struct {
	client *gemini.Client
}

func (a *geminiAdapter) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	text, err := a.client.GenerateText(ctx, req.System, req.Prompt, req.Temperature, req.MaxTokens)
	if err != nil {
		return nil, err
	}
	return &Response{Text: text}, nil
}

func (a *geminiAdapter) Name() string  { return "gemini" }
func (a *geminiAdapter) Model() string { return a.client.Model() }

// deepseekAdapter adapts the DeepSeek client to the Provider interface.
type deepseekAdapter struct {
	client *deepseek.Client
}

func (a *deepseekAdapter) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	text, err := a.client.GenerateText(ctx, req.System, req.Prompt, req.Temperature, req.MaxTokens)
	if err != nil {
		return nil, err
	}
	return &Response{Text: text}, nil
}

func (a *deepseekAdapter) Name() string  { return "deepseek" }
func (a *deepseekAdapter) Model() string { return a.client.Model() }
