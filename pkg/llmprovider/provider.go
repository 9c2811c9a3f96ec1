package llmprovider

import "context"

// Provider is a single text-generation backend.
type Provider interface {
	// GenerateText sends a generation request and returns a response
	GenerateText(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g. "gemini", "deepseek")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request is a normalized single-turn text generation request.
type Request struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Response is a normalized text generation response.
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
}
