package usecase

import (
	"context"
	"fmt"
	"strings"

	"smart-todo-assistant/internal/assist"
	"smart-todo-assistant/pkg/llmprovider"
)

// GenerateDescription produces a short, actionable description for a todo
// title. The generative collaborator is best-effort: when it is absent,
// errors, or returns empty text, the deterministic template table answers
// instead. The caller never sees a failure. Results are cached per
// lowercase title.
func (uc *implUseCase) GenerateDescription(ctx context.Context, input assist.GenerateDescriptionInput) (assist.GenerateDescriptionOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return assist.GenerateDescriptionOutput{Description: defaultDescription}, nil
	}

	cacheKey := strings.ToLower(title)
	if cached, ok := uc.describeCache.Get(cacheKey); ok {
		return assist.GenerateDescriptionOutput{Description: cached}, nil
	}

	description := ""
	if uc.llm != nil {
		resp, err := uc.llm.GenerateText(ctx, &llmprovider.Request{
			System:      describeSystemPrompt,
			Prompt:      fmt.Sprintf("Create a helpful description for this todo: %q", title),
			Temperature: 0.7,
			MaxTokens:   120,
		})
		if err != nil {
			uc.l.Warnf(ctx, "description generation failed, using template fallback: %v", err)
		} else if resp != nil {
			description = strings.TrimSpace(resp.Text)
		}
	}

	if description == "" {
		description = simpleDescription(title)
	}

	uc.describeCache.Add(cacheKey, description)
	return assist.GenerateDescriptionOutput{Description: description}, nil
}

// simpleDescription is the deterministic fallback: first template whose
// keyword appears in the title, else a generic line.
func simpleDescription(title string) string {
	lower := strings.ToLower(title)
	for _, t := range descriptionTemplates {
		if strings.Contains(lower, t.keyword) {
			return t.template
		}
	}
	return defaultDescription
}
