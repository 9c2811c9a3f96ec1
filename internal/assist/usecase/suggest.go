package usecase

import (
	"context"
	"time"

	"smart-todo-assistant/internal/assist"
	"smart-todo-assistant/internal/model"
)

// SuggestTodos emits recurring suggestions from the wall-clock hour and
// weekday of the reference time. The rules are independent; zero to three
// suggestions can fire in one call. Todo content is not consulted.
func (uc *implUseCase) SuggestTodos(ctx context.Context, input assist.SuggestTodosInput) (assist.SuggestTodosOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	suggestions := []assist.TodoSuggestion{}
	hour := now.Hour()

	if hour >= workHoursStart && hour <= workHoursEnd {
		suggestions = append(suggestions, assist.TodoSuggestion{
			Text:     "Check emails",
			Category: "Work",
			Priority: model.PriorityMedium,
			Reason:   "Work hours reminder",
		})
	}

	if hour >= eveningStart && hour <= eveningEnd {
		suggestions = append(suggestions, assist.TodoSuggestion{
			Text:     "Plan tomorrow's tasks",
			Category: "Personal",
			Priority: model.PriorityLow,
			Reason:   "Evening planning",
		})
	}

	if now.Weekday() == time.Sunday {
		suggestions = append(suggestions, assist.TodoSuggestion{
			Text:     "Review weekly goals",
			Category: "Personal",
			Priority: model.PriorityMedium,
			Reason:   "Weekly review",
		})
	}

	return assist.SuggestTodosOutput{Suggestions: suggestions}, nil
}

// SuggestCompletions emits follow-up actions for the verbs found in the
// todo text, plus a reminder suggestion when the text mentions a date.
// The combined list is truncated to the first three in generation order.
func (uc *implUseCase) SuggestCompletions(ctx context.Context, input assist.SuggestCompletionsInput) (assist.SuggestCompletionsOutput, error) {
	suggestions := []assist.CompletionSuggestion{}

	for _, verb := range uc.safeVerbs(ctx, input.Text) {
		actions, ok := completionActions[verb]
		if !ok {
			continue
		}
		for _, action := range actions {
			suggestions = append(suggestions, assist.CompletionSuggestion{
				Text:       action,
				Type:       "completion",
				Confidence: assist.ConfidenceMedium,
			})
		}
	}

	if uc.dates.Extract(input.Text, time.Now()) != nil {
		suggestions = append(suggestions, assist.CompletionSuggestion{
			Text:       reminderSuggestionText,
			Type:       "reminder",
			Confidence: assist.ConfidenceHigh,
		})
	}

	if len(suggestions) > maxCompletionSuggestions {
		suggestions = suggestions[:maxCompletionSuggestions]
	}

	return assist.SuggestCompletionsOutput{Suggestions: suggestions}, nil
}
