package usecase

import (
	"context"
	"fmt"
	"time"

	"smart-todo-assistant/internal/assist"
	"smart-todo-assistant/internal/model"
)

const (
	completionRateHigh = 80.0
	completionRateLow  = 50.0

	// A category dominates when it holds more than this share of active todos.
	dominanceThreshold = 0.6
)

// GenerateInsights computes productivity insights over the active and
// completed todo collections. The list order is fixed: completion rate,
// then overdue count, then category dominance.
func (uc *implUseCase) GenerateInsights(ctx context.Context, input assist.GenerateInsightsInput) (assist.GenerateInsightsOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	insights := []assist.Insight{}

	// 1. Completion rate. Rates between 50 and 80 (inclusive of 80) emit
	// nothing; the dead zone is intentional. An empty collection emits
	// nothing at all.
	total := len(input.Active) + len(input.Completed)
	if total > 0 {
		rate := float64(len(input.Completed)) / float64(total) * 100
		if rate > completionRateHigh {
			insights = append(insights, assist.Insight{
				Type:    assist.InsightSuccess,
				Title:   "Great Productivity!",
				Message: fmt.Sprintf("You have a %.1f%% completion rate. Keep up the excellent work!", rate),
				Icon:    "🎉",
			})
		} else if rate < completionRateLow {
			insights = append(insights, assist.Insight{
				Type:    assist.InsightSuggestion,
				Title:   "Room for Improvement",
				Message: fmt.Sprintf("Your completion rate is %.1f%%. Try breaking down larger tasks into smaller, manageable steps.", rate),
				Icon:    "💡",
			})
		}
	}

	// 2. Overdue count over active todos.
	overdue := 0
	for _, todo := range input.Active {
		if todo.DueDate != nil && todo.DueDate.Before(now) {
			overdue++
		}
	}
	if overdue > 0 {
		insights = append(insights, assist.Insight{
			Type:    assist.InsightWarning,
			Title:   "Overdue Tasks",
			Message: fmt.Sprintf("You have %d overdue task(s). Consider reviewing your priorities.", overdue),
			Icon:    "⚠️",
		})
	}

	// 3. Category dominance over active todos only. Ties break toward the
	// category seen first in the collection, which keeps the result
	// deterministic for identical input.
	if dominant, count := dominantCategory(input.Active); dominant != "" &&
		float64(count) > float64(len(input.Active))*dominanceThreshold {
		insights = append(insights, assist.Insight{
			Type:    assist.InsightInfo,
			Title:   "Focus Area Identified",
			Message: fmt.Sprintf("Most of your tasks are in %s. Consider time-blocking for better focus.", dominant),
			Icon:    "🎯",
		})
	}

	return assist.GenerateInsightsOutput{Insights: insights}, nil
}

func dominantCategory(todos []model.Todo) (string, int) {
	counts := make(map[string]int)
	var order []string

	for _, todo := range todos {
		if todo.Category == "" {
			continue
		}
		if _, seen := counts[todo.Category]; !seen {
			order = append(order, todo.Category)
		}
		counts[todo.Category]++
	}

	dominant, max := "", 0
	for _, category := range order {
		if counts[category] > max {
			dominant, max = category, counts[category]
		}
	}
	return dominant, max
}
