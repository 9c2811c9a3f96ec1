package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"smart-todo-assistant/internal/assist"
	"smart-todo-assistant/internal/model"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// ParseTodo runs the extraction pipeline over free text: due date, then
// priority, then category. Matched date text and priority keywords are
// stripped from the working title; category keywords are not. The original
// text is never mutated, and the call never fails: every extractor fault
// degrades to "no signal".
func (uc *implUseCase) ParseTodo(ctx context.Context, input assist.ParseTodoInput) (assist.ParseTodoOutput, error) {
	text := input.Text
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	result := assist.ExtractionResult{
		Title:        text,
		OriginalText: text,
	}

	// 1. Due date. Only the first date mention counts; strip its exact
	// matched substring (first occurrence) from the working title.
	if dateInfo := uc.extractDueDate(ctx, text, now); dateInfo != nil {
		due := dateInfo.Date
		result.DueDate = &due
		result.ExtractedInfo.DueDate = dateInfo
		result.Title = strings.TrimSpace(strings.Replace(text, dateInfo.ExtractedText, "", 1))
	}

	// 2. Priority. A low-confidence result is a neutral default, not a
	// classification; it neither sets the field nor touches the title.
	if prioInfo := uc.extractPriority(text); prioInfo.Confidence != assist.ConfidenceLow {
		result.Priority = prioInfo.Priority
		result.ExtractedInfo.Priority = &prioInfo
		if prioInfo.Keyword != "" {
			keywordRe := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(prioInfo.Keyword))
			result.Title = strings.TrimSpace(keywordRe.ReplaceAllString(result.Title, ""))
		}
	}

	// 3. Category. Recorded but never stripped from the title.
	if catInfo := uc.extractCategory(ctx, text); catInfo.Confidence != assist.ConfidenceLow {
		result.Category = catInfo.Category
		result.ExtractedInfo.Category = &catInfo
	}

	// 4. Cleanup. Collapse whitespace; an emptied title falls back to the
	// original, unmodified text.
	result.Title = collapseWhitespace(result.Title)
	if result.Title == "" {
		result.Title = text
	}

	return assist.ParseTodoOutput{Result: result}, nil
}

// extractDueDate wraps the date extractor; nil means no date suggestion,
// never an error.
func (uc *implUseCase) extractDueDate(ctx context.Context, text string, now time.Time) *assist.ExtractedDate {
	r := uc.dates.Extract(text, now)
	if r == nil {
		return nil
	}
	return &assist.ExtractedDate{
		Date:          r.Date,
		ExtractedText: r.ExtractedText,
		Confidence:    r.Confidence,
	}
}

// extractPriority scans the ordered keyword tiers and returns on the first
// match. No match yields the neutral {medium, low} default.
func (uc *implUseCase) extractPriority(text string) assist.ExtractedPriority {
	lower := strings.ToLower(text)

	for _, tier := range priorityTiers {
		for _, keyword := range tier.keywords {
			if strings.Contains(lower, keyword) {
				return assist.ExtractedPriority{
					Priority:   tier.priority,
					Confidence: tier.confidence,
					Keyword:    keyword,
				}
			}
		}
	}

	return assist.ExtractedPriority{
		Priority:   model.PriorityMedium,
		Confidence: assist.ConfidenceLow,
	}
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
