package usecase

import (
	"context"
	"strings"

	"smart-todo-assistant/internal/assist"
)

// extractCategory scans the fixed category table in declaration order and
// returns on the first keyword match. When no keyword matches, it falls
// back to topic extraction: any recognized subject phrase yields General
// with low confidence and the subjects attached; otherwise a bare General.
func (uc *implUseCase) extractCategory(ctx context.Context, text string) assist.ExtractedCategory {
	lower := strings.ToLower(text)

	for _, entry := range categoryTable {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return assist.ExtractedCategory{
					Category:   entry.name,
					Confidence: assist.ConfidenceHigh,
					Keyword:    keyword,
				}
			}
		}
	}

	if subjects := uc.safeTopics(ctx, text); len(subjects) > 0 {
		return assist.ExtractedCategory{
			Category:   defaultCategory,
			Confidence: assist.ConfidenceLow,
			Subjects:   subjects,
		}
	}

	return assist.ExtractedCategory{
		Category:   defaultCategory,
		Confidence: assist.ConfidenceLow,
	}
}

// safeTopics guards the third-party tagger; a tagger fault means no signal.
func (uc *implUseCase) safeTopics(ctx context.Context, text string) (subjects []string) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Warnf(ctx, "topic tagger fault treated as no signal: %v", r)
			subjects = nil
		}
	}()
	return uc.tagger.Topics(text)
}

// safeVerbs guards the third-party tagger; a tagger fault means no signal.
func (uc *implUseCase) safeVerbs(ctx context.Context, text string) (verbs []string) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Warnf(ctx, "verb tagger fault treated as no signal: %v", r)
			verbs = nil
		}
	}()
	return uc.tagger.Verbs(text)
}
