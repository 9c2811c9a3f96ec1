package usecase

import (
	"context"
	"strings"

	"smart-todo-assistant/internal/assist"
)

// minKeywordLength filters out short filler words from keyword counts.
const minKeywordLength = 4

// AnalyzeUserPatterns aggregates category frequencies and title keyword
// frequencies over the supplied todos. Pure aggregation; both maps are
// unordered.
func (uc *implUseCase) AnalyzeUserPatterns(ctx context.Context, input assist.AnalyzePatternsInput) (assist.AnalyzePatternsOutput, error) {
	patterns := assist.UserPatterns{
		MostCommonCategories: make(map[string]int),
		CommonKeywords:       make(map[string]int),
	}

	for _, todo := range input.Todos {
		if todo.Category != "" {
			patterns.MostCommonCategories[todo.Category]++
		}

		for _, word := range strings.Fields(strings.ToLower(todo.Title)) {
			if len(word) >= minKeywordLength {
				patterns.CommonKeywords[word]++
			}
		}
	}

	return assist.AnalyzePatternsOutput{Patterns: patterns}, nil
}
