package assist

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// ParseTodo extracts a due date, priority, and category from free text
	// and returns a cleaned title plus the extraction details. It never
	// fails: extractor faults degrade to "no signal" and the original text
	// is returned as the title.
	ParseTodo(ctx context.Context, input ParseTodoInput) (ParseTodoOutput, error)

	// SuggestTodos emits context-free recurring suggestions based on the
	// wall-clock hour and weekday of the reference time.
	SuggestTodos(ctx context.Context, input SuggestTodosInput) (SuggestTodosOutput, error)

	// SuggestCompletions emits follow-up actions for a todo based on the
	// verbs it contains, capped at three.
	SuggestCompletions(ctx context.Context, input SuggestCompletionsInput) (SuggestCompletionsOutput, error)

	// AnalyzeUserPatterns aggregates category and keyword frequencies over
	// a todo collection.
	AnalyzeUserPatterns(ctx context.Context, input AnalyzePatternsInput) (AnalyzePatternsOutput, error)

	// GenerateInsights computes productivity insights (completion rate,
	// overdue count, category dominance) over active and completed todos.
	GenerateInsights(ctx context.Context, input GenerateInsightsInput) (GenerateInsightsOutput, error)

	// GenerateDescription produces a short description for a todo title,
	// via the generative collaborator when configured, else a deterministic
	// template.
	GenerateDescription(ctx context.Context, input GenerateDescriptionInput) (GenerateDescriptionOutput, error)
}
