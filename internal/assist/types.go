package assist

import (
	"time"

	"smart-todo-assistant/internal/model"
)

// Extraction confidence is a coarse 3-level tag attached to a heuristic
// guess, not a probability.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// ExtractedDate is a recognized due-date mention.
type ExtractedDate struct {
	Date          time.Time `json:"date"`
	ExtractedText string    `json:"extractedText"`
	Confidence    string    `json:"confidence"`
}

// ExtractedPriority is a keyword-tier priority classification.
type ExtractedPriority struct {
	Priority   model.Priority `json:"priority"`
	Confidence string         `json:"confidence"`
	Keyword    string         `json:"keyword,omitempty"`
}

// ExtractedCategory is a keyword-dictionary category classification.
// Subjects is populated only on the topic-extraction fallback path.
type ExtractedCategory struct {
	Category   string   `json:"category"`
	Confidence string   `json:"confidence"`
	Keyword    string   `json:"keyword,omitempty"`
	Subjects   []string `json:"subjects,omitempty"`
}

// ExtractedInfo groups the raw extraction details of one parse call.
type ExtractedInfo struct {
	DueDate  *ExtractedDate     `json:"dueDate,omitempty"`
	Priority *ExtractedPriority `json:"priority,omitempty"`
	Category *ExtractedCategory `json:"category,omitempty"`
}

// ExtractionResult is the structured outcome of parsing one piece of free
// text. It is constructed fresh per call and never persisted.
type ExtractionResult struct {
	Title         string         `json:"title"`
	OriginalText  string         `json:"originalText"`
	DueDate       *time.Time     `json:"dueDate,omitempty"`
	Priority      model.Priority `json:"priority,omitempty"`
	Category      string         `json:"category,omitempty"`
	ExtractedInfo ExtractedInfo  `json:"extractedInfo"`
}

// InsightType tags an insight with its severity.
type InsightType string

const (
	InsightSuccess    InsightType = "success"
	InsightWarning    InsightType = "warning"
	InsightSuggestion InsightType = "suggestion"
	InsightInfo       InsightType = "info"
)

// Insight is one human-readable productivity observation.
type Insight struct {
	Type    InsightType `json:"type"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
	Icon    string      `json:"icon"`
}

// TodoSuggestion is a time/pattern-based suggestion for a new todo.
type TodoSuggestion struct {
	Text     string         `json:"text"`
	Category string         `json:"category"`
	Priority model.Priority `json:"priority"`
	Reason   string         `json:"reason"`
}

// CompletionSuggestion is a follow-up action for an existing todo text.
// It is a distinct kind from TodoSuggestion; consumers must not mix them.
type CompletionSuggestion struct {
	Text       string `json:"text"`
	Type       string `json:"type"` // "completion" or "reminder"
	Confidence string `json:"confidence"`
}

// UserPatterns aggregates frequencies over a todo collection. Both maps are
// unordered.
type UserPatterns struct {
	MostCommonCategories map[string]int `json:"mostCommonCategories"`
	CommonKeywords       map[string]int `json:"commonKeywords"`
}

// --- UseCase Inputs ---

type ParseTodoInput struct {
	Text string
	Now  time.Time // zero means time.Now()
}

type SuggestTodosInput struct {
	Todos []model.Todo
	Now   time.Time
}

type SuggestCompletionsInput struct {
	Text string
}

type AnalyzePatternsInput struct {
	Todos []model.Todo
}

type GenerateInsightsInput struct {
	Active    []model.Todo
	Completed []model.Todo
	Now       time.Time
}

type GenerateDescriptionInput struct {
	Title string
}

// --- UseCase Outputs ---

type ParseTodoOutput struct {
	Result ExtractionResult
}

type SuggestTodosOutput struct {
	Suggestions []TodoSuggestion
}

type SuggestCompletionsOutput struct {
	Suggestions []CompletionSuggestion
}

type AnalyzePatternsOutput struct {
	Patterns UserPatterns
}

type GenerateInsightsOutput struct {
	Insights []Insight
}

type GenerateDescriptionOutput struct {
	Description string
}
