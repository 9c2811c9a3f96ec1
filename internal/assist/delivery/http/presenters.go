package http

import (
	"strings"
	"time"

	"smart-todo-assistant/internal/assist"
	"smart-todo-assistant/internal/model"
)

// --- Request DTOs ---

type parseReq struct {
	Text string     `json:"text" binding:"required"`
	Now  *time.Time `json:"now"` // optional reference time, RFC3339
}

func (r parseReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return assist.ErrEmptyText
	}
	return nil
}

func (r parseReq) toInput() assist.ParseTodoInput {
	input := assist.ParseTodoInput{Text: r.Text}
	if r.Now != nil {
		input.Now = *r.Now
	}
	return input
}

// ---

type suggestionsReq struct {
	Todos []model.Todo `json:"todos"`
	Now   *time.Time   `json:"now"`
}

func (r suggestionsReq) validate() error { return nil }

func (r suggestionsReq) toInput() assist.SuggestTodosInput {
	input := assist.SuggestTodosInput{Todos: r.Todos}
	if r.Now != nil {
		input.Now = *r.Now
	}
	return input
}

// ---

type completionsReq struct {
	Text string `json:"text" binding:"required"`
}

func (r completionsReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return assist.ErrEmptyText
	}
	return nil
}

func (r completionsReq) toInput() assist.SuggestCompletionsInput {
	return assist.SuggestCompletionsInput{Text: r.Text}
}

// ---

type patternsReq struct {
	Todos []model.Todo `json:"todos"`
}

func (r patternsReq) validate() error { return nil }

func (r patternsReq) toInput() assist.AnalyzePatternsInput {
	return assist.AnalyzePatternsInput{Todos: r.Todos}
}

// ---

type insightsReq struct {
	Active    []model.Todo `json:"active"`
	Completed []model.Todo `json:"completed"`
	Now       *time.Time   `json:"now"`
}

func (r insightsReq) validate() error { return nil }

func (r insightsReq) toInput() assist.GenerateInsightsInput {
	input := assist.GenerateInsightsInput{Active: r.Active, Completed: r.Completed}
	if r.Now != nil {
		input.Now = *r.Now
	}
	return input
}

// ---

type describeReq struct {
	Title string `json:"title" binding:"required"`
}

func (r describeReq) validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return assist.ErrEmptyTitle
	}
	return nil
}

func (r describeReq) toInput() assist.GenerateDescriptionInput {
	return assist.GenerateDescriptionInput{Title: r.Title}
}

// --- Response DTOs ---

// Parse and Patterns return their domain objects directly; the remaining
// endpoints wrap lists so the payload stays an object.

func (h *handler) newParseResp(out assist.ParseTodoOutput) assist.ExtractionResult {
	return out.Result
}

type suggestionsResp struct {
	Suggestions []assist.TodoSuggestion `json:"suggestions"`
}

func (h *handler) newSuggestionsResp(out assist.SuggestTodosOutput) suggestionsResp {
	return suggestionsResp{Suggestions: out.Suggestions}
}

type completionsResp struct {
	Suggestions []assist.CompletionSuggestion `json:"suggestions"`
}

func (h *handler) newCompletionsResp(out assist.SuggestCompletionsOutput) completionsResp {
	return completionsResp{Suggestions: out.Suggestions}
}

func (h *handler) newPatternsResp(out assist.AnalyzePatternsOutput) assist.UserPatterns {
	return out.Patterns
}

type insightsResp struct {
	Insights []assist.Insight `json:"insights"`
}

func (h *handler) newInsightsResp(out assist.GenerateInsightsOutput) insightsResp {
	return insightsResp{Insights: out.Insights}
}

type describeResp struct {
	Description string `json:"description"`
}

func (h *handler) newDescribeResp(out assist.GenerateDescriptionOutput) describeResp {
	return describeResp{Description: out.Description}
}
