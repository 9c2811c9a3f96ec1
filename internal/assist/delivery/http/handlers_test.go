package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-todo-assistant/internal/assist"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Info(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Error(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Fatal(ctx context.Context, args ...interface{})                 {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...interface{}) {}

// fakeUseCase delegates to optional func fields; unset operations return
// zero values.
type fakeUseCase struct {
	parse    func(assist.ParseTodoInput) assist.ParseTodoOutput
	describe func(assist.GenerateDescriptionInput) assist.GenerateDescriptionOutput
	insights func(assist.GenerateInsightsInput) assist.GenerateInsightsOutput
}

func (f fakeUseCase) ParseTodo(ctx context.Context, input assist.ParseTodoInput) (assist.ParseTodoOutput, error) {
	if f.parse != nil {
		return f.parse(input), nil
	}
	return assist.ParseTodoOutput{}, nil
}

func (f fakeUseCase) SuggestTodos(ctx context.Context, input assist.SuggestTodosInput) (assist.SuggestTodosOutput, error) {
	return assist.SuggestTodosOutput{Suggestions: []assist.TodoSuggestion{}}, nil
}

func (f fakeUseCase) SuggestCompletions(ctx context.Context, input assist.SuggestCompletionsInput) (assist.SuggestCompletionsOutput, error) {
	return assist.SuggestCompletionsOutput{Suggestions: []assist.CompletionSuggestion{}}, nil
}

func (f fakeUseCase) AnalyzeUserPatterns(ctx context.Context, input assist.AnalyzePatternsInput) (assist.AnalyzePatternsOutput, error) {
	return assist.AnalyzePatternsOutput{}, nil
}

func (f fakeUseCase) GenerateInsights(ctx context.Context, input assist.GenerateInsightsInput) (assist.GenerateInsightsOutput, error) {
	if f.insights != nil {
		return f.insights(input), nil
	}
	return assist.GenerateInsightsOutput{Insights: []assist.Insight{}}, nil
}

func (f fakeUseCase) GenerateDescription(ctx context.Context, input assist.GenerateDescriptionInput) (assist.GenerateDescriptionOutput, error) {
	if f.describe != nil {
		return f.describe(input), nil
	}
	return assist.GenerateDescriptionOutput{}, nil
}

func newTestRouter(uc assist.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(nopLogger{}, uc)

	r := gin.New()
	rg := r.Group("/api/v1/assist")
	rg.POST("/parse", h.Parse)
	rg.POST("/suggestions", h.Suggestions)
	rg.POST("/completions", h.Completions)
	rg.POST("/patterns", h.Patterns)
	rg.POST("/insights", h.Insights)
	rg.POST("/describe", h.Describe)
	return r
}

func doPost(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestParseEndpoint(t *testing.T) {
	t.Run("returns the extraction result", func(t *testing.T) {
		uc := fakeUseCase{parse: func(input assist.ParseTodoInput) assist.ParseTodoOutput {
			return assist.ParseTodoOutput{Result: assist.ExtractionResult{
				Title:        "Call mom",
				OriginalText: input.Text,
			}}
		}}
		w := doPost(t, newTestRouter(uc), "/api/v1/assist/parse", `{"text":"Call mom tomorrow"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}

		var resp struct {
			ErrorCode int `json:"error_code"`
			Data      struct {
				Title        string `json:"title"`
				OriginalText string `json:"originalText"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.ErrorCode != 0 {
			t.Errorf("error_code = %d, want 0", resp.ErrorCode)
		}
		if resp.Data.Title != "Call mom" || resp.Data.OriginalText != "Call mom tomorrow" {
			t.Errorf("data = %+v", resp.Data)
		}
	})

	t.Run("blank text is rejected", func(t *testing.T) {
		w := doPost(t, newTestRouter(fakeUseCase{}), "/api/v1/assist/parse", `{"text":"   "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if !strings.Contains(w.Body.String(), "text is required") {
			t.Errorf("body = %s, want text-is-required message", w.Body.String())
		}
	})

	t.Run("missing text is rejected", func(t *testing.T) {
		w := doPost(t, newTestRouter(fakeUseCase{}), "/api/v1/assist/parse", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		w := doPost(t, newTestRouter(fakeUseCase{}), "/api/v1/assist/parse", `{"text":`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestInsightsEndpoint(t *testing.T) {
	t.Run("empty collections are valid", func(t *testing.T) {
		w := doPost(t, newTestRouter(fakeUseCase{}), "/api/v1/assist/insights", `{"active":[],"completed":[]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"insights":[]`) {
			t.Errorf("body = %s, want empty insights list", w.Body.String())
		}
	})

	t.Run("todos are forwarded to the use case", func(t *testing.T) {
		var got assist.GenerateInsightsInput
		uc := fakeUseCase{insights: func(input assist.GenerateInsightsInput) assist.GenerateInsightsOutput {
			got = input
			return assist.GenerateInsightsOutput{Insights: []assist.Insight{}}
		}}
		body := `{"active":[{"title":"a","category":"Work"}],"completed":[{"title":"b"},{"title":"c"}]}`
		w := doPost(t, newTestRouter(uc), "/api/v1/assist/insights", body)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if len(got.Active) != 1 || len(got.Completed) != 2 {
			t.Errorf("forwarded %d active / %d completed, want 1/2", len(got.Active), len(got.Completed))
		}
		if got.Active[0].Category != "Work" {
			t.Errorf("active[0].Category = %q, want Work", got.Active[0].Category)
		}
	})
}

func TestDescribeEndpoint(t *testing.T) {
	t.Run("returns the description", func(t *testing.T) {
		uc := fakeUseCase{describe: func(input assist.GenerateDescriptionInput) assist.GenerateDescriptionOutput {
			return assist.GenerateDescriptionOutput{Description: "Make a phone call to discuss important matters."}
		}}
		w := doPost(t, newTestRouter(uc), "/api/v1/assist/describe", `{"title":"Call dentist"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), "Make a phone call") {
			t.Errorf("body = %s", w.Body.String())
		}
	})

	t.Run("blank title is rejected", func(t *testing.T) {
		w := doPost(t, newTestRouter(fakeUseCase{}), "/api/v1/assist/describe", `{"title":" "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		if !strings.Contains(w.Body.String(), "title is required") {
			t.Errorf("body = %s, want title-is-required message", w.Body.String())
		}
	})
}

func TestCompletionsEndpoint(t *testing.T) {
	t.Run("empty suggestion list round-trips", func(t *testing.T) {
		w := doPost(t, newTestRouter(fakeUseCase{}), "/api/v1/assist/completions", `{"text":"sing a song"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"suggestions":[]`) {
			t.Errorf("body = %s, want empty suggestions list", w.Body.String())
		}
	})
}
