package usecase

import (
	"context"
	"testing"

	"smart-todo-assistant/pkg/dateparse"
	"smart-todo-assistant/pkg/llmprovider"
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

// fakeTagger returns canned verbs and topics regardless of input.
type fakeTagger struct {
	verbs  []string
	topics []string
}

func (f fakeTagger) Verbs(string) []string  { return f.verbs }
func (f fakeTagger) Topics(string) []string { return f.topics }

// panicTagger simulates a third-party tagger fault.
type panicTagger struct{}

func (panicTagger) Verbs(string) []string  { panic("tagger fault") }
func (panicTagger) Topics(string) []string { panic("tagger fault") }

// fakeLLM counts calls and returns a canned response or error.
type fakeLLM struct {
	text  string
	err   error
	calls int
}

func (f *fakeLLM) GenerateText(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.text}, nil
}

func newTestUseCase(t *testing.T, tagger fakeTagger, llm TextGenerator) *implUseCase {
	t.Helper()
	dates, err := dateparse.NewExtractor("UTC")
	if err != nil {
		t.Fatalf("NewExtractor: %v", err)
	}
	return New(nopLogger{}, dates, tagger, llm, 0)
}
