package gemini_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart-todo-assistant/pkg/gemini"
)

func TestNewClient(t *testing.T) {
	_, err := gemini.NewClient(gemini.Config{})
	if err == nil {
		t.Fatalf("expected error for missing API key")
	}

	c, err := gemini.NewClient(gemini.Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != gemini.DefaultModel {
		t.Errorf("expected default model, got %s", c.Model())
	}
}

func TestGenerateText(t *testing.T) {
	t.Run("Successful Generation", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Make a phone call "},{"text":"to the client."}]}}]}`))
		}))
		defer srv.Close()

		c, _ := gemini.NewClient(gemini.Config{APIKey: "test-key", APIURL: srv.URL})
		got, err := c.GenerateText(context.Background(), "system", "describe: call client", 0.7, 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Make a phone call to the client." {
			t.Errorf("unexpected text: %q", got)
		}
	})

	t.Run("Empty Candidates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer srv.Close()

		c, _ := gemini.NewClient(gemini.Config{APIKey: "test-key", APIURL: srv.URL})
		got, err := c.GenerateText(context.Background(), "", "prompt", 0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "" {
			t.Errorf("expected empty text, got %q", got)
		}
	})

	t.Run("API Error Status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
		}))
		defer srv.Close()

		c, _ := gemini.NewClient(gemini.Config{APIKey: "test-key", APIURL: srv.URL})
		if _, err := c.GenerateText(context.Background(), "", "prompt", 0, 0); err == nil {
			t.Fatalf("expected error for non-200 status")
		}
	})
}
