package deepseek_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart-todo-assistant/pkg/deepseek"
)

func TestNew(t *testing.T) {
	_, err := deepseek.New(deepseek.Config{})
	if err == nil {
		t.Fatalf("expected error for missing API key")
	}

	c, err := deepseek.New(deepseek.Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != deepseek.DefaultModel {
		t.Errorf("expected default model, got %s", c.Model())
	}
}

func TestGenerateText(t *testing.T) {
	t.Run("Successful Generation", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("missing bearer token, got %q", got)
			}

			var req map[string]any
			json.NewDecoder(r.Body).Decode(&req)
			msgs, _ := req["messages"].([]any)
			if len(msgs) != 2 {
				t.Errorf("expected system + user messages, got %d", len(msgs))
			}

			w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Review and understand the material."}}]}`))
		}))
		defer srv.Close()

		c, _ := deepseek.New(deepseek.Config{APIKey: "test-key", BaseURL: srv.URL})
		got, err := c.GenerateText(context.Background(), "be brief", "describe: read contract", 0.7, 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "Review and understand the material." {
			t.Errorf("unexpected text: %q", got)
		}
	})

	t.Run("API Error With Message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid api key","type":"auth"}}`))
		}))
		defer srv.Close()

		c, _ := deepseek.New(deepseek.Config{APIKey: "bad-key", BaseURL: srv.URL})
		if _, err := c.GenerateText(context.Background(), "", "prompt", 0, 0); err == nil {
			t.Fatalf("expected error for 401 response")
		}
	})

	t.Run("Empty Choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		c, _ := deepseek.New(deepseek.Config{APIKey: "test-key", BaseURL: srv.URL})
		got, err := c.GenerateText(context.Background(), "", "prompt", 0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "" {
			t.Errorf("expected empty text, got %q", got)
		}
	})
}
