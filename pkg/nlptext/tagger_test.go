package nlptext_test

import (
	"testing"

	"smart-todo-assistant/pkg/nlptext"
)

func TestVerbs(t *testing.T) {
	tagger := nlptext.NewProseTagger()

	t.Run("Past Tense Verb", func(t *testing.T) {
		verbs := tagger.Verbs("She quickly finished the quarterly report")
		found := false
		for _, v := range verbs {
			if v == "finished" {
				found = true
			}
		}
		if !found {
			t.Errorf("expected 'finished' among verbs, got %v", verbs)
		}
	})

	t.Run("Lowercased Output", func(t *testing.T) {
		for _, v := range tagger.Verbs("He is reviewing the contract") {
			if v != "" && v[0] >= 'A' && v[0] <= 'Z' {
				t.Errorf("verbs must be lowercased, got %q", v)
			}
		}
	})

	t.Run("Empty Text", func(t *testing.T) {
		if verbs := tagger.Verbs(""); verbs != nil {
			t.Errorf("expected nil for empty text, got %v", verbs)
		}
	})
}

func TestTopics(t *testing.T) {
	tagger := nlptext.NewProseTagger()

	t.Run("Empty Text", func(t *testing.T) {
		if topics := tagger.Topics(""); topics != nil {
			t.Errorf("expected nil for empty text, got %v", topics)
		}
	})

	t.Run("Plain Text Does Not Panic", func(t *testing.T) {
		_ = tagger.Topics("organize the spring picnic with everyone")
	})
}
