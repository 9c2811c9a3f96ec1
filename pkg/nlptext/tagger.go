package nlptext

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// Tagger extracts grammatical signals from free text.
type Tagger interface {
	// Verbs returns the verb tokens of text, lowercased, in order of appearance.
	Verbs(text string) []string
	// Topics returns the named entities / subject phrases of text, in order.
	Topics(text string) []string
}

type proseTagger struct{}

// NewProseTagger returns a Tagger backed by the prose NLP library.
func NewProseTagger() Tagger {
	return proseTagger{}
}

func (proseTagger) Verbs(text string) []string {
	if text == "" {
		return nil
	}

	doc, err := prose.NewDocument(text, prose.WithExtraction(false), prose.WithSegmentation(false))
	if err != nil {
		return nil
	}

	var verbs []string
	for _, tok := range doc.Tokens() {
		// VB, VBD, VBG, VBN, VBP, VBZ
		if strings.HasPrefix(tok.Tag, "VB") {
			verbs = append(verbs, strings.ToLower(tok.Text))
		}
	}
	return verbs
}

func (proseTagger) Topics(text string) []string {
	if text == "" {
		return nil
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil
	}

	var topics []string
	for _, ent := range doc.Entities() {
		topics = append(topics, ent.Text)
	}
	return topics
}
