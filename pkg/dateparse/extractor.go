package dateparse

import (
	"fmt"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Result is one recognized date mention inside a piece of free text.
type Result struct {
	Date          time.Time
	ExtractedText string // the exact substring the parser matched
	Confidence    string // "high" for exact calendar dates, "medium" otherwise
}

// Extractor finds natural-language date mentions ("tomorrow", "next friday",
// "june 5") in free text and resolves them against a reference moment.
type Extractor struct {
	parser   *when.Parser
	location *time.Location
}

// NewExtractor creates an Extractor resolving dates in the given IANA timezone.
func NewExtractor(timezone string) (*Extractor, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	parser := when.New(nil)
	parser.Add(en.All...)
	parser.Add(common.All...)

	return &Extractor{parser: parser, location: loc}, nil
}

// Extract returns the first date mention found in text, resolved against ref,
// or nil when no date phrase is recognized. Only the first match is used;
// later date mentions in the same text are ignored. A parser fault is treated
// as "no date found", never as an error.
func (e *Extractor) Extract(text string, ref time.Time) (result *Result) {
	defer func() {
		if recover() != nil {
			result = nil
		}
	}()

	if text == "" {
		return nil
	}

	r, err := e.parser.Parse(text, ref.In(e.location))
	if err != nil || r == nil {
		return nil
	}

	return &Result{
		Date:          r.Time,
		ExtractedText: r.Text,
		Confidence:    Certainty(r.Text),
	}
}
