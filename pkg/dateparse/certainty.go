package dateparse

import "regexp"

const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
)

var (
	monthNameRe   = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\b`)
	numericDateRe = regexp.MustCompile(`\b\d{1,2}[/.-]\d{1,2}\b`)
	yearRe        = regexp.MustCompile(`\b\d{4}\b`)
)

// Certainty classifies a matched date phrase. A phrase that states an exact
// calendar date (month name, numeric day/month pair, or a 4-digit year) is
// "high"; relative phrases like "tomorrow" or "next friday" are "medium".
func Certainty(phrase string) string {
	if monthNameRe.MatchString(phrase) || numericDateRe.MatchString(phrase) || yearRe.MatchString(phrase) {
		return ConfidenceHigh
	}
	return ConfidenceMedium
}
