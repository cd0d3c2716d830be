package analyzer

import (
	"regexp"
	"strings"
)

var (
	newlineRe    = regexp.MustCompile(`\n+`)
	timestampRe  = regexp.MustCompile(`\d{2}:\d{2}`)
	speakerRe    = regexp.MustCompile(`참석자\s*\d+\s*`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize strips transcript artifacts and collapses whitespace.
// Timestamps and speaker labels are removed before the whitespace pass
// so the result is stable under repeated normalization.
func Normalize(text string) string {
	text = newlineRe.ReplaceAllString(text, " ")
	text = timestampRe.ReplaceAllString(text, "")
	text = speakerRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
