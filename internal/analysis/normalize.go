package analysis

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize lower-cases text and collapses every whitespace run to a single
// space, trimming the ends. It is idempotent and never fails; empty input
// yields empty output.
func Normalize(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.ToLower(strings.TrimSpace(text))
}
