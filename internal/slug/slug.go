package slug

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	nonWord    = regexp.MustCompile(`[^\w\s-]`)
	separators = regexp.MustCompile(`[\s_-]+`)
)

// Normalize converts a title into its comparison key: lowercase, trimmed,
// punctuation stripped, and runs of whitespace, underscores, and hyphens
// collapsed into single hyphens. Lowercasing uses the language-neutral caser
// so keys do not shift with the process locale.
func Normalize(title string) string {
	s := cases.Lower(language.Und).String(strings.TrimSpace(title))
	s = nonWord.ReplaceAllString(s, "")
	s = separators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
