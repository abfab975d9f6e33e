package render

import (
	"regexp"
	"strings"
)

var blankLine = regexp.MustCompile(`\n\s*\n`)

// FormatRichText prepares author-trusted text for rendering. Strings that
// already carry markup pass through unmodified. Plain text gets the
// newline convenience treatment: a blank line becomes a paragraph break,
// a single newline becomes a line break. Content is never escaped here;
// the trust boundary is the authored catalog.
func FormatRichText(text string) string {
	if text == "" {
		return ""
	}

	if strings.Contains(text, "<") && strings.Contains(text, ">") {
		return text
	}

	out := blankLine.ReplaceAllString(text, "</p><p>")
	return strings.ReplaceAll(out, "\n", "<br>")
}
