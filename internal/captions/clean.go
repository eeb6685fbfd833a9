package captions

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	markupRe = regexp.MustCompile(`<[^>]+>`)
	entityRe = regexp.MustCompile(`&[a-zA-Z]+;`)
	spacesRe = regexp.MustCompile(` +`)
)

// Clean normalizes one caption fragment: markup tags and HTML entities
// are removed, non-printable runes are dropped, whitespace runs
// (including newlines) collapse to a single space, and the result is
// trimmed. Clean never fails; the worst case is an empty string.
// Clean is idempotent.
func Clean(text string) string {
	text = markupRe.ReplaceAllString(text, "")
	text = entityRe.ReplaceAllString(text, " ")
	text = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return ' '
		case unicode.IsPrint(r):
			return r
		default:
			return -1
		}
	}, text)
	text = spacesRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
