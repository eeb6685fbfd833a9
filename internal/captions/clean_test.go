package captions

import (
	"strings"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text unchanged", "The quick brown fox", "The quick brown fox"},
		{"markup removed", "<i>Hello</i> there", "Hello there"},
		{"nested attributes removed", `<c.colorCCCCCC>word</c>`, "word"},
		{"whitespace collapsed", "a  b\tc\nd", "a b c d"},
		{"leading and trailing trimmed", "  padded  ", "padded"},
		{"html entity dropped", "she said &quot;hi&quot;", "she said hi"},
		{"non printable stripped", "be\x07ep", "beep"},
		{"only markup yields empty", "<i></i>", ""},
		{"whitespace only yields empty", " \t\n ", ""},
		{"empty yields empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"<b>bold</b>  and\nplain",
		"already clean text",
		"tabs\tand\nnewlines",
		"&amp; entities &quot;",
		"",
	}

	for _, in := range inputs {
		once := Clean(in)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestCleanRemovesAllMarkup(t *testing.T) {
	got := Clean(`<v Speaker>one</v> <00:00:01.000>two<c> three</c>`)
	if strings.Contains(got, "<") || strings.Contains(got, ">") {
		t.Errorf("Clean left markup behind: %q", got)
	}
	if got != "one two three" {
		t.Errorf("Clean = %q, want %q", got, "one two three")
	}
}
