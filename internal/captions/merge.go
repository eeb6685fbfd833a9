package captions

import (
	"iter"
	"strings"
)

// fragment is the cleaned text derived from one caption, held in the
// merge buffer while awaiting a flush-or-supersede decision.
type fragment struct {
	start string
	text  string
}

// Merge collapses a caption sequence into one finalized line per
// completed utterance, formatted "<HH:MM:SS> <text>".
//
// Each caption is cleaned first; captions that clean down to nothing are
// dropped. A single buffered fragment carries the most recent
// not-yet-superseded text: when the next fragment extends or equals it
// (the buffered text is a prefix of the new text), the buffer's text is
// replaced in place and its timestamp kept, so a merged line carries the
// timestamp of the fragment that started the utterance. A fragment that
// does not extend the buffer flushes it and starts a new one. Whatever
// remains buffered at end of input is flushed.
//
// The output sequence is lazy and single-pass, like its input.
func Merge(captions iter.Seq[Caption]) iter.Seq[string] {
	return func(yield func(string) bool) {
		var (
			buf      fragment
			buffered bool
		)

		for c := range captions {
			text := Clean(c.Text)
			if text == "" {
				continue
			}

			if !buffered {
				buf = fragment{start: c.Start, text: text}
				buffered = true
				continue
			}

			if strings.HasPrefix(text, buf.text) {
				buf.text = text
				continue
			}

			if !yield(buf.start + " " + buf.text) {
				return
			}
			buf = fragment{start: c.Start, text: text}
		}

		if buffered {
			yield(buf.start + " " + buf.text)
		}
	}
}
