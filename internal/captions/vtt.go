package captions

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// ParseVTT reads a subtitle-track document and yields its captions in
// document order. The WEBVTT header and its leading metadata (everything
// up to and including the first blank line) are skipped. A caption block
// starts at a cue timing line; its text is the remainder of that line
// plus any following non-blank, non-timing lines. Blocks without a
// parsable timing are skipped rather than treated as fatal. Start
// timestamps are truncated to whole seconds.
//
// The sequence is lazy and single-pass: it consumes r as it goes and is
// not restartable.
func ParseVTT(r io.Reader) iter.Seq[Caption] {
	return func(yield func(Caption) bool) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		var (
			cur       Caption
			inCaption bool
			first     = true
			text      []string
		)

		flush := func() bool {
			if !inCaption {
				return true
			}
			cur.Text = strings.Join(text, "\n")
			inCaption = false
			text = text[:0]
			return yield(cur)
		}

		for sc.Scan() {
			line := strings.TrimRight(sc.Text(), "\r")

			if first {
				first = false
				if strings.HasPrefix(line, "WEBVTT") {
					// Consume the header block through the first blank line.
					for sc.Scan() {
						if strings.TrimSpace(strings.TrimRight(sc.Text(), "\r")) == "" {
							break
						}
					}
					continue
				}
			}

			if m := cueStartRe.FindStringSubmatch(line); m != nil {
				if !flush() {
					return
				}
				cur = Caption{Start: m[1]}
				inCaption = true
				if rest := cueRemainder(line); rest != "" {
					text = append(text, rest)
				}
				continue
			}

			if strings.TrimSpace(line) == "" {
				if !flush() {
					return
				}
				continue
			}

			if inCaption {
				text = append(text, line)
			}
			// Lines outside any caption (cue identifiers, NOTE and STYLE
			// payloads, stray metadata) are dropped.
		}

		flush()
	}
}

// cueRemainder returns the text following the cue timing on the same
// line. whisper-cli's bracketed format puts the caption body there;
// plain VTT puts text on the following lines, and anything after an
// unbracketed timing is cue settings, not text.
func cueRemainder(line string) string {
	if i := strings.Index(line, "]"); strings.HasPrefix(line, "[") && i >= 0 {
		return strings.TrimSpace(line[i+1:])
	}
	return ""
}
