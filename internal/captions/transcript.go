package captions

import (
	"bufio"
	"io"
	"iter"
	"regexp"
	"strings"
)

var (
	// speakerPrefixRe matches speaker-label-plus-timestamp prefixes such
	// as "SPEAKER_00 [00:00:12]:" or "Robert: [00:00:12.360 --> 00:00:15.200]".
	speakerPrefixRe = regexp.MustCompile(`^(?:SPEAKER_\d+|[A-Za-z]\w*):?\s*\[\d{2}:\d{2}:\d{2}(?:[.,]\d{1,3})?(?:\s*-->\s*\d{2}:\d{2}:\d{2}(?:[.,]\d{1,3})?)?\]:?\s*`)

	speakerTurnRe = regexp.MustCompile(`\[SPEAKER_TURN\]`)
)

// CleanTranscript processes line-oriented transcript text (the non
// subtitle-track mode). Each line goes through Clean plus the
// transcript-only passes: speaker-label prefixes and [SPEAKER_TURN]
// tokens are stripped, immediately repeated words collapse to one, lines
// that clean down to nothing are dropped, and a line identical to the
// line before it is dropped as ASR stutter.
//
// Like ParseVTT, the returned sequence is lazy and single-pass.
func CleanTranscript(r io.Reader) iter.Seq[string] {
	return func(yield func(string) bool) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		prev := ""
		for sc.Scan() {
			line := CleanLine(sc.Text())
			if line == "" {
				continue
			}
			if line == prev {
				continue
			}
			prev = line
			if !yield(line) {
				return
			}
		}
	}
}

// CleanLine applies the transcript-mode cleaning passes to one line.
func CleanLine(line string) string {
	line = speakerPrefixRe.ReplaceAllString(line, "")
	line = speakerTurnRe.ReplaceAllString(line, " ")
	line = Clean(line)
	return collapseWordStutter(line)
}

// collapseWordStutter drops word tokens identical to the token before
// them ("the the quick" becomes "the quick"). Comparison is
// case-insensitive, keeping the first spelling of a repeated run.
func collapseWordStutter(line string) string {
	words := strings.Fields(line)
	if len(words) < 2 {
		return line
	}
	out := words[:1]
	for _, w := range words[1:] {
		if strings.EqualFold(w, out[len(out)-1]) {
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}
