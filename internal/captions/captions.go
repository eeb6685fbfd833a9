// Package captions cleans and merges speech-to-text caption output.
//
// Live ASR engines emit overlapping, incrementally growing caption
// fragments while a sentence is still being recognized. This package
// parses subtitle-track documents, cleans each fragment, and collapses
// runs of growing fragments down to one finalized line per utterance.
package captions

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Caption is a single timestamped block from a subtitle-track document.
// Start is truncated to whole seconds (HH:MM:SS); Text is the raw block
// text, possibly spanning multiple lines.
type Caption struct {
	Start string
	Text  string
}

var (
	// cueStartRe matches a cue timing at the start of a line, with or
	// without the brackets whisper-cli emits:
	// "[00:00:46.360 --> 00:01:03.940]" or "00:00:46.360 --> 00:01:03.940".
	cueStartRe = regexp.MustCompile(`^\[?(\d{2}:\d{2}:\d{2})(?:[.,]\d{1,3})?\s*-->`)

	// cueAnywhereRe detects a cue timing line anywhere in a document.
	cueAnywhereRe = regexp.MustCompile(`(?m)^\[?\d{2}:\d{2}:\d{2}[.,]\d{1,3}\s*-->`)
)

// IsSubtitle reports whether the input should be treated as a
// subtitle-track document rather than plain transcript text. The check
// mirrors the usual signals: a .vtt filename, a WEBVTT header, or a cue
// timing line in the content.
func IsSubtitle(filename, content string) bool {
	if strings.EqualFold(filepath.Ext(filename), ".vtt") {
		return true
	}
	if strings.HasPrefix(content, "WEBVTT") {
		return true
	}
	return cueAnywhereRe.MatchString(content)
}
