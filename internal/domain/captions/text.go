package captions

import (
	"regexp"
	"strings"
)

// Processed is the normalized form of a cue's raw text.
type Processed struct {
	Text          string
	Speaker       string
	ColorOverride string
}

var speakerRe = regexp.MustCompile(`^(Speaker\s+\w+|[A-Za-z][A-Za-z0-9'_-]*):\s+(.*)`)

// ProcessText strips inline markup (capturing a font color attribute when
// present) and then splits a leading "Speaker: rest" label off the text.
func ProcessText(raw string) Processed {
	text, color := stripMarkup(raw)
	text = strings.TrimSpace(text)

	// The label only ever sits on the first line; later lines keep their colons.
	var speaker string
	first, rest, hasRest := strings.Cut(text, "\n")
	if m := speakerRe.FindStringSubmatch(first); m != nil {
		speaker = m[1]
		first = strings.TrimSpace(m[2])
		if hasRest {
			text = first + "\n" + rest
		} else {
			text = first
		}
	}
	return Processed{Text: text, Speaker: speaker, ColorOverride: color}
}

var colorAttrRe = regexp.MustCompile(`color\s*=\s*"([^"]*)"`)

// stripMarkup removes bracketed tags with a two-state scan (plain text vs
// inside a tag), so stripping does not depend on substitution order. The
// first color attribute found becomes the override.
func stripMarkup(s string) (string, string) {
	var b strings.Builder
	var tag strings.Builder
	var color string
	inTag := false
	for _, r := range s {
		switch {
		case inTag && r == '>':
			inTag = false
			if color == "" {
				if m := colorAttrRe.FindStringSubmatch(tag.String()); m != nil {
					color = m[1]
				}
			}
			tag.Reset()
		case inTag:
			tag.WriteRune(r)
		case r == '<':
			inTag = true
		default:
			b.WriteRune(r)
		}
	}
	// An unterminated tag is dropped rather than echoed back as text.
	return b.String(), color
}

// terminal punctuation closes a display line early, regardless of the
// word-count budget.
func endsSentence(word string) bool {
	if word == "" {
		return false
	}
	switch word[len(word)-1] {
	case '.', '!', '?', ':', ';':
		return true
	}
	return false
}

// GroupLines packs words into lines of at most maxWords each. maxWords <= 0
// is treated as 1.
func GroupLines(text string, maxWords int) []string {
	if maxWords <= 0 {
		maxWords = 1
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	var cur []string
	for _, w := range words {
		cur = append(cur, w)
		if len(cur) >= maxWords || endsSentence(w) {
			lines = append(lines, strings.Join(cur, " "))
			cur = nil
		}
	}
	if len(cur) > 0 {
		lines = append(lines, strings.Join(cur, " "))
	}
	return lines
}

// AutoScale computes a font scale percentage from the text length, excluding
// line breaks: 100 at five characters or fewer, then dropping 1.5 points per
// extra character down to a floor of 70.
func AutoScale(text string) float64 {
	n := 0
	for _, r := range text {
		if r == '\n' || r == '\r' {
			continue
		}
		n++
	}
	if n <= 5 {
		return 100
	}
	scale := 100 - 1.5*float64(n-5)
	if scale < 70 {
		return 70
	}
	return scale
}
