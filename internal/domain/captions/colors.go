package captions

import "strings"

// ASS colors are &HBBGGRR& (BGR, not RGB).
var assColors = map[string]string{
	"white":  "&HFFFFFF&",
	"yellow": "&H00FFFF&",
	"red":    "&H0000FF&",
	"blue":   "&HFF0000&",
	"green":  "&H00FF00&",
	"purple": "&H800080&",
	"black":  "&H000000&",
}

// ColorToASS converts a color name to its ASS code. Unknown names fall back
// to white rather than failing the cue.
func ColorToASS(name string) string {
	if c, ok := assColors[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return "&HFFFFFF&"
}

// Palette assigns palette colors to speakers in first-seen order, wrapping
// around once every color is taken. One Palette instance belongs to one
// compilation run; reuse across runs would leak assignment state.
type Palette struct {
	colors []string
	seen   map[string]string
	order  int
}

func NewPalette(colors []string) *Palette {
	return &Palette{
		colors: append([]string{}, colors...),
		seen:   make(map[string]string),
	}
}

// Assign returns the color for a speaker, allocating the next palette color
// the first time a speaker appears. Deterministic given identical input order.
func (p *Palette) Assign(speaker string) string {
	if len(p.colors) == 0 {
		return ""
	}
	if c, ok := p.seen[speaker]; ok {
		return c
	}
	c := p.colors[p.order%len(p.colors)]
	p.order++
	p.seen[speaker] = c
	return c
}
