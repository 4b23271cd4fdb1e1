// Package fonts holds the explicit font catalog used to validate style
// configuration. The catalog is constructed and passed in; nothing here
// touches process-wide font state.
package fonts

import "sort"

// Catalog maps font display names to font file names.
type Catalog struct {
	byName map[string]string
}

func NewCatalog(entries map[string]string) *Catalog {
	m := make(map[string]string, len(entries))
	for name, file := range entries {
		m[name] = file
	}
	return &Catalog{byName: m}
}

// Default lists the bundled font set by display name.
func Default() *Catalog {
	return NewCatalog(map[string]string{
		"CheGuevara Barry":    "CheGuevaraBarry-Brown.ttf",
		"Fira Sans Condensed": "FiraSansCondensed-ExtraBoldItalic.ttf",
		"Gabarito":            "Gabarito-Black.ttf",
		"Komika Axis":         "KOMIKAX_.ttf",
		"Montserrat":          "Montserrat-Bold.ttf",
		"Proxima Nova":        "Proxima-Nova-Semibold.ttf",
		"Rubik":               "Rubik-ExtraBold.ttf",
	})
}

// Resolve returns the font file for a display name.
func (c *Catalog) Resolve(name string) (string, bool) {
	file, ok := c.byName[name]
	return file, ok
}

// Names returns the available display names, sorted.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.byName))
	for name := range c.byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
