package captions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Resolution is the canvas the document is laid out against.
type Resolution struct {
	Width  int
	Height int
}

// Assemble emits the complete ASS document: script info, the single style
// definition, and the ordered dialogue rows. Output is byte-for-byte
// deterministic for identical inputs.
func Assemble(res Resolution, style StyleConfig, events []Event) string {
	var b strings.Builder

	b.WriteString("[Script Info]\n")
	b.WriteString("ScriptType: v4.00+\n")
	fmt.Fprintf(&b, "PlayResX: %d\n", res.Width)
	fmt.Fprintf(&b, "PlayResY: %d\n", res.Height)
	b.WriteString("ScaledBorderAndShadow: yes\n\n")

	b.WriteString("[V4+ Styles]\n")
	b.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	b.WriteString(styleLine(res, style))
	b.WriteString("\n")

	b.WriteString("[Events]\n")
	b.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
	for _, ev := range events {
		fmt.Fprintf(&b, "Dialogue: 0,%s,%s,Default,,0,0,0,,%s\n", assTime(ev.Start), assTime(ev.End), ev.Text)
	}
	return b.String()
}

func styleLine(res Resolution, style StyleConfig) string {
	marginV := int(float64(res.Height) * style.Position)
	return fmt.Sprintf(
		"Style: Default,%s,%d,%s,&H000000FF,%s,&H00000000,0,0,0,0,100,100,0,0,1,%d,0,2,10,10,%d,1\n",
		style.Font,
		style.FontSize,
		ColorToASS(style.Color),
		ColorToASS(style.OutlineColor),
		style.OutlineThickness,
		marginV,
	)
}

// assTime renders H:MM:SS.cc, centisecond resolution.
func assTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := int(d / time.Hour)
	d -= time.Duration(h) * time.Hour
	m := int(d / time.Minute)
	d -= time.Duration(m) * time.Minute
	s := int(d / time.Second)
	d -= time.Duration(s) * time.Second
	cs := int(d / (10 * time.Millisecond))
	return fmt.Sprintf("%d:%02d:%02d.%02d", h, m, s, cs)
}

// WriteDocument writes the document atomically: a temp file in the target
// directory, fsynced, then renamed over the destination. A failure never
// leaves a truncated file at path.
func WriteDocument(path, doc string) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp document: %w", err)
	}
	tmp := f.Name()
	cleanup := func() {
		f.Close()
		os.Remove(tmp)
	}
	if _, err := f.WriteString(doc); err != nil {
		cleanup()
		return fmt.Errorf("write document: %w", err)
	}
	if err := f.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("sync document: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("close document: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}
