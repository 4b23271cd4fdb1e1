package captions

import (
	"fmt"
	"strings"
	"time"

	"capstyle/internal/domain/srt"
	"capstyle/internal/fonts"
)

// Event is one document-ready dialogue row: override tokens followed by the
// display text.
type Event struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// Skip records a cue that failed validation and was left out of the document.
type Skip struct {
	Index  int
	Reason string
}

// Compiler turns parsed cues into styled events. One Compiler belongs to one
// compilation run: it owns the speaker palette, whose assignments depend on
// first-appearance order.
type Compiler struct {
	cfg     Config
	catalog *fonts.Catalog
	palette *Palette
	curve   Curve
}

func NewCompiler(cfg Config, catalog *fonts.Catalog) *Compiler {
	return &Compiler{
		cfg:     cfg,
		catalog: catalog,
		palette: NewPalette(cfg.Diarization.Colors),
		curve:   BounceCurve,
	}
}

// UseCurve swaps the animation curve strategy.
func (c *Compiler) UseCurve(curve Curve) {
	if curve != nil {
		c.curve = curve
	}
}

// Compile processes cues in order. Cues that fail validation become Skip
// records; the remaining events keep the input order.
func (c *Compiler) Compile(cues []srt.Cue) ([]Event, []Skip) {
	events := make([]Event, 0, len(cues))
	var skips []Skip
	for _, cue := range cues {
		ev, err := c.compileCue(cue)
		if err != nil {
			skips = append(skips, Skip{Index: cue.Index, Reason: err.Error()})
			continue
		}
		events = append(events, ev)
	}
	return events, skips
}

func (c *Compiler) compileCue(cue srt.Cue) (Event, error) {
	d := cue.Duration()
	if d <= 0 {
		return Event{}, &ValidationError{Field: "cue", Reason: "non-positive duration"}
	}
	if _, ok := c.catalog.Resolve(c.cfg.Style.Font); !ok {
		return Event{}, &ValidationError{Field: "style.font", Reason: fmt.Sprintf("unknown font %q", c.cfg.Style.Font)}
	}

	p := ProcessText(cue.Text())

	var tokens strings.Builder

	// 1. color: an explicit markup override wins when it differs from the
	// configured default; otherwise diarization colors the cue by speaker.
	switch {
	case p.ColorOverride != "" && ColorToASS(p.ColorOverride) != ColorToASS(c.cfg.Style.Color):
		tokens.WriteString("{\\c" + ColorToASS(p.ColorOverride) + "}")
	case c.cfg.Diarization.Enabled && p.Speaker != "":
		tokens.WriteString("{\\c" + ColorToASS(c.palette.Assign(p.Speaker)) + "}")
	}

	baseline := 100.0
	if c.cfg.Style.AutoScaleFont {
		baseline = AutoScale(p.Text)
	}

	animated := false
	var animTokens string
	if c.cfg.Animation.Enabled {
		switch c.cfg.Animation.Kind {
		case AnimationNone:
		case AnimationBounce:
			kfs, err := Keyframes(d, c.cfg.Animation.Keyframes, c.curve)
			if err != nil {
				return Event{}, err
			}
			animTokens = RenderOverrides(kfs, baseline)
			animated = true
		default:
			return Event{}, &ValidationError{Field: "animation.kind", Reason: fmt.Sprintf("unknown kind %q", c.cfg.Animation.Kind)}
		}
	}

	// 2. standalone auto-scale only when animation did not already fold the
	// baseline into its keyframes.
	if baseline < 100 && !animated {
		tokens.WriteString(fmt.Sprintf("{\\fscx%.0f\\fscy%.0f}", baseline, baseline))
	}

	// 3. animation keyframes.
	tokens.WriteString(animTokens)

	text := p.Text
	if c.cfg.Style.MaxWordsPerLine > 0 {
		lines := GroupLines(strings.ReplaceAll(text, "\n", " "), c.cfg.Style.MaxWordsPerLine)
		text = strings.Join(lines, "\n")
	}
	if c.cfg.Diarization.Enabled && c.cfg.Diarization.KeepLabels && p.Speaker != "" {
		text = p.Speaker + ": " + text
	}

	return Event{Start: cue.Start, End: cue.End, Text: tokens.String() + displayText(text)}, nil
}

// displayText sanitizes each line for ASS and joins them with hard breaks.
func displayText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = sanitizeASS(line)
	}
	return strings.Join(lines, "\\N")
}

func sanitizeASS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "{", "(")
	s = strings.ReplaceAll(s, "}", ")")
	return strings.TrimSpace(s)
}
