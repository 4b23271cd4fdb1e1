package captions

import "fmt"

// AnimationKind is a closed set; anything else fails validation.
type AnimationKind string

const (
	AnimationNone   AnimationKind = "none"
	AnimationBounce AnimationKind = "bounce"
)

// ValidationError marks a configuration or per-cue styling problem. Cues
// failing validation are skipped, not fatal to the document.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

type StyleConfig struct {
	Font             string
	FontSize         int
	Color            string
	OutlineColor     string
	OutlineThickness int
	// Position is the vertical position as a fraction from the top (0-1).
	Position        float64
	AutoScaleFont   bool
	MaxWordsPerLine int
}

type AnimationConfig struct {
	Enabled   bool
	Kind      AnimationKind
	Keyframes int
}

type DiarizationConfig struct {
	Enabled     bool
	Colors      []string
	MaxSpeakers int
	KeepLabels  bool
}

type Config struct {
	Style       StyleConfig
	Animation   AnimationConfig
	Diarization DiarizationConfig
}

// Default returns a fully populated configuration. Loading a config file
// overrides fields on top of these values, never the other way around.
func Default() Config {
	return Config{
		Style: StyleConfig{
			Font:             "Montserrat",
			FontSize:         140,
			Color:            "white",
			OutlineColor:     "black",
			OutlineThickness: 2,
			Position:         0.7,
		},
		Animation: AnimationConfig{
			Enabled:   true,
			Kind:      AnimationBounce,
			Keyframes: 10,
		},
		Diarization: DiarizationConfig{
			Enabled:     true,
			Colors:      []string{"white", "yellow", "blue"},
			MaxSpeakers: 3,
		},
	}
}

// Validate checks everything except the font name, which is resolved lazily
// against the font catalog during compilation.
func (c Config) Validate() error {
	if c.Style.FontSize <= 0 {
		return &ValidationError{Field: "style.font_size", Reason: "must be positive"}
	}
	if c.Style.OutlineThickness < 0 {
		return &ValidationError{Field: "style.outline_thickness", Reason: "must not be negative"}
	}
	if c.Style.Position < 0 || c.Style.Position > 1 {
		return &ValidationError{Field: "style.position", Reason: "must be in [0, 1]"}
	}
	switch c.Animation.Kind {
	case AnimationNone, AnimationBounce:
	default:
		return &ValidationError{Field: "animation.kind", Reason: fmt.Sprintf("unknown kind %q", c.Animation.Kind)}
	}
	if c.Animation.Enabled && c.Animation.Kind != AnimationNone && c.Animation.Keyframes < 2 {
		return &ValidationError{Field: "animation.keyframes", Reason: "need at least 2 keyframes"}
	}
	if c.Diarization.Enabled && len(c.Diarization.Colors) == 0 {
		return &ValidationError{Field: "diarization.colors", Reason: "palette must not be empty"}
	}
	if c.Diarization.Enabled && c.Diarization.MaxSpeakers <= 0 {
		return &ValidationError{Field: "diarization.max_speakers", Reason: "must be positive"}
	}
	return nil
}
