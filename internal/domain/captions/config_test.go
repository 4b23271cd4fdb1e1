package captions

import (
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Style.Font != "Montserrat" || cfg.Style.FontSize != 140 {
		t.Fatalf("unexpected style defaults: %+v", cfg.Style)
	}
	if cfg.Style.Position != 0.7 {
		t.Fatalf("unexpected position default: %v", cfg.Style.Position)
	}
	if !cfg.Animation.Enabled || cfg.Animation.Kind != AnimationBounce || cfg.Animation.Keyframes != 10 {
		t.Fatalf("unexpected animation defaults: %+v", cfg.Animation)
	}
	if len(cfg.Diarization.Colors) != 3 || cfg.Diarization.Colors[0] != "white" {
		t.Fatalf("unexpected palette default: %v", cfg.Diarization.Colors)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"negative font size", func(c *Config) { c.Style.FontSize = 0 }, "font_size"},
		{"position above one", func(c *Config) { c.Style.Position = 1.2 }, "position"},
		{"unknown animation kind", func(c *Config) { c.Animation.Kind = "spin" }, "kind"},
		{"one keyframe", func(c *Config) { c.Animation.Keyframes = 1 }, "keyframes"},
		{"empty palette", func(c *Config) { c.Diarization.Colors = nil }, "colors"},
		{"zero speakers", func(c *Config) { c.Diarization.MaxSpeakers = 0 }, "max_speakers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}

	// keyframe count only matters while animation is on
	cfg := Default()
	cfg.Animation.Enabled = false
	cfg.Animation.Keyframes = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("disabled animation should not validate keyframes: %v", err)
	}
}
