package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"capstyle/internal/domain/captions"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "captions.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_EmptyPathIsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, captions.Default()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_OverridesOnTopOfDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
style:
  font: Rubik
  position: 0.5
animation:
  kind: BOUNCE
  keyframes: 4
diarization:
  colors: [red, GREEN]
  keep_labels: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Style.Font != "Rubik" || cfg.Style.Position != 0.5 {
		t.Fatalf("unexpected style: %+v", cfg.Style)
	}
	// untouched fields keep defaults
	if cfg.Style.FontSize != 140 || cfg.Style.Color != "white" {
		t.Fatalf("defaults lost: %+v", cfg.Style)
	}
	if cfg.Animation.Kind != captions.AnimationBounce || cfg.Animation.Keyframes != 4 {
		t.Fatalf("unexpected animation: %+v", cfg.Animation)
	}
	if len(cfg.Diarization.Colors) != 2 || cfg.Diarization.Colors[1] != "green" {
		t.Fatalf("unexpected palette: %v", cfg.Diarization.Colors)
	}
	if !cfg.Diarization.KeepLabels {
		t.Fatal("expected keep_labels true")
	}
}

func TestLoad_FalseOverridesDefaultTrue(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "animation:\n  enabled: false\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Animation.Enabled {
		t.Fatal("expected animation disabled")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"bad kind", "animation:\n  kind: spin\n"},
		{"one keyframe", "animation:\n  keyframes: 1\n"},
		{"position out of range", "style:\n  position: 2.0\n"},
		{"not yaml", "style: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			if _, err := Load(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
