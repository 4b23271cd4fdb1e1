package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"capstyle/internal/domain/captions"
)

func TestDefaultOutPath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/tmp/demo.mp4": "/tmp/demo_captioned.mp4",
		"clip.mov":      "clip_captioned.mov",
		"noextension":   "noextension_captioned",
		"/a/b.c/in.mp4": "/a/b.c/in_captioned.mp4",
	}
	for in, want := range tests {
		if got := defaultOutPath(in); got != want {
			t.Fatalf("defaultOutPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	video := filepath.Join(tmp, "in.mp4")
	srt := filepath.Join(tmp, "subs.srt")
	for _, p := range []string{video, srt} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	base := Config{
		InputMP4: video,
		SRTPath:  srt,
		Captions: captions.Default(),
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"empty input", func(c *Config) { c.InputMP4 = "" }, "input"},
		{"missing input", func(c *Config) { c.InputMP4 = filepath.Join(tmp, "absent.mp4") }, "stat input"},
		{"no srt", func(c *Config) { c.SRTPath = "" }, "srt path"},
		{"missing srt", func(c *Config) { c.SRTPath = filepath.Join(tmp, "absent.srt") }, "stat srt"},
		{"transcribe without key", func(c *Config) { c.Transcribe = true; c.SRTPath = "" }, "ASSEMBLYAI_API_KEY"},
		{"bad captions config", func(c *Config) { c.Captions.Animation.Kind = "spin" }, "kind"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Fatalf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}

	// transcribe mode does not require an SRT
	cfg := base
	cfg.Transcribe = true
	cfg.SRTPath = ""
	cfg.AssemblyAIKey = "key"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("transcribe config rejected: %v", err)
	}
}
