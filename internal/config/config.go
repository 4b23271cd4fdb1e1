// Package config loads the optional captions config file. Defaults come
// first; fields present in the file override them, absent fields keep their
// default values.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"capstyle/internal/domain/captions"
)

type file struct {
	Style struct {
		Font             *string  `yaml:"font"`
		FontSize         *int     `yaml:"font_size"`
		Color            *string  `yaml:"color"`
		OutlineColor     *string  `yaml:"outline_color"`
		OutlineThickness *int     `yaml:"outline_thickness"`
		Position         *float64 `yaml:"position"`
		AutoScaleFont    *bool    `yaml:"auto_scale_font"`
		MaxWordsPerLine  *int     `yaml:"max_words_per_line"`
	} `yaml:"style"`
	Animation struct {
		Enabled   *bool   `yaml:"enabled"`
		Kind      *string `yaml:"kind"`
		Keyframes *int    `yaml:"keyframes"`
	} `yaml:"animation"`
	Diarization struct {
		Enabled     *bool    `yaml:"enabled"`
		Colors      []string `yaml:"colors"`
		MaxSpeakers *int     `yaml:"max_speakers"`
		KeepLabels  *bool    `yaml:"keep_labels"`
	} `yaml:"diarization"`
}

// Load returns the fully populated caption configuration. An empty path
// yields the defaults. The result is validated before being returned.
func Load(path string) (captions.Config, error) {
	cfg := captions.Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return captions.Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		var f file
		if err := yaml.Unmarshal(data, &f); err != nil {
			return captions.Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		apply(&cfg, f)
	}
	normalize(&cfg)
	if err := cfg.Validate(); err != nil {
		return captions.Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func apply(cfg *captions.Config, f file) {
	if f.Style.Font != nil {
		cfg.Style.Font = *f.Style.Font
	}
	if f.Style.FontSize != nil {
		cfg.Style.FontSize = *f.Style.FontSize
	}
	if f.Style.Color != nil {
		cfg.Style.Color = *f.Style.Color
	}
	if f.Style.OutlineColor != nil {
		cfg.Style.OutlineColor = *f.Style.OutlineColor
	}
	if f.Style.OutlineThickness != nil {
		cfg.Style.OutlineThickness = *f.Style.OutlineThickness
	}
	if f.Style.Position != nil {
		cfg.Style.Position = *f.Style.Position
	}
	if f.Style.AutoScaleFont != nil {
		cfg.Style.AutoScaleFont = *f.Style.AutoScaleFont
	}
	if f.Style.MaxWordsPerLine != nil {
		cfg.Style.MaxWordsPerLine = *f.Style.MaxWordsPerLine
	}
	if f.Animation.Enabled != nil {
		cfg.Animation.Enabled = *f.Animation.Enabled
	}
	if f.Animation.Kind != nil {
		cfg.Animation.Kind = captions.AnimationKind(*f.Animation.Kind)
	}
	if f.Animation.Keyframes != nil {
		cfg.Animation.Keyframes = *f.Animation.Keyframes
	}
	if f.Diarization.Enabled != nil {
		cfg.Diarization.Enabled = *f.Diarization.Enabled
	}
	if len(f.Diarization.Colors) > 0 {
		cfg.Diarization.Colors = f.Diarization.Colors
	}
	if f.Diarization.MaxSpeakers != nil {
		cfg.Diarization.MaxSpeakers = *f.Diarization.MaxSpeakers
	}
	if f.Diarization.KeepLabels != nil {
		cfg.Diarization.KeepLabels = *f.Diarization.KeepLabels
	}
}

func normalize(cfg *captions.Config) {
	cfg.Style.Font = strings.TrimSpace(cfg.Style.Font)
	cfg.Style.Color = strings.TrimSpace(strings.ToLower(cfg.Style.Color))
	cfg.Style.OutlineColor = strings.TrimSpace(strings.ToLower(cfg.Style.OutlineColor))
	cfg.Animation.Kind = captions.AnimationKind(strings.TrimSpace(strings.ToLower(string(cfg.Animation.Kind))))
	for i, c := range cfg.Diarization.Colors {
		cfg.Diarization.Colors[i] = strings.TrimSpace(strings.ToLower(c))
	}
}
