package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"capstyle/internal/domain/captions"
	"capstyle/internal/fonts"
	"capstyle/internal/ports"
	"capstyle/internal/ports/adapters/assemblyai"
	"capstyle/internal/ports/adapters/ffmpeg"
	"capstyle/internal/usecase"
)

type Config struct {
	InputMP4   string
	SRTPath    string
	Transcribe bool
	ExtractSRT string
	OutPath    string
	ASSOnly    bool
	KeepASS    bool
	Logf       func(format string, args ...any)

	// CacheDir is the base directory for local artifacts (extracted audio,
	// transcripts). If empty, defaults to ".cache".
	CacheDir string

	FFmpegPath  string
	FFprobePath string

	AssemblyAIKey     string
	AssemblyAIBaseURL string

	Captions captions.Config
}

func (c Config) Validate() error {
	if c.InputMP4 == "" {
		return errors.New("input is empty")
	}
	if _, err := os.Stat(c.InputMP4); err != nil {
		return fmt.Errorf("stat input: %w", err)
	}
	if c.Transcribe {
		if c.AssemblyAIKey == "" {
			return errors.New("ASSEMBLYAI_API_KEY is required to transcribe")
		}
	} else {
		if c.SRTPath == "" {
			return errors.New("srt path is required unless transcribing")
		}
		if _, err := os.Stat(c.SRTPath); err != nil {
			return fmt.Errorf("stat srt: %w", err)
		}
	}
	return c.Captions.Validate()
}

func Run(ctx context.Context, cfg Config) error {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	// adapters
	v := ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath)
	asr := assemblyai.New(cfg.AssemblyAIKey, cfg.AssemblyAIBaseURL)

	uc := usecase.New(usecase.Deps{
		Video:       v,
		Transcriber: asr,
	})

	baseCache := cfg.CacheDir
	if baseCache == "" {
		baseCache = ".cache"
	}
	cacheDir := filepath.Join(baseCache, "runs", hash(cfg.InputMP4))
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return err
	}
	logf("cache: %s", cacheDir)

	outPath := cfg.OutPath
	if outPath == "" {
		outPath = defaultOutPath(cfg.InputMP4)
	}

	res, err := uc.Run(ctx, usecase.Input{
		InputMP4:   cfg.InputMP4,
		SRTPath:    cfg.SRTPath,
		Transcribe: cfg.Transcribe,
		ExtractSRT: cfg.ExtractSRT,
		OutPath:    outPath,
		ASSOnly:    cfg.ASSOnly,
		KeepASS:    cfg.KeepASS,
		CacheDir:   cacheDir,
		Config:     cfg.Captions,
		Catalog:    fonts.Default(),
		Logf:       logf,
	})
	if err != nil {
		return err
	}

	if res.SkippedBlocks > 0 || res.SkippedCues > 0 {
		logf("dropped input: %d malformed blocks, %d invalid cues", res.SkippedBlocks, res.SkippedCues)
	}
	if cfg.ASSOnly {
		logf("done: %d events in %s", res.Events, res.ASSPath)
	} else {
		logf("done: %d events burned into %s", res.Events, res.OutPath)
	}
	return nil
}

// defaultOutPath mirrors the input name with a _captioned suffix.
func defaultOutPath(in string) string {
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + "_captioned" + ext
}

func hash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:12]
}

// ensure adapters implement ports
var _ ports.VideoTool = (*ffmpeg.Adapter)(nil)
var _ ports.Transcriber = (*assemblyai.Adapter)(nil)
