package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"capstyle/internal/domain/captions"
	"capstyle/internal/domain/srt"
	"capstyle/internal/fonts"
	"capstyle/internal/ports"
	"capstyle/internal/types"
)

type Deps struct {
	Video       ports.VideoTool
	Transcriber ports.Transcriber
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	InputMP4   string
	SRTPath    string
	Transcribe bool
	// ExtractSRT, when set, writes the cue list as SRT to this path before
	// compilation (useful for inspecting transcription output).
	ExtractSRT string
	OutPath    string
	ASSOnly    bool
	KeepASS    bool
	CacheDir   string

	Config  captions.Config
	Catalog *fonts.Catalog
	// DefaultResolution skips video probing when both dimensions are set.
	DefaultResolution captions.Resolution
	Curve             captions.Curve

	Logf func(format string, args ...any)
}

type Result struct {
	OutPath       string
	ASSPath       string
	Events        int
	SkippedCues   int
	SkippedBlocks int
}

func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	logf := in.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	catalog := in.Catalog
	if catalog == nil {
		catalog = fonts.Default()
	}

	var cues []srt.Cue
	var skippedBlocks []srt.SkipReport
	if in.Transcribe {
		audio := filepath.Join(in.CacheDir, "audio.aac")
		logf("extracting audio: %s", audio)
		if err := u.d.Video.ExtractAudioAAC(ctx, in.InputMP4, audio); err != nil {
			return Result{}, err
		}
		tr, err := u.d.Transcriber.Transcribe(ctx, audio, in.Config.Diarization.MaxSpeakers)
		if err != nil {
			return Result{}, fmt.Errorf("transcribe: %w", err)
		}
		cues = cuesFromTranscript(tr)
		logf("transcription produced %d cues", len(cues))
	} else {
		data, err := os.ReadFile(in.SRTPath)
		if err != nil {
			return Result{}, fmt.Errorf("read srt: %w", err)
		}
		cues, skippedBlocks = srt.Parse(data)
		for _, s := range skippedBlocks {
			logf("skipping malformed block %d: %s", s.Block, s.Reason)
		}
	}

	if in.ExtractSRT != "" {
		if err := os.WriteFile(in.ExtractSRT, srt.Format(cues), 0o644); err != nil {
			return Result{}, fmt.Errorf("write srt: %w", err)
		}
		logf("srt written: %s", in.ExtractSRT)
	}

	res := in.DefaultResolution
	if res.Width <= 0 || res.Height <= 0 {
		probed, err := u.d.Video.ProbeResolution(ctx, in.InputMP4)
		if err != nil {
			return Result{}, fmt.Errorf("probe resolution: %w", err)
		}
		res = probed
	}

	compiler := captions.NewCompiler(in.Config, catalog)
	compiler.UseCurve(in.Curve)
	events, skips := compiler.Compile(cues)
	for _, s := range skips {
		logf("skipping cue %d: %s", s.Index, s.Reason)
	}

	doc := captions.Assemble(res, in.Config.Style, events)
	assPath := strings.TrimSuffix(in.OutPath, filepath.Ext(in.OutPath)) + ".ass"
	if err := captions.WriteDocument(assPath, doc); err != nil {
		return Result{}, err
	}
	logf("document written (%d events, %d cues skipped): %s", len(events), len(skips), assPath)

	if !in.ASSOnly {
		if err := u.d.Video.BurnSubtitles(ctx, in.InputMP4, assPath, in.OutPath); err != nil {
			return Result{}, err
		}
		logf("captioned video written: %s", in.OutPath)
		if !in.KeepASS {
			if err := os.Remove(assPath); err != nil {
				logf("cleanup %s: %v", assPath, err)
			}
		}
	}

	return Result{
		OutPath:       in.OutPath,
		ASSPath:       assPath,
		Events:        len(events),
		SkippedCues:   len(skips),
		SkippedBlocks: len(skippedBlocks),
	}, nil
}

// cuesFromTranscript emits one cue per transcribed word, labeled with its
// utterance's speaker so text processing and diarization pick it up.
func cuesFromTranscript(tr types.Transcript) []srt.Cue {
	var cues []srt.Cue
	for _, u := range tr.Utterances {
		for _, w := range u.Words {
			text := w.Text
			if u.Speaker != "" {
				text = u.Speaker + ": " + text
			}
			cues = append(cues, srt.Cue{
				Index: len(cues) + 1,
				Start: time.Duration(w.Start) * time.Millisecond,
				End:   time.Duration(w.End) * time.Millisecond,
				Lines: []string{text},
			})
		}
	}
	return cues
}
