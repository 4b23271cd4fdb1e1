package ports

import (
	"context"
	"time"

	"capstyle/internal/domain/captions"
	"capstyle/internal/types"
)

// VideoTool wraps the external media toolchain. Failures surface as errors;
// the caption compiler itself never touches video files.
type VideoTool interface {
	ProbeResolution(ctx context.Context, in string) (captions.Resolution, error)
	ProbeDuration(ctx context.Context, in string) (time.Duration, error)
	ExtractAudioAAC(ctx context.Context, in, outAAC string) error
	BurnSubtitles(ctx context.Context, in, assPath, out string) error
}

// Transcriber produces a diarized transcript for an audio file.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string, maxSpeakers int) (types.Transcript, error)
}
