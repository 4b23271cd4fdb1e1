package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"capstyle/internal/config"
	"capstyle/internal/pipeline"
)

func run(cmd *cobra.Command, input string) error {
	srtPath, _ := cmd.Flags().GetString("srt")
	outPath, _ := cmd.Flags().GetString("out")
	configPath, _ := cmd.Flags().GetString("config")
	transcribe, _ := cmd.Flags().GetBool("transcribe")
	extractSRT, _ := cmd.Flags().GetString("extract-srt")
	assOnly, _ := cmd.Flags().GetBool("ass-only")
	keepASS, _ := cmd.Flags().GetBool("keep-ass")
	quiet, _ := cmd.Flags().GetBool("quiet")
	cacheDir, _ := cmd.Flags().GetString("cache")

	captionCfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	logf := func(format string, args ...any) {
		fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
	}
	if quiet {
		logf = nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Hour)
	defer cancel()

	cfg := pipeline.Config{
		InputMP4:   absIn,
		SRTPath:    srtPath,
		Transcribe: transcribe,
		ExtractSRT: extractSRT,
		OutPath:    outPath,
		ASSOnly:    assOnly,
		KeepASS:    keepASS,
		Logf:       logf,
		CacheDir:   cacheDir,

		FFmpegPath:  "ffmpeg",
		FFprobePath: "ffprobe",

		AssemblyAIKey:     os.Getenv("ASSEMBLYAI_API_KEY"),
		AssemblyAIBaseURL: os.Getenv("ASSEMBLYAI_BASE_URL"),

		Captions: captionCfg,
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return pipeline.Run(ctx, cfg)
}
