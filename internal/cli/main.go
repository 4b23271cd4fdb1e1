package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "capstyle <input>",
		Short:        "Burn styled, animated captions into a video",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().String("srt", "", "Subtitle file to style (SRT)")
	root.Flags().String("out", "", "Output video path (default: <input>_captioned)")
	root.Flags().String("config", "", "Caption config file (YAML)")
	root.Flags().Bool("transcribe", false, "Transcribe the input instead of reading an SRT")
	root.Flags().String("extract-srt", "", "Also write the cue list as SRT to this path")
	root.Flags().Bool("ass-only", false, "Stop after writing the styled subtitle document")
	root.Flags().Bool("keep-ass", false, "Keep the intermediate subtitle document after burning")
	root.Flags().BoolP("quiet", "q", false, "Suppress progress output")

	// Hidden tuning flags (internal)
	root.Flags().String("cache", "", "Cache directory for run artifacts")
	_ = root.Flags().MarkHidden("cache")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
