package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/SUNET/captedit/internal/clipboard"
	"github.com/SUNET/captedit/internal/codec"
	"github.com/SUNET/captedit/internal/worker"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input-file>...",
	Short: "Convert caption files between formats",
	Long: `Convert SRT or transcript JSON files into another caption format.
Supported targets: srt, vtt, txt, json, csv, tsv, rtf.

Multiple input files are converted concurrently; a file that fails to
parse is skipped with a warning.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

var (
	convertTo     string
	convertOutDir string
	convertJobs   int
	convertRate   int
	copyToClip    bool

	noSpeaker          bool
	speakerPlacement   string
	noTimestamps       bool
	timestampPlacement string
	timestampType      string
	timestampFormat    string
)

func init() {
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "srt", "target format: srt, vtt, txt, json, csv, tsv, rtf")
	convertCmd.Flags().StringVarP(&convertOutDir, "output-dir", "o", "", "output directory (default: next to each input)")
	convertCmd.Flags().IntVarP(&convertJobs, "max-concurrent", "j", 0, "max concurrent conversions (default from config)")
	convertCmd.Flags().IntVar(&convertRate, "rate-limit", 0, "files per minute, 0 disables")
	convertCmd.Flags().BoolVar(&copyToClip, "copy", false, "copy the result to the clipboard instead of writing a file (single input only)")

	convertCmd.Flags().BoolVar(&noSpeaker, "no-speaker", false, "omit speaker names")
	convertCmd.Flags().StringVar(&speakerPlacement, "speaker-placement", codec.PlacementInline, "speaker placement: inline or separate")
	convertCmd.Flags().BoolVar(&noTimestamps, "no-timestamps", false, "omit timestamps")
	convertCmd.Flags().StringVar(&timestampPlacement, "timestamp-placement", codec.TimestampBeginning, "timestamp placement: beginning, end or inline")
	convertCmd.Flags().StringVar(&timestampType, "timestamp-type", codec.TimestampRange, "timestamp type: start or range")
	convertCmd.Flags().StringVar(&timestampFormat, "timestamp-format", codec.FormatComma, "timestamp format: HH:MM:SS, HH:MM:SS,mmm or HH:MM:SS.mmm")

	rootCmd.AddCommand(convertCmd)
}

func exportOptions() codec.ExportOptions {
	opts := codec.DefaultExportOptions()
	opts.IncludeSpeaker = !noSpeaker
	opts.SpeakerPlacement = speakerPlacement
	opts.IncludeTimestamps = !noTimestamps
	opts.TimestampPlacement = timestampPlacement
	opts.TimestampType = timestampType
	opts.TimestampFormat = timestampFormat
	return opts
}

func runConvert(cmd *cobra.Command, args []string) error {
	target := strings.ToLower(convertTo)
	if !worker.SupportedTarget(target) {
		return fmt.Errorf("unsupported target format %q", convertTo)
	}

	inputs := make([]string, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return fmt.Errorf("resolve path: %w", err)
		}
		if _, err := os.Stat(abs); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", arg)
		}
		inputs = append(inputs, abs)
	}

	jobs := convertJobs
	if jobs <= 0 {
		jobs = cfg.MaxConcurrentFiles
	}
	rateLimit := convertRate
	if rateLimit <= 0 {
		rateLimit = cfg.FilesPerMinute
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if copyToClip {
		if len(inputs) != 1 {
			return fmt.Errorf("--copy requires exactly one input file")
		}
		return convertToClipboard(inputs[0], target)
	}

	opts := worker.Options{
		Inputs:      inputs,
		OutputDir:   convertOutDir,
		Target:      target,
		Concurrency: jobs,
		RatePerMin:  rateLimit,
		Export:      exportOptions(),
	}

	if err := worker.Run(ctx, opts); err != nil {
		return err
	}

	if !quiet {
		slog.Info("done")
	}
	return nil
}

func convertToClipboard(input, target string) error {
	captions, speakers, err := loadCaptions(input)
	if err != nil {
		return err
	}

	rendered, err := worker.Render(captions, len(speakers), target, exportOptions())
	if err != nil {
		return err
	}
	if err := clipboard.Copy(string(rendered)); err != nil {
		return err
	}

	slog.Info("copied to clipboard", "format", target, "captions", len(captions))
	return nil
}
