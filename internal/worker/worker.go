package worker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/SUNET/captedit/internal/caption"
	"github.com/SUNET/captedit/internal/codec"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Options configures a batch conversion run.
type Options struct {
	Inputs      []string
	OutputDir   string // empty means next to the input file
	Target      string // srt, vtt, txt, json, csv, tsv, rtf
	Concurrency int
	RatePerMin  int // 0 disables rate limiting
	Export      codec.ExportOptions
}

// extensions maps a target format name to its output file extension.
var extensions = map[string]string{
	"srt":  ".srt",
	"vtt":  ".vtt",
	"txt":  ".txt",
	"json": ".json",
	"csv":  ".csv",
	"tsv":  ".tsv",
	"rtf":  ".rtf",
}

// SupportedTarget reports whether name is a convertible output format.
func SupportedTarget(name string) bool {
	_, ok := extensions[strings.ToLower(name)]
	return ok
}

// Run converts every input file to the target format with bounded
// parallelism and optional rate limiting. A file that fails to convert
// is logged and skipped; Run returns an error only when nothing
// succeeded.
func Run(ctx context.Context, opts Options) error {
	if len(opts.Inputs) == 0 {
		return fmt.Errorf("no input files")
	}
	if !SupportedTarget(opts.Target) {
		return fmt.Errorf("unsupported target format %q", opts.Target)
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}

	var limiter *rate.Limiter
	if opts.RatePerMin > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(opts.RatePerMin)/60.0), 1)
	}

	slog.Info("starting batch conversion",
		"files", len(opts.Inputs),
		"target", opts.Target,
		"max_concurrent", opts.Concurrency)

	var (
		mu        sync.Mutex
		succeeded int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for _, input := range opts.Inputs {
		input := input
		g.Go(func() error {
			if limiter != nil {
				if err := limiter.Wait(gctx); err != nil {
					return fmt.Errorf("rate limiter: %w", err)
				}
			}

			out, err := ConvertFile(input, opts)
			if err != nil {
				slog.Warn("skipping file", "input", filepath.Base(input), "err", err)
				return nil
			}

			mu.Lock()
			succeeded++
			mu.Unlock()

			slog.Info("converted", "input", filepath.Base(input), "output", out)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if succeeded == 0 {
		return fmt.Errorf("all %d files failed to convert", len(opts.Inputs))
	}
	return nil
}

// ConvertFile converts a single file and returns the output path.
func ConvertFile(input string, opts Options) (string, error) {
	raw, err := os.ReadFile(input)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	captions, speakers, err := parseInput(input, raw)
	if err != nil {
		return "", err
	}
	if len(captions) == 0 {
		return "", fmt.Errorf("no captions found in %s", filepath.Base(input))
	}

	rendered, err := Render(captions, len(speakers), opts.Target, opts.Export)
	if err != nil {
		return "", err
	}

	out := outputPath(input, opts)
	if err := os.WriteFile(out, rendered, 0644); err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}
	return out, nil
}

// Render serializes captions into the named target format.
func Render(captions []*caption.Caption, speakerCount int, target string, export codec.ExportOptions) ([]byte, error) {
	switch strings.ToLower(target) {
	case "srt":
		return []byte(codec.ExportSRT(captions)), nil
	case "vtt":
		return []byte(codec.ExportVTT(captions)), nil
	case "txt":
		return []byte(codec.ExportTextWith(captions, export)), nil
	case "json":
		return codec.ExportTranscriptJSON(captions, speakerCount)
	case "csv":
		return []byte(codec.ExportCSVWith(captions, export)), nil
	case "tsv":
		return []byte(codec.ExportTSVWith(captions, export)), nil
	case "rtf":
		return []byte(codec.ExportRTFWith(captions, export)), nil
	default:
		return nil, fmt.Errorf("unsupported target format %q", target)
	}
}

func parseInput(path string, raw []byte) ([]*caption.Caption, []string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		return codec.ParseSRT(string(raw)), nil, nil
	case ".json":
		captions, speakers, err := codec.ParseTranscript(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("parse transcript: %w", err)
		}
		return captions, speakers, nil
	default:
		return nil, nil, fmt.Errorf("unsupported input format %q", filepath.Ext(path))
	}
}

func outputPath(input string, opts Options) string {
	ext := extensions[strings.ToLower(opts.Target)]
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + ext
	dir := opts.OutputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, base)
}
