package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/SUNET/captedit/internal/codec"
	"github.com/SUNET/captedit/internal/editor"

	"github.com/spf13/cobra"
)

var replaceCmd = &cobra.Command{
	Use:   "replace <input-file> <search> <replacement>",
	Short: "Search and replace across caption text",
	Long: `Replace rewrites every occurrence of a search term in the caption text.
Matching is case-insensitive unless --case-sensitive is set; the search
term is always treated literally, never as a pattern.`,
	Args: cobra.ExactArgs(3),
	RunE: runReplace,
}

var (
	replaceOutput        string
	replaceCaseSensitive bool
	replaceDryRun        bool
)

func init() {
	replaceCmd.Flags().StringVarP(&replaceOutput, "output", "o", "", "output path (default: rewrite the input file)")
	replaceCmd.Flags().BoolVar(&replaceCaseSensitive, "case-sensitive", false, "match case exactly")
	replaceCmd.Flags().BoolVarP(&replaceDryRun, "dry-run", "n", false, "report the match count without writing")

	rootCmd.AddCommand(replaceCmd)
}

func runReplace(cmd *cobra.Command, args []string) error {
	input, term, replacement := args[0], args[1], args[2]

	raw, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var doc *editor.Document
	switch strings.ToLower(filepath.Ext(input)) {
	case ".srt":
		doc = editor.LoadSRT(string(raw), cfg.EditorSettings)
	case ".json":
		doc, err = editor.LoadTranscript(raw, cfg.EditorSettings)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported input format %q", filepath.Ext(input))
	}
	if doc.Len() == 0 {
		return fmt.Errorf("no captions found in %s", input)
	}

	doc.SetCaseSensitive(replaceCaseSensitive)

	if replaceDryRun {
		matches := doc.Search(term)
		slog.Info("dry run", "term", term, "captions_matched", len(matches))
		return nil
	}

	doc.Search(term)
	count, err := doc.ReplaceAll(replacement)
	if err != nil {
		return err
	}
	if count == 0 {
		slog.Info("no occurrences found", "term", term)
		return nil
	}

	out := replaceOutput
	if out == "" {
		out = input
	}

	var rendered []byte
	if doc.Format() == editor.FormatTranscript {
		rendered, err = codec.ExportTranscriptJSON(doc.Captions(), len(doc.Speakers()))
		if err != nil {
			return err
		}
	} else {
		rendered = []byte(codec.ExportSRT(doc.Captions()))
	}

	if err := os.WriteFile(out, rendered, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	slog.Info("replaced", "term", term, "captions_changed", count, "output", out)
	return nil
}
