package cmd

import (
	"fmt"
	"log/slog"

	"github.com/SUNET/captedit/internal/validate"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <input-file>",
	Short: "Check a caption file for timing and content problems",
	Long: `Validate checks captions for empty text, duplicated timing, end times
before start times, overlapping neighbours and shared start times.
Each finding is printed on its own line. Findings are a report, not a
failure; the exit status is non-zero only when the file cannot be read.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	captions, _, err := loadCaptions(args[0])
	if err != nil {
		return err
	}
	if len(captions) == 0 {
		return fmt.Errorf("no captions found in %s", args[0])
	}

	findings := validate.Run(captions)
	if len(findings) == 0 {
		if !quiet {
			slog.Info("no problems found", "captions", len(captions))
		}
		return nil
	}

	for _, finding := range findings {
		fmt.Fprintln(cmd.OutOrStdout(), finding)
	}
	slog.Info("validation finished", "captions", len(captions), "problems", len(findings))
	return nil
}
