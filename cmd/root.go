package cmd

import (
	"log/slog"
	"os"

	"github.com/SUNET/captedit/internal/config"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	quiet      bool
	configPath string

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "captedit",
	Short: "Edit, validate and convert caption and transcript files",
	Long: `Captedit works with SRT subtitle files and speaker-attributed transcript
JSON files. It converts between caption formats, checks timing and content
for common problems, and performs search-and-replace across captions.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		if configPath != "" {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		return nil
	},
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
}
