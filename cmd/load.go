package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SUNET/captedit/internal/caption"
	"github.com/SUNET/captedit/internal/codec"
)

// loadCaptions reads an SRT or transcript JSON file.
func loadCaptions(path string) ([]*caption.Caption, []string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}

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
