package codec

import (
	"strings"

	"github.com/SUNET/captedit/internal/caption"
)

// Speaker and timestamp placement values for ExportOptions.
const (
	PlacementInline   = "inline"
	PlacementSeparate = "separate"

	TimestampBeginning = "beginning"
	TimestampEnd       = "end"
	TimestampInline    = "inline"

	TimestampStart = "start"
	TimestampRange = "range"

	FormatPlain = "HH:MM:SS"
	FormatComma = "HH:MM:SS,mmm"
	FormatDot   = "HH:MM:SS.mmm"
)

// ExportOptions configures the transcript-oriented exports (TXT, CSV,
// TSV, RTF). The zero value is not useful; use DefaultExportOptions.
type ExportOptions struct {
	IncludeSpeaker     bool
	SpeakerPlacement   string // PlacementInline or PlacementSeparate
	IncludeTimestamps  bool
	TimestampPlacement string // TimestampBeginning, TimestampEnd or TimestampInline
	TimestampType      string // TimestampStart or TimestampRange
	TimestampFormat    string // FormatPlain, FormatComma or FormatDot
}

// DefaultExportOptions mirrors the defaults of the export dialog:
// inline speaker prefix, leading start-end range, comma-decimal format.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		IncludeSpeaker:     true,
		SpeakerPlacement:   PlacementInline,
		IncludeTimestamps:  true,
		TimestampPlacement: TimestampBeginning,
		TimestampType:      TimestampRange,
		TimestampFormat:    FormatComma,
	}
}

// FormatTimestamp re-renders an HH:MM:SS,mmm timestamp in the requested
// preset. Unrecognized input or presets return the timestamp unchanged.
func FormatTimestamp(timestamp, preset string) string {
	normalized := strings.ReplaceAll(strings.ReplaceAll(timestamp, ",", ":"), ".", ":")
	parts := strings.Split(normalized, ":")

	var hours, minutes, seconds, millis string
	switch len(parts) {
	case 4:
		hours, minutes, seconds, millis = parts[0], parts[1], parts[2], parts[3]
	case 3:
		hours, minutes, seconds, millis = parts[0], parts[1], parts[2], "000"
	default:
		return timestamp
	}

	switch preset {
	case FormatPlain:
		return hours + ":" + minutes + ":" + seconds
	case FormatComma:
		return hours + ":" + minutes + ":" + seconds + "," + millis
	case FormatDot:
		return hours + ":" + minutes + ":" + seconds + "." + millis
	}
	return timestamp
}

// timestampFor renders a caption's timestamp (start only or start-end
// range) according to the options.
func timestampFor(c *caption.Caption, opts ExportOptions) string {
	start := FormatTimestamp(c.StartTime, opts.TimestampFormat)
	if opts.TimestampType == TimestampRange {
		end := FormatTimestamp(c.EndTime, opts.TimestampFormat)
		return start + " - " + end
	}
	return start
}
