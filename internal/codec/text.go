package codec

import (
	"fmt"
	"strings"

	"github.com/SUNET/captedit/internal/caption"
)

// ExportText renders the plain transcript text: "{speaker}: {start} -
// {end}\n{text}" entries separated by a blank line.
func ExportText(captions []*caption.Caption) string {
	entries := make([]string, 0, len(captions))
	for _, c := range captions {
		entries = append(entries, fmt.Sprintf("%s: %s - %s\n%s", c.Speaker, c.StartTime, c.EndTime, c.Text))
	}
	return strings.TrimSpace(strings.Join(entries, "\n\n"))
}

// ExportTextWith renders a text transcript honoring the export options
// for speaker prefix and timestamp placement.
func ExportTextWith(captions []*caption.Caption, opts ExportOptions) string {
	var lines []string
	for _, c := range captions {
		var header []string
		if opts.IncludeSpeaker {
			header = append(header, c.Speaker+":")
		}
		if opts.IncludeTimestamps && opts.TimestampPlacement == TimestampBeginning {
			header = append(header, timestampFor(c, opts))
		}
		if len(header) > 0 {
			lines = append(lines, strings.Join(header, " "))
		}

		if opts.IncludeTimestamps && opts.TimestampPlacement == TimestampInline {
			lines = append(lines, timestampFor(c, opts)+" "+c.Text)
		} else {
			lines = append(lines, c.Text)
		}

		if opts.IncludeTimestamps && opts.TimestampPlacement == TimestampEnd {
			lines = append(lines, timestampFor(c, opts))
		}

		lines = append(lines, "")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ExportCSV renders quoted CSV rows: start, end, speaker, text. Embedded
// quotes are doubled; embedded newlines stay inside the quoted field.
func ExportCSV(captions []*caption.Caption) string {
	var sb strings.Builder
	for _, c := range captions {
		sb.WriteString(strings.Join([]string{
			quoteCSV(c.StartTime),
			quoteCSV(c.EndTime),
			quoteCSV(c.Speaker),
			quoteCSV(c.Text),
		}, ","))
		sb.WriteByte('\n')
	}
	return strings.TrimSpace(sb.String())
}

// ExportCSVWith renders CSV honoring the export options; separate
// placement adds timestamp and speaker columns, inline placement folds
// them into the text field.
func ExportCSVWith(captions []*caption.Caption, opts ExportOptions) string {
	var rows []string
	for _, c := range captions {
		var row []string
		if opts.IncludeTimestamps && opts.SpeakerPlacement == PlacementSeparate {
			row = append(row, quoteCSV(FormatTimestamp(c.StartTime, opts.TimestampFormat)))
			if opts.TimestampType == TimestampRange {
				row = append(row, quoteCSV(FormatTimestamp(c.EndTime, opts.TimestampFormat)))
			}
		}
		if opts.IncludeSpeaker && opts.SpeakerPlacement == PlacementSeparate {
			row = append(row, quoteCSV(c.Speaker))
		}
		row = append(row, quoteCSV(inlineText(c, opts)))
		rows = append(rows, strings.Join(row, ","))
	}
	return strings.Join(rows, "\n")
}

// ExportTSV renders tab-separated rows: start, end, speaker, text. Tabs
// in the text become spaces and newlines collapse to a single space.
func ExportTSV(captions []*caption.Caption) string {
	var sb strings.Builder
	for _, c := range captions {
		fmt.Fprintf(&sb, "%s\t%s\t%s\t%s\n", c.StartTime, c.EndTime, c.Speaker, sanitizeTSV(c.Text))
	}
	return strings.TrimSpace(sb.String())
}

// ExportTSVWith renders TSV honoring the export options.
func ExportTSVWith(captions []*caption.Caption, opts ExportOptions) string {
	var rows []string
	for _, c := range captions {
		var row []string
		if opts.IncludeTimestamps && opts.SpeakerPlacement == PlacementSeparate {
			row = append(row, FormatTimestamp(c.StartTime, opts.TimestampFormat))
			if opts.TimestampType == TimestampRange {
				row = append(row, FormatTimestamp(c.EndTime, opts.TimestampFormat))
			}
		}
		if opts.IncludeSpeaker && opts.SpeakerPlacement == PlacementSeparate {
			row = append(row, c.Speaker)
		}

		text := sanitizeTSV(c.Text)
		if opts.IncludeSpeaker && opts.SpeakerPlacement == PlacementInline {
			text = c.Speaker + ": " + text
		}
		if opts.IncludeTimestamps && opts.TimestampPlacement == TimestampInline {
			text = timestampFor(c, opts) + " " + text
		}
		row = append(row, text)
		rows = append(rows, strings.Join(row, "\t"))
	}
	return strings.Join(rows, "\n")
}

func quoteCSV(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func sanitizeTSV(text string) string {
	return strings.ReplaceAll(strings.ReplaceAll(text, "\t", "    "), "\n", " ")
}

// inlineText builds the text field with inline speaker and timestamp
// elements applied per the options.
func inlineText(c *caption.Caption, opts ExportOptions) string {
	text := c.Text
	if opts.IncludeSpeaker && opts.SpeakerPlacement == PlacementInline {
		text = c.Speaker + ": " + text
	}
	if opts.IncludeTimestamps && opts.TimestampPlacement == TimestampInline {
		text = timestampFor(c, opts) + " " + text
	}
	return text
}
