// Package codec converts between the in-memory caption sequence and the
// external text/JSON formats: SRT blocks, WebVTT, plain transcript text,
// and the structured segment JSON.
package codec

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/SUNET/captedit/internal/caption"
)

var blockSeparator = regexp.MustCompile(`\n\s*\n`)

// ParseSRT parses SRT content into a caption sequence. Blocks are split
// on blank-line boundaries; a block needs a numeric index line, a
// timestamp line with a " --> " separator, and at least one text line.
// Malformed blocks are skipped, never fatal. Indices are renumbered
// densely regardless of gaps in the source numbering.
func ParseSRT(raw string) []*caption.Caption {
	var captions []*caption.Caption

	for _, block := range blockSeparator.Split(strings.TrimSpace(raw), -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}

		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 3 {
			continue
		}

		if _, err := strconv.Atoi(strings.TrimSpace(lines[0])); err != nil {
			continue
		}

		timestampLine := lines[1]
		if !strings.Contains(timestampLine, " --> ") {
			continue
		}
		startTime, endTime, _ := strings.Cut(timestampLine, " --> ")

		textLines := make([]string, 0, len(lines)-2)
		for _, line := range lines[2:] {
			textLines = append(textLines, strings.TrimLeft(line, " \t"))
		}

		captions = append(captions, caption.New(
			0,
			strings.TrimSpace(startTime),
			strings.TrimSpace(endTime),
			strings.Join(textLines, "\n"),
			"",
		))
	}

	caption.Renumber(captions)
	return captions
}

// ExportSRT renders the sequence as SRT: "{index}\n{start} --> {end}\n
// {text}\n" per caption, blocks joined by a blank line. Given canonical
// input this is the byte-exact inverse of ParseSRT.
func ExportSRT(captions []*caption.Caption) string {
	blocks := make([]string, 0, len(captions))
	for _, c := range captions {
		blocks = append(blocks, fmt.Sprintf("%d\n%s --> %s\n%s\n", c.Index, c.StartTime, c.EndTime, c.Text))
	}
	return strings.Join(blocks, "\n")
}
