// Package validate checks a caption sequence for temporal and textual
// consistency. It produces human-readable diagnostics and flips the
// IsValid flag on implicated captions; it never removes or reorders
// data, and it never fixes anything.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SUNET/captedit/internal/caption"
)

type timingKey struct {
	start string
	end   string
}

// Run inspects the sequence and returns all diagnostics found. Every
// check runs; the result is the union, not a short-circuit. Captions
// with timing problems are marked invalid; empty text is reported but
// does not flag the caption. When no issue is found, every IsValid flag
// is reset to true — the only place validity is cleared back to valid.
//
// Overlap is checked between adjacent pairs only, so out-of-order
// timestamp data can under-report overlaps. Upgrading to an all-pairs
// comparison would change the diagnostic output.
func Run(captions []*caption.Caption) []string {
	var diagnostics []string

	seenTimings := make(map[timingKey]bool)
	startIndices := make(map[string][]int)
	var startOrder []string

	for _, c := range captions {
		if strings.TrimSpace(c.Text) == "" {
			diagnostics = append(diagnostics, fmt.Sprintf("Caption #%d has no text.", c.Index))
		}

		key := timingKey{c.StartTime, c.EndTime}
		if seenTimings[key] {
			diagnostics = append(diagnostics, fmt.Sprintf("Caption #%d overlaps with another caption.", c.Index))
		}
		seenTimings[key] = true

		if _, ok := startIndices[c.StartTime]; !ok {
			startOrder = append(startOrder, c.StartTime)
		}
		startIndices[c.StartTime] = append(startIndices[c.StartTime], c.Index)

		if c.EndSeconds() < c.StartSeconds() {
			c.IsValid = false
			diagnostics = append(diagnostics, fmt.Sprintf("Caption #%d has end time before start time.", c.Index))
		}
	}

	for i := 0; i+1 < len(captions); i++ {
		current := captions[i]
		next := captions[i+1]
		if current.EndSeconds() > next.StartSeconds() {
			current.IsValid = false
			diagnostics = append(diagnostics,
				fmt.Sprintf("Caption #%d overlaps with caption #%d.", current.Index, next.Index))
		}
	}

	for _, start := range startOrder {
		indices := startIndices[start]
		if len(indices) < 2 {
			continue
		}

		names := make([]string, len(indices))
		for i, idx := range indices {
			names[i] = strconv.Itoa(idx)
		}
		diagnostics = append(diagnostics,
			fmt.Sprintf("Multiple captions start at the same time: %s.", strings.Join(names, ", ")))

		implicated := make(map[int]bool, len(indices))
		for _, idx := range indices {
			implicated[idx] = true
		}
		for _, c := range captions {
			if implicated[c.Index] {
				c.IsValid = false
			}
		}
	}

	if len(diagnostics) == 0 {
		for _, c := range captions {
			c.IsValid = true
		}
	}

	return diagnostics
}
