package caption

import (
	"strings"
	"unicode/utf8"
)

// UnknownSpeaker is the label assigned when a caption has no speaker.
const UnknownSpeaker = "UNKNOWN"

// Caption is one timed, speaker-attributed unit of text. Index is the
// 1-based position in the owning sequence and is recomputed after every
// structural change. StartTime and EndTime use the HH:MM:SS,mmm wire
// format. The three boolean flags are transient UI/validation state and
// are never serialized.
type Caption struct {
	Index     int
	StartTime string
	EndTime   string
	Text      string
	Speaker   string

	IsSelected    bool
	IsHighlighted bool
	IsValid       bool
}

// New creates a caption. An empty speaker becomes UnknownSpeaker.
func New(index int, startTime, endTime, text, speaker string) *Caption {
	if speaker == "" {
		speaker = UnknownSpeaker
	}
	return &Caption{
		Index:     index,
		StartTime: startTime,
		EndTime:   endTime,
		Text:      text,
		Speaker:   speaker,
		IsValid:   true,
	}
}

// Clone returns an independent copy, flags included.
func (c *Caption) Clone() *Caption {
	dup := *c
	return &dup
}

// Renumber assigns dense 1-based indices in list order. It is invoked
// after every structural change to the sequence.
func Renumber(captions []*Caption) {
	for i, c := range captions {
		c.Index = i + 1
	}
}

// CloneAll deep-copies a caption sequence for snapshotting.
func CloneAll(captions []*Caption) []*Caption {
	out := make([]*Caption, len(captions))
	for i, c := range captions {
		out[i] = c.Clone()
	}
	return out
}

// StartSeconds converts the start timestamp to seconds. A malformed
// timestamp yields 0.
func (c *Caption) StartSeconds() float64 {
	sec, _ := ToSeconds(c.StartTime)
	return sec
}

// EndSeconds converts the end timestamp to seconds.
func (c *Caption) EndSeconds() float64 {
	sec, _ := ToSeconds(c.EndTime)
	return sec
}

// Duration returns the caption's span in seconds.
func (c *Caption) Duration() float64 {
	return c.EndSeconds() - c.StartSeconds()
}

// MatchesSearch reports whether the text contains term as a literal
// substring. An empty term never matches.
func (c *Caption) MatchesSearch(term string, caseSensitive bool) bool {
	if term == "" {
		return false
	}
	if caseSensitive {
		return strings.Contains(c.Text, term)
	}
	return strings.Contains(strings.ToLower(c.Text), strings.ToLower(term))
}

// LineLengths returns the visible character count of each embedded line,
// used for the characters-per-line guideline display.
func (c *Caption) LineLengths() []int {
	lines := strings.Split(c.Text, "\n")
	lengths := make([]int, len(lines))
	for i, line := range lines {
		lengths[i] = utf8.RuneCountInString(line)
	}
	return lengths
}

// ExceedsLineLimit reports whether any embedded line is longer than
// limit characters. The limit is a guideline, not an enforced cap.
func (c *Caption) ExceedsLineLimit(limit int) bool {
	for _, n := range c.LineLengths() {
		if n > limit {
			return true
		}
	}
	return false
}

// WordCount returns the number of whitespace-separated words.
func (c *Caption) WordCount() int {
	return len(strings.Fields(c.Text))
}
