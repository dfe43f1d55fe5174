package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SUNET/captedit/internal/caption"
)

// Segment is one entry of the structured transcript wire format.
type Segment struct {
	Speaker string  `json:"speaker"`
	Text    string  `json:"text"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
}

type transcriptInput struct {
	Segments []Segment `json:"segments"`
}

type exportSegment struct {
	Speaker  string  `json:"speaker"`
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Duration float64 `json:"duration"`
}

type transcriptOutput struct {
	Segments          []exportSegment `json:"segments"`
	SpeakerCount      int             `json:"speaker_count"`
	FullTranscription string          `json:"full_transcription"`
}

// ParseTranscript parses a structured transcript JSON object into a
// caption sequence. Consecutive segments sharing a speaker are merged
// into one caption (text joined with a single space, end extended), so
// speaker turns rather than raw ASR segments become the editable unit.
// Segments with empty or whitespace-only text are dropped. The second
// return value lists the distinct speakers in order of first appearance.
func ParseTranscript(raw []byte) ([]*caption.Caption, []string, error) {
	var input transcriptInput
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, nil, fmt.Errorf("parse transcript: %w", err)
	}
	if len(input.Segments) == 0 {
		return nil, nil, nil
	}

	// Run-length merge of consecutive same-speaker segments.
	merged := []Segment{input.Segments[0]}
	for _, seg := range input.Segments[1:] {
		last := &merged[len(merged)-1]
		if seg.Speaker == last.Speaker {
			last.Text += " " + seg.Text
			last.End = seg.End
		} else {
			merged = append(merged, seg)
		}
	}

	var captions []*caption.Caption
	var speakers []string
	seen := make(map[string]bool)

	for _, seg := range merged {
		if strings.TrimSpace(seg.Text) == "" {
			continue
		}
		captions = append(captions, caption.New(
			0,
			caption.FromSeconds(seg.Start),
			caption.FromSeconds(seg.End),
			seg.Text,
			seg.Speaker,
		))
		if !seen[seg.Speaker] {
			seen[seg.Speaker] = true
			speakers = append(speakers, seg.Speaker)
		}
	}

	caption.Renumber(captions)
	return captions, speakers, nil
}

// ExportTranscriptJSON renders the sequence as the structured transcript
// object: per-caption segments with duration, the distinct speaker
// count, and the space-joined full transcription.
func ExportTranscriptJSON(captions []*caption.Caption, speakerCount int) ([]byte, error) {
	out := transcriptOutput{
		Segments:     make([]exportSegment, 0, len(captions)),
		SpeakerCount: speakerCount,
	}

	texts := make([]string, 0, len(captions))
	for _, c := range captions {
		start := c.StartSeconds()
		end := c.EndSeconds()
		out.Segments = append(out.Segments, exportSegment{
			Speaker:  c.Speaker,
			Text:     c.Text,
			Start:    start,
			End:      end,
			Duration: end - start,
		})
		texts = append(texts, c.Text)
	}
	out.FullTranscription = strings.Join(texts, " ")

	return json.MarshalIndent(out, "", "    ")
}
