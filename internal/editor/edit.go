package editor

import (
	"strings"

	"github.com/SUNET/captedit/internal/caption"
)

// Split divides the caption at the given 1-based index into two. Text
// with multiple embedded lines splits at the middle line boundary; a
// single line splits at the nearest whitespace left of the character
// midpoint, falling back to the exact midpoint when there is none. The
// time span splits at the arithmetic mean of start and end.
func (d *Document) Split(index int) error {
	pos, err := d.at(index)
	if err != nil {
		return err
	}
	d.saveState()

	c := d.captions[pos]
	firstPart, secondPart := splitText(c.Text)

	midSeconds := (c.StartSeconds() + c.EndSeconds()) / 2
	endTime := c.EndTime

	c.Text = firstPart
	c.EndTime = caption.FromSeconds(midSeconds)

	successor := caption.New(c.Index+1, caption.FromSeconds(midSeconds), endTime, secondPart, c.Speaker)

	d.captions = append(d.captions, nil)
	copy(d.captions[pos+2:], d.captions[pos+1:])
	d.captions[pos+1] = successor

	caption.Renumber(d.captions)
	d.notifyChange()
	return nil
}

// splitText applies the deterministic midpoint rule.
func splitText(text string) (string, string) {
	lines := strings.Split(text, "\n")
	if len(lines) > 1 {
		mid := len(lines) / 2
		return strings.Join(lines[:mid], "\n"), strings.Join(lines[mid:], "\n")
	}

	runes := []rune(text)
	mid := len(runes) / 2
	for mid > 0 && runes[mid] != ' ' {
		mid--
	}
	if mid == 0 {
		mid = len(runes) / 2
	}
	return strings.TrimSpace(string(runes[:mid])), strings.TrimSpace(string(runes[mid:]))
}

// MergeWithNext absorbs the following caption: text joined with a
// newline, end time adopted from the neighbor. Declined with
// ErrNoNextCaption at the end of the list.
func (d *Document) MergeWithNext(index int) error {
	pos, err := d.at(index)
	if err != nil {
		return err
	}
	if pos == len(d.captions)-1 {
		return ErrNoNextCaption
	}
	d.saveState()

	c := d.captions[pos]
	next := d.captions[pos+1]
	c.Text += "\n" + next.Text
	c.EndTime = next.EndTime

	d.removeAt(pos + 1)
	caption.Renumber(d.captions)
	d.notifyChange()
	return nil
}

// MergeWithPrevious extends the preceding caption with this one's text
// and end time, then removes this caption. Declined with
// ErrNoPreviousCaption at the start of the list.
func (d *Document) MergeWithPrevious(index int) error {
	pos, err := d.at(index)
	if err != nil {
		return err
	}
	if pos == 0 {
		return ErrNoPreviousCaption
	}
	d.saveState()

	c := d.captions[pos]
	prev := d.captions[pos-1]
	prev.Text += "\n" + c.Text
	prev.EndTime = c.EndTime

	d.removeAt(pos)
	caption.Renumber(d.captions)
	d.notifyChange()
	return nil
}

// InsertAfter creates a caption following the given one. Its start is
// the reference's end; its end is the next caption's start when one
// exists, otherwise start plus the configured default span.
func (d *Document) InsertAfter(index int) error {
	pos, err := d.at(index)
	if err != nil {
		return err
	}
	d.saveState()

	c := d.captions[pos]
	startSeconds := c.EndSeconds()

	var endSeconds float64
	if pos < len(d.captions)-1 {
		endSeconds = d.captions[pos+1].StartSeconds()
	} else {
		endSeconds = startSeconds + d.settings.DefaultCaptionSpan
	}

	inserted := caption.New(
		c.Index+1,
		caption.FromSeconds(startSeconds),
		caption.FromSeconds(endSeconds),
		d.settings.PlaceholderText,
		"",
	)

	d.captions = append(d.captions, nil)
	copy(d.captions[pos+2:], d.captions[pos+1:])
	d.captions[pos+1] = inserted

	caption.Renumber(d.captions)
	d.notifyChange()
	return nil
}

// Delete removes the caption at the given 1-based index. Removing the
// only remaining caption is declined with ErrLastCaption: a successful
// delete never leaves the list empty.
func (d *Document) Delete(index int) error {
	pos, err := d.at(index)
	if err != nil {
		return err
	}
	if len(d.captions) == 1 {
		return ErrLastCaption
	}
	d.saveState()

	d.removeAt(pos)
	caption.Renumber(d.captions)
	d.notifyChange()
	return nil
}

// removeAt drops the caption at slice position pos and repairs the
// selection index.
func (d *Document) removeAt(pos int) {
	if d.selected == pos {
		d.selected = -1
	} else if d.selected > pos {
		d.selected--
	}
	d.captions = append(d.captions[:pos], d.captions[pos+1:]...)
}

// UpdateText replaces the caption's text. A pure text edit never
// renumbers and never triggers validation.
func (d *Document) UpdateText(index int, text string) error {
	pos, err := d.at(index)
	if err != nil {
		return err
	}
	d.saveState()
	d.captions[pos].Text = text
	d.notifyChange()
	return nil
}

// UpdateTiming replaces the caption's start and end timestamps. It does
// not re-validate; validation is a separate, explicit step.
func (d *Document) UpdateTiming(index int, startTime, endTime string) error {
	pos, err := d.at(index)
	if err != nil {
		return err
	}
	d.saveState()
	d.captions[pos].StartTime = startTime
	d.captions[pos].EndTime = endTime
	d.notifyChange()
	return nil
}

// UpdateSpeaker reassigns the caption's speaker and records it in the
// document's speaker set.
func (d *Document) UpdateSpeaker(index int, speaker string) error {
	pos, err := d.at(index)
	if err != nil {
		return err
	}
	d.saveState()
	if speaker == "" {
		speaker = caption.UnknownSpeaker
	}
	d.captions[pos].Speaker = speaker
	d.addSpeaker(speaker)
	return nil
}
