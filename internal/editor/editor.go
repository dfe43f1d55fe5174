// Package editor implements the stateful caption document: an ordered
// sequence of captions owned by one Document, with structural edits,
// search/replace, selection, and snapshot-based undo/redo. The package
// performs no I/O; callers feed it raw content through the codec layer
// and serialize the result back out on demand.
package editor

import (
	"github.com/SUNET/captedit/internal/caption"
	"github.com/SUNET/captedit/internal/codec"
	"github.com/SUNET/captedit/internal/config"
	"github.com/SUNET/captedit/internal/history"
	"github.com/google/uuid"
)

// Format identifies the source representation of a document.
type Format string

const (
	// FormatSRT marks a document loaded from subtitle-block text.
	FormatSRT Format = "SRT"
	// FormatTranscript marks a document loaded from structured
	// transcript JSON.
	FormatTranscript Format = "TXT"
)

// Document is one open caption document. It exclusively owns its
// caption sequence; captions carry no back-reference and no identity
// beyond list membership and index.
type Document struct {
	id       string
	format   Format
	settings config.EditorSettings

	captions []*caption.Caption
	hist     *history.Manager[[]*caption.Caption]

	selected int // slice index, -1 when nothing is selected

	speakers     map[string]bool
	speakerOrder []string

	// Search state: reset whenever the term changes, recomputed in full
	// on every search.
	searchTerm    string
	caseSensitive bool
	matches       []int // slice indices of matching captions
	matchCursor   int

	// onChange, when set, runs after any mutation that affects derived
	// state such as the speaking-rate display.
	onChange func()
}

func newDocument(format Format, settings config.EditorSettings) *Document {
	return &Document{
		id:       uuid.NewString(),
		format:   format,
		settings: settings,
		hist:     history.New(settings.MaxHistory, caption.CloneAll),
		selected: -1,
		speakers: make(map[string]bool),
	}
}

// LoadSRT parses subtitle-block text into a new document. Malformed
// blocks are skipped; an empty result is a valid transient state.
func LoadSRT(raw string, settings config.EditorSettings) *Document {
	d := newDocument(FormatSRT, settings)
	d.captions = codec.ParseSRT(raw)
	return d
}

// LoadTranscript parses structured transcript JSON into a new document.
func LoadTranscript(raw []byte, settings config.EditorSettings) (*Document, error) {
	d := newDocument(FormatTranscript, settings)

	captions, speakers, err := codec.ParseTranscript(raw)
	if err != nil {
		return nil, err
	}
	d.captions = captions
	for _, s := range speakers {
		d.addSpeaker(s)
	}
	return d, nil
}

// ID returns the document's identifier.
func (d *Document) ID() string { return d.id }

// Format returns the source representation of the document.
func (d *Document) Format() Format { return d.format }

// Len returns the number of captions.
func (d *Document) Len() int { return len(d.captions) }

// Captions exposes the live sequence for reading and serialization.
// Mutations go through the Document's methods.
func (d *Document) Captions() []*caption.Caption { return d.captions }

// Speakers returns the distinct speakers in order of first appearance.
func (d *Document) Speakers() []string {
	out := make([]string, len(d.speakerOrder))
	copy(out, d.speakerOrder)
	return out
}

// SetOnChange registers a hook invoked after every mutation that changes
// duration or word count, so derived displays can recompute.
func (d *Document) SetOnChange(fn func()) { d.onChange = fn }

func (d *Document) notifyChange() {
	if d.onChange != nil {
		d.onChange()
	}
}

func (d *Document) addSpeaker(speaker string) {
	if speaker == "" || d.speakers[speaker] {
		return
	}
	d.speakers[speaker] = true
	d.speakerOrder = append(d.speakerOrder, speaker)
}

// at resolves a 1-based caption index to a slice position.
func (d *Document) at(index int) (int, error) {
	pos := index - 1
	if pos < 0 || pos >= len(d.captions) {
		return 0, ErrNoSuchCaption
	}
	return pos, nil
}

// Select toggles selection of the caption at the given 1-based index:
// selecting the already-selected caption deselects it.
func (d *Document) Select(index int) error {
	pos, err := d.at(index)
	if err != nil {
		return err
	}

	if d.selected == pos {
		d.captions[pos].IsSelected = false
		d.selected = -1
		return nil
	}

	if d.selected >= 0 {
		d.captions[d.selected].IsSelected = false
	}
	d.captions[pos].IsSelected = true
	d.selected = pos
	return nil
}

// Deselect clears the selection.
func (d *Document) Deselect() {
	if d.selected >= 0 && d.selected < len(d.captions) {
		d.captions[d.selected].IsSelected = false
	}
	d.selected = -1
}

// Selected returns the currently selected caption, or nil.
func (d *Document) Selected() *caption.Caption {
	if d.selected < 0 || d.selected >= len(d.captions) {
		return nil
	}
	return d.captions[d.selected]
}

// SelectNext moves the selection forward; with no selection it selects
// the first caption. At the end of the list it stays put.
func (d *Document) SelectNext() {
	if len(d.captions) == 0 {
		return
	}
	if d.selected < 0 {
		d.Select(1)
		return
	}
	if d.selected+1 >= len(d.captions) {
		return
	}
	d.Select(d.selected + 2)
}

// SelectPrevious moves the selection backward; with no selection it does
// nothing, and at the start of the list it stays on the first caption.
func (d *Document) SelectPrevious() {
	if len(d.captions) == 0 || d.selected < 0 {
		return
	}
	if d.selected > 0 {
		d.Select(d.selected) // 1-based index of the previous caption
	}
}

// CaptionAt returns the first caption whose time span brackets the given
// playback position, or nil.
func (d *Document) CaptionAt(seconds float64) *caption.Caption {
	for _, c := range d.captions {
		if c.StartSeconds() <= seconds && seconds <= c.EndSeconds() {
			return c
		}
	}
	return nil
}

// SelectAtTime selects the caption under the playhead. It reports
// whether the selection changed.
func (d *Document) SelectAtTime(seconds float64) bool {
	c := d.CaptionAt(seconds)
	if c == nil {
		return false
	}
	if sel := d.Selected(); sel == c {
		return false
	}
	return d.Select(c.Index) == nil
}

// WordsPerMinute returns the average speaking rate over all captions.
func (d *Document) WordsPerMinute() float64 {
	totalWords := 0
	totalSeconds := 0.0
	for _, c := range d.captions {
		totalWords += c.WordCount()
		totalSeconds += c.Duration()
	}
	if totalSeconds == 0 {
		return 0
	}
	return float64(totalWords) / totalSeconds * 60.0
}

// saveState pushes the pre-mutation sequence onto the undo history.
func (d *Document) saveState() {
	d.hist.SaveState(d.captions)
}

// Undo restores the most recent snapshot. The current sequence becomes
// redoable. Selection is cleared because caption identity is structural.
func (d *Document) Undo() error {
	state, ok := d.hist.Undo(d.captions)
	if !ok {
		return ErrNothingToUndo
	}
	d.restore(state)
	return nil
}

// Redo restores the most recently undone snapshot.
func (d *Document) Redo() error {
	state, ok := d.hist.Redo(d.captions)
	if !ok {
		return ErrNothingToRedo
	}
	d.restore(state)
	return nil
}

func (d *Document) restore(state []*caption.Caption) {
	d.captions = state
	d.selected = -1
	for _, c := range d.captions {
		c.IsSelected = false
	}
	d.matches = nil
	d.matchCursor = 0
	d.notifyChange()
}

// CanUndo reports whether an undo snapshot is available.
func (d *Document) CanUndo() bool { return d.hist.CanUndo() }

// CanRedo reports whether a redo snapshot is available.
func (d *Document) CanRedo() bool { return d.hist.CanRedo() }

// ClearHistory empties the undo and redo stacks, e.g. on reload.
func (d *Document) ClearHistory() { d.hist.Clear() }
