package editor

import (
	"regexp"
	"strings"

	"github.com/SUNET/captedit/internal/caption"
)

// SetCaseSensitive sets the case sensitivity for subsequent searches.
// An active search is not recomputed automatically.
func (d *Document) SetCaseSensitive(caseSensitive bool) {
	d.caseSensitive = caseSensitive
}

// Search scans the full sequence for captions containing term and
// highlights them. Previous highlights are always cleared first; an
// empty term reports no matches and leaves the document unhighlighted.
// The returned slice holds the 1-based indices of the matches.
func (d *Document) Search(term string) []int {
	d.searchTerm = term
	d.matches = nil
	d.matchCursor = 0

	for _, c := range d.captions {
		c.IsHighlighted = false
	}

	if strings.TrimSpace(term) == "" {
		return nil
	}

	for i, c := range d.captions {
		if c.MatchesSearch(term, d.caseSensitive) {
			d.matches = append(d.matches, i)
			c.IsHighlighted = true
		}
	}

	// Focus the first match; navigation then cycles from here.
	if len(d.matches) > 0 {
		d.selectPos(d.matches[0])
	}

	result := make([]int, len(d.matches))
	for i, pos := range d.matches {
		result[i] = pos + 1
	}
	return result
}

// ClearSearch resets the term and all highlight state.
func (d *Document) ClearSearch() {
	d.Search("")
}

// SearchTerm returns the active search term.
func (d *Document) SearchTerm() string { return d.searchTerm }

// MatchCount returns the number of captions matching the active term.
func (d *Document) MatchCount() int { return len(d.matches) }

// CurrentMatch returns the 1-based position of the cursor within the
// match list and the total number of matches, for "n of m" displays.
func (d *Document) CurrentMatch() (int, int) {
	if len(d.matches) == 0 {
		return 0, 0
	}
	return d.matchCursor + 1, len(d.matches)
}

// NextMatch advances the match cursor, wrapping at the end, and selects
// the caption under it. It returns nil when there are no matches.
func (d *Document) NextMatch() *caption.Caption {
	return d.navigateMatches(1)
}

// PrevMatch moves the match cursor backward, wrapping at the start.
func (d *Document) PrevMatch() *caption.Caption {
	return d.navigateMatches(-1)
}

func (d *Document) navigateMatches(direction int) *caption.Caption {
	if len(d.matches) == 0 {
		return nil
	}

	d.matchCursor = (d.matchCursor + direction + len(d.matches)) % len(d.matches)
	pos := d.matches[d.matchCursor]
	if pos >= len(d.captions) {
		// Matches can go stale across mutations; skip rather than panic.
		return nil
	}

	c := d.captions[pos]
	d.selectPos(pos)
	return c
}

// selectPos selects the caption at slice position pos without the
// toggle semantics of Select.
func (d *Document) selectPos(pos int) {
	if d.selected == pos {
		return
	}
	if d.selected >= 0 && d.selected < len(d.captions) {
		d.captions[d.selected].IsSelected = false
	}
	d.captions[pos].IsSelected = true
	d.selected = pos
}

// ReplaceCurrent substitutes the active term in the selected caption.
// It requires a selection that itself matches the term; otherwise the
// operation is declined and the document is unchanged.
func (d *Document) ReplaceCurrent(replacement string) error {
	if d.searchTerm == "" {
		return ErrNoSearchTerm
	}
	sel := d.Selected()
	if sel == nil {
		return ErrNoSelection
	}
	if !sel.MatchesSearch(d.searchTerm, d.caseSensitive) {
		return ErrNoMatchInCaption
	}

	d.saveState()
	sel.Text = d.replaceTerm(sel.Text, replacement)
	d.notifyChange()
	return nil
}

// ReplaceAll substitutes the active term in every matching caption and
// re-runs the search so highlight state reflects the new text. The
// replacement count distinguishes "nothing matched" from "no term".
func (d *Document) ReplaceAll(replacement string) (int, error) {
	if d.searchTerm == "" {
		return 0, ErrNoSearchTerm
	}

	var matching []*caption.Caption
	for _, c := range d.captions {
		if c.MatchesSearch(d.searchTerm, d.caseSensitive) {
			matching = append(matching, c)
		}
	}
	if len(matching) == 0 {
		return 0, nil
	}

	d.saveState()
	for _, c := range matching {
		c.Text = d.replaceTerm(c.Text, replacement)
	}

	d.Search(d.searchTerm)
	d.notifyChange()
	return len(matching), nil
}

// replaceTerm performs a literal substitution of the active term. The
// case-insensitive path quotes the term so regex metacharacters never
// gain meaning, and the replacement is inserted literally.
func (d *Document) replaceTerm(text, replacement string) string {
	if d.caseSensitive {
		return strings.ReplaceAll(text, d.searchTerm, replacement)
	}
	pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(d.searchTerm))
	return pattern.ReplaceAllLiteralString(text, replacement)
}

// HighlightedMarkup wraps every occurrence of the active term in text
// with a <mark> tag for presentation layers. With no active term the
// text is returned unchanged.
func (d *Document) HighlightedMarkup(text string) string {
	if d.searchTerm == "" || text == "" {
		return text
	}

	const openTag = `<mark style="background-color: yellow; padding: 2px;">`
	if d.caseSensitive {
		return strings.ReplaceAll(text, d.searchTerm, openTag+d.searchTerm+"</mark>")
	}

	pattern := regexp.MustCompile(`(?i)(` + regexp.QuoteMeta(d.searchTerm) + `)`)
	return pattern.ReplaceAllString(text, openTag+"$1</mark>")
}
