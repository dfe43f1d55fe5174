package editor

import (
	"errors"
	"strings"
	"testing"

	"github.com/SUNET/captedit/internal/config"
)

const searchSRT = `1
00:00:01,000 --> 00:00:02,000
The quick brown fox

2
00:00:03,000 --> 00:00:04,000
jumps over the lazy dog

3
00:00:05,000 --> 00:00:06,000
The Quick rabbit
`

func loadSearch(t *testing.T) *Document {
	t.Helper()
	return LoadSRT(searchSRT, config.Default().EditorSettings)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	d := loadSearch(t)

	matches := d.Search("quick")
	if len(matches) != 2 || matches[0] != 1 || matches[1] != 3 {
		t.Fatalf("matches = %v, want [1 3]", matches)
	}

	if !d.Captions()[0].IsHighlighted || !d.Captions()[2].IsHighlighted {
		t.Error("matching captions should be highlighted")
	}
	if d.Captions()[1].IsHighlighted {
		t.Error("non-matching caption should not be highlighted")
	}

	// The first match is focused immediately.
	if sel := d.Selected(); sel == nil || sel.Index != 1 {
		t.Errorf("Selected = %+v, want caption 1", sel)
	}
}

func TestSearch_CaseSensitive(t *testing.T) {
	d := loadSearch(t)
	d.SetCaseSensitive(true)

	matches := d.Search("Quick")
	if len(matches) != 1 || matches[0] != 3 {
		t.Errorf("matches = %v, want [3]", matches)
	}
}

func TestSearch_EmptyTermClearsHighlights(t *testing.T) {
	d := loadSearch(t)
	d.Search("quick")

	if matches := d.Search(""); len(matches) != 0 {
		t.Errorf("empty term matches = %v, want none", matches)
	}
	for _, c := range d.Captions() {
		if c.IsHighlighted {
			t.Error("empty term must clear all highlights")
		}
	}
	if d.MatchCount() != 0 {
		t.Errorf("MatchCount = %d, want 0", d.MatchCount())
	}
}

func TestSearch_TermNotFound(t *testing.T) {
	d := loadSearch(t)
	if matches := d.Search("zebra"); len(matches) != 0 {
		t.Errorf("matches = %v, want none", matches)
	}
}

func TestMatchNavigation_CyclesCircularly(t *testing.T) {
	d := loadSearch(t)
	d.Search("quick") // focuses match 1 (caption 1)

	c := d.NextMatch()
	if c == nil || c.Index != 3 {
		t.Fatalf("NextMatch = %+v, want caption 3", c)
	}
	pos, total := d.CurrentMatch()
	if pos != 2 || total != 2 {
		t.Errorf("CurrentMatch = %d of %d, want 2 of 2", pos, total)
	}

	// Wraps back to the first match.
	c = d.NextMatch()
	if c == nil || c.Index != 1 {
		t.Errorf("NextMatch = %+v, want caption 1 after wrap", c)
	}

	c = d.PrevMatch()
	if c == nil || c.Index != 3 {
		t.Errorf("PrevMatch = %+v, want caption 3 after backward wrap", c)
	}
	if sel := d.Selected(); sel == nil || sel.Index != 3 {
		t.Errorf("navigation should select the match, Selected = %+v", sel)
	}
}

func TestMatchNavigation_NoMatches(t *testing.T) {
	d := loadSearch(t)
	if c := d.NextMatch(); c != nil {
		t.Errorf("NextMatch without a search = %+v, want nil", c)
	}
}

func TestReplaceCurrent(t *testing.T) {
	d := loadSearch(t)
	d.Search("quick") // selects caption 1

	if err := d.ReplaceCurrent("slow"); err != nil {
		t.Fatalf("ReplaceCurrent: %v", err)
	}
	if got := d.Captions()[0].Text; got != "The slow brown fox" {
		t.Errorf("Text = %q, want 'The slow brown fox'", got)
	}
}

func TestReplaceCurrent_SelectionDoesNotMatch(t *testing.T) {
	d := loadSearch(t)
	d.Search("quick")
	d.selectPos(1) // caption 2 has no match

	err := d.ReplaceCurrent("slow")
	if !errors.Is(err, ErrNoMatchInCaption) {
		t.Fatalf("err = %v, want ErrNoMatchInCaption", err)
	}
	if d.Captions()[1].Text != "jumps over the lazy dog" {
		t.Error("a declined replace must leave the text unchanged")
	}
}

func TestReplaceCurrent_NoTerm(t *testing.T) {
	d := loadSearch(t)
	if err := d.ReplaceCurrent("x"); !errors.Is(err, ErrNoSearchTerm) {
		t.Errorf("err = %v, want ErrNoSearchTerm", err)
	}
}

func TestReplaceAll(t *testing.T) {
	d := loadSearch(t)
	d.Search("quick")

	count, err := d.ReplaceAll("swift")
	if err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if d.Captions()[0].Text != "The swift brown fox" {
		t.Errorf("caption 1 = %q", d.Captions()[0].Text)
	}
	// Case-insensitive path rewrites "Quick" too.
	if d.Captions()[2].Text != "The swift rabbit" {
		t.Errorf("caption 3 = %q", d.Captions()[2].Text)
	}
	// Search state is refreshed: the term no longer matches anything.
	if d.MatchCount() != 0 {
		t.Errorf("MatchCount after replace = %d, want 0", d.MatchCount())
	}
}

func TestReplaceAll_CaseSensitiveIsLiteral(t *testing.T) {
	d := loadSearch(t)
	d.SetCaseSensitive(true)
	d.Search("quick")

	count, err := d.ReplaceAll("swift")
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if d.Captions()[2].Text != "The Quick rabbit" {
		t.Error("case-sensitive replace must not touch differently-cased text")
	}
}

func TestReplaceAll_MetacharactersAreLiteral(t *testing.T) {
	d := LoadSRT("1\n00:00:01,000 --> 00:00:02,000\nprice is $5.00 (approx)\n", config.Default().EditorSettings)
	d.Search("$5.00 (approx)")

	count, err := d.ReplaceAll("$6.00")
	if err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	if got := d.Captions()[0].Text; got != "price is $6.00" {
		t.Errorf("Text = %q, want 'price is $6.00'", got)
	}
}

func TestReplaceAll_NothingMatched(t *testing.T) {
	d := loadSearch(t)
	d.Search("zebra")

	count, err := d.ReplaceAll("horse")
	if err != nil {
		t.Fatalf("a zero-match replace is not an error: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestReplaceAll_NoTerm(t *testing.T) {
	d := loadSearch(t)
	if _, err := d.ReplaceAll("x"); !errors.Is(err, ErrNoSearchTerm) {
		t.Errorf("err = %v, want ErrNoSearchTerm", err)
	}
}

func TestReplaceIsUndoable(t *testing.T) {
	d := loadSearch(t)
	d.Search("quick")
	if _, err := d.ReplaceAll("swift"); err != nil {
		t.Fatal(err)
	}
	if err := d.Undo(); err != nil {
		t.Fatal(err)
	}
	if d.Captions()[0].Text != "The quick brown fox" {
		t.Errorf("undo should restore the replaced text, got %q", d.Captions()[0].Text)
	}
}

func TestHighlightedMarkup(t *testing.T) {
	d := loadSearch(t)
	d.Search("quick")

	marked := d.HighlightedMarkup("The Quick brown fox")
	if !strings.Contains(marked, "<mark") || !strings.Contains(marked, "Quick</mark>") {
		t.Errorf("HighlightedMarkup = %q", marked)
	}

	d.Search("")
	if got := d.HighlightedMarkup("plain"); got != "plain" {
		t.Errorf("with no term the text should pass through, got %q", got)
	}
}
