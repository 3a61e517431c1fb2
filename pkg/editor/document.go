package editor

import (
	"github.com/yaklabco/stringutils/pkg/fix"
)

// DefaultTabLength is the tab width of a new Document.
const DefaultTabLength = 2

// Compile-time interface check.
var _ Editor = (*Document)(nil)

// Document is an in-memory Editor. The zero value is an empty buffer with no
// tab width set; use NewDocument.
type Document struct {
	text      string
	selStart  int
	selEnd    int
	tabLength int
	softTabs  bool
	edits     []fix.TextEdit
}

// NewDocument returns a Document holding text with the cursor at the start,
// the default tab width and soft tabs on.
func NewDocument(text string) *Document {
	return &Document{
		text:      text,
		tabLength: DefaultTabLength,
		softTabs:  true,
	}
}

// Text returns the whole buffer.
func (d *Document) Text() string {
	return d.text
}

// Selection returns the byte bounds of the active selection.
func (d *Document) Selection() (start, end int) {
	return d.selStart, d.selEnd
}

// HasSelection reports whether the selection is non-empty.
func (d *Document) HasSelection() bool {
	return d.selStart != d.selEnd
}

// SetSelectedRange selects bytes [start, end). The bounds are swapped when
// reversed and clamped to the buffer.
func (d *Document) SetSelectedRange(start, end int) {
	if start > end {
		start, end = end, start
	}
	d.selStart = clamp(start, 0, len(d.text))
	d.selEnd = clamp(end, 0, len(d.text))
}

// SetSelectedPositionRange selects the text between two line/column positions.
func (d *Document) SetSelectedPositionRange(r Range) error {
	idx := newLineIndex(d.text)
	start, err := idx.offset(d.text, r.Start)
	if err != nil {
		return err
	}
	end, err := idx.offset(d.text, r.End)
	if err != nil {
		return err
	}
	d.SetSelectedRange(start, end)
	return nil
}

// SelectedPositionRange returns the selection as line/column positions.
func (d *Document) SelectedPositionRange() Range {
	idx := newLineIndex(d.text)
	return Range{
		Start: idx.position(d.text, d.selStart),
		End:   idx.position(d.text, d.selEnd),
	}
}

// SelectedText implements Editor.
func (d *Document) SelectedText() string {
	return d.text[d.selStart:d.selEnd]
}

// SelectAll implements Editor.
func (d *Document) SelectAll() {
	d.selStart, d.selEnd = 0, len(d.text)
}

// TabLength implements Editor.
func (d *Document) TabLength() int {
	return d.tabLength
}

// SetTabLength sets the tab width. Non-positive values are ignored.
func (d *Document) SetTabLength(n int) {
	if n > 0 {
		d.tabLength = n
	}
}

// SoftTabs reports whether soft tabs are on.
func (d *Document) SoftTabs() bool {
	return d.softTabs
}

// SetSoftTabs implements Editor.
func (d *Document) SetSoftTabs(soft bool) {
	d.softTabs = soft
}

// InsertText implements Editor. The replacement is recorded in Edits.
func (d *Document) InsertText(text string, opts InsertOptions) {
	edit := fix.Replace(d.selStart, d.selEnd, text)

	updated, err := fix.ApplyEdits([]byte(d.text), []fix.TextEdit{edit})
	if err != nil {
		// Selection bounds are kept inside the buffer, so this cannot happen.
		panic(err)
	}

	d.text = string(updated)
	d.edits = append(d.edits, edit)

	if opts.Select {
		d.selStart, d.selEnd = edit.StartOffset, edit.NewEnd()
	} else {
		d.selStart, d.selEnd = edit.NewEnd(), edit.NewEnd()
	}
}

// Edits returns the edits applied through InsertText, oldest first.
func (d *Document) Edits() []fix.TextEdit {
	out := make([]fix.TextEdit, len(d.edits))
	copy(out, d.edits)
	return out
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
