// Package editor defines the Editor interface the stringutils commands
// drive, and Document, an in-memory buffer implementing it.
package editor

// InsertOptions controls how InsertText updates the selection.
type InsertOptions struct {
	// Select makes the inserted text the new selection.
	// When false the cursor is placed after the inserted text.
	Select bool
}

// Editor is the host editor surface a command operates on.
type Editor interface {
	// SelectedText returns the text of the active selection, or "" when
	// nothing is selected.
	SelectedText() string

	// SelectAll selects the entire buffer.
	SelectAll()

	// TabLength returns the width of a tab stop in columns.
	TabLength() int

	// SetSoftTabs sets whether the tab key inserts spaces.
	SetSoftTabs(soft bool)

	// InsertText replaces the active selection with text.
	InsertText(text string, opts InsertOptions)
}
