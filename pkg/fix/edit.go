// Package fix provides byte-range text edits, their application, and unified
// diffs between two versions of a buffer.
package fix

// TextEdit represents a single text replacement in a buffer.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// Replace returns an edit that replaces bytes [start, end) with newText.
func Replace(start, end int, newText string) TextEdit {
	return TextEdit{StartOffset: start, EndOffset: end, NewText: newText}
}

// Delta is the change in buffer length caused by the edit.
func (e TextEdit) Delta() int {
	return len(e.NewText) - (e.EndOffset - e.StartOffset)
}

// NewEnd is the byte index just past the inserted text once the edit is applied.
func (e TextEdit) NewEnd() int {
	return e.StartOffset + len(e.NewText)
}
