package fix

import (
	"bytes"
)

// ApplyEdit validates and applies one edit to content.
func ApplyEdit(content string, edit TextEdit) (string, error) {
	if err := ValidateEdit(edit, len(content)); err != nil {
		return content, err
	}
	return content[:edit.StartOffset] + edit.NewText + content[edit.EndOffset:], nil
}

// ApplyEdits applies non-overlapping edits to content in offset order.
// The input slice is not modified. Overlapping or out-of-range edits are
// rejected and content is returned unchanged.
func ApplyEdits(content []byte, edits []TextEdit) ([]byte, error) {
	if len(edits) == 0 {
		return content, nil
	}
	if err := ValidateEdits(edits, len(content)); err != nil {
		return content, err
	}

	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	SortEdits(sorted)

	delta := 0
	for _, e := range sorted {
		delta += e.Delta()
	}

	var out bytes.Buffer
	out.Grow(len(content) + delta)

	cursor := 0
	for _, e := range sorted {
		out.Write(content[cursor:e.StartOffset])
		out.WriteString(e.NewText)
		cursor = e.EndOffset
	}
	out.Write(content[cursor:])

	return out.Bytes(), nil
}
