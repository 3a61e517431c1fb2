package fix

import (
	"fmt"
	"sort"
)

// ValidationError describes an invalid edit.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// ValidateEdit checks that an edit fits inside content of the given length.
func ValidateEdit(edit TextEdit, contentLen int) error {
	if edit.StartOffset < 0 {
		return &ValidationError{Edit: edit, Message: "start offset is negative"}
	}
	if edit.EndOffset < edit.StartOffset {
		return &ValidationError{Edit: edit, Message: "end offset is before start offset"}
	}
	if edit.EndOffset > contentLen {
		return &ValidationError{
			Edit:    edit,
			Message: fmt.Sprintf("end offset %d exceeds content length %d", edit.EndOffset, contentLen),
		}
	}
	return nil
}

// ValidateEdits checks that every edit fits the content and that no two
// edits overlap once sorted. Returns the first problem found.
func ValidateEdits(edits []TextEdit, contentLen int) error {
	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	SortEdits(sorted)

	for i, e := range sorted {
		if err := ValidateEdit(e, contentLen); err != nil {
			return err
		}
		if i > 0 && e.StartOffset < sorted[i-1].EndOffset {
			return &ValidationError{Edit: e, Message: "overlaps previous edit"}
		}
	}
	return nil
}

// SortEdits sorts edits by start offset, then by end offset.
func SortEdits(edits []TextEdit) {
	sort.SliceStable(edits, func(i, j int) bool {
		if edits[i].StartOffset != edits[j].StartOffset {
			return edits[i].StartOffset < edits[j].StartOffset
		}
		return edits[i].EndOffset < edits[j].EndOffset
	})
}
