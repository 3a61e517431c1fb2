package runner

import (
	"fmt"
	"strings"

	"github.com/yaklabco/stringutils/pkg/editor"
)

// SelectionMode says how a file's initial selection is chosen.
type SelectionMode int

const (
	// SelectAll selects the whole buffer.
	SelectAll SelectionMode = iota
	// SelectRange selects a line/column range.
	SelectRange
	// SelectNone leaves the cursor at the start of the buffer.
	SelectNone
)

// String returns "all", "range" or "none".
func (m SelectionMode) String() string {
	switch m {
	case SelectRange:
		return "range"
	case SelectNone:
		return "none"
	default:
		return "all"
	}
}

// SelectionSpec is the selection a buffer starts with. The zero value
// selects everything.
type SelectionSpec struct {
	Mode  SelectionMode
	Range editor.Range
}

// ParseSelectionSpec parses "all", "none" or "LINE:COL-LINE:COL".
// An empty string means "all".
func ParseSelectionSpec(s string) (SelectionSpec, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return SelectionSpec{Mode: SelectAll}, nil
	case "none":
		return SelectionSpec{Mode: SelectNone}, nil
	}

	r, err := editor.ParseRange(s)
	if err != nil {
		return SelectionSpec{}, err
	}
	return SelectionSpec{Mode: SelectRange, Range: r}, nil
}

// String returns the form accepted by ParseSelectionSpec.
func (s SelectionSpec) String() string {
	if s.Mode == SelectRange {
		return s.Range.String()
	}
	return s.Mode.String()
}

// apply sets the selection of doc.
func (s SelectionSpec) apply(doc *editor.Document) error {
	switch s.Mode {
	case SelectRange:
		if err := doc.SetSelectedPositionRange(s.Range); err != nil {
			return fmt.Errorf("select %s: %w", s.Range, err)
		}
	case SelectNone:
		doc.SetSelectedRange(0, 0)
	case SelectAll:
		doc.SelectAll()
	}
	return nil
}
