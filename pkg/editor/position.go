package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrInvalidRange indicates a selection range that cannot be parsed or that
// does not fit the buffer.
var ErrInvalidRange = errors.New("invalid range")

// Position is a 1-based line and 1-based column. Columns count code points.
type Position struct {
	Line   int
	Column int
}

// String returns "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Range is a span between two positions. Start may come after End; it is
// normalized when applied.
type Range struct {
	Start Position
	End   Position
}

// String returns "line:column-line:column".
func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// ParseRange parses "L:C-L:C".
func ParseRange(s string) (Range, error) {
	startStr, endStr, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: %q: expected LINE:COL-LINE:COL", ErrInvalidRange, s)
	}

	start, err := parsePosition(startStr)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %w", ErrInvalidRange, s, err)
	}
	end, err := parsePosition(endStr)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %w", ErrInvalidRange, s, err)
	}

	return Range{Start: start, End: end}, nil
}

func parsePosition(s string) (Position, error) {
	lineStr, colStr, ok := strings.Cut(s, ":")
	if !ok {
		return Position{}, fmt.Errorf("position %q: expected LINE:COL", s)
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil || line < 1 {
		return Position{}, fmt.Errorf("position %q: line must be a positive integer", s)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil || col < 1 {
		return Position{}, fmt.Errorf("position %q: column must be a positive integer", s)
	}
	return Position{Line: line, Column: col}, nil
}

// lineIndex holds the byte offset of the start of every line in a buffer.
type lineIndex []int

func newLineIndex(text string) lineIndex {
	idx := lineIndex{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			idx = append(idx, i+1)
		}
	}
	return idx
}

// offset converts a position to a byte offset in text. A column one past the
// last character of a line addresses the end of that line.
func (idx lineIndex) offset(text string, pos Position) (int, error) {
	if pos.Line < 1 || pos.Line > len(idx) {
		return 0, fmt.Errorf("%w: line %d out of range 1-%d", ErrInvalidRange, pos.Line, len(idx))
	}

	start := idx[pos.Line-1]
	line := text[start:]
	if pos.Line < len(idx) {
		line = strings.TrimSuffix(text[start:idx[pos.Line]-1], "\r")
	}

	if pos.Column < 1 || pos.Column > utf8.RuneCountInString(line)+1 {
		return 0, fmt.Errorf("%w: column %d out of range on line %d", ErrInvalidRange, pos.Column, pos.Line)
	}

	offset := start
	for range pos.Column - 1 {
		_, size := utf8.DecodeRuneInString(text[offset:])
		offset += size
	}
	return offset, nil
}

// position converts a byte offset back to a position.
func (idx lineIndex) position(text string, offset int) Position {
	line := 0
	for line+1 < len(idx) && idx[line+1] <= offset {
		line++
	}
	return Position{
		Line:   line + 1,
		Column: utf8.RuneCountInString(text[idx[line]:offset]) + 1,
	}
}
