package fix

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff represents a unified diff between original and modified content.
type Diff struct {
	// Path is the file path for the diff header.
	Path string

	// Hunks contains the diff hunks.
	Hunks []DiffHunk

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines deleted.
	Deletions int
}

// DiffHunk represents a single hunk in a unified diff.
type DiffHunk struct {
	// OriginalStart is the 1-based line number where the hunk starts in the original.
	OriginalStart int

	// OriginalCount is the number of lines from the original in this hunk.
	OriginalCount int

	// ModifiedStart is the 1-based line number where the hunk starts in the modified.
	ModifiedStart int

	// ModifiedCount is the number of lines from the modified in this hunk.
	ModifiedCount int

	// Lines contains the diff lines in this hunk.
	Lines []DiffLine
}

// DiffLine represents a single line in a diff hunk.
type DiffLine struct {
	Kind    DiffLineKind
	Content string
}

// DiffLineKind indicates the type of diff line.
type DiffLineKind int

const (
	// DiffLineContext is an unchanged context line.
	DiffLineContext DiffLineKind = iota

	// DiffLineAdd is a line added in the modified version.
	DiffLineAdd

	// DiffLineRemove is a line removed from the original version.
	DiffLineRemove
)

// contextLines is the number of context lines to show around changes.
const contextLines = 3

// GenerateDiff creates a unified diff between original and modified content.
// Returns nil if there are no changes.
func GenerateDiff(path string, original, modified []byte) *Diff {
	if string(original) == string(modified) {
		return nil
	}

	lines := diffLines(string(original), string(modified))
	hunks := groupIntoHunks(lines)
	if len(hunks) == 0 {
		return nil
	}

	diff := &Diff{Path: path, Hunks: hunks}
	for _, line := range lines {
		switch line.Kind {
		case DiffLineAdd:
			diff.Additions++
		case DiffLineRemove:
			diff.Deletions++
		}
	}

	return diff
}

// GitHeader returns the "diff --git" header line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String returns the diff in unified diff format (without the git header).
func (d *Diff) String() string {
	if !d.HasChanges() {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		fmt.Fprintf(&builder, "@@ -%d,%d +%d,%d @@\n",
			hunk.OriginalStart, hunk.OriginalCount,
			hunk.ModifiedStart, hunk.ModifiedCount)

		for _, line := range hunk.Lines {
			builder.WriteString(line.Kind.prefix())
			builder.WriteString(line.Content)
			builder.WriteByte('\n')
		}
	}

	return builder.String()
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

func (k DiffLineKind) prefix() string {
	switch k {
	case DiffLineAdd:
		return "+"
	case DiffLineRemove:
		return "-"
	default:
		return " "
	}
}

// diffLines runs a line-level diff and flattens it to one entry per line.
func diffLines(original, modified string) []DiffLine {
	dmp := diffmatchpatch.New()
	origChars, modChars, lineArray := dmp.DiffLinesToChars(original, modified)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(origChars, modChars, false), lineArray)

	var lines []DiffLine
	for _, d := range diffs {
		kind := DiffLineContext
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			kind = DiffLineAdd
		case diffmatchpatch.DiffDelete:
			kind = DiffLineRemove
		}
		for _, line := range splitKeepingLast(d.Text) {
			lines = append(lines, DiffLine{Kind: kind, Content: line})
		}
	}
	return lines
}

// splitKeepingLast splits text into lines without their "\n" terminators.
// A trailing newline does not produce an extra empty line.
func splitKeepingLast(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// groupIntoHunks merges change runs that are within 2*contextLines of each
// other and surrounds each group with context.
func groupIntoHunks(lines []DiffLine) []DiffHunk {
	type span struct{ start, end int }

	var spans []span
	for i := 0; i < len(lines); {
		if lines[i].Kind == DiffLineContext {
			i++
			continue
		}
		start := i
		for i < len(lines) && lines[i].Kind != DiffLineContext {
			i++
		}
		if n := len(spans); n > 0 && start-spans[n-1].end <= contextLines*2 {
			spans[n-1].end = i
			continue
		}
		spans = append(spans, span{start, i})
	}

	hunks := make([]DiffHunk, 0, len(spans))
	for _, s := range spans {
		hunks = append(hunks, buildHunk(lines, max(0, s.start-contextLines), min(len(lines), s.end+contextLines)))
	}
	return hunks
}

func buildHunk(lines []DiffLine, start, end int) DiffHunk {
	hunk := DiffHunk{OriginalStart: 1, ModifiedStart: 1}
	for _, line := range lines[:start] {
		if line.Kind != DiffLineAdd {
			hunk.OriginalStart++
		}
		if line.Kind != DiffLineRemove {
			hunk.ModifiedStart++
		}
	}

	hunk.Lines = append(hunk.Lines, lines[start:end]...)
	for _, line := range hunk.Lines {
		if line.Kind != DiffLineAdd {
			hunk.OriginalCount++
		}
		if line.Kind != DiffLineRemove {
			hunk.ModifiedCount++
		}
	}
	return hunk
}
