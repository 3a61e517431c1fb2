package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/stringutils/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int) string {
	if n == 1 {
		return wordFile
	}
	return wordFiles
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files processed, 2 changed, 1 rejected, 1 skipped".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	parts := []string{fmt.Sprintf("%d %s processed", stats.FilesProcessed, plural(stats.FilesProcessed))}

	switch {
	case stats.FilesWritten > 0:
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d written", stats.FilesWritten)))
	case stats.FilesModified > 0:
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d changed", stats.FilesModified)))
	default:
		parts = append(parts, s.Dim.Render("no changes"))
	}

	if stats.NoSelection > 0 {
		parts = append(parts, s.NoSelection.Render(fmt.Sprintf("%d without selection", stats.NoSelection)))
	}
	if stats.Rejected > 0 {
		parts = append(parts, s.Rejected.Render(fmt.Sprintf("%d rejected", stats.Rejected)))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Skipped.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row := func(label string, value int, style func(...string) string) {
		fmt.Fprintf(&builder, "  %-18s %s\n", label+":", style(strconv.Itoa(value)))
	}

	row("Files discovered", stats.FilesDiscovered, s.SummaryValue.Render)
	row("Files processed", stats.FilesProcessed, s.SummaryValue.Render)
	row("Applied", stats.Applied, s.SummaryValue.Render)

	if stats.FilesModified > 0 {
		row("Files changed", stats.FilesModified, s.Success.Render)
	}
	if stats.FilesWritten > 0 {
		row("Files written", stats.FilesWritten, s.Success.Render)
	}
	if stats.NoSelection > 0 {
		row("No selection", stats.NoSelection, s.NoSelection.Render)
	}
	if stats.Rejected > 0 {
		row("Rejected", stats.Rejected, s.Rejected.Render)
	}
	if stats.FilesSkipped > 0 {
		row("Skipped", stats.FilesSkipped, s.Skipped.Render)
	}
	if stats.FilesErrored > 0 {
		row("Failed", stats.FilesErrored, s.Failure.Render)
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Completed with errors"))
	case stats.Rejected > 0:
		builder.WriteString(s.Rejected.Render("Completed; some input was rejected"))
	default:
		builder.WriteString(s.Success.Render("Completed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
