package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/stringutils/pkg/command"
	"github.com/yaklabco/stringutils/pkg/runner"
)

// Status labels.
const (
	LabelWritten     = "written"
	LabelChanged     = "changed"
	LabelUnchanged   = "unchanged"
	LabelNoSelection = "no selection"
	LabelRejected    = "rejected"
	LabelSkipped     = "skipped"
	LabelError       = "error"
)

// StatusLabel returns the label for a file outcome and the style it is
// rendered with.
func (s *Styles) StatusLabel(outcome runner.FileOutcome) (string, lipgloss.Style) {
	pr := outcome.Result
	switch {
	case outcome.Error != nil || pr == nil:
		return LabelError, s.Error
	case pr.Skipped:
		return LabelSkipped, s.Skipped
	case pr.Written:
		return LabelWritten, s.Applied
	case pr.Modified:
		return LabelChanged, s.Applied
	}

	switch pr.Status {
	case command.StatusNoSelection:
		return LabelNoSelection, s.NoSelection
	case command.StatusRejected:
		return LabelRejected, s.Rejected
	default:
		return LabelUnchanged, s.Unchanged
	}
}

// FormatStatus returns the styled status label for a file outcome.
func (s *Styles) FormatStatus(outcome runner.FileOutcome) string {
	label, style := s.StatusLabel(outcome)
	return style.Render(label)
}

// FormatOutcome formats one file's outcome as a status line:
//
//	path  command  status  (detail)
func (s *Styles) FormatOutcome(outcome runner.FileOutcome, displayPath string) string {
	if displayPath == "" {
		displayPath = outcome.Path
	}

	parts := []string{"  " + s.FilePath.Render(displayPath)}
	if outcome.Result != nil && outcome.Result.Command != "" {
		parts = append(parts, s.Command.Render(outcome.Result.Command))
	}
	parts = append(parts, s.FormatStatus(outcome))

	if detail := outcomeDetail(outcome); detail != "" {
		parts = append(parts, s.Detail.Render("("+detail+")"))
	}

	return strings.Join(parts, "  ") + "\n"
}

// outcomeDetail explains a status in a few words.
func outcomeDetail(outcome runner.FileOutcome) string {
	if outcome.Error != nil {
		return outcome.Error.Error()
	}
	pr := outcome.Result
	if pr == nil {
		return ""
	}

	switch {
	case pr.Skipped:
		return pr.SkipReason
	case pr.Written && pr.BackupCreated:
		return "backup created"
	case pr.Modified && pr.Target == command.TargetDocument:
		return "whole document"
	case pr.Modified && pr.Diff != nil:
		return fmt.Sprintf("+%d -%d", pr.Diff.Additions, pr.Diff.Deletions)
	case pr.Status == command.StatusRejected:
		return "input not accepted by " + pr.Command
	}
	return ""
}
