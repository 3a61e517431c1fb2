package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/stringutils/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path          string  `json:"path"`
	Command       string  `json:"command,omitempty"`
	Language      string  `json:"language,omitempty"`
	Status        string  `json:"status,omitempty"`
	Target        string  `json:"target,omitempty"`
	Selection     string  `json:"selection,omitempty"`
	SoftTabs      *bool   `json:"softTabs,omitempty"`
	Modified      bool    `json:"modified"`
	Written       bool    `json:"written,omitempty"`
	BackupCreated bool    `json:"backupCreated,omitempty"`
	Skipped       bool    `json:"skipped,omitempty"`
	SkipReason    string  `json:"skipReason,omitempty"`
	Additions     int     `json:"additions,omitempty"`
	Deletions     int     `json:"deletions,omitempty"`
	Content       *string `json:"content,omitempty"`
	Error         string  `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesProcessed  int `json:"filesProcessed"`
	Applied         int `json:"applied"`
	NoSelection     int `json:"noSelection"`
	Rejected        int `json:"rejected"`
	FilesSkipped    int `json:"filesSkipped"`
	FilesErrored    int `json:"filesErrored"`
	FilesModified   int `json:"filesModified"`
	FilesWritten    int `json:"filesWritten"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.FilesModified, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	stats := result.Stats
	output.Summary = JSONSummary{
		FilesDiscovered: stats.FilesDiscovered,
		FilesProcessed:  stats.FilesProcessed,
		Applied:         stats.Applied,
		NoSelection:     stats.NoSelection,
		Rejected:        stats.Rejected,
		FilesSkipped:    stats.FilesSkipped,
		FilesErrored:    stats.FilesErrored,
		FilesModified:   stats.FilesModified,
		FilesWritten:    stats.FilesWritten,
	}

	output.Files = make([]JSONFileResult, 0, len(result.Files))
	for _, file := range result.Files {
		output.Files = append(output.Files, r.fileResult(file))
	}

	return output
}

func (r *JSONReporter) fileResult(file runner.FileOutcome) JSONFileResult {
	out := JSONFileResult{Path: r.opts.displayPath(file.Path)}

	if file.Error != nil {
		out.Error = file.Error.Error()
		return out
	}

	pr := file.Result
	if pr == nil {
		return out
	}

	out.Command = pr.Command
	out.Language = pr.Language
	out.Modified = pr.Modified
	out.Written = pr.Written
	out.BackupCreated = pr.BackupCreated
	out.Skipped = pr.Skipped
	out.SkipReason = pr.SkipReason

	if pr.Ran {
		out.Status = pr.Status.String()
		out.Target = pr.Target.String()
		out.Selection = pr.Selection.String()
		softTabs := pr.SoftTabs
		out.SoftTabs = &softTabs
	}
	if pr.Diff != nil {
		out.Additions = pr.Diff.Additions
		out.Deletions = pr.Diff.Deletions
	}
	if r.opts.IncludeContent {
		content := string(pr.Content)
		out.Content = &content
	}

	return out
}
