package runner

import "github.com/yaklabco/stringutils/pkg/command"

// FileOutcome wraps PipelineResult with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the pipeline result for this file.
	// Nil if the file encountered an error during processing.
	Result *PipelineResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files the command ran over.
	FilesProcessed int

	// Applied counts files whose buffer received the command's output.
	Applied int

	// NoSelection counts files where the command found nothing selected.
	NoSelection int

	// Rejected counts files whose content the command declined.
	Rejected int

	// FilesSkipped is the number of files skipped (binary, not UTF-8,
	// or modified concurrently).
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// FilesModified is the number of files whose content changed.
	FilesModified int

	// FilesWritten is the number of files written back to disk.
	FilesWritten int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats

	// Errors contains any non-file-specific errors encountered.
	Errors []error
}

// NewResult builds a Result from outcomes that were produced outside Run,
// such as a single buffer read from standard input.
func NewResult(outcomes ...FileOutcome) *Result {
	result := &Result{Files: make([]FileOutcome, 0, len(outcomes))}
	result.Stats.FilesDiscovered = len(outcomes)
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result
}

// HasFailures reports whether any file failed to process.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// HasChanges reports whether any file's content changed.
func (r *Result) HasChanges() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesModified > 0
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	pr := outcome.Result
	if pr == nil {
		return
	}

	// Files skipped before the command ran have no command status.
	if !pr.Ran {
		r.Stats.FilesSkipped++
		return
	}

	r.Stats.FilesProcessed++

	switch pr.Status {
	case command.StatusApplied:
		r.Stats.Applied++
	case command.StatusNoSelection:
		r.Stats.NoSelection++
	case command.StatusRejected:
		r.Stats.Rejected++
	}

	if pr.Skipped {
		r.Stats.FilesSkipped++
	}
	if pr.Modified {
		r.Stats.FilesModified++
	}
	if pr.Written {
		r.Stats.FilesWritten++
	}
}
