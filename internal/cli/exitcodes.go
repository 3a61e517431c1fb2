package cli

import (
	"errors"

	"github.com/yaklabco/stringutils/internal/configloader"
	"github.com/yaklabco/stringutils/pkg/editor"
	"github.com/yaklabco/stringutils/pkg/runner"
)

// Exit codes for stringutils.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitTransformFailed indicates a command rejected or failed on some input.
	ExitTransformFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrTransformFailed is returned when a command failed on, or rejected,
	// at least one input. The per-file details have already been reported.
	ErrTransformFailed = errors.New("transform failed")

	// ErrNoInput is returned when no paths are given and stdin is a terminal.
	ErrNoInput = errors.New("no input: pass file paths or pipe text on stdin")

	// ErrUsage marks invalid flag or argument combinations.
	ErrUsage = errors.New("invalid usage")

	// ErrConfigLoad marks failures to resolve the configuration.
	ErrConfigLoad = errors.New("failed to load configuration")
)

// ExitCodeFromResult determines the exit code for a completed run.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.HasFailures() || result.Stats.Rejected > 0 {
		return ExitTransformFailed
	}
	return ExitSuccess
}

// ExitCodeFromError maps an error returned by a command to an exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrTransformFailed):
		return ExitTransformFailed
	case errors.Is(err, ErrUsage), errors.Is(err, ErrNoInput), errors.Is(err, editor.ErrInvalidRange):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfigLoad), errors.Is(err, configloader.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, runner.ErrFileNotFound),
		errors.Is(err, runner.ErrPermissionDenied),
		errors.Is(err, runner.ErrWriteFailure):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
