// Package reporter writes the results of a stringutils run.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/stringutils/pkg/runner"
)

// Reporter formats and writes run results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of files whose content changed and any write error.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatContent
	}

	switch format {
	case FormatContent:
		return NewContentReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// countChanged returns the number of modified files in result.
func countChanged(result *runner.Result) int {
	if result == nil {
		return 0
	}
	var n int
	for _, file := range result.Files {
		if file.Result != nil && file.Result.Modified {
			n++
		}
	}
	return n
}
