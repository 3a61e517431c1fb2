package reporter

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/stringutils/pkg/runner"
)

// ContentReporter writes the resulting buffer of each file.
//
// A single file is written as is so the output can be piped. Several files
// are each preceded by a "==> path <==" header. Files that failed are
// reported on ErrorWriter; their content is not written.
type ContentReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewContentReporter creates a new content reporter.
func NewContentReporter(opts Options) *ContentReporter {
	if opts.ErrorWriter == nil {
		opts.ErrorWriter = os.Stderr
	}
	return &ContentReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *ContentReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	headers := len(result.Files) > 1
	first := true

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.opts.ErrorWriter, "%s: %v\n", r.opts.displayPath(file.Path), file.Error)
			continue
		}
		if file.Result == nil {
			continue
		}

		if headers {
			if !first {
				fmt.Fprintln(r.bw)
			}
			fmt.Fprintf(r.bw, "==> %s <==\n", r.opts.displayPath(file.Path))
		}
		first = false

		if _, err := r.bw.Write(file.Result.Content); err != nil {
			return 0, fmt.Errorf("write content: %w", err)
		}
	}

	return countChanged(result), nil
}
