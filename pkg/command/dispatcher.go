package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/stringutils/pkg/editor"
	"github.com/yaklabco/stringutils/pkg/transform"
)

// ErrUnknownOp is returned by Run for an Op outside the table.
var ErrUnknownOp = errors.New("unknown operation")

// Options configures a Dispatcher.
type Options struct {
	// ReverseUnit selects the unit for reverse-selection.
	// Empty means code points.
	ReverseUnit transform.ReverseUnit

	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// Dispatcher runs commands from the table against a single editor.
type Dispatcher struct {
	ed     editor.Editor
	unit   transform.ReverseUnit
	logger *log.Logger
}

// NewDispatcher creates a Dispatcher bound to ed.
func NewDispatcher(ed editor.Editor, opts Options) *Dispatcher {
	unit := opts.ReverseUnit
	if unit == "" {
		unit = transform.ReverseCodePoint
	}
	return &Dispatcher{
		ed:     ed,
		unit:   unit,
		logger: opts.Logger,
	}
}

// Run applies op to the editor.
//
// The soft-tabs effect of op takes hold only when the transform succeeds,
// immediately before the result is inserted.
func (d *Dispatcher) Run(ctx context.Context, op Op) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	cmd, ok := Lookup(op)
	if !ok {
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownOp, int(op))
	}

	fn := func(text string, env Env) (string, bool, error) {
		env.ReverseUnit = d.unit
		return cmd.Transform(text, env)
	}

	result, err := apply(d.ed, fn, cmd.Fallback, func() {
		switch cmd.SoftTabs {
		case SoftTabsOn:
			d.ed.SetSoftTabs(true)
		case SoftTabsOff:
			d.ed.SetSoftTabs(false)
		case SoftTabsUnchanged:
		}
	})
	if err != nil {
		d.debug("command failed", "command", cmd.Name, "error", err)
		return result, fmt.Errorf("%s: %w", cmd.Name, err)
	}

	d.debug("command finished",
		"command", cmd.Name,
		"status", result.Status,
		"target", result.Target,
		"input_bytes", len(result.Input),
		"output_bytes", len(result.Output),
	)

	return result, nil
}

// RunNamed resolves name and runs it.
func (d *Dispatcher) RunNamed(ctx context.Context, name string) (Result, error) {
	cmd, ok := Resolve(name)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}
	return d.Run(ctx, cmd.Op)
}

func (d *Dispatcher) debug(msg string, keyvals ...any) {
	if d.logger != nil {
		d.logger.Debug(msg, keyvals...)
	}
}
