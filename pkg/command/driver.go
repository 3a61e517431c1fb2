package command

import (
	"github.com/yaklabco/stringutils/pkg/editor"
)

// Status is the outcome of one application.
type Status int

const (
	// StatusApplied means the editor received exactly one insert.
	StatusApplied Status = iota
	// StatusNoSelection means the selection was empty and the operation
	// does not fall back to the whole document.
	StatusNoSelection
	// StatusRejected means the transform declined its input.
	StatusRejected
)

// String returns a lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusApplied:
		return "applied"
	case StatusNoSelection:
		return "no-selection"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Target is the region an operation replaced.
type Target int

const (
	// TargetNone means nothing was read.
	TargetNone Target = iota
	// TargetSelection is the user's non-empty selection.
	TargetSelection
	// TargetDocument is the whole buffer selected by fallback.
	TargetDocument
)

// String returns "none", "selection" or "document".
func (t Target) String() string {
	switch t {
	case TargetSelection:
		return "selection"
	case TargetDocument:
		return "document"
	default:
		return "none"
	}
}

// Result describes one application of a transform.
type Result struct {
	Status Status
	Target Target
	Input  string
	Output string
}

// Applied reports whether the editor was modified.
func (r Result) Applied() bool {
	return r.Status == StatusApplied
}

// Apply runs fn over the editor's selection and replaces it with the result.
//
// An empty selection is a no-op unless fallback is set, in which case the
// whole buffer is selected first. Text replacing a user selection is
// re-selected; text replacing the whole buffer is not. A rejection or error
// from fn leaves the editor untouched.
func Apply(ed editor.Editor, fn Func, fallback bool) (Result, error) {
	return apply(ed, fn, fallback, nil)
}

// apply calls beforeInsert after a successful transform and before the insert.
func apply(ed editor.Editor, fn Func, fallback bool, beforeInsert func()) (Result, error) {
	text := ed.SelectedText()
	target := TargetSelection

	if text == "" {
		if !fallback {
			return Result{Status: StatusNoSelection, Target: TargetNone}, nil
		}
		ed.SelectAll()
		text = ed.SelectedText()
		target = TargetDocument
	}

	out, ok, err := fn(text, Env{TabLength: ed.TabLength()})
	if err != nil {
		return Result{Status: StatusRejected, Target: target, Input: text}, err
	}
	if !ok {
		return Result{Status: StatusRejected, Target: target, Input: text}, nil
	}

	if beforeInsert != nil {
		beforeInsert()
	}
	ed.InsertText(out, editor.InsertOptions{Select: target == TargetSelection})

	return Result{Status: StatusApplied, Target: target, Input: text, Output: out}, nil
}
