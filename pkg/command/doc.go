// Package command binds the text transforms to an editor.
//
// Each operation is an entry in a static table keyed by Op. The table entry
// names the pure transform, whether an empty selection falls back to the
// whole document, and what the operation does to the editor's soft-tabs
// setting. Apply is the selection driver shared by every operation, and
// Dispatcher runs table entries against one editor.
package command
