package command_test

import (
	"github.com/yaklabco/stringutils/pkg/editor"
)

// recorder wraps a Document and logs every mutating call in order.
type recorder struct {
	*editor.Document
	calls []string
}

func newRecorder(text string) *recorder {
	return &recorder{Document: editor.NewDocument(text)}
}

func (r *recorder) SelectAll() {
	r.calls = append(r.calls, "select-all")
	r.Document.SelectAll()
}

func (r *recorder) SetSoftTabs(soft bool) {
	if soft {
		r.calls = append(r.calls, "soft-tabs:on")
	} else {
		r.calls = append(r.calls, "soft-tabs:off")
	}
	r.Document.SetSoftTabs(soft)
}

func (r *recorder) InsertText(text string, opts editor.InsertOptions) {
	if opts.Select {
		r.calls = append(r.calls, "insert:select")
	} else {
		r.calls = append(r.calls, "insert")
	}
	r.Document.InsertText(text, opts)
}
