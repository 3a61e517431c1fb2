package command_test

import (
	"context"
	"testing"

	"pgregory.net/rapid"

	"github.com/yaklabco/stringutils/pkg/command"
	"github.com/yaklabco/stringutils/pkg/editor"
)

// Encoding and then decoding the re-selected output restores the buffer.
func TestProperty_CodecRoundTripThroughDispatcher(t *testing.T) {
	t.Parallel()

	pairs := []struct {
		name           string
		encode, decode command.Op
	}{
		{"base64", command.OpEncodeBase64, command.OpDecodeBase64},
		{"url", command.OpEncodeURL, command.OpDecodeURL},
	}

	for _, pair := range pairs {
		t.Run(pair.name, func(t *testing.T) {
			t.Parallel()

			rapid.Check(t, func(t *rapid.T) {
				text := rapid.String().Draw(t, "text")

				doc := editor.NewDocument(text)
				doc.SelectAll()
				d := command.NewDispatcher(doc, command.Options{})

				if _, err := d.Run(context.Background(), pair.encode); err != nil {
					t.Fatalf("encode: %v", err)
				}
				if _, err := d.Run(context.Background(), pair.decode); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if doc.Text() != text {
					t.Fatalf("round trip = %q, want %q", doc.Text(), text)
				}
			})
		})
	}
}

// A command that does not apply never touches the buffer or records an edit.
func TestProperty_NotAppliedLeavesBuffer(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")
		op := rapid.SampledFrom([]command.Op{command.OpDecodeBase64, command.OpDecodeURL}).Draw(t, "op")

		doc := editor.NewDocument(text)
		doc.SelectAll()

		res, err := command.NewDispatcher(doc, command.Options{}).Run(context.Background(), op)
		if err == nil && res.Status == command.StatusApplied {
			return
		}
		if doc.Text() != text {
			t.Fatalf("%v (%v, err=%v) changed buffer to %q", op, res.Status, err, doc.Text())
		}
		if len(doc.Edits()) != 0 {
			t.Fatalf("%v recorded %d edits without applying", op, len(doc.Edits()))
		}
	})
}
