package editor_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/stringutils/pkg/editor"
)

func TestParseRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    editor.Range
		wantErr bool
	}{
		{input: "1:22-2:7", want: editor.Range{Start: editor.Position{Line: 1, Column: 22}, End: editor.Position{Line: 2, Column: 7}}},
		{input: " 3:1-3:1 ", want: editor.Range{Start: editor.Position{Line: 3, Column: 1}, End: editor.Position{Line: 3, Column: 1}}},
		{input: "1:1", wantErr: true},
		{input: "1-2:3", wantErr: true},
		{input: "0:1-1:1", wantErr: true},
		{input: "1:0-1:1", wantErr: true},
		{input: "a:b-c:d", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := editor.ParseRange(tt.input)
			if tt.wantErr {
				if !errors.Is(err, editor.ErrInvalidRange) {
					t.Fatalf("ParseRange(%q) error = %v, want ErrInvalidRange", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRange(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseRange(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRange_String(t *testing.T) {
	t.Parallel()

	r := editor.Range{Start: editor.Position{Line: 1, Column: 2}, End: editor.Position{Line: 3, Column: 4}}
	if got := r.String(); got != "1:2-3:4" {
		t.Errorf("String() = %q", got)
	}
}
