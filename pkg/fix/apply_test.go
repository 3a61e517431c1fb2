package fix_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/stringutils/pkg/fix"
)

func TestApplyEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		edits   []fix.TextEdit
		want    string
	}{
		{
			name:    "empty edits returns original",
			content: "hello world",
			want:    "hello world",
		},
		{
			name:    "single replacement",
			content: "hello world",
			edits:   []fix.TextEdit{fix.Replace(0, 5, "hi")},
			want:    "hi world",
		},
		{
			name:    "insertion",
			content: "hello world",
			edits:   []fix.TextEdit{fix.Replace(5, 5, " beautiful")},
			want:    "hello beautiful world",
		},
		{
			name:    "unsorted edits",
			content: "abcdef",
			edits: []fix.TextEdit{
				fix.Replace(4, 6, "ZZ"),
				fix.Replace(0, 2, "XX"),
			},
			want: "XXcdZZ",
		},
		{
			name:    "adjacent edits",
			content: "abcdef",
			edits: []fix.TextEdit{
				fix.Replace(0, 2, "XX"),
				fix.Replace(2, 4, "YY"),
			},
			want: "XXYYef",
		},
		{
			name:    "replace entire content",
			content: "hello",
			edits:   []fix.TextEdit{fix.Replace(0, 5, "")},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fix.ApplyEdits([]byte(tt.content), tt.edits)
			if err != nil {
				t.Fatalf("ApplyEdits() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("ApplyEdits() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyEdits_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		edits []fix.TextEdit
	}{
		{name: "negative start", edits: []fix.TextEdit{fix.Replace(-1, 2, "")}},
		{name: "end before start", edits: []fix.TextEdit{fix.Replace(3, 2, "")}},
		{name: "past end", edits: []fix.TextEdit{fix.Replace(0, 99, "")}},
		{name: "overlap", edits: []fix.TextEdit{fix.Replace(0, 3, "a"), fix.Replace(2, 4, "b")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			content := []byte("hello")
			got, err := fix.ApplyEdits(content, tt.edits)

			var verr *fix.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if string(got) != "hello" {
				t.Errorf("content changed on error: %q", got)
			}
		})
	}
}

func TestApplyEdit(t *testing.T) {
	t.Parallel()

	got, err := fix.ApplyEdit("hello world", fix.Replace(6, 11, "there"))
	if err != nil {
		t.Fatalf("ApplyEdit() error = %v", err)
	}
	if got != "hello there" {
		t.Errorf("ApplyEdit() = %q", got)
	}

	if _, err := fix.ApplyEdit("abc", fix.Replace(2, 5, "")); err == nil {
		t.Error("expected error for out-of-range edit")
	}
}

func TestTextEdit_Delta(t *testing.T) {
	t.Parallel()

	edit := fix.Replace(2, 5, "ab")
	if edit.Delta() != -1 {
		t.Errorf("Delta() = %d, want -1", edit.Delta())
	}
	if edit.NewEnd() != 4 {
		t.Errorf("NewEnd() = %d, want 4", edit.NewEnd())
	}
}

func TestValidateEdits(t *testing.T) {
	t.Parallel()

	if err := fix.ValidateEdits([]fix.TextEdit{fix.Replace(3, 5, ""), fix.Replace(0, 3, "")}, 5); err != nil {
		t.Errorf("ValidateEdits() unexpected error: %v", err)
	}

	err := fix.ValidateEdits([]fix.TextEdit{fix.Replace(2, 4, ""), fix.Replace(0, 3, "")}, 5)
	var verr *fix.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Message != "overlaps previous edit" {
		t.Errorf("Message = %q", verr.Message)
	}
}
