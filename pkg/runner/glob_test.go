package runner

import "testing"

func TestMatchGlob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"notes.txt", "*.txt", true},
		{"docs/notes.txt", "*.txt", true},
		{"docs/notes.txt", "docs/*.txt", true},
		{"docs/notes.md", "docs/*.txt", false},
		{"vendor/a/b.go", "vendor/**", true},
		{"vendor", "vendor/**", true},
		{"src/vendor/a.go", "vendor/**", false},
		{"a/b/build/out.txt", "**/build/**", true},
		{"a/b/build", "**/build", true},
		{"a/b/c.min.js", "**/*.min.js", true},
		{"a/b/c.js", "**/*.min.js", false},
		{"anything/at/all", "**", true},
		{"docs/a/b.txt", "docs/**/*.txt", true},
		{"src/a/b.txt", "docs/**/*.txt", false},
		{"x.txt", "[", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"|"+tt.path, func(t *testing.T) {
			t.Parallel()

			if got := matchGlob(tt.path, tt.pattern); got != tt.want {
				t.Errorf("matchGlob(%q, %q) = %v, want %v", tt.path, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestHasMatchingExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path       string
		extensions []string
		want       bool
	}{
		{"notes.txt", []string{".txt"}, true},
		{"notes.txt", []string{"txt"}, true},
		{"NOTES.TXT", []string{".txt"}, true},
		{"notes.txt", []string{".md", ".go"}, false},
		{"Makefile", []string{".txt"}, false},
	}

	for _, tt := range tests {
		if got := hasMatchingExtension(tt.path, tt.extensions); got != tt.want {
			t.Errorf("hasMatchingExtension(%q, %v) = %v, want %v", tt.path, tt.extensions, got, tt.want)
		}
	}
}
