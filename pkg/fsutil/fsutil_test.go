package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yaklabco/stringutils/pkg/fsutil"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("returns content and info", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.txt")
		writeFile(t, path, "hello\tworld")

		content, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(content) != "hello\tworld" {
			t.Errorf("content = %q", content)
		}
		if info.Path != path || info.Size != int64(len(content)) {
			t.Errorf("info = %+v", info)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, fsutil.ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		if !errors.Is(err, fsutil.ErrIsDirectory) {
			t.Errorf("error = %v, want ErrIsDirectory", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := fsutil.ReadFile(ctx, filepath.Join(t.TempDir(), "a.txt"))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	})
}

func TestCheckModified(t *testing.T) {
	t.Parallel()

	t.Run("unchanged", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.txt")
		writeFile(t, path, "same")
		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatal(err)
		}

		modified, err := fsutil.CheckModified(context.Background(), info)
		if err != nil || modified {
			t.Errorf("CheckModified() = %v, %v; want false, nil", modified, err)
		}
	})

	t.Run("content changed", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.txt")
		writeFile(t, path, "before")
		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatal(err)
		}
		writeFile(t, path, "after!")

		modified, err := fsutil.CheckModified(context.Background(), info)
		if err != nil || !modified {
			t.Errorf("CheckModified() = %v, %v; want true, nil", modified, err)
		}
	})

	t.Run("same size and mtime but different bytes", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.txt")
		writeFile(t, path, "aaaa")
		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatal(err)
		}
		writeFile(t, path, "bbbb")
		if err := os.Chtimes(path, time.Now(), info.ModTime); err != nil {
			t.Fatal(err)
		}

		quick, err := fsutil.CheckModifiedQuick(context.Background(), info)
		if err != nil || quick {
			t.Errorf("CheckModifiedQuick() = %v, %v; want false, nil", quick, err)
		}
		full, err := fsutil.CheckModified(context.Background(), info)
		if err != nil || !full {
			t.Errorf("CheckModified() = %v, %v; want true, nil", full, err)
		}
	})

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.txt")
		writeFile(t, path, "x")
		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Remove(path); err != nil {
			t.Fatal(err)
		}

		modified, err := fsutil.CheckModified(context.Background(), info)
		if err != nil || !modified {
			t.Errorf("CheckModified() = %v, %v; want true, nil", modified, err)
		}
	})

	t.Run("nil info", func(t *testing.T) {
		t.Parallel()

		if _, err := fsutil.CheckModified(context.Background(), nil); !errors.Is(err, fsutil.ErrNilFileInfo) {
			t.Errorf("error = %v, want ErrNilFileInfo", err)
		}
	})
}
