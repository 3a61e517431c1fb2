package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/stringutils/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes and sets mode", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.txt")

		if err := fsutil.WriteAtomic(context.Background(), path, []byte("aGVsbG8="), 0o600); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "aGVsbG8=" {
			t.Errorf("content = %q", got)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if stat.Mode().Perm() != 0o600 {
			t.Errorf("mode = %v, want 0600", stat.Mode().Perm())
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("temp file left behind: %v", entries)
		}
	})

	t.Run("missing directory leaves nothing", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "out.txt")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0); err == nil {
			t.Error("expected error")
		}
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a.txt")
	ctx := context.Background()

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte("one"), 0)
	if err != nil || !written {
		t.Fatalf("first write = %v, %v", written, err)
	}

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("one"), 0)
	if err != nil || written {
		t.Errorf("identical write = %v, %v; want false, nil", written, err)
	}

	written, err = fsutil.WriteAtomicIfChanged(ctx, path, []byte("two"), 0)
	if err != nil || !written {
		t.Errorf("changed write = %v, %v; want true, nil", written, err)
	}
}

func TestReplace(t *testing.T) {
	t.Parallel()

	t.Run("keeps mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "script.sh")
		if err := os.WriteFile(path, []byte("\techo hi\n"), 0o755); err != nil {
			t.Fatal(err)
		}
		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatal(err)
		}

		if err := fsutil.Replace(context.Background(), info, []byte("  echo hi\n")); err != nil {
			t.Fatalf("Replace() error = %v", err)
		}

		stat, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if stat.Mode().Perm() != 0o755 {
			t.Errorf("mode = %v, want 0755", stat.Mode().Perm())
		}
	})

	t.Run("refuses concurrent modification", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "a.txt")
		writeFile(t, path, "original")
		_, info, err := fsutil.ReadFile(context.Background(), path)
		if err != nil {
			t.Fatal(err)
		}
		writeFile(t, path, "someone else wrote this")

		err = fsutil.Replace(context.Background(), info, []byte("ours"))
		if !errors.Is(err, fsutil.ErrModified) {
			t.Fatalf("error = %v, want ErrModified", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "someone else wrote this" {
			t.Errorf("content = %q", got)
		}
	})
}
