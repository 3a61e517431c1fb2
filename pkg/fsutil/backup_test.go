package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/stringutils/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode fsutil.BackupMode
		want string
	}{
		{fsutil.BackupModeSidecar, "/tmp/a.txt.stringutils.bak"},
		{fsutil.BackupModeNone, ""},
		{fsutil.BackupMode("other"), "/tmp/a.txt.stringutils.bak"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			t.Parallel()

			if got := fsutil.BackupPath("/tmp/a.txt", tt.mode); got != tt.want {
				t.Errorf("BackupPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBackupLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, path, "original")
	cfg := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}

	created, err := fsutil.CreateBackup(ctx, path, cfg)
	if err != nil || !created {
		t.Fatalf("CreateBackup() = %v, %v", created, err)
	}
	if !fsutil.BackupExists(path, cfg.Mode) {
		t.Fatal("BackupExists() = false")
	}

	writeFile(t, path, "changed once")
	created, err = fsutil.CreateBackup(ctx, path, cfg)
	if err != nil || created {
		t.Errorf("second CreateBackup() = %v, %v; want false, nil", created, err)
	}

	writeFile(t, path, "changed twice")
	restored, err := fsutil.RestoreBackup(ctx, path, cfg.Mode)
	if err != nil || !restored {
		t.Fatalf("RestoreBackup() = %v, %v", restored, err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "original" {
		t.Errorf("restored content = %q, want %q", got, "original")
	}

	removed, err := fsutil.RemoveBackup(path, cfg.Mode)
	if err != nil || !removed {
		t.Errorf("RemoveBackup() = %v, %v", removed, err)
	}
	removed, err = fsutil.RemoveBackup(path, cfg.Mode)
	if err != nil || removed {
		t.Errorf("second RemoveBackup() = %v, %v; want false, nil", removed, err)
	}
}

func TestCreateBackup_Disabled(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, path, "x")

	for _, cfg := range []fsutil.BackupConfig{
		fsutil.DefaultBackupConfig(),
		{Enabled: true, Mode: fsutil.BackupModeNone},
	} {
		created, err := fsutil.CreateBackup(context.Background(), path, cfg)
		if err != nil || created {
			t.Errorf("CreateBackup(%+v) = %v, %v; want false, nil", cfg, created, err)
		}
	}
	if fsutil.BackupExists(path, fsutil.BackupModeSidecar) {
		t.Error("backup written while disabled")
	}
}

func TestRestoreBackup_Missing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a.txt")
	restored, err := fsutil.RestoreBackup(context.Background(), path, fsutil.BackupModeSidecar)
	if err != nil || restored {
		t.Errorf("RestoreBackup() = %v, %v; want false, nil", restored, err)
	}
}
