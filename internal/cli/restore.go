package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/stringutils/internal/configloader"
	"github.com/yaklabco/stringutils/internal/logging"
	"github.com/yaklabco/stringutils/pkg/fsutil"
	"github.com/yaklabco/stringutils/pkg/runner"
)

func newRestoreCommand() *cobra.Command {
	var keepBackup bool

	cmd := &cobra.Command{
		Use:   "restore <file>...",
		Short: "Restore files from their backups",
		Long: `Copy the ` + fsutil.BackupSuffix + ` backup of each file back over the file,
undoing an in-place rewrite made with --write. The backup is removed
afterwards unless --keep-backup is set. Files without a backup are left alone
and reported.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(cmd, args, keepBackup)
		},
	}

	cmd.Flags().BoolVar(&keepBackup, "keep-backup", false, "keep the backup after restoring")

	return cmd
}

func runRestore(cmd *cobra.Command, paths []string, keepBackup bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return errors.Join(ErrConfigLoad, err)
	}

	mode := runner.BackupConfigFromConfig(loadResult.Config).Mode
	if mode == fsutil.BackupModeNone {
		return fmt.Errorf("%w: backups.mode is %q", ErrUsage, fsutil.BackupModeNone)
	}

	var missing []string
	for _, path := range paths {
		if !fsutil.BackupExists(path, mode) {
			missing = append(missing, path)
			continue
		}

		if _, err := fsutil.RestoreBackup(ctx, path, mode); err != nil {
			return fmt.Errorf("%w: %s: %w", runner.ErrWriteFailure, path, err)
		}
		if !keepBackup {
			if _, err := fsutil.RemoveBackup(path, mode); err != nil {
				return fmt.Errorf("%w: %s: %w", runner.ErrWriteFailure, path, err)
			}
		}

		logger.Debug("backup restored", logging.FieldPath, path)
		fmt.Fprintf(cmd.OutOrStdout(), "restored %s\n", path)
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: no backup for %s", runner.ErrFileNotFound, strings.Join(missing, ", "))
	}
	return nil
}
