package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/stringutils/internal/logging"
	"github.com/yaklabco/stringutils/pkg/command"
	"github.com/yaklabco/stringutils/pkg/config"
	"github.com/yaklabco/stringutils/pkg/detect"
	"github.com/yaklabco/stringutils/pkg/editor"
	"github.com/yaklabco/stringutils/pkg/fix"
	"github.com/yaklabco/stringutils/pkg/fsutil"
	"github.com/yaklabco/stringutils/pkg/transform"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrTransform indicates the command failed on the file's content.
	ErrTransform = errors.New("transform failed")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// Skip reasons.
const (
	SkipBinary      = "binary file"
	SkipInvalidUTF8 = "not valid UTF-8"
	SkipModified    = "file modified during processing"
)

// PipelineResult is the outcome of running a command over one file.
type PipelineResult struct {
	// Path is the file path that was processed.
	Path string

	// Language is the detected language of the file.
	Language string

	// Command is the name of the command that ran.
	Command string

	// Ran is true once the command has run over the buffer.
	Ran bool

	// Status and Target come from the command driver. Valid when Ran.
	Status command.Status
	Target command.Target

	// Selection is the buffer's selection after the command ran.
	Selection editor.Range

	// SoftTabs is the buffer's soft-tabs setting after the command ran.
	// The whitespace commands update it.
	SoftTabs bool

	// OriginalInfo is the file state before processing. Nil for stdin.
	OriginalInfo *fsutil.FileInfo

	// Original is the content that was read.
	Original []byte

	// Content is the buffer after the command ran.
	Content []byte

	// Modified is true if Content differs from Original.
	Modified bool

	// Diff is the unified diff from Original to Content (nil if unmodified).
	Diff *fix.Diff

	// Skipped is true if the file was left alone before or after the command ran.
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupCreated is true if a backup was created for this file.
	BackupCreated bool

	// Written is true if the file was written to disk.
	Written bool
}

// Summary returns a human-readable summary of the pipeline result.
func (pr *PipelineResult) Summary() string {
	switch {
	case pr.Skipped:
		return "skipped: " + pr.SkipReason
	case pr.Written && pr.BackupCreated:
		return "written (backup created)"
	case pr.Written:
		return "written"
	case pr.Modified:
		return "changed"
	case pr.Status == command.StatusApplied:
		return "unchanged"
	default:
		return pr.Status.String()
	}
}

// PipelineOptions controls pipeline behavior.
type PipelineOptions struct {
	// Write rewrites modified files in place.
	Write bool

	// DryRun generates diffs without writing files, even when Write is set.
	DryRun bool

	// Backup configures backup behavior.
	Backup fsutil.BackupConfig

	// StrictRaceDetection uses hash comparison for modification detection.
	// When false, only mod time and size are checked before the final write.
	StrictRaceDetection bool

	// TabWidth is the buffer's tab length.
	TabWidth int

	// SoftTabs is the buffer's initial soft-tabs setting.
	SoftTabs bool

	// ReverseUnit selects the unit for reverse-selection.
	ReverseUnit transform.ReverseUnit

	// Selection is the selection each buffer starts with.
	Selection SelectionSpec
}

// DefaultPipelineOptions returns sensible defaults.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		Backup:              fsutil.DefaultBackupConfig(),
		StrictRaceDetection: true,
		TabWidth:            config.DefaultTabWidth,
		SoftTabs:            true,
		ReverseUnit:         transform.ReverseCodePoint,
	}
}

// PipelineOptionsFromConfig derives pipeline options from cfg.
func PipelineOptionsFromConfig(cfg *config.Config, sel SelectionSpec) PipelineOptions {
	opts := DefaultPipelineOptions()
	opts.Selection = sel
	if cfg == nil {
		return opts
	}

	opts.Write = cfg.Write
	opts.DryRun = cfg.DryRun
	opts.Backup = BackupConfigFromConfig(cfg)
	opts.SoftTabs = cfg.SoftTabsEnabled()
	if cfg.TabWidth > 0 {
		opts.TabWidth = cfg.TabWidth
	}
	if unit := transform.ReverseUnit(cfg.ReverseUnit); unit.IsValid() {
		opts.ReverseUnit = unit
	}
	return opts
}

// BackupConfigFromConfig creates an fsutil.BackupConfig from config.Config.
func BackupConfigFromConfig(cfg *config.Config) fsutil.BackupConfig {
	if cfg == nil {
		return fsutil.DefaultBackupConfig()
	}
	mode := fsutil.BackupMode(cfg.Backups.Mode)
	if mode == "" {
		mode = fsutil.BackupModeSidecar
	}
	return fsutil.BackupConfig{
		Enabled: cfg.BackupsEnabled(),
		Mode:    mode,
	}
}

// Pipeline runs one command over single files.
type Pipeline struct {
	// Op is the command to run.
	Op command.Op

	// Logger receives debug output. Nil uses the logger carried by the
	// context passed to each call.
	Logger *log.Logger
}

// NewPipeline creates a pipeline running op.
func NewPipeline(op command.Op, logger *log.Logger) *Pipeline {
	return &Pipeline{Op: op, Logger: logger}
}

// ProcessFile runs the pipeline for a single file.
//
// The pipeline performs the following steps:
//  1. Read and hash the original file.
//  2. Skip binary files and content that is not UTF-8.
//  3. Load the content into a Document, select, and run the command.
//  4. Generate a diff if the content changed.
//  5. In write mode: check for concurrent modifications, create a
//     backup if enabled, and write the new content atomically.
func (p *Pipeline) ProcessFile(ctx context.Context, path string, opts PipelineOptions) (*PipelineResult, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result, err := p.ProcessContent(ctx, path, content, opts)
	if err != nil {
		return nil, err
	}
	result.OriginalInfo = info

	if !result.Modified || !opts.Write || opts.DryRun {
		return result, nil
	}

	if err := p.write(ctx, result, opts); err != nil {
		return nil, err
	}
	return result, nil
}

// ProcessContent runs the command over in-memory content. It never writes.
func (p *Pipeline) ProcessContent(
	ctx context.Context,
	path string,
	content []byte,
	opts PipelineOptions,
) (*PipelineResult, error) {
	result := &PipelineResult{
		Path:     path,
		Command:  p.Op.String(),
		Original: content,
		Content:  content,
	}

	if detect.IsBinary(content) {
		return p.skip(ctx, result, SkipBinary), nil
	}
	if !utf8.Valid(content) {
		return p.skip(ctx, result, SkipInvalidUTF8), nil
	}
	result.Language = detect.Language(path, content)

	doc := editor.NewDocument(string(content))
	if opts.TabWidth > 0 {
		doc.SetTabLength(opts.TabWidth)
	}
	doc.SetSoftTabs(opts.SoftTabs)
	if err := opts.Selection.apply(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dispatcher := command.NewDispatcher(doc, command.Options{
		ReverseUnit: opts.ReverseUnit,
		Logger:      p.logger(ctx),
	})
	res, err := dispatcher.Run(ctx, p.Op)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("processing cancelled: %w", err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrTransform, path, err)
	}

	result.Ran = true
	result.Status = res.Status
	result.Target = res.Target
	result.Selection = doc.SelectedPositionRange()
	result.SoftTabs = doc.SoftTabs()
	result.Content = []byte(doc.Text())
	result.Modified = doc.Text() != string(content)

	if result.Modified {
		result.Diff = fix.GenerateDiff(path, content, result.Content)
	}

	p.logger(ctx).Debug("file processed",
		logging.FieldPath, path,
		logging.FieldCommand, result.Command,
		logging.FieldStatus, result.Status,
		logging.FieldTarget, result.Target,
		logging.FieldSoftTabs, result.SoftTabs,
		logging.FieldLanguage, result.Language,
	)

	return result, nil
}

// write performs the guarded in-place write of a modified result.
func (p *Pipeline) write(ctx context.Context, result *PipelineResult, opts PipelineOptions) error {
	info := result.OriginalInfo

	modified, err := checkModified(ctx, info, opts.StrictRaceDetection)
	if err != nil {
		return err
	}
	if modified {
		p.skip(ctx, result, SkipModified)
		return nil
	}

	if opts.Backup.Enabled {
		created, err := fsutil.CreateBackup(ctx, result.Path, opts.Backup)
		if err != nil {
			return fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	// Replace re-checks the file immediately before writing.
	err = fsutil.Replace(ctx, info, result.Content)
	switch {
	case errors.Is(err, fsutil.ErrModified):
		if result.BackupCreated {
			if _, rmErr := fsutil.RemoveBackup(result.Path, opts.Backup.Mode); rmErr != nil {
				return fmt.Errorf("remove backup: %w", rmErr)
			}
			result.BackupCreated = false
		}
		p.skip(ctx, result, SkipModified)
		return nil
	case err != nil:
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	result.Written = true
	return nil
}

func (p *Pipeline) skip(ctx context.Context, result *PipelineResult, reason string) *PipelineResult {
	result.Skipped = true
	result.SkipReason = reason
	p.logger(ctx).Debug("file skipped", logging.FieldPath, result.Path, "reason", reason)
	return result
}

func (p *Pipeline) logger(ctx context.Context) *log.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return logging.FromContext(ctx)
}

// checkModified checks if a file has been modified since it was read.
func checkModified(ctx context.Context, info *fsutil.FileInfo, strict bool) (bool, error) {
	var modified bool
	var err error

	if strict {
		modified, err = fsutil.CheckModified(ctx, info)
	} else {
		modified, err = fsutil.CheckModifiedQuick(ctx, info)
	}

	if err != nil {
		return false, fmt.Errorf("check modified: %w", err)
	}
	return modified, nil
}

// categorizeError wraps an error with the appropriate pipeline error type.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}

	return err
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrTransform) ||
		errors.Is(err, ErrWriteFailure)
}
