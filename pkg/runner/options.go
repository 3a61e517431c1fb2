// Package runner applies one stringutils command to many files.
package runner

import (
	"github.com/charmbracelet/log"

	"github.com/yaklabco/stringutils/pkg/command"
	"github.com/yaklabco/stringutils/pkg/config"
)

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified files or directories.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions restricts directory walks to these extensions
	// (lowercase, with leading dot). Empty means every file.
	// Files named explicitly in Paths are never filtered by extension.
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	ExcludeGlobs []string

	// IncludeVendored disables the skip of vendored directories such as
	// node_modules or vendor, and of generated files such as lock files,
	// during directory walks.
	IncludeVendored bool

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// Op is the command applied to every file.
	Op command.Op

	// Selection is the selection each file starts with.
	Selection SelectionSpec

	// Config is the resolved configuration for this run.
	Config *config.Config

	// Logger receives per-file debug output. Nil uses the context logger.
	Logger *log.Logger
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// effectiveConfig returns Config, or defaults when nil.
func (o Options) effectiveConfig() *config.Config {
	if o.Config == nil {
		return config.NewConfig()
	}
	return o.Config
}
