// Package config defines the configuration types for stringutils.
// These are plain data structures; discovery and merging live in
// internal/configloader.
package config

// Defaults.
const (
	DefaultTabWidth    = 2
	DefaultReverseUnit = "codepoint"
	DefaultBackupMode  = "sidecar"
)

// BackupsConfig controls backups taken before a file is rewritten.
type BackupsConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	Mode    string `yaml:"mode,omitempty"` // "sidecar" or "none"
}

// OutputFormat selects how results are printed.
type OutputFormat string

const (
	// FormatContent prints the transformed buffer.
	FormatContent OutputFormat = "content"
	// FormatText prints one status line per file and a summary.
	FormatText OutputFormat = "text"
	// FormatJSON prints a machine-readable report.
	FormatJSON OutputFormat = "json"
	// FormatDiff prints a unified diff per changed file.
	FormatDiff OutputFormat = "diff"
)

// Formats lists the valid output formats.
func Formats() []OutputFormat {
	return []OutputFormat{FormatContent, FormatText, FormatJSON, FormatDiff}
}

// IsValid reports whether f is a known format.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatContent, FormatText, FormatJSON, FormatDiff:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure.
type Config struct {
	// TabWidth is the number of columns per tab stop.
	TabWidth int `yaml:"tab_width,omitempty"`

	// SoftTabs is the soft-tabs setting a buffer starts with.
	SoftTabs *bool `yaml:"soft_tabs,omitempty"`

	// ReverseUnit is "codepoint" or "grapheme".
	ReverseUnit string `yaml:"reverse_unit,omitempty"`

	// Extensions limits directory walks to these file extensions.
	// Empty means every file.
	Extensions []string `yaml:"extensions,omitempty"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore,omitempty"`

	// Backups configures backups in write mode.
	Backups BackupsConfig `yaml:"backups,omitempty"`

	// CLI-level options (not persisted to config files).

	// Write rewrites files in place instead of printing results.
	Write bool `yaml:"-"`

	// DryRun shows the diff a write would produce.
	DryRun bool `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs is the number of parallel workers. 0 means GOMAXPROCS.
	Jobs int `yaml:"-"`

	// NoBackups disables backups for this run.
	NoBackups bool `yaml:"-"`
}

// NewConfig returns a Config with defaults filled in.
func NewConfig() *Config {
	return &Config{
		TabWidth:    DefaultTabWidth,
		SoftTabs:    Bool(true),
		ReverseUnit: DefaultReverseUnit,
		Backups: BackupsConfig{
			Enabled: Bool(true),
			Mode:    DefaultBackupMode,
		},
	}
}

// SoftTabsEnabled reports the effective soft-tabs setting. Unset means on.
func (c *Config) SoftTabsEnabled() bool {
	return c.SoftTabs == nil || *c.SoftTabs
}

// BackupsEnabled reports whether backups will be taken on write.
func (c *Config) BackupsEnabled() bool {
	if c.NoBackups || c.Backups.Mode == "none" {
		return false
	}
	return c.Backups.Enabled != nil && *c.Backups.Enabled
}

// EffectiveFormat returns Format, or the default for the mode: diff for a
// dry run, text when writing, content otherwise.
func (c *Config) EffectiveFormat() OutputFormat {
	if c.Format != "" {
		return c.Format
	}
	if c.DryRun {
		return FormatDiff
	}
	if c.Write {
		return FormatText
	}
	return FormatContent
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}
