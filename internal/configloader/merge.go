package configloader

import (
	"slices"

	"github.com/yaklabco/stringutils/pkg/config"
)

// merge layers override on top of base and returns a new Config.
//   - Scalars: override wins when non-zero.
//   - Pointers: override wins when non-nil, so an explicit false is kept.
//   - Slices: override replaces base when non-nil.
//   - CLI booleans: only true is carried over.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base.Clone()
	}

	result := base.Clone()

	if override.TabWidth != 0 {
		result.TabWidth = override.TabWidth
	}
	if override.SoftTabs != nil {
		result.SoftTabs = config.Bool(*override.SoftTabs)
	}
	if override.ReverseUnit != "" {
		result.ReverseUnit = override.ReverseUnit
	}
	if override.Extensions != nil {
		result.Extensions = slices.Clone(override.Extensions)
	}
	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}

	if override.Backups.Enabled != nil {
		result.Backups.Enabled = config.Bool(*override.Backups.Enabled)
	}
	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	result.Write = result.Write || override.Write
	result.DryRun = result.DryRun || override.DryRun
	result.NoBackups = result.NoBackups || override.NoBackups

	return result
}

// MergeAll merges configs in order, later ones taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for _, next := range configs[1:] {
		result = merge(result, next)
	}
	return result
}
