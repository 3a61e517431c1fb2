package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/stringutils/pkg/config"
)

// EnvVarPrefix is the prefix for all stringutils environment variables.
const EnvVarPrefix = "STRINGUTILS_"

type envKind int

const (
	envString envKind = iota
	envBool
	envInt
	envSlice
)

// envVar binds one environment variable to a config field.
type envVar struct {
	kind envKind
	doc  string
	set  func(cfg *config.Config, v envValue)
}

// envValue holds a parsed value; only the field matching the kind is set.
type envValue struct {
	s    string
	b    bool
	i    int
	list []string
}

// envVars maps variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = map[string]envVar{
	"TAB_WIDTH": {envInt, "Columns per tab stop",
		func(c *config.Config, v envValue) { c.TabWidth = v.i }},
	"SOFT_TABS": {envBool, "Initial soft-tabs setting: true or false",
		func(c *config.Config, v envValue) { c.SoftTabs = config.Bool(v.b) }},
	"REVERSE_UNIT": {envString, "Reverse unit: codepoint or grapheme",
		func(c *config.Config, v envValue) { c.ReverseUnit = v.s }},
	"EXTENSIONS": {envSlice, "Comma-separated file extensions to visit",
		func(c *config.Config, v envValue) { c.Extensions = v.list }},
	"IGNORE": {envSlice, "Comma-separated list of ignore patterns",
		func(c *config.Config, v envValue) { c.Ignore = v.list }},
	"BACKUPS_ENABLED": {envBool, "Back up files before rewriting: true or false",
		func(c *config.Config, v envValue) { c.Backups.Enabled = config.Bool(v.b) }},
	"BACKUPS_MODE": {envString, "Backup mode: sidecar or none",
		func(c *config.Config, v envValue) { c.Backups.Mode = v.s }},
	"WRITE": {envBool, "Rewrite files in place: true or false",
		func(c *config.Config, v envValue) { c.Write = v.b }},
	"DRY_RUN": {envBool, "Show the diff instead of writing: true or false",
		func(c *config.Config, v envValue) { c.DryRun = v.b }},
	"FORMAT": {envString, "Output format: content, text, json, or diff",
		func(c *config.Config, v envValue) { c.Format = config.OutputFormat(v.s) }},
	"JOBS": {envInt, "Number of parallel workers (0 = auto)",
		func(c *config.Config, v envValue) { c.Jobs = v.i }},
	"NO_BACKUPS": {envBool, "Disable backups: true or false",
		func(c *config.Config, v envValue) { c.NoBackups = v.b }},
}

// LoadFromEnv applies STRINGUTILS_* overrides to cfg.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, suffix := range sortedEnvSuffixes() {
		name := EnvVarPrefix + suffix
		raw := os.Getenv(name)
		if raw == "" {
			continue
		}

		ev := envVars[suffix]
		value, err := parseEnvValue(ev.kind, raw)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, name, err)
		}
		ev.set(cfg, value)
	}
	return nil
}

func parseEnvValue(kind envKind, raw string) (envValue, error) {
	switch kind {
	case envBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return envValue{}, fmt.Errorf("invalid boolean %q (expected true/false/1/0)", raw)
		}
		return envValue{b: b}, nil
	case envInt:
		i, err := strconv.Atoi(raw)
		if err != nil {
			return envValue{}, fmt.Errorf("invalid integer %q", raw)
		}
		return envValue{i: i}, nil
	case envSlice:
		return envValue{list: parseSliceValue(raw)}, nil
	default:
		return envValue{s: raw}, nil
	}
}

// parseSliceValue splits a comma-separated list and drops empty items.
func parseSliceValue(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// EnvVarDoc describes one supported environment variable.
type EnvVarDoc struct {
	Name        string
	Description string
}

// ListEnvVars returns every supported variable, sorted by name.
func ListEnvVars() []EnvVarDoc {
	suffixes := sortedEnvSuffixes()
	out := make([]EnvVarDoc, 0, len(suffixes))
	for _, suffix := range suffixes {
		out = append(out, EnvVarDoc{Name: EnvVarPrefix + suffix, Description: envVars[suffix].doc})
	}
	return out
}

func sortedEnvSuffixes() []string {
	keys := make([]string, 0, len(envVars))
	for k := range envVars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
