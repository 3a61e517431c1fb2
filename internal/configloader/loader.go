// Package configloader resolves the stringutils configuration.
// It implements XDG-compliant discovery, layered merging, environment
// variable overrides and validation.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/stringutils/pkg/config"
	"github.com/yaklabco/stringutils/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files.
const configFilePermissions = 0o644

// ProjectConfigName is the file written by WriteProjectConfig.
const ProjectConfigName = ".stringutils.yml"

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is where the project config search starts.
	// Defaults to the current directory.
	WorkingDir string

	// ExplicitPath is the --config path. It is loaded after the project
	// config.
	ExplicitPath string

	IgnoreSystemConfig  bool
	IgnoreUserConfig    bool
	IgnoreProjectConfig bool
	IgnoreEnv           bool

	// CLIConfig holds values from command-line flags. Highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were loaded, lowest precedence first.
	LoadedFrom []string

	// Warnings contains non-fatal issues found while loading.
	Warnings []string
}

// Load resolves the final configuration.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (STRINGUTILS_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.stringutils.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/stringutils/config.yaml)
//  6. System config (/etc/stringutils/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		if workDir, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	// Findings already reported against a file are not repeated for the
	// merged configuration.
	reported := make(map[string]bool)

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig},
		{"explicit", paths.Explicit, false},
	}
	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}
		fileCfg, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}

		validation := ValidateWithFile(merge(config.NewConfig(), fileCfg), layer.path)
		if !validation.Valid() {
			return nil, &validation.Errors[0]
		}
		for _, w := range validation.Warnings {
			reported[w.Message] = true
			result.Warnings = append(result.Warnings, w.Error())
		}

		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		if !reported[w.Message] {
			result.Warnings = append(result.Warnings, w.Message)
		}
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile reads and parses one YAML config file.
func loadConfigFile(path string) (*config.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// WriteConfigFile writes content to path atomically. An existing file is
// only replaced when force is set. Reports whether the file changed.
func WriteConfigFile(ctx context.Context, path string, content []byte, force bool) (bool, error) {
	if !force && fileExists(path) {
		return false, fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	changed, err := fsutil.WriteAtomicIfChanged(ctx, path, content, configFilePermissions)
	if err != nil {
		return false, fmt.Errorf("write file: %w", err)
	}
	return changed, nil
}

// WriteProjectConfig writes content to dir/.stringutils.yml with
// WriteConfigFile. Returns the path and whether the file changed.
func WriteProjectConfig(ctx context.Context, dir string, content []byte, force bool) (string, bool, error) {
	path := filepath.Join(dir, ProjectConfigName)
	changed, err := WriteConfigFile(ctx, path, content, force)
	return path, changed, err
}
