package configloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/stringutils/pkg/config"
)

// projectDir returns a temp dir marked as a VCS root so the upward search
// stays inside it.
func projectDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func isolated(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), isolated(projectDir(t)))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.TabWidth != config.DefaultTabWidth {
		t.Errorf("TabWidth = %d, want %d", cfg.TabWidth, config.DefaultTabWidth)
	}
	if !cfg.SoftTabsEnabled() {
		t.Error("soft tabs should default on")
	}
	if cfg.ReverseUnit != "codepoint" {
		t.Errorf("ReverseUnit = %q", cfg.ReverseUnit)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("LoadedFrom = %v, want none", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeConfig(t, filepath.Join(dir, ".stringutils.yml"), `
tab_width: 4
soft_tabs: false
reverse_unit: grapheme
`)

	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	result, err := Load(context.Background(), isolated(sub))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.TabWidth != 4 {
		t.Errorf("TabWidth = %d, want 4", result.Config.TabWidth)
	}
	if result.Config.SoftTabsEnabled() {
		t.Error("soft_tabs: false in project config was not applied")
	}
	if result.Config.ReverseUnit != "grapheme" {
		t.Errorf("ReverseUnit = %q", result.Config.ReverseUnit)
	}
	if len(result.LoadedFrom) != 1 {
		t.Errorf("LoadedFrom = %v, want 1 file", result.LoadedFrom)
	}
}

func TestLoad_ExplicitOverridesProject(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeConfig(t, filepath.Join(dir, ".stringutils.yml"), "tab_width: 4\nignore: [\"a/**\"]\n")
	explicit := filepath.Join(dir, "custom.yml")
	writeConfig(t, explicit, "tab_width: 8\n")

	opts := isolated(dir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.TabWidth != 8 {
		t.Errorf("TabWidth = %d, want 8", result.Config.TabWidth)
	}
	if len(result.Config.Ignore) != 1 || result.Config.Ignore[0] != "a/**" {
		t.Errorf("Ignore = %v, want project value kept", result.Config.Ignore)
	}
	if len(result.LoadedFrom) != 2 || result.LoadedFrom[1] != explicit {
		t.Errorf("LoadedFrom = %v", result.LoadedFrom)
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	writeConfig(t, filepath.Join(dir, ".stringutils.yml"), "tab_width: 4\nsoft_tabs: false\n")

	opts := isolated(dir)
	opts.CLIConfig = &config.Config{
		TabWidth: 3,
		SoftTabs: config.Bool(true),
		Jobs:     8,
		Write:    true,
	}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.TabWidth != 3 {
		t.Errorf("TabWidth = %d, want 3", result.Config.TabWidth)
	}
	if !result.Config.SoftTabsEnabled() {
		t.Error("CLI soft tabs override lost")
	}
	if result.Config.Jobs != 8 || !result.Config.Write {
		t.Errorf("Jobs = %d, Write = %v", result.Config.Jobs, result.Config.Write)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "bad tab width", content: "tab_width: -1\n"},
		{name: "bad reverse unit", content: "reverse_unit: word\n"},
		{name: "bad backup mode", content: "backups:\n  mode: cloud\n"},
		{name: "bad glob", content: "ignore: [\"[\"]\n"},
		{name: "unknown key", content: "flavor: gfm\n"},
		{name: "not yaml", content: "tab_width: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := projectDir(t)
			writeConfig(t, filepath.Join(dir, ".stringutils.yml"), tt.content)

			_, err := Load(context.Background(), isolated(dir))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Load() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoad_Warnings(t *testing.T) {
	t.Parallel()

	opts := isolated(projectDir(t))
	opts.CLIConfig = &config.Config{DryRun: true, Extensions: []string{"txt", ".go", "md"}}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Warnings) != 2 {
		t.Errorf("Warnings = %v, want 2 (one per extension without a dot)", result.Warnings)
	}
}

func TestLoad_FileFindingsNameTheFile(t *testing.T) {
	t.Parallel()

	dir := projectDir(t)
	path := filepath.Join(dir, ".stringutils.yml")

	writeConfig(t, path, "tab_width: -1\n")
	_, err := Load(context.Background(), isolated(dir))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Load() error = %v, want *ValidationError", err)
	}
	if verr.FilePath != path {
		t.Errorf("FilePath = %q, want %q", verr.FilePath, path)
	}

	writeConfig(t, path, "extensions: [txt]\n")
	result, err := Load(context.Background(), isolated(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("Warnings = %v, want exactly one", result.Warnings)
	}
	if !strings.HasPrefix(result.Warnings[0], path+": extensions[0]: ") {
		t.Errorf("warning %q does not name the file", result.Warnings[0])
	}
}

func TestValidateWithFile(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Jobs = -1
	cfg.Extensions = []string{"md"}

	result := ValidateWithFile(cfg, "/etc/stringutils/config.yaml")
	if len(result.Errors) != 1 || len(result.Warnings) != 1 {
		t.Fatalf("got %d errors and %d warnings, want 1 and 1", len(result.Errors), len(result.Warnings))
	}
	for _, finding := range append(result.Errors, result.Warnings...) {
		if finding.FilePath != "/etc/stringutils/config.yaml" {
			t.Errorf("FilePath = %q", finding.FilePath)
		}
	}
	if got := result.Errors[0].Error(); got != "/etc/stringutils/config.yaml: jobs: jobs must be >= 0 (0 means auto)" {
		t.Errorf("Error() = %q", got)
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Load(ctx, isolated(t.TempDir())); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("STRINGUTILS_TAB_WIDTH", "6")
	t.Setenv("STRINGUTILS_SOFT_TABS", "false")
	t.Setenv("STRINGUTILS_IGNORE", "a/**, b/**,")

	opts := isolated(projectDir(t))
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.TabWidth != 6 {
		t.Errorf("TabWidth = %d, want 6", result.Config.TabWidth)
	}
	if result.Config.SoftTabsEnabled() {
		t.Error("STRINGUTILS_SOFT_TABS=false not applied")
	}
	if len(result.Config.Ignore) != 2 || result.Config.Ignore[1] != "b/**" {
		t.Errorf("Ignore = %v", result.Config.Ignore)
	}
}

func TestLoad_EnvInvalid(t *testing.T) {
	t.Setenv("STRINGUTILS_JOBS", "many")

	opts := isolated(projectDir(t))
	opts.IgnoreEnv = false

	if _, err := Load(context.Background(), opts); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoad_UserConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	if err := os.MkdirAll(filepath.Join(xdg, "stringutils"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, filepath.Join(xdg, "stringutils", "config.yaml"), "tab_width: 5\n")

	dir := projectDir(t)
	opts := LoadOptions{WorkingDir: dir, IgnoreSystemConfig: true, IgnoreEnv: true}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.TabWidth != 5 {
		t.Errorf("TabWidth = %d, want 5", result.Config.TabWidth)
	}

	writeConfig(t, filepath.Join(dir, ".stringutils.yml"), "tab_width: 7\n")
	result, err = Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Config.TabWidth != 7 {
		t.Errorf("TabWidth = %d, want project value 7", result.Config.TabWidth)
	}
}

func TestWriteProjectConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	ctx := context.Background()

	path, changed, err := WriteProjectConfig(ctx, dir, []byte("tab_width: 2\n"), false)
	if err != nil {
		t.Fatalf("WriteProjectConfig() error = %v", err)
	}
	if filepath.Base(path) != ProjectConfigName {
		t.Errorf("path = %q", path)
	}
	if !changed {
		t.Error("first write should report a change")
	}

	if _, _, err := WriteProjectConfig(ctx, dir, []byte("tab_width: 4\n"), false); err == nil {
		t.Error("expected error when file exists")
	}

	_, changed, err = WriteProjectConfig(ctx, dir, []byte("tab_width: 2\n"), true)
	if err != nil {
		t.Fatalf("force rewrite error = %v", err)
	}
	if changed {
		t.Error("identical content should not be rewritten")
	}

	_, changed, err = WriteProjectConfig(ctx, dir, []byte("tab_width: 4\n"), true)
	if err != nil {
		t.Fatalf("force overwrite error = %v", err)
	}
	if !changed {
		t.Error("new content should be written")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "tab_width: 4\n" {
		t.Errorf("content = %q", data)
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	got := MergeAll(
		config.NewConfig(),
		&config.Config{TabWidth: 4, Backups: config.BackupsConfig{Enabled: config.Bool(false)}},
		&config.Config{ReverseUnit: "grapheme"},
	)

	if got.TabWidth != 4 || got.ReverseUnit != "grapheme" {
		t.Errorf("MergeAll() = %+v", got)
	}
	if got.BackupsEnabled() {
		t.Error("explicit backups.enabled: false was not kept")
	}
	if MergeAll() != nil {
		t.Error("MergeAll() with no configs should be nil")
	}
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	if len(vars) != len(envVars) {
		t.Fatalf("ListEnvVars() returned %d entries, want %d", len(vars), len(envVars))
	}
	for i, v := range vars {
		if !strings.HasPrefix(v.Name, EnvVarPrefix) {
			t.Errorf("%q lacks the %s prefix", v.Name, EnvVarPrefix)
		}
		if v.Description == "" {
			t.Errorf("%s has no description", v.Name)
		}
		if i > 0 && vars[i-1].Name >= v.Name {
			t.Errorf("not sorted: %s before %s", vars[i-1].Name, v.Name)
		}
	}
}
