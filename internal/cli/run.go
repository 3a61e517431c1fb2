package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/stringutils/internal/configloader"
	"github.com/yaklabco/stringutils/internal/logging"
	"github.com/yaklabco/stringutils/pkg/command"
	"github.com/yaklabco/stringutils/pkg/config"
	"github.com/yaklabco/stringutils/pkg/reporter"
	"github.com/yaklabco/stringutils/pkg/runner"
)

// stdinPath is the argument and display name for standard input.
const stdinPath = "-"

type runFlags struct {
	selection   string
	selectAll   bool
	tabWidth    int
	softTabs    bool
	reverseUnit string
	write       bool
	dryRun      bool
	format      string
	jobs        int
	ignore      []string
	extensions  []string
	noBackups   bool
	compact     bool
}

func newTransformCommand(c command.Command) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:     c.Name + " [paths...]",
		Aliases: c.Aliases,
		Short:   c.Description,
		Long:    transformLongDescription(c),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd, args, c, flags)
		},
	}

	addRunFlags(cmd, flags)

	return cmd
}

func transformLongDescription(c command.Command) string {
	var b strings.Builder
	b.WriteString(c.Description)
	b.WriteString(".\n\n")

	if c.Fallback {
		b.WriteString("With an empty selection the whole document is converted.\n")
	} else {
		b.WriteString("With an empty selection the buffer is left unchanged.\n")
	}

	fmt.Fprintf(&b, `The selection defaults to the whole buffer; use --select to narrow it.
Without paths, or with "-", text is read from stdin.

Examples:
  echo 'hello' | stringutils %[1]s
  stringutils %[1]s notes.txt --select 2:1-4:1
  stringutils %[1]s src/ --write
  stringutils %[1]s src/ --dry-run`, c.Name)

	return b.String()
}

func addRunFlags(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().StringVar(&flags.selection, "select", "",
		"selection each buffer starts with: all, none, or LINE:COL-LINE:COL (1-based)")
	cmd.Flags().BoolVar(&flags.selectAll, "select-all", false, "select the whole buffer (default)")
	cmd.Flags().IntVar(&flags.tabWidth, "tab-width", config.DefaultTabWidth, "columns per tab stop")
	cmd.Flags().BoolVar(&flags.softTabs, "soft-tabs", true, "soft-tabs setting each buffer starts with")
	cmd.Flags().StringVar(&flags.reverseUnit, "reverse-unit", config.DefaultReverseUnit,
		"unit reversed by reverse-selection: codepoint, grapheme")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "show the diff a write would produce")
	cmd.Flags().StringVar(&flags.format, "format", "",
		"output format: content, text, json, diff (default content, or text with --write)")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "extensions", nil,
		"only visit these extensions when walking directories (e.g. .txt,.go)")
	cmd.Flags().BoolVar(&flags.noBackups, "no-backups", false, "disable backup creation when writing")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "omit the summary from text output")
}

// cliConfig maps flags onto a Config holding only explicitly set values.
func cliConfig(cmd *cobra.Command, flags *runFlags) *config.Config {
	cfg := &config.Config{
		Write:      flags.write,
		DryRun:     flags.dryRun,
		Format:     config.OutputFormat(flags.format),
		Jobs:       flags.jobs,
		NoBackups:  flags.noBackups,
		Ignore:     flags.ignore,
		Extensions: flags.extensions,
	}
	if cmd.Flags().Changed("tab-width") {
		cfg.TabWidth = flags.tabWidth
	}
	if cmd.Flags().Changed("soft-tabs") {
		cfg.SoftTabs = config.Bool(flags.softTabs)
	}
	if cmd.Flags().Changed("reverse-unit") {
		cfg.ReverseUnit = flags.reverseUnit
	}
	return cfg
}

// selectionFromFlags resolves --select and --select-all.
func selectionFromFlags(flags *runFlags) (runner.SelectionSpec, error) {
	if flags.selectAll {
		if flags.selection != "" {
			return runner.SelectionSpec{}, fmt.Errorf("%w: --select and --select-all are mutually exclusive", ErrUsage)
		}
		return runner.SelectionSpec{Mode: runner.SelectAll}, nil
	}

	sel, err := runner.ParseSelectionSpec(flags.selection)
	if err != nil {
		return runner.SelectionSpec{}, fmt.Errorf("--select: %w", err)
	}
	return sel, nil
}

// isStdinRun reports whether args ask for stdin input.
func isStdinRun(args []string) (bool, error) {
	switch {
	case len(args) == 0:
		return true, nil
	case len(args) == 1 && args[0] == stdinPath:
		return true, nil
	}
	for _, arg := range args {
		if arg == stdinPath {
			return false, fmt.Errorf("%w: %q cannot be combined with file paths", ErrUsage, stdinPath)
		}
	}
	return false, nil
}

func runTransform(cmd *cobra.Command, args []string, c command.Command, flags *runFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithFields(ctx, logging.FieldCommand, c.Name)
	logger := logging.FromContext(ctx)

	sel, err := selectionFromFlags(flags)
	if err != nil {
		return err
	}

	useStdin, err := isStdinRun(args)
	if err != nil {
		return err
	}
	if useStdin && flags.write {
		return fmt.Errorf("%w: --write needs file paths", ErrUsage)
	}
	if cmd.Flags().Changed("tab-width") && flags.tabWidth < 1 {
		return fmt.Errorf("%w: --tab-width must be >= 1", ErrUsage)
	}

	// Get the explicit config path from the root command's persistent flag.
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
		CLIConfig:    cliConfig(cmd, flags),
	})
	if err != nil {
		return errors.Join(ErrConfigLoad, err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldSelection, sel,
		logging.FieldWrite, finalCfg.Write,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
	)

	var result *runner.Result
	if useStdin {
		result, err = runStdin(ctx, cmd, c, sel, finalCfg)
	} else {
		runOpts := runner.Options{
			Paths:        args,
			WorkingDir:   workDir,
			Extensions:   finalCfg.Extensions,
			ExcludeGlobs: finalCfg.Ignore,
			Jobs:         finalCfg.Jobs,
			Op:           c.Op,
			Selection:    sel,
			Config:       finalCfg,
		}
		result, err = runner.NewFromOptions(runOpts).Run(ctx, runOpts)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", c.Name, err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(finalCfg.EffectiveFormat()))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:         cmd.OutOrStdout(),
		ErrorWriter:    cmd.ErrOrStderr(),
		Format:         format,
		Color:          colorMode,
		ShowSummary:    !flags.compact,
		Compact:        flags.compact,
		IncludeContent: !finalCfg.Write,
		WorkingDir:     workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrTransformFailed
	}

	return nil
}

// runStdin applies the command to the whole of standard input.
func runStdin(
	ctx context.Context,
	cmd *cobra.Command,
	c command.Command,
	sel runner.SelectionSpec,
	cfg *config.Config,
) (*runner.Result, error) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, ErrNoInput
	}

	content, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	pipeline := runner.NewPipeline(c.Op, nil)
	outcome := runner.FileOutcome{Path: stdinPath}

	pr, err := pipeline.ProcessContent(ctx, stdinPath, content, runner.PipelineOptionsFromConfig(cfg, sel))
	switch {
	case err == nil:
		outcome.Result = pr
	case ctx.Err() != nil:
		return nil, err
	default:
		outcome.Error = err
	}

	return runner.NewResult(outcome), nil
}
