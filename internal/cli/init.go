package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/stringutils/internal/configloader"
	"github.com/yaklabco/stringutils/internal/logging"
	"github.com/yaklabco/stringutils/pkg/config"
)

// jsonConfigName is the default output of init --format json.
const jsonConfigName = ".stringutils.json"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new stringutils configuration file",
		Long: `Create a new .stringutils.yml configuration file in the current directory.
The file documents every key; uncomment a key to change its value.

Examples:
  stringutils init                     Create .stringutils.yml with keys commented out
  stringutils init --full              Write every key with its default value
  stringutils init --format json       Create .stringutils.json instead
  stringutils init --output custom.yml Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Write every key with its default value")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "Output format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"Output file path (default: .stringutils.yml or .stringutils.json)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if flags.format != "yaml" && flags.format != formatJSON {
		return fmt.Errorf("%w: invalid format %q: must be yaml or json", ErrUsage, flags.format)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:   flags.full,
		Format: flags.format,
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	var (
		path    string
		changed bool
	)
	switch {
	case flags.output == "" && flags.format == "yaml":
		workDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		path, changed, err = configloader.WriteProjectConfig(ctx, workDir, content, flags.force)
		if err != nil {
			return err
		}
	default:
		path = flags.output
		if path == "" {
			path = jsonConfigName
		}
		if path, err = filepath.Abs(path); err != nil {
			return fmt.Errorf("resolve path: %w", err)
		}
		if changed, err = configloader.WriteConfigFile(ctx, path, content, flags.force); err != nil {
			return err
		}
	}

	if !changed {
		logger.Info("configuration file already up to date", logging.FieldPath, path)
		return nil
	}

	logger.Info("created configuration file", logging.FieldPath, path)
	logger.Info("customize your configuration by editing the file")
	logger.Info("run 'stringutils commands' to see all available commands")

	return nil
}
