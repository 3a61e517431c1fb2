// Package cli provides the Cobra command structure for stringutils.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/stringutils/internal/configloader"
	"github.com/yaklabco/stringutils/internal/logging"
	"github.com/yaklabco/stringutils/pkg/command"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root stringutils command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "stringutils",
		Short: "Line-oriented text transforms for files and stdin",
		Long: `stringutils applies small text transforms to a selection of a buffer.

Each command has its own subcommand: reverse the characters of each line,
convert leading spaces to tabs and back, and encode or decode base64 and
percent-encoded URL text. Input comes from files or stdin; output is the
transformed buffer, a status report, JSON or a diff.

` + environmentHelp(),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	rootCmd.AddGroup(
		&cobra.Group{ID: groupTransform, Title: "Transform Commands:"},
		&cobra.Group{ID: groupOther, Title: "Other Commands:"},
	)
	rootCmd.SetHelpCommandGroupID(groupOther)
	rootCmd.SetCompletionCommandGroupID(groupOther)

	// One subcommand per table entry.
	for _, c := range command.Commands() {
		sub := newTransformCommand(c)
		sub.GroupID = groupTransform
		rootCmd.AddCommand(sub)
	}

	for _, sub := range []*cobra.Command{
		newCommandsCommand(),
		newInitCommand(),
		newRestoreCommand(),
		newVersionCommand(info),
	} {
		sub.GroupID = groupOther
		rootCmd.AddCommand(sub)
	}

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// environmentHelp lists the STRINGUTILS_* overrides for the root help text.
func environmentHelp() string {
	vars := configloader.ListEnvVars()

	width := 0
	for _, v := range vars {
		width = max(width, len(v.Name))
	}

	var b strings.Builder
	b.WriteString("Environment:")
	for _, v := range vars {
		fmt.Fprintf(&b, "\n  %-*s  %s", width, v.Name, v.Description)
	}
	return b.String()
}
