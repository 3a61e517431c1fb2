package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/stringutils/internal/ui/pretty"
	"github.com/yaklabco/stringutils/pkg/command"
)

const formatJSON = "json"

// commandInfo represents a command in JSON output.
type commandInfo struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases"`
	Description string   `json:"description"`
	Fallback    bool     `json:"fallback"`
	SoftTabs    string   `json:"softTabs,omitempty"`
}

func newCommandsCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List available commands",
		Long: `List every command with its aliases and scope.

Commands with scope "document" convert the whole buffer when the selection
is empty; the others leave the buffer alone. Each name is also accepted
with the "` + command.Prefix + `" prefix.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmds := command.Commands()
			out := cmd.OutOrStdout()

			switch format {
			case formatJSON:
				return outputCommandsJSON(out, cmds)
			case "", "text":
			default:
				return fmt.Errorf("%w: invalid format %q: must be text or json", ErrUsage, format)
			}

			colorMode, err := cmd.Flags().GetString("color")
			if err != nil {
				colorMode = "auto"
			}
			styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))
			formatter := pretty.NewTableFormatter(styles, terminalWidth(out))

			_, err = io.WriteString(out, formatter.FormatCommands(cmds))
			if err != nil {
				return fmt.Errorf("write commands: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

// terminalWidth returns the width of w when it is a terminal, or 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// outputCommandsJSON writes the command table as a JSON array.
func outputCommandsJSON(w io.Writer, cmds []command.Command) error {
	infos := make([]commandInfo, 0, len(cmds))
	for _, c := range cmds {
		info := commandInfo{
			Name:        c.Name,
			Aliases:     c.Aliases,
			Description: c.Description,
			Fallback:    c.Fallback,
		}
		if c.SoftTabs != command.SoftTabsUnchanged {
			info.SoftTabs = c.SoftTabs.String()
		}
		infos = append(infos, info)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding commands: %w", err)
	}
	return nil
}
