package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/stringutils/internal/ui/pretty"
)

// Command group IDs on the root command.
const (
	groupTransform = "transform"
	groupOther     = "other"
)

// HelpStyles contains Lipgloss styles for command help formatting.
type HelpStyles struct {
	Command     lipgloss.Style
	Heading     lipgloss.Style
	Subcommand  lipgloss.Style
	Flag        lipgloss.Style
	Description lipgloss.Style
	Alias       lipgloss.Style
	Dim         lipgloss.Style
}

// NewHelpStyles derives help styles from the output styles so help and
// reports share one palette.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	styles := pretty.NewStyles(colorEnabled)
	return &HelpStyles{
		Command:     styles.Command.Bold(colorEnabled),
		Heading:     styles.SummaryTitle,
		Subcommand:  styles.TableName,
		Flag:        styles.FilePath,
		Description: lipgloss.NewStyle(),
		Alias:       styles.TableAlias,
		Dim:         styles.Dim,
	}
}

// HelpFormatter provides styled help output for Cobra commands.
type HelpFormatter struct {
	styles *HelpStyles
}

// NewHelpFormatter creates a new help formatter with the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{
		styles: NewHelpStyles(pretty.IsColorEnabled(colorMode, writer)),
	}
}

func (h *HelpFormatter) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"styleCommand":     h.styles.Command.Render,
		"styleHeading":     h.styles.Heading.Render,
		"styleDescription": h.styles.Description.Render,
		"styleDim":         h.styles.Dim.Render,
		"commandLine":      h.commandLine,
		"flagLines":        h.flagLines,
		"trimTrailing":     trimTrailingWhitespaces,
		"join":             strings.Join,
	}
}

// usageTemplate lists grouped subcommands, then local and inherited flags.
const usageTemplate = `{{ styleHeading "Usage:" }}
{{- if .Runnable}}
  {{ styleCommand .UseLine }}
{{- end}}
{{- if .HasAvailableSubCommands}}
  {{ styleCommand .CommandPath }} [command]
{{- end}}

{{- if gt (len .Aliases) 0}}

{{ styleHeading "Aliases:" }}
  {{ join .Aliases ", " }}
{{- end}}

{{- if .HasAvailableSubCommands}}
{{- $cmds := .Commands}}
{{- range $group := .Groups}}

{{ styleHeading $group.Title }}
{{- range $cmds}}{{if and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help"))}}
  {{ commandLine . }}{{end}}{{end}}
{{- end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ styleHeading "Flags:" }}
{{ flagLines .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ styleHeading "Global Flags:" }}
{{ flagLines .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ styleCommand (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

// helpTemplate prints the description above the usage block.
const helpTemplate = `{{with (or .Long .Short)}}{{ trimTrailing . }}

{{end}}{{ template "usage" . }}`

// commandLine renders one subcommand row: name, aliases and short text.
func (h *HelpFormatter) commandLine(cmd *cobra.Command) string {
	const nameWidth = 24

	name := cmd.Name()
	line := h.styles.Subcommand.Render(name)
	width := len(name)

	if len(cmd.Aliases) > 0 {
		aliases := " (" + strings.Join(cmd.Aliases, ", ") + ")"
		line += h.styles.Alias.Render(aliases)
		width += len(aliases)
	}

	if width < nameWidth {
		line += strings.Repeat(" ", nameWidth-width)
	}
	return line + " " + h.styles.Description.Render(cmd.Short)
}

// flagLines renders every visible flag of fs on its own line.
func (h *HelpFormatter) flagLines(fs *pflag.FlagSet) string {
	type row struct {
		label string
		width int
		usage string
	}

	var rows []row
	maxWidth := 0

	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}

		varname, usage := pflag.UnquoteUsage(f)

		var label strings.Builder
		var plain strings.Builder
		if f.Shorthand != "" {
			label.WriteString(h.styles.Flag.Render("-"+f.Shorthand) + ", ")
			plain.WriteString("-" + f.Shorthand + ", ")
		} else {
			label.WriteString("    ")
			plain.WriteString("    ")
		}
		label.WriteString(h.styles.Flag.Render("--" + f.Name))
		plain.WriteString("--" + f.Name)
		if varname != "" {
			label.WriteString(" " + h.styles.Dim.Render(varname))
			plain.WriteString(" " + varname)
		}

		if showDefault(f) {
			usage += h.styles.Dim.Render(fmt.Sprintf(" (default %s)", defaultText(f)))
		}

		rows = append(rows, row{label: label.String(), width: plain.Len(), usage: usage})
		maxWidth = max(maxWidth, plain.Len())
	})

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		pad := strings.Repeat(" ", maxWidth-r.width+3)
		lines = append(lines, "  "+r.label+pad+h.styles.Description.Render(r.usage))
	}
	return strings.Join(lines, "\n")
}

// showDefault reports whether a flag's default is worth printing.
func showDefault(f *pflag.Flag) bool {
	switch f.DefValue {
	case "", "false", "0", "[]":
		return false
	default:
		return true
	}
}

func defaultText(f *pflag.Flag) string {
	if f.Value.Type() == "string" {
		return fmt.Sprintf("%q", f.DefValue)
	}
	return f.DefValue
}

// ApplyToCommand installs the styled help and usage output on cmd and,
// through inheritance, on all of its subcommands.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := h.templateFuncs()

	tmpl := template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	template.Must(tmpl.New("help").Parse(helpTemplate))

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		if err := tmpl.ExecuteTemplate(c.OutOrStderr(), "usage", c); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := tmpl.ExecuteTemplate(c.OutOrStdout(), "help", c); err != nil {
			c.PrintErrln(err)
		}
	})
}

// trimTrailingWhitespaces removes trailing whitespace from lines.
func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
