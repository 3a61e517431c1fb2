package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/stringutils/pkg/command"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 4 // NAME, ALIASES, SCOPE, DESCRIPTION
	minNameWidth     = 12
	minAliasWidth    = 8
	minScopeWidth    = 9
	minDescWidth     = 30
	heavySeparator   = "="
	defaultTermWidth = 100
)

// Scope column values.
const (
	scopeSelection = "selection"
	scopeFallback  = "document"
)

// TableRow represents a single row in the commands table.
type TableRow struct {
	Name        string
	Aliases     string
	Scope       string
	Description string
}

// TableFormatter formats the command table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// CommandToTableRow converts a command to a table row.
// Scope is "document" for commands that fall back to the whole buffer.
func CommandToTableRow(cmd command.Command) TableRow {
	scope := scopeSelection
	if cmd.Fallback {
		scope = scopeFallback
	}
	return TableRow{
		Name:        cmd.Name,
		Aliases:     strings.Join(cmd.Aliases, ", "),
		Scope:       scope,
		Description: cmd.Description,
	}
}

// FormatCommands formats cmds as a styled table.
func (t *TableFormatter) FormatCommands(cmds []command.Command) string {
	if len(cmds) == 0 {
		return ""
	}

	rows := make([]TableRow, 0, len(cmds))
	for _, cmd := range cmds {
		rows = append(rows, CommandToTableRow(cmd))
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")
	builder.WriteString(t.styles.Dim.Render(
		fmt.Sprintf(" %d commands; \"document\" commands run on the whole buffer when nothing is selected", len(rows)),
	))
	builder.WriteString("\n")

	return builder.String()
}

type columnWidths struct {
	name        int
	aliases     int
	scope       int
	description int
}

// calculateColumnWidths determines column widths based on content.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{
		name:        minNameWidth,
		aliases:     minAliasWidth,
		scope:       minScopeWidth,
		description: minDescWidth,
	}

	for _, row := range rows {
		widths.name = max(widths.name, len(row.Name))
		widths.aliases = max(widths.aliases, len(row.Aliases))
		widths.scope = max(widths.scope, len(row.Scope))
		widths.description = max(widths.description, len(row.Description))
	}

	// Shrink the description first to fit the terminal.
	if total := t.calculateTotalWidth(widths); total > t.termWidth {
		widths.description = max(minDescWidth, widths.description-(total-t.termWidth))
	}

	return widths
}

// calculateTotalWidth calculates the total table width from column widths.
func (t *TableFormatter) calculateTotalWidth(widths columnWidths) int {
	return widths.name + widths.aliases + widths.scope + widths.description +
		(tablePadding * tableColumnCount)
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s",
		widths.name, "COMMAND",
		widths.aliases, "ALIASES",
		widths.scope, "SCOPE",
		widths.description, "DESCRIPTION",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	return t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, t.calculateTotalWidth(widths)))
}

// formatRow formats a single table row. Cells are padded before styling so
// ANSI codes do not break alignment.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	name := fmt.Sprintf("%-*s", widths.name, truncateString(row.Name, widths.name))
	aliases := fmt.Sprintf("%-*s", widths.aliases, truncateString(row.Aliases, widths.aliases))
	scope := fmt.Sprintf("%-*s", widths.scope, truncateString(row.Scope, widths.scope))
	description := truncateString(row.Description, widths.description)

	return " " + strings.Join([]string{
		t.styles.TableName.Render(name),
		t.styles.TableAlias.Render(aliases),
		scope,
		description,
	}, "  ")
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
