package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/stringutils/internal/ui/pretty"
	"github.com/yaklabco/stringutils/pkg/command"
)

func TestCommandToTableRow(t *testing.T) {
	cmd, ok := command.Lookup(command.OpTabsToSpaces)
	require.True(t, ok)

	row := pretty.CommandToTableRow(cmd)
	assert.Equal(t, "convert-tabs-to-spaces", row.Name)
	assert.Equal(t, "tabs-to-spaces", row.Aliases)
	assert.Equal(t, "document", row.Scope)

	cmd, ok = command.Lookup(command.OpEncodeURL)
	require.True(t, ok)
	assert.Equal(t, "selection", pretty.CommandToTableRow(cmd).Scope)
}

func TestTableFormatter_FormatCommands(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 0)

	out := formatter.FormatCommands(command.Commands())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Header, separator, one row per command, separator, footer.
	require.Len(t, lines, len(command.Commands())+4)
	assert.True(t, strings.HasPrefix(lines[0], " COMMAND"))
	assert.Contains(t, lines[0], "ALIASES")
	assert.Contains(t, lines[0], "DESCRIPTION")
	assert.Equal(t, strings.Repeat("=", len(lines[1])), lines[1])

	for i, cmd := range command.Commands() {
		assert.True(t, strings.HasPrefix(lines[i+2], " "+cmd.Name), "row %d: %q", i, lines[i+2])
	}
	assert.Contains(t, lines[len(lines)-1], "7 commands")
}

func TestTableFormatter_Empty(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 80)
	assert.Empty(t, formatter.FormatCommands(nil))
}
