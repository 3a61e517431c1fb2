package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every key with its default value. Otherwise the keys
	// are commented out.
	Full bool

	// Format is "yaml" (default) or "json".
	Format string
}

// DefaultTemplateHeader returns the header written at the top of generated
// config files.
func DefaultTemplateHeader() string {
	return `# stringutils configuration
# Project files are named .stringutils.yml and apply to the directory tree
# below them.`
}

//nolint:gochecknoglobals // Read-only key documentation.
var keyDocs = map[string]string{
	"tab_width":    "Columns per tab stop used by the whitespace commands",
	"soft_tabs":    "Soft-tabs setting a buffer starts with",
	"reverse_unit": "Unit reversed by reverse-selection: codepoint or grapheme",
	"extensions":   "Only visit files with these extensions when walking directories (empty = all)",
	"ignore":       "Glob patterns for paths to skip",
	"backups":      "Backups taken before a file is rewritten with --write",
	"enabled":      "Create a backup the first time a file is rewritten",
	"mode":         "Backup mode: sidecar (file.stringutils.bak) or none",
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	defaults := NewConfig()
	defaults.Ignore = []string{"vendor/**", "node_modules/**"}

	if opts.Format == "json" {
		out, err := json.MarshalIndent(defaults.fileFields(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal JSON: %w", err)
		}
		return append(out, '\n'), nil
	}

	var node yaml.Node
	if err := node.Encode(defaults); err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}
	annotate(&node)

	var body bytes.Buffer
	encoder := yaml.NewEncoder(&body)
	encoder.SetIndent(YAMLIndent)
	if err := encoder.Encode(&node); err != nil {
		return nil, fmt.Errorf("encode template: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\n")
	if opts.Full {
		buf.Write(body.Bytes())
	} else {
		buf.Write(commentOut(body.Bytes()))
	}
	return buf.Bytes(), nil
}

// annotate attaches key documentation as head comments.
func annotate(node *yaml.Node) {
	if node.Kind == yaml.DocumentNode {
		for _, child := range node.Content {
			annotate(child)
		}
		return
	}
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if doc, ok := keyDocs[key.Value]; ok {
			key.HeadComment = doc
		}
		annotate(value)
	}
}

// commentOut prefixes every non-comment, non-blank line with "# ".
func commentOut(data []byte) []byte {
	lines := bytes.Split(bytes.TrimRight(data, "\n"), []byte("\n"))
	var buf bytes.Buffer
	for _, line := range lines {
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) > 0 && trimmed[0] != '#' {
			buf.WriteString("# ")
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// fileFields returns the file-backed fields as a generic map.
func (c *Config) fileFields() map[string]any {
	fields := map[string]any{
		"tab_width":    c.TabWidth,
		"soft_tabs":    c.SoftTabsEnabled(),
		"reverse_unit": c.ReverseUnit,
		"backups": map[string]any{
			"enabled": c.Backups.Enabled != nil && *c.Backups.Enabled,
			"mode":    c.Backups.Mode,
		},
	}
	if c.Extensions != nil {
		fields["extensions"] = c.Extensions
	}
	if c.Ignore != nil {
		fields["ignore"] = c.Ignore
	}
	return fields
}
