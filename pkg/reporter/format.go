package reporter

import (
	"fmt"

	"github.com/yaklabco/stringutils/pkg/config"
)

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatContent Format = Format(config.FormatContent)
	FormatText    Format = Format(config.FormatText)
	FormatJSON    Format = Format(config.FormatJSON)
	FormatDiff    Format = Format(config.FormatDiff)
)

// ParseFormat parses a format string, returning an error for unknown formats.
// The empty string means content.
func ParseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "content", "":
		return FormatContent, nil
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "diff":
		return FormatDiff, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: content, text, json, diff", formatStr)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	return config.OutputFormat(f).IsValid()
}
