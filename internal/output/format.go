// Package output provides the format types and formatters shared by the CLI
// commands.
package output

import (
	"fmt"
	"strings"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is the default human-readable table output
	FormatTable Format = "table"

	// FormatYAML is the self-documenting YAML output
	FormatYAML Format = "yaml"

	// FormatJSON is the JSON output format
	FormatJSON Format = "json"

	// FormatText is the prose format used by the salary report
	FormatText Format = "text"
)

// ParseFormat parses a format string into a Format value.
// Accepts: "table", "yaml", "json", "text" (case-insensitive)
// Returns an error for invalid format values.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table":
		return FormatTable, nil
	case "yaml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("invalid format: %q (expected table, yaml, json, or text)", s)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// DefaultFormat is the default output format when none is specified.
const DefaultFormat = FormatTable

// ValidateFormat checks if a format value is valid.
func ValidateFormat(f Format) bool {
	switch f {
	case FormatTable, FormatYAML, FormatJSON, FormatText:
		return true
	default:
		return false
	}
}
