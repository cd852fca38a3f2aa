package formatters

import "strings"

// OutputFormat represents an output format type
type OutputFormat string

const (
	OutputFormatJSON    OutputFormat = "json"
	OutputFormatYAML    OutputFormat = "yaml"
	OutputFormatDOT     OutputFormat = "dot"
	OutputFormatMermaid OutputFormat = "mermaid"
	OutputFormatTable   OutputFormat = "table"
)

var allFormats = []OutputFormat{
	OutputFormatJSON,
	OutputFormatYAML,
	OutputFormatDOT,
	OutputFormatMermaid,
	OutputFormatTable,
}

// String returns the string representation of the format
func (f OutputFormat) String() string {
	return string(f)
}

// ParseOutputFormat matches a user-supplied name against the known formats.
func ParseOutputFormat(name string) (OutputFormat, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, f := range allFormats {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// SupportedFormats returns the known format names joined for help text.
func SupportedFormats() string {
	names := make([]string, len(allFormats))
	for i, f := range allFormats {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}
