package formatters

import (
	"fmt"

	"github.com/LegacyCodeHQ/esgraph/depgraph"
)

// Formatter is the interface that all graph formatters must implement.
type Formatter interface {
	// Format converts a traversal result to a formatted string representation.
	Format(r *depgraph.Result, opts FormatOptions) (string, error)
}

// NewFormatter creates a Formatter for the specified format name.
func NewFormatter(format string) (Formatter, error) {
	f, ok := ParseOutputFormat(format)
	if !ok {
		return nil, fmt.Errorf("unknown format: %s (valid options: %s)", format, SupportedFormats())
	}

	switch f {
	case OutputFormatJSON:
		return &JSONFormatter{}, nil
	case OutputFormatYAML:
		return &YAMLFormatter{}, nil
	case OutputFormatDOT:
		return &DOTFormatter{}, nil
	case OutputFormatMermaid:
		return &MermaidFormatter{}, nil
	default:
		return &TableFormatter{}, nil
	}
}
