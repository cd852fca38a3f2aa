package formatters

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/LegacyCodeHQ/esgraph/depgraph"
)

// YAMLFormatter formats traversal results as YAML.
type YAMLFormatter struct{}

// Format converts the result to YAML with two-space indentation.
func (f *YAMLFormatter) Format(r *depgraph.Result, opts FormatOptions) (string, error) {
	doc, err := NewDocument(r, opts)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode yaml: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
