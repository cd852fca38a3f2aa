package formatters

import (
	"encoding/json"

	"github.com/LegacyCodeHQ/esgraph/depgraph"
)

// JSONFormatter formats traversal results as JSON.
type JSONFormatter struct{}

// Format converts the result to indented JSON.
func (f *JSONFormatter) Format(r *depgraph.Result, opts FormatOptions) (string, error) {
	doc, err := NewDocument(r, opts)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
