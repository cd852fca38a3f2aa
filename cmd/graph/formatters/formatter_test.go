package formatters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegacyCodeHQ/esgraph/cmd/graph/formatters"
)

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format string
		want   formatters.Formatter
	}{
		{"json", &formatters.JSONFormatter{}},
		{"yaml", &formatters.YAMLFormatter{}},
		{"dot", &formatters.DOTFormatter{}},
		{"Mermaid", &formatters.MermaidFormatter{}},
		{"table", &formatters.TableFormatter{}},
	}

	for _, tt := range tests {
		got, err := formatters.NewFormatter(tt.format)
		require.NoError(t, err, tt.format)
		assert.IsType(t, tt.want, got, tt.format)
	}
}

func TestNewFormatter_Unknown(t *testing.T) {
	_, err := formatters.NewFormatter("svg")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "json, yaml, dot, mermaid, table")
}

func TestShortNames(t *testing.T) {
	names := formatters.ShortNames([]string{
		"src/index.ts",
		"src/util/index.ts",
		"lib/util/index.ts",
		"src/app.ts",
	})

	assert.Equal(t, map[string]string{
		"src/index.ts":      "src/index.ts",
		"src/util/index.ts": "src/util/index.ts",
		"lib/util/index.ts": "lib/util/index.ts",
		"src/app.ts":        "app.ts",
	}, names)
}

func TestExtensionColors(t *testing.T) {
	colors := formatters.ExtensionColors([]string{"a.ts", "b.ts", "c.js", "d.css"})

	assert.Equal(t, "white", colors[".ts"])
	assert.NotEqual(t, "white", colors[".js"])
	assert.NotEqual(t, "white", colors[".css"])
	assert.NotEqual(t, colors[".js"], colors[".css"])
}

func TestExtensionColors_Empty(t *testing.T) {
	assert.Empty(t, formatters.ExtensionColors(nil))
}
