package formatters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/LegacyCodeHQ/esgraph/cmd/graph/formatters"
)

func TestYAMLFormatter_MatchesDocument(t *testing.T) {
	r := sampleResult(t)
	opts := formatters.FormatOptions{Root: "/project"}

	formatter := &formatters.YAMLFormatter{}
	output, err := formatter.Format(r, opts)
	require.NoError(t, err)

	var got formatters.Document
	require.NoError(t, yaml.Unmarshal([]byte(output), &got))

	want, err := formatters.NewDocument(r, opts)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Contains(t, output, "entry: src/index.ts")
	assert.NotContains(t, output, "skipped:")
}
