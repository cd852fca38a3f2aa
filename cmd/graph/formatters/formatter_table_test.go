package formatters_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LegacyCodeHQ/esgraph/cmd/graph/formatters"
)

func TestTableFormatter_ListsModulesAndSummary(t *testing.T) {
	formatter := &formatters.TableFormatter{}
	output, err := formatter.Format(sampleResult(t), formatters.FormatOptions{Root: "/project"})
	require.NoError(t, err)

	assert.Contains(t, output, "MODULE")
	assert.Contains(t, output, "src/util/format.ts")
	assert.Contains(t, output, "lodash, fs, left-pad")
	assert.Contains(t, strings.ToUpper(output), "TOTAL: 6 MODULES")
	assert.Contains(t, output, "Unresolved: left-pad")
	assert.Contains(t, output, "Builtins: fs")
	assert.Contains(t, output, "Cycle: src/a.ts, src/b.ts")
}

func TestTableFormatter_OmitsEmptySections(t *testing.T) {
	r := buildResult(t, []module{{path: "/project/index.js"}}, nil, nil)

	formatter := &formatters.TableFormatter{}
	output, err := formatter.Format(r, formatters.FormatOptions{Root: "/project"})
	require.NoError(t, err)

	assert.NotContains(t, output, "Unresolved:")
	assert.NotContains(t, output, "Builtins:")
	assert.NotContains(t, output, "Cycle:")
}
