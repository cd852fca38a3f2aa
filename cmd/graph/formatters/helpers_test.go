package formatters_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LegacyCodeHQ/esgraph/depgraph"
	"github.com/LegacyCodeHQ/esgraph/depgraph/asset"
)

type module struct {
	path       string
	firstParty []string
	thirdParty []string
	reexports  []string
}

// sampleResult is a small project with a re-export, an import cycle between
// a.ts and b.ts, and one installed package.
func sampleResult(t *testing.T) *depgraph.Result {
	t.Helper()

	return buildResult(t, []module{
		{
			path:       "/project/src/index.ts",
			firstParty: []string{"/project/src/a.ts", "/project/src/util/index.ts"},
			thirdParty: []string{"lodash", "fs", "left-pad"},
		},
		{path: "/project/src/a.ts", firstParty: []string{"/project/src/b.ts"}},
		{path: "/project/src/b.ts", firstParty: []string{"/project/src/a.ts"}},
		{
			path:       "/project/src/util/index.ts",
			firstParty: []string{"/project/src/util/format.ts"},
			reexports:  []string{"/project/src/util/format.ts"},
		},
		{path: "/project/src/util/format.ts"},
		{path: "/project/node_modules/lodash/lib/index.js"},
	}, []string{"left-pad"}, []string{"fs"})
}

func buildResult(t *testing.T, modules []module, unresolved, builtins []string) *depgraph.Result {
	t.Helper()

	g := asset.NewModuleGraph()
	for i, m := range modules {
		deps := asset.NewDependencies(m.firstParty, m.thirdParty, m.reexports)
		require.NoError(t, g.Insert(asset.New(i+1, m.path, deps)))
	}

	return &depgraph.Result{
		Entry:       modules[0].path,
		InstallRoot: "/project/node_modules",
		Graph:       g,
		Unresolved:  unresolved,
		Builtins:    builtins,
	}
}

func withSkipped(r *depgraph.Result, path, msg string) *depgraph.Result {
	r.Skipped = append(r.Skipped, depgraph.SkippedModule{Path: path, Err: errors.New(msg)})
	return r
}
