package depgraph

import (
	"github.com/LegacyCodeHQ/esgraph/depgraph/asset"
)

// Result is the outcome of one traversal from a single entry point.
type Result struct {
	// Entry is the canonical path of the entry module.
	Entry string
	// InstallRoot is the absolute package-install directory.
	InstallRoot string
	// Graph holds every analyzed module.
	Graph *asset.ModuleGraph
	// Unresolved lists third-party specifiers that matched no installed
	// package, in first-seen order.
	Unresolved []string
	// Builtins lists Node.js core modules that were referenced.
	Builtins []string
	// Skipped lists modules that failed to parse when SkipParseErrors is set.
	Skipped []SkippedModule
}

// SkippedModule is a module left out of the graph because it could not be parsed.
type SkippedModule struct {
	Path string
	Err  error
}

// Complete reports whether every reachable module made it into the graph.
func (r *Result) Complete() bool {
	return len(r.Skipped) == 0
}

func newResult(entry, installRoot string) *Result {
	return &Result{
		Entry:       entry,
		InstallRoot: installRoot,
		Graph:       asset.NewModuleGraph(),
		Unresolved:  []string{},
		Builtins:    []string{},
	}
}
