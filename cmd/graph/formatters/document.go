package formatters

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/LegacyCodeHQ/esgraph/depgraph"
)

// Document is the serializable view of a traversal result shared by the
// json and yaml formatters.
type Document struct {
	Entry      string         `json:"entry" yaml:"entry"`
	Modules    []ModuleEntry  `json:"modules" yaml:"modules"`
	Unresolved []string       `json:"unresolved" yaml:"unresolved"`
	Builtins   []string       `json:"builtins" yaml:"builtins"`
	Skipped    []SkippedEntry `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Cycles     [][]string     `json:"cycles,omitempty" yaml:"cycles,omitempty"`
}

// ModuleEntry describes one analyzed module.
type ModuleEntry struct {
	ID         int      `json:"id" yaml:"id"`
	Path       string   `json:"path" yaml:"path"`
	FirstParty []string `json:"firstParty" yaml:"firstParty"`
	ThirdParty []string `json:"thirdParty" yaml:"thirdParty"`
	Reexports  []string `json:"reexports" yaml:"reexports"`
}

// SkippedEntry describes a module that failed to parse.
type SkippedEntry struct {
	Path  string `json:"path" yaml:"path"`
	Error string `json:"error" yaml:"error"`
}

// NewDocument flattens r into a Document with paths relative to opts.Root.
func NewDocument(r *depgraph.Result, opts FormatOptions) (Document, error) {
	rel := relativizer(opts.Root)

	doc := Document{
		Entry:      rel(r.Entry),
		Modules:    make([]ModuleEntry, 0, r.Graph.Len()),
		Unresolved: append([]string{}, r.Unresolved...),
		Builtins:   append([]string{}, r.Builtins...),
	}

	for _, a := range r.Graph.Assets() {
		deps := a.Dependencies()
		doc.Modules = append(doc.Modules, ModuleEntry{
			ID:         a.ID(),
			Path:       rel(a.Path()),
			FirstParty: mapPaths(deps.FirstParty(), rel),
			ThirdParty: append([]string{}, deps.ThirdParty()...),
			Reexports:  mapPaths(deps.Reexports(), rel),
		})
	}

	for _, s := range r.Skipped {
		doc.Skipped = append(doc.Skipped, SkippedEntry{Path: rel(s.Path), Error: s.Err.Error()})
	}

	cycles, err := depgraph.Cycles(r.Graph)
	if err != nil {
		return Document{}, fmt.Errorf("failed to detect cycles: %w", err)
	}
	for _, c := range cycles {
		doc.Cycles = append(doc.Cycles, mapPaths(c, rel))
	}

	return doc, nil
}

func mapPaths(paths []string, fn func(string) string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = fn(p)
	}
	return out
}

// relativizer returns a function printing paths relative to root with forward slashes.
func relativizer(root string) func(string) string {
	return func(path string) string {
		if root == "" {
			return filepath.ToSlash(path)
		}
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return filepath.ToSlash(path)
		}
		return filepath.ToSlash(rel)
	}
}
