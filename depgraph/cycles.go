package depgraph

import (
	"errors"
	"slices"
	"sort"

	graphlib "github.com/dominikbraun/graph"

	"github.com/LegacyCodeHQ/esgraph/depgraph/asset"
)

// Directed converts the module graph into a directed graph keyed by canonical
// path, with one edge per resolved first-party dependency. label names each
// vertex; pass nil to use the path itself.
func Directed(g *asset.ModuleGraph, label func(path string) string) (graphlib.Graph[string, string], error) {
	if label == nil {
		label = func(path string) string { return path }
	}

	directed := graphlib.New(graphlib.StringHash, graphlib.Directed())

	for _, a := range g.Assets() {
		if err := directed.AddVertex(a.Path(), graphlib.VertexAttribute("label", label(a.Path()))); err != nil {
			return nil, err
		}
	}

	edges := g.Edges()
	for _, a := range g.Assets() {
		for _, dep := range edges[a.Path()] {
			err := directed.AddEdge(a.Path(), dep)
			if err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
				return nil, err
			}
		}
	}

	return directed, nil
}

// Cycles returns every group of modules that import each other, directly or
// transitively. Each cycle is sorted, and cycles are ordered by their first path.
func Cycles(g *asset.ModuleGraph) ([][]string, error) {
	directed, err := Directed(g, nil)
	if err != nil {
		return nil, err
	}

	components, err := graphlib.StronglyConnectedComponents(directed)
	if err != nil {
		return nil, err
	}

	edges := g.Edges()
	var cycles [][]string
	for _, component := range components {
		if len(component) == 1 && !slices.Contains(edges[component[0]], component[0]) {
			continue
		}
		cycle := slices.Clone(component)
		sort.Strings(cycle)
		cycles = append(cycles, cycle)
	}

	sort.Slice(cycles, func(i, j int) bool {
		return cycles[i][0] < cycles[j][0]
	})
	return cycles, nil
}
