package formatters

import (
	"fmt"
	"slices"

	"github.com/LegacyCodeHQ/esgraph/depgraph"
)

type layoutNode struct {
	id   int
	abs  string
	path string
	name string
}

type layoutEdge struct {
	from     int
	to       int
	reexport bool
	cyclic   bool
}

// layout is the drawable form of a result shared by dot and mermaid output.
// Nodes are in ID order and edges follow each module's import order.
type layout struct {
	nodes []layoutNode
	edges []layoutEdge
	byID  map[int]layoutNode
}

func newLayout(r *depgraph.Result, opts FormatOptions) (layout, error) {
	rel := relativizer(opts.Root)

	assets := r.Graph.Assets()
	display := make([]string, len(assets))
	for i, a := range assets {
		display[i] = rel(a.Path())
	}
	names := ShortNames(display)

	l := layout{byID: make(map[int]layoutNode, len(assets))}
	ids := make(map[string]int, len(assets))
	for i, a := range assets {
		n := layoutNode{id: a.ID(), abs: a.Path(), path: display[i], name: names[display[i]]}
		l.nodes = append(l.nodes, n)
		l.byID[n.id] = n
		ids[a.Path()] = a.ID()
	}

	cycles, err := depgraph.Cycles(r.Graph)
	if err != nil {
		return layout{}, fmt.Errorf("failed to detect cycles: %w", err)
	}
	component := make(map[string]int)
	for i, c := range cycles {
		for _, p := range c {
			component[p] = i + 1
		}
	}

	edges := r.Graph.Edges()
	for _, a := range assets {
		reexports := a.Dependencies().Reexports()
		for _, target := range edges[a.Path()] {
			l.edges = append(l.edges, layoutEdge{
				from:     a.ID(),
				to:       ids[target],
				reexport: slices.Contains(reexports, target),
				cyclic:   component[a.Path()] != 0 && component[a.Path()] == component[target],
			})
		}
	}

	return l, nil
}

func (l layout) paths() []string {
	paths := make([]string, len(l.nodes))
	for i, n := range l.nodes {
		paths[i] = n.path
	}
	return paths
}
