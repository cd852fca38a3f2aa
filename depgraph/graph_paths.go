package depgraph

import (
	"github.com/LegacyCodeHQ/esgraph/depgraph/asset"
)

// FindPathNodes returns every module on a directed import path between any
// two of the targets, in either direction, including the targets themselves.
// Targets missing from the graph are ignored.
func FindPathNodes(g *asset.ModuleGraph, targets []string) map[string]bool {
	var valid []string
	for _, t := range targets {
		if g.Has(t) {
			valid = append(valid, t)
		}
	}

	keep := make(map[string]bool, len(valid))
	for _, t := range valid {
		keep[t] = true
	}
	if len(valid) < 2 {
		return keep
	}

	forward, reverse := adjacency(g)
	for i := 0; i < len(valid); i++ {
		for j := i + 1; j < len(valid); j++ {
			for node := range pathNodes(forward, reverse, valid[i], valid[j]) {
				keep[node] = true
			}
			for node := range pathNodes(forward, reverse, valid[j], valid[i]) {
				keep[node] = true
			}
		}
	}

	return keep
}

// Subgraph copies the assets in keep into a new graph. IDs are preserved and
// first-party edges and re-exports to modules outside keep are dropped.
func Subgraph(g *asset.ModuleGraph, keep map[string]bool) *asset.ModuleGraph {
	sub := asset.NewModuleGraph()
	for _, a := range g.Assets() {
		if !keep[a.Path()] {
			continue
		}
		deps := a.Dependencies()
		filtered := asset.NewDependencies(
			filterPaths(deps.FirstParty(), keep),
			deps.ThirdParty(),
			filterPaths(deps.Reexports(), keep),
		)
		// Paths are unique in g, so Insert cannot fail.
		_ = sub.Insert(asset.New(a.ID(), a.Path(), filtered))
	}
	return sub
}

// Between narrows r to the modules on import paths between targets.
func (r *Result) Between(targets []string) *Result {
	narrowed := *r
	narrowed.Graph = Subgraph(r.Graph, FindPathNodes(r.Graph, targets))
	return &narrowed
}

func filterPaths(paths []string, keep map[string]bool) []string {
	var out []string
	for _, p := range paths {
		if keep[p] {
			out = append(out, p)
		}
	}
	return out
}

// adjacency builds forward (importer -> imported) and reverse lists.
func adjacency(g *asset.ModuleGraph) (forward, reverse map[string][]string) {
	forward = g.Edges()
	reverse = make(map[string][]string, len(forward))
	for node, deps := range forward {
		for _, dep := range deps {
			reverse[dep] = append(reverse[dep], node)
		}
	}
	return forward, reverse
}

// pathNodes returns the nodes reachable from source that can also reach target.
func pathNodes(forward, reverse map[string][]string, source, target string) map[string]bool {
	fromSource := reachable(forward, source)
	toTarget := reachable(reverse, target)

	result := make(map[string]bool)
	if !fromSource[target] {
		return result
	}
	for node := range fromSource {
		if toTarget[node] {
			result[node] = true
		}
	}
	return result
}

func reachable(adjacency map[string][]string, source string) map[string]bool {
	seen := map[string]bool{source: true}
	queue := []string{source}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range adjacency[current] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return seen
}
