package asset

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrDuplicateAsset is returned when a path is inserted into a ModuleGraph twice.
var ErrDuplicateAsset = errors.New("asset already in graph")

// Dependencies holds the declared dependency edges of one module.
// The zero value has no edges. Accessors return copies.
type Dependencies struct {
	firstParty []string
	thirdParty []string
	reexports  []string
}

// NewDependencies copies the given sequences, preserving their order.
func NewDependencies(firstParty, thirdParty, reexports []string) Dependencies {
	return Dependencies{
		firstParty: slices.Clone(firstParty),
		thirdParty: slices.Clone(thirdParty),
		reexports:  slices.Clone(reexports),
	}
}

// FirstParty returns resolved local imports and re-export targets.
func (d Dependencies) FirstParty() []string {
	return slices.Clone(d.firstParty)
}

// ThirdParty returns specifiers that could not be resolved to a local file.
func (d Dependencies) ThirdParty() []string {
	return slices.Clone(d.thirdParty)
}

// Reexports returns the resolved targets of export-from declarations.
// Every entry is also present in FirstParty.
func (d Dependencies) Reexports() []string {
	return slices.Clone(d.reexports)
}

// IsEmpty reports whether the module declares no edges at all.
func (d Dependencies) IsEmpty() bool {
	return len(d.firstParty) == 0 && len(d.thirdParty) == 0 && len(d.reexports) == 0
}

// Asset is one node of the module graph. It is immutable once created.
type Asset struct {
	id           int
	path         string
	dependencies Dependencies
}

// New creates an Asset.
func New(id int, path string, dependencies Dependencies) *Asset {
	return &Asset{id: id, path: path, dependencies: dependencies}
}

func (a *Asset) ID() int {
	return a.id
}

func (a *Asset) Path() string {
	return a.path
}

func (a *Asset) Dependencies() Dependencies {
	return a.dependencies
}

// ModuleGraph maps canonical paths to assets. It only grows.
type ModuleGraph struct {
	assets map[string]*Asset
	order  []*Asset
}

// NewModuleGraph creates an empty graph.
func NewModuleGraph() *ModuleGraph {
	return &ModuleGraph{assets: make(map[string]*Asset)}
}

// Insert adds a. A path can only be inserted once.
func (g *ModuleGraph) Insert(a *Asset) error {
	if _, ok := g.assets[a.Path()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAsset, a.Path())
	}
	g.assets[a.Path()] = a
	g.order = append(g.order, a)
	return nil
}

// Has reports whether path is a key of the graph.
func (g *ModuleGraph) Has(path string) bool {
	_, ok := g.assets[path]
	return ok
}

// Get returns the asset for path.
func (g *ModuleGraph) Get(path string) (*Asset, bool) {
	a, ok := g.assets[path]
	return a, ok
}

// Len returns the number of assets.
func (g *ModuleGraph) Len() int {
	return len(g.assets)
}

// Assets returns every asset in insertion order, which is also ID order.
func (g *ModuleGraph) Assets() []*Asset {
	return slices.Clone(g.order)
}

// Paths returns every key in lexical order.
func (g *ModuleGraph) Paths() []string {
	paths := make([]string, 0, len(g.assets))
	for path := range g.assets {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Edges returns the first-party adjacency of the graph: for each asset, the
// targets of its FirstParty edges that are themselves in the graph.
func (g *ModuleGraph) Edges() map[string][]string {
	edges := make(map[string][]string, len(g.assets))
	for _, a := range g.order {
		targets := []string{}
		for _, dep := range a.dependencies.firstParty {
			if g.Has(dep) {
				targets = append(targets, dep)
			}
		}
		edges[a.path] = targets
	}
	return edges
}
