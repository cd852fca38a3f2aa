package analyzer

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/LegacyCodeHQ/esgraph/depgraph/asset"
	"github.com/LegacyCodeHQ/esgraph/depgraph/parser"
	"github.com/LegacyCodeHQ/esgraph/depgraph/resolve"
	"github.com/LegacyCodeHQ/esgraph/depgraph/specifier"
	"github.com/LegacyCodeHQ/esgraph/internal/logging"
)

// Resolver resolves relative specifiers against the importing module.
type Resolver interface {
	ResolveRelative(referencingPath, spec string) (string, error)
}

// Analyzer turns a parsed module into its dependency edges.
type Analyzer struct {
	resolver Resolver
	logger   *log.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for reclassification events.
func WithLogger(logger *log.Logger) Option {
	return func(a *Analyzer) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates an Analyzer backed by resolver.
func New(resolver Resolver, opts ...Option) *Analyzer {
	a := &Analyzer{
		resolver: resolver,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze walks the module's top-level declarations in source order.
//
// Imports and export-from declarations with a relative specifier are resolved;
// a resolved path goes to FirstParty (and Reexports for export-from), a miss
// is recorded verbatim in ThirdParty. Bare specifiers go straight to
// ThirdParty. Exports without a from-clause and default exports add nothing.
// A filesystem fault during resolution is returned as an error.
func (a *Analyzer) Analyze(mod *parser.Module, modulePath string) (asset.Dependencies, error) {
	var edges edgeSet

	for _, decl := range mod.Declarations {
		if !decl.HasSource || decl.Source == "" {
			continue
		}

		var reexport bool
		switch decl.Kind {
		case parser.Import:
		case parser.ExportAll, parser.ExportNamed:
			reexport = true
		default:
			continue
		}

		if err := a.addEdge(&edges, modulePath, decl, reexport); err != nil {
			return asset.Dependencies{}, err
		}
	}

	return asset.NewDependencies(edges.firstParty.items, edges.thirdParty.items, edges.reexports.items), nil
}

func (a *Analyzer) addEdge(edges *edgeSet, modulePath string, decl parser.Declaration, reexport bool) error {
	if specifier.Classify(decl.Source) == specifier.Bare {
		edges.thirdParty.add(decl.Source)
		return nil
	}

	resolved, err := a.resolver.ResolveRelative(modulePath, decl.Source)
	switch {
	case err == nil:
		edges.firstParty.add(resolved)
		if reexport {
			edges.reexports.add(resolved)
		}
		return nil
	case resolve.IsNotFound(err):
		a.logger.Debug("reclassified as third-party", "module", modulePath, "specifier", decl.Source, "line", decl.Line)
		edges.thirdParty.add(decl.Source)
		return nil
	default:
		return fmt.Errorf("%s:%d: resolving %q: %w", modulePath, decl.Line, decl.Source, err)
	}
}

type edgeSet struct {
	firstParty orderedSet
	thirdParty orderedSet
	reexports  orderedSet
}

// orderedSet keeps the first occurrence of each value in insertion order.
type orderedSet struct {
	seen  map[string]bool
	items []string
}

func (s *orderedSet) add(value string) {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	if s.seen[value] {
		return
	}
	s.seen[value] = true
	s.items = append(s.items, value)
}
