package depgraph

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/LegacyCodeHQ/esgraph/depgraph/analyzer"
	"github.com/LegacyCodeHQ/esgraph/depgraph/asset"
	"github.com/LegacyCodeHQ/esgraph/depgraph/parser"
	"github.com/LegacyCodeHQ/esgraph/depgraph/resolve"
	"github.com/LegacyCodeHQ/esgraph/depgraph/specifier"
	"github.com/LegacyCodeHQ/esgraph/fsys"
	"github.com/LegacyCodeHQ/esgraph/internal/logging"
)

// Builder assembles a module graph from a single entry point.
// A Builder holds no per-run state and may be reused for successive builds,
// but not concurrently.
type Builder struct {
	fs           fsys.FileSystem
	parser       parser.Parser
	resolverOpts []resolve.Option
	logger       *log.Logger
	traversal    Traversal
	onParseError ParseErrorPolicy

	resolver *resolve.Resolver
	analyzer *analyzer.Analyzer
	read     fsys.ContentReader
}

// NewBuilder creates a Builder with the tree-sitter parser, the local disk and LIFO traversal.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		fs:     fsys.OS{},
		parser: parser.NewTreeSitter(),
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}

	resolverOpts := append([]resolve.Option{resolve.WithFileSystem(b.fs)}, b.resolverOpts...)
	b.resolver = resolve.New(resolverOpts...)
	b.analyzer = analyzer.New(b.resolver, analyzer.WithLogger(b.logger))
	b.read = fsys.Reader(b.fs)

	return b
}

// BuildModuleGraph builds the graph for entry with default options.
func BuildModuleGraph(ctx context.Context, entry, installRoot string) (*Result, error) {
	return NewBuilder().Build(ctx, entry, installRoot)
}

// Build walks every module reachable from entry through first-party and
// re-export edges, plus the entry files of installed packages referenced by
// bare specifiers, analyzing each canonical path exactly once.
//
// On failure the partially built Result is returned together with a
// *BuildError naming the module that stopped the run.
func (b *Builder) Build(ctx context.Context, entry, installRoot string) (*Result, error) {
	entryPath, err := filepath.Abs(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", entry, err)
	}
	rootPath, err := filepath.Abs(installRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", installRoot, err)
	}

	kind, err := fsys.Probe(b.fs, entryPath)
	if err != nil {
		return nil, &BuildError{Path: entryPath, Err: &resolve.IOFaultError{Path: entryPath, Err: err}}
	}
	if kind != fsys.File {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, entryPath)
	}

	run := &buildRun{
		Builder:    b,
		result:     newResult(entryPath, rootPath),
		skipped:    make(map[string]bool),
		unresolved: make(map[string]bool),
		builtins:   make(map[string]bool),
	}
	run.push(entryPath)

	if err := run.drain(ctx); err != nil {
		return run.result, err
	}
	return run.result, nil
}

// buildRun is the state of one traversal.
type buildRun struct {
	*Builder

	result *Result
	queue  []string
	nextID int

	skipped    map[string]bool
	unresolved map[string]bool
	builtins   map[string]bool
}

func (r *buildRun) push(path string) {
	r.queue = append(r.queue, path)
}

func (r *buildRun) pop() string {
	var path string
	if r.traversal == FIFO {
		path = r.queue[0]
		r.queue = r.queue[1:]
	} else {
		last := len(r.queue) - 1
		path = r.queue[last]
		r.queue = r.queue[:last]
	}
	return path
}

func (r *buildRun) visited(path string) bool {
	return r.result.Graph.Has(path) || r.skipped[path]
}

func (r *buildRun) drain(ctx context.Context) error {
	graph := r.result.Graph

	for len(r.queue) > 0 {
		path := r.pop()

		if err := ctx.Err(); err != nil {
			return &BuildError{Path: path, Built: graph.Len(), Err: err}
		}

		if r.visited(path) {
			r.logger.Debug("already visited", "path", path)
			continue
		}

		deps, err := r.analyze(ctx, path)
		if err != nil {
			var parseErr *parser.ParseError
			if errors.As(err, &parseErr) && r.onParseError == SkipParseErrors {
				r.logger.Warn("skipping module that failed to parse", "path", path, "err", parseErr)
				r.skipped[path] = true
				r.result.Skipped = append(r.result.Skipped, SkippedModule{Path: path, Err: err})
				continue
			}
			return &BuildError{Path: path, Built: graph.Len(), Err: err}
		}

		r.nextID++
		if err := graph.Insert(asset.New(r.nextID, path, deps)); err != nil {
			return &BuildError{Path: path, Built: graph.Len(), Err: err}
		}
		r.logger.Debug("analyzed module", "id", r.nextID, "path", path,
			"first_party", len(deps.FirstParty()), "third_party", len(deps.ThirdParty()))

		r.enqueueLocal(deps)
		if err := r.enqueuePackages(deps); err != nil {
			return &BuildError{Path: path, Built: graph.Len(), Err: err}
		}
	}

	return nil
}

// analyze reads and parses path. Files without an ECMAScript dialect become
// leaf assets with no dependencies.
func (r *buildRun) analyze(ctx context.Context, path string) (asset.Dependencies, error) {
	dialect, ok := parser.DialectFor(path)
	if !ok {
		r.logger.Debug("not a module, recording as leaf", "path", path)
		return asset.Dependencies{}, nil
	}

	content, err := r.read(path)
	if err != nil {
		return asset.Dependencies{}, &resolve.IOFaultError{Path: path, Err: err}
	}

	mod, err := r.parser.Parse(ctx, content, dialect)
	if err != nil {
		return asset.Dependencies{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return r.analyzer.Analyze(mod, path)
}

func (r *buildRun) enqueueLocal(deps asset.Dependencies) {
	for _, dep := range deps.FirstParty() {
		if !r.visited(dep) {
			r.push(dep)
		}
	}
	for _, dep := range deps.Reexports() {
		if !r.visited(dep) {
			r.push(dep)
		}
	}
}

// enqueuePackages looks up each bare third-party specifier under the install
// root. Relative specifiers that failed to resolve locally and unmatched
// packages are recorded as unresolved; neither halts the traversal.
func (r *buildRun) enqueuePackages(deps asset.Dependencies) error {
	for _, spec := range deps.ThirdParty() {
		if specifier.Classify(spec) == specifier.Relative {
			r.recordUnresolved(spec)
			continue
		}
		if specifier.IsBuiltin(spec) {
			if !r.builtins[spec] {
				r.builtins[spec] = true
				r.result.Builtins = append(r.result.Builtins, spec)
			}
			continue
		}

		resolved, err := r.resolver.ResolvePackage(r.result.InstallRoot, spec)
		if err != nil {
			if resolve.IsNotFound(err) {
				r.recordUnresolved(spec)
				continue
			}
			return fmt.Errorf("resolving package %q: %w", spec, err)
		}

		r.logger.Debug("resolved package", "specifier", spec, "path", resolved)
		if !r.visited(resolved) {
			r.push(resolved)
		}
	}
	return nil
}

func (r *buildRun) recordUnresolved(spec string) {
	if r.unresolved[spec] {
		return
	}
	r.unresolved[spec] = true
	r.result.Unresolved = append(r.result.Unresolved, spec)
	r.logger.Debug("unresolved third-party dependency", "specifier", spec)
}
