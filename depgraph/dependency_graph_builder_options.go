package depgraph

import (
	"github.com/charmbracelet/log"

	"github.com/LegacyCodeHQ/esgraph/depgraph/parser"
	"github.com/LegacyCodeHQ/esgraph/depgraph/resolve"
	"github.com/LegacyCodeHQ/esgraph/fsys"
)

// Traversal selects the work-queue discipline. It changes the order assets
// are discovered in, never the contents of the graph.
type Traversal int

const (
	// LIFO pops the most recently discovered path first (depth-first).
	LIFO Traversal = iota
	// FIFO pops the oldest discovered path first (breadth-first).
	FIFO
)

func (t Traversal) String() string {
	if t == FIFO {
		return "fifo"
	}
	return "lifo"
}

// ParseErrorPolicy decides what a module that fails to parse does to the run.
type ParseErrorPolicy int

const (
	// AbortOnParseError fails the whole run.
	AbortOnParseError ParseErrorPolicy = iota
	// SkipParseErrors leaves the module out of the graph and records it in Result.Skipped.
	SkipParseErrors
)

func (p ParseErrorPolicy) String() string {
	if p == SkipParseErrors {
		return "skip"
	}
	return "abort"
}

// Option configures a Builder.
type Option func(*Builder)

// WithFileSystem replaces the disk for both path probing and module reads.
func WithFileSystem(fs fsys.FileSystem) Option {
	return func(b *Builder) {
		b.fs = fs
	}
}

// WithParser replaces the tree-sitter parser.
func WithParser(p parser.Parser) Option {
	return func(b *Builder) {
		b.parser = p
	}
}

// WithResolverOptions configures the path resolver (extensions, cache size).
func WithResolverOptions(opts ...resolve.Option) Option {
	return func(b *Builder) {
		b.resolverOpts = append(b.resolverOpts, opts...)
	}
}

// WithLogger sets the logger for traversal events.
func WithLogger(logger *log.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithTraversal sets the work-queue discipline.
func WithTraversal(t Traversal) Option {
	return func(b *Builder) {
		b.traversal = t
	}
}

// WithParseErrorPolicy sets what happens when a module fails to parse.
func WithParseErrorPolicy(p ParseErrorPolicy) Option {
	return func(b *Builder) {
		b.onParseError = p
	}
}
