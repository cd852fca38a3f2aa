package resolve

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/LegacyCodeHQ/esgraph/fsys"
)

// DefaultExtensions is the TypeScript-first extension inference order.
var DefaultExtensions = []string{".ts", ".tsx", ".js", ".jsx"}

// moduleExtensions are the extensions accepted for a package path that already
// names a file.
var moduleExtensions = []string{".ts", ".tsx", ".mts", ".cts", ".js", ".jsx", ".mjs", ".cjs"}

// packageIndexFallbacks are tried when a package manifest declares no usable entry point.
var packageIndexFallbacks = []string{"lib/index.js", "index.js"}

// Resolver turns specifiers into canonical file paths.
// It is synchronous and, unless a cache size is configured, stateless.
type Resolver struct {
	fs         fsys.FileSystem
	extensions []string
	cache      *lru.Cache[cacheKey, cacheEntry]
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFileSystem replaces the disk-backed filesystem.
func WithFileSystem(fs fsys.FileSystem) Option {
	return func(r *Resolver) {
		r.fs = fs
	}
}

// WithExtensions sets the ordered extension inference list.
func WithExtensions(extensions []string) Option {
	return func(r *Resolver) {
		if len(extensions) > 0 {
			r.extensions = slices.Clone(extensions)
		}
	}
}

// WithCacheSize memoizes up to size resolution results keyed by base directory
// and specifier. Zero disables caching.
func WithCacheSize(size int) Option {
	return func(r *Resolver) {
		if size <= 0 {
			r.cache = nil
			return
		}
		// lru.New only fails for non-positive sizes.
		r.cache, _ = lru.New[cacheKey, cacheEntry](size)
	}
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		fs:         fsys.OS{},
		extensions: slices.Clone(DefaultExtensions),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Extensions returns the extension inference order.
func (r *Resolver) Extensions() []string {
	return slices.Clone(r.extensions)
}

type cacheScope int

const (
	scopeRelative cacheScope = iota
	scopePackage
)

type cacheKey struct {
	scope     cacheScope
	base      string
	specifier string
}

type cacheEntry struct {
	path  string
	found bool
	// from is the directory a miss was reported against.
	from string
}

func (r *Resolver) cached(key cacheKey) (cacheEntry, bool) {
	if r.cache == nil {
		return cacheEntry{}, false
	}
	return r.cache.Get(key)
}

func (r *Resolver) remember(key cacheKey, path string, err error) {
	if r.cache == nil {
		return
	}
	switch {
	case err == nil:
		r.cache.Add(key, cacheEntry{path: path, found: true})
	case IsNotFound(err):
		entry := cacheEntry{from: key.base}
		var resolveErr *ResolveError
		if errors.As(err, &resolveErr) {
			entry.from = resolveErr.From
		}
		r.cache.Add(key, entry)
	}
}

// probe wraps fsys.Probe, turning stat faults into IOFaultError.
func (r *Resolver) probe(path string) (fsys.EntryKind, error) {
	kind, err := fsys.Probe(r.fs, path)
	if err != nil {
		return fsys.Missing, &IOFaultError{Path: path, Err: err}
	}
	return kind, nil
}

// resolveFile applies the explicit-file, extension-inference and
// directory-index rules to target, in that order.
func (r *Resolver) resolveFile(target string) (string, bool, error) {
	kind, err := r.probe(target)
	if err != nil {
		return "", false, err
	}
	if kind == fsys.File {
		return target, true, nil
	}

	for _, ext := range r.extensions {
		candidate := target + ext
		candidateKind, err := r.probe(candidate)
		if err != nil {
			return "", false, err
		}
		if candidateKind == fsys.File {
			return candidate, true, nil
		}
	}

	if kind == fsys.Dir {
		for _, ext := range r.extensions {
			candidate := filepath.Join(target, "index"+ext)
			candidateKind, err := r.probe(candidate)
			if err != nil {
				return "", false, err
			}
			if candidateKind == fsys.File {
				return candidate, true, nil
			}
		}
	}

	return "", false, nil
}

func absolute(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	return abs, nil
}

func hasModuleExtension(path string) bool {
	return slices.Contains(moduleExtensions, filepath.Ext(path))
}
