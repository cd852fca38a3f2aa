package resolve

import (
	"path/filepath"

	"github.com/LegacyCodeHQ/esgraph/depgraph/specifier"
	"github.com/LegacyCodeHQ/esgraph/fsys"
)

// ResolvePackage locates the file a bare specifier refers to under installRoot
// (usually a node_modules directory).
//
// A subpath (lodash/fp/map) is resolved inside the package with the same
// rules as a relative import. A bare package name resolves to the entry point
// declared by its package.json ("main", then "module"), falling back to
// lib/index.js and then index.js.
func (r *Resolver) ResolvePackage(installRoot, spec string) (string, error) {
	root, err := absolute(installRoot)
	if err != nil {
		return "", err
	}

	key := cacheKey{scope: scopePackage, base: root, specifier: spec}
	if entry, ok := r.cached(key); ok {
		if !entry.found {
			return "", notFound(entry.from, spec)
		}
		return entry.path, nil
	}

	resolved, err := r.resolvePackage(root, spec)
	r.remember(key, resolved, err)
	return resolved, err
}

func (r *Resolver) resolvePackage(root, spec string) (string, error) {
	name, subpath := specifier.PackageName(spec)
	if name == "" || specifier.Classify(spec) == specifier.Relative {
		return "", notFound(root, spec)
	}

	pkgPath := filepath.Join(root, filepath.FromSlash(name))

	if subpath != "" {
		return r.resolveFrom(pkgPath, subpath, pkgPath)
	}

	kind, err := r.probe(pkgPath)
	if err != nil {
		return "", err
	}
	if kind == fsys.File && hasModuleExtension(pkgPath) {
		return pkgPath, nil
	}
	if kind != fsys.Dir {
		return "", notFound(root, spec)
	}

	resolved, ok, err := r.resolveMainFile(pkgPath)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", notFound(root, spec)
	}
	return resolved, nil
}

// resolveMainFile prefers the manifest entry point and falls back to the
// conventional index files.
func (r *Resolver) resolveMainFile(pkgDir string) (string, bool, error) {
	manifest, err := readManifest(r.fs, pkgDir)
	if err != nil {
		return "", false, err
	}

	for _, entry := range manifest.entryPoints() {
		resolved, ok, err := r.resolveFile(filepath.Join(pkgDir, filepath.FromSlash(entry)))
		if err != nil {
			return "", false, err
		}
		if ok {
			return resolved, true, nil
		}
	}

	for _, fallback := range packageIndexFallbacks {
		candidate := filepath.Join(pkgDir, filepath.FromSlash(fallback))
		kind, err := r.probe(candidate)
		if err != nil {
			return "", false, err
		}
		if kind == fsys.File {
			return candidate, true, nil
		}
	}

	return "", false, nil
}
