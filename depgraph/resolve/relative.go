package resolve

import (
	"path/filepath"
	"strings"

	"github.com/LegacyCodeHQ/esgraph/fsys"
)

// ResolveRelative resolves spec against referencingPath, which may name the
// importing file or a directory. The result is an existing regular file.
// A miss is reported as ErrNotFound; a filesystem fault as *IOFaultError.
func (r *Resolver) ResolveRelative(referencingPath, spec string) (string, error) {
	base, err := r.baseDir(referencingPath)
	if err != nil {
		return "", err
	}

	key := cacheKey{scope: scopeRelative, base: base, specifier: spec}
	if entry, ok := r.cached(key); ok {
		if !entry.found {
			return "", notFound(referencingPath, spec)
		}
		return entry.path, nil
	}

	resolved, err := r.resolveFrom(base, spec, referencingPath)
	r.remember(key, resolved, err)
	return resolved, err
}

func (r *Resolver) resolveFrom(base, spec, from string) (string, error) {
	resolved, ok, err := r.resolveFile(joinComponents(base, spec))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", notFound(from, spec)
	}
	return resolved, nil
}

// baseDir returns referencingPath itself when it is a directory and its parent otherwise.
func (r *Resolver) baseDir(referencingPath string) (string, error) {
	abs, err := absolute(referencingPath)
	if err != nil {
		return "", err
	}
	kind, err := r.probe(abs)
	if err != nil {
		return "", err
	}
	if kind == fsys.Dir {
		return abs, nil
	}
	return filepath.Dir(abs), nil
}

// joinComponents appends the components of spec to base. ".." drops the last
// component appended from spec and is a no-op at base, so the result never
// leaves base. "." and empty components are ignored.
func joinComponents(base, spec string) string {
	path := base
	pushed := 0
	for _, component := range strings.Split(filepath.ToSlash(spec), "/") {
		switch component {
		case "", ".":
			continue
		case "..":
			if pushed > 0 {
				path = filepath.Dir(path)
				pushed--
			}
		default:
			path = filepath.Join(path, component)
			pushed++
		}
	}
	return path
}
