package formatters

import (
	"path"
	"strings"
)

// ShortNames returns distinct display names for slash-separated module paths.
// A path shows its base name unless another path shares it, in which case
// parent directories are added until every name in the group differs.
func ShortNames(paths []string) map[string]string {
	names := make(map[string]string, len(paths))
	byBase := make(map[string][]string, len(paths))
	for _, p := range paths {
		base := path.Base(p)
		byBase[base] = append(byBase[base], p)
	}

	for _, group := range byBase {
		maxDepth := 1
		for _, p := range group {
			maxDepth = max(maxDepth, strings.Count(strings.TrimPrefix(p, "/"), "/")+1)
		}

		depth := 1
		for ; len(group) > 1 && depth < maxDepth; depth++ {
			seen := make(map[string]bool, len(group))
			for _, p := range group {
				seen[suffix(p, depth)] = true
			}
			if len(seen) == len(group) {
				break
			}
		}
		for _, p := range group {
			names[p] = suffix(p, depth)
		}
	}

	return names
}

// suffix returns the last depth components of p.
func suffix(p string, depth int) string {
	parts := strings.Split(strings.TrimPrefix(path.Clean(p), "/"), "/")
	if depth > len(parts) {
		depth = len(parts)
	}
	return strings.Join(parts[len(parts)-depth:], "/")
}
