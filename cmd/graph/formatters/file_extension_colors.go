package formatters

import (
	"path"
	"sort"
)

var extensionPalette = []string{
	"lightblue", "lightyellow", "mistyrose", "lightsalmon",
	"lightpink", "lavender", "peachpuff", "plum", "powderblue", "khaki",
}

// ExtensionColors assigns fill colors to the extensions of paths.
// The most common extension is drawn white; ties go to the extension that sorts first.
func ExtensionColors(paths []string) map[string]string {
	counts := make(map[string]int)
	for _, p := range paths {
		counts[path.Ext(p)]++
	}

	exts := make([]string, 0, len(counts))
	for ext := range counts {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	var majority string
	for i, ext := range exts {
		if i == 0 || counts[ext] > counts[majority] {
			majority = ext
		}
	}

	colors := make(map[string]string, len(exts))
	next := 0
	for _, ext := range exts {
		if ext == majority {
			colors[ext] = "white"
			continue
		}
		colors[ext] = extensionPalette[next%len(extensionPalette)]
		next++
	}
	return colors
}
