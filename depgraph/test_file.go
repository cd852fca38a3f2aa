package depgraph

import (
	"path/filepath"
	"strings"

	"github.com/LegacyCodeHQ/esgraph/depgraph/parser"
)

// IsTestFile reports whether a module path looks like a test: a
// foo.test.ts / foo.spec.js style name, or any module under __tests__.
func IsTestFile(path string) bool {
	if _, ok := parser.DialectFor(path); !ok {
		return false
	}

	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if strings.HasSuffix(stem, ".test") || strings.HasSuffix(stem, ".spec") {
		return true
	}

	return strings.Contains(filepath.ToSlash(path), "/__tests__/")
}
