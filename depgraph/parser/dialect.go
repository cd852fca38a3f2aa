package parser

import (
	"path/filepath"
	"strings"
)

// Dialect selects the grammar a module is parsed with.
type Dialect int

const (
	JavaScript Dialect = iota
	TypeScript
	TSX
)

func (d Dialect) String() string {
	switch d {
	case JavaScript:
		return "javascript"
	case TypeScript:
		return "typescript"
	case TSX:
		return "tsx"
	default:
		return "unknown"
	}
}

var dialectsByExtension = map[string]Dialect{
	".ts":  TypeScript,
	".mts": TypeScript,
	".cts": TypeScript,
	".tsx": TSX,
	".js":  JavaScript,
	".jsx": JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
}

// DialectFor picks the dialect from the file extension. The second result is
// false for files that are not ECMAScript modules (stylesheets, JSON, images);
// the returned dialect is then JavaScript.
func DialectFor(path string) (Dialect, bool) {
	d, ok := dialectsByExtension[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return JavaScript, false
	}
	return d, true
}
