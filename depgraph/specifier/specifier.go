package specifier

import "strings"

// Kind classifies an import/export source string.
type Kind int

const (
	// Bare names an installed package (react, @scope/pkg, lodash/fp).
	Bare Kind = iota
	// Relative names a project file (./, ../).
	Relative
)

func (k Kind) String() string {
	switch k {
	case Relative:
		return "relative"
	case Bare:
		return "bare"
	default:
		return "unknown"
	}
}

// Classify reports whether the first path component of spec is "." or "..".
func Classify(spec string) Kind {
	first, _, _ := strings.Cut(spec, "/")
	if first == "." || first == ".." {
		return Relative
	}
	return Bare
}

// nodeBuiltins contains known Node.js built-in module names
var nodeBuiltins = map[string]bool{
	"assert":              true,
	"async_hooks":         true,
	"buffer":              true,
	"child_process":       true,
	"cluster":             true,
	"console":             true,
	"constants":           true,
	"crypto":              true,
	"dgram":               true,
	"diagnostics_channel": true,
	"dns":                 true,
	"domain":              true,
	"events":              true,
	"fs":                  true,
	"http":                true,
	"http2":               true,
	"https":               true,
	"inspector":           true,
	"module":              true,
	"net":                 true,
	"os":                  true,
	"path":                true,
	"perf_hooks":          true,
	"process":             true,
	"punycode":            true,
	"querystring":         true,
	"readline":            true,
	"repl":                true,
	"stream":              true,
	"string_decoder":      true,
	"timers":              true,
	"tls":                 true,
	"tty":                 true,
	"url":                 true,
	"util":                true,
	"v8":                  true,
	"vm":                  true,
	"worker_threads":      true,
	"zlib":                true,
}

// IsBuiltin reports whether spec names a Node.js core module (fs, node:fs, fs/promises).
func IsBuiltin(spec string) bool {
	if strings.HasPrefix(spec, "node:") {
		return true
	}
	name, _ := PackageName(spec)
	return nodeBuiltins[name]
}

// PackageName splits a bare specifier into its package name and the subpath
// inside that package. Scoped names (@scope/name) are kept as one unit.
//
//	PackageName("lodash")          // "lodash", ""
//	PackageName("lodash/fp/map")   // "lodash", "fp/map"
//	PackageName("@babel/core/lib") // "@babel/core", "lib"
func PackageName(spec string) (name, subpath string) {
	parts := strings.SplitN(spec, "/", 3)
	if strings.HasPrefix(spec, "@") && len(parts) >= 2 {
		name = parts[0] + "/" + parts[1]
		if len(parts) == 3 {
			subpath = parts[2]
		}
		return name, subpath
	}
	name, subpath, _ = strings.Cut(spec, "/")
	return name, subpath
}
