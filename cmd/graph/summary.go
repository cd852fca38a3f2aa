package graph

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"

	"github.com/LegacyCodeHQ/esgraph/depgraph"
)

// count renders n with thousands separators and a pluralized noun.
func count(n int, noun string) string {
	return fmt.Sprintf("%s %s", humanize.Comma(int64(n)), english.PluralWord(n, noun, ""))
}

// Label is the title used by dot and mermaid output.
func Label(r *depgraph.Result, root string) string {
	return fmt.Sprintf("%s • %s", displayPath(root, r.Entry), count(r.Graph.Len(), "module"))
}

// PrintSummary writes a one-line count of the traversal followed by a warning
// per unresolved specifier and skipped module.
func PrintSummary(w io.Writer, r *depgraph.Result, root string) {
	fmt.Fprintf(w, "%s, %s unresolved, %s\n",
		count(r.Graph.Len(), "module"),
		humanize.Comma(int64(len(r.Unresolved))),
		count(len(r.Builtins), "builtin"))

	warn := color.New(color.FgYellow)
	for _, spec := range r.Unresolved {
		warn.Fprintf(w, "warning: unresolved dependency %q\n", spec)
	}
	for _, s := range r.Skipped {
		warn.Fprintf(w, "warning: skipped %s: %v\n", displayPath(root, s.Path), s.Err)
	}
}

// PrintBuildError reports how far a failed traversal got.
func PrintBuildError(w io.Writer, err *depgraph.BuildError, root string) {
	color.New(color.FgRed).Fprintf(w, "error: stopped at %s after %s\n",
		displayPath(root, err.Path), count(err.Built, "module"))
}

func displayPath(root, path string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
