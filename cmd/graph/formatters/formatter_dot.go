package formatters

import (
	"fmt"
	"path"
	"strings"

	"github.com/LegacyCodeHQ/esgraph/depgraph"
)

// DOTFormatter formats traversal results as Graphviz DOT.
type DOTFormatter struct{}

// Format converts the module graph to Graphviz DOT format.
// Test modules are green, re-export edges are dashed and edges inside an
// import cycle are red.
func (f *DOTFormatter) Format(r *depgraph.Result, opts FormatOptions) (string, error) {
	l, err := newLayout(r, opts)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("digraph dependencies {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n")

	if opts.Label != "" {
		sb.WriteString(fmt.Sprintf("  label=%q;\n", opts.Label))
		sb.WriteString("  labelloc=t;\n")
		sb.WriteString("  labeljust=l;\n")
		sb.WriteString("  fontsize=10;\n")
		sb.WriteString("  fontname=Courier;\n")
	}
	sb.WriteString("\n")

	colors := ExtensionColors(l.paths())
	for _, n := range l.nodes {
		color := colors[path.Ext(n.path)]
		if depgraph.IsTestFile(n.abs) {
			color = "lightgreen"
		}
		sb.WriteString(fmt.Sprintf("  %q [label=%q, style=filled, fillcolor=%s];\n", n.path, n.name, color))
	}
	if len(l.edges) > 0 {
		sb.WriteString("\n")
	}

	for _, e := range l.edges {
		var attrs []string
		if e.reexport {
			attrs = append(attrs, "style=dashed")
		}
		if e.cyclic {
			attrs = append(attrs, "color=red")
		}
		sb.WriteString(fmt.Sprintf("  %q -> %q", l.byID[e.from].path, l.byID[e.to].path))
		if len(attrs) > 0 {
			sb.WriteString(" [" + strings.Join(attrs, ", ") + "]")
		}
		sb.WriteString(";\n")
	}

	sb.WriteString("}")
	return sb.String(), nil
}
