package formatters

import (
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/esgraph/depgraph"
)

// MermaidFormatter formats traversal results as Mermaid.js flowcharts.
type MermaidFormatter struct{}

// Format converts the module graph to a Mermaid.js flowchart.
// Node IDs are derived from asset IDs; modules in an import cycle get the cycle class.
func (f *MermaidFormatter) Format(r *depgraph.Result, opts FormatOptions) (string, error) {
	l, err := newLayout(r, opts)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if opts.Label != "" {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("title: %s\n", opts.Label))
		sb.WriteString("---\n")
	}
	sb.WriteString("flowchart LR")

	for _, n := range l.nodes {
		// Mermaid labels cannot contain raw quotes
		label := strings.ReplaceAll(n.name, "\"", "#quot;")
		sb.WriteString(fmt.Sprintf("\n    n%d[\"%s\"]", n.id, label))
	}

	var cyclic []string
	inCycle := make(map[int]bool)
	for _, e := range l.edges {
		arrow := "-->"
		if e.reexport {
			arrow = "-.->"
		}
		sb.WriteString(fmt.Sprintf("\n    n%d %s n%d", e.from, arrow, e.to))

		if e.cyclic {
			for _, id := range []int{e.from, e.to} {
				if !inCycle[id] {
					inCycle[id] = true
					cyclic = append(cyclic, fmt.Sprintf("n%d", id))
				}
			}
		}
	}

	if len(cyclic) > 0 {
		sb.WriteString("\n    classDef cycle stroke:#d33,stroke-width:2px")
		sb.WriteString("\n    class " + strings.Join(cyclic, ",") + " cycle")
	}

	return sb.String(), nil
}
