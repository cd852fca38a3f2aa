package formatters

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/LegacyCodeHQ/esgraph/depgraph"
)

// TableFormatter renders one row per analyzed module.
type TableFormatter struct{}

// Format renders the module list as a text table followed by the unresolved
// and builtin specifiers.
func (f *TableFormatter) Format(r *depgraph.Result, opts FormatOptions) (string, error) {
	doc, err := NewDocument(r, opts)
	if err != nil {
		return "", err
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"ID", "Module", "Imports", "Packages", "Re-exports"})

	for _, m := range doc.Modules {
		tbl.AppendRow(table.Row{
			m.ID,
			m.Path,
			len(m.FirstParty),
			strings.Join(m.ThirdParty, ", "),
			len(m.Reexports),
		})
	}

	tbl.AppendFooter(table.Row{"", fmt.Sprintf("Total: %d modules", len(doc.Modules))})

	var sb strings.Builder
	sb.WriteString(tbl.Render())

	if len(doc.Unresolved) > 0 {
		sb.WriteString("\n\nUnresolved: " + strings.Join(doc.Unresolved, ", "))
	}
	if len(doc.Builtins) > 0 {
		sb.WriteString("\n\nBuiltins: " + strings.Join(doc.Builtins, ", "))
	}
	for _, c := range doc.Cycles {
		sb.WriteString("\n\nCycle: " + strings.Join(c, ", "))
	}

	return sb.String(), nil
}
