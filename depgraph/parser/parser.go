package parser

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Parser turns source text into a Module.
type Parser interface {
	Parse(ctx context.Context, source []byte, dialect Dialect) (*Module, error)
}

// ParseError reports a syntax error. Line and Column are 1-based.
type ParseError struct {
	Dialect Dialect
	Line    int
	Column  int
	Near    string
}

func (e *ParseError) Error() string {
	if e.Near == "" {
		return fmt.Sprintf("%s syntax error at %d:%d", e.Dialect, e.Line, e.Column)
	}
	return fmt.Sprintf("%s syntax error at %d:%d near %q", e.Dialect, e.Line, e.Column, e.Near)
}

// TreeSitter parses modules with the tree-sitter JavaScript, TypeScript and TSX grammars.
type TreeSitter struct{}

// NewTreeSitter returns the default Parser.
func NewTreeSitter() TreeSitter {
	return TreeSitter{}
}

func languageFor(dialect Dialect) *sitter.Language {
	switch dialect {
	case TypeScript:
		return typescript.GetLanguage()
	case TSX:
		return tsx.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// Parse parses source and collects its top-level import/export declarations.
// Any ERROR or MISSING node in the tree is reported as a *ParseError.
func (TreeSitter) Parse(ctx context.Context, source []byte, dialect Dialect) (*Module, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(languageFor(dialect))

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s code: %w", dialect, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, syntaxError(root, source, dialect)
	}

	return &Module{
		Dialect:      dialect,
		Declarations: extractDeclarations(root, source),
	}, nil
}

// extractDeclarations visits the program's direct children only; nested
// module blocks and dynamic imports are not declarations.
func extractDeclarations(root *sitter.Node, source []byte) []Declaration {
	var declarations []Declaration

	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		if node == nil {
			continue
		}

		switch node.Type() {
		case "import_statement":
			if decl, ok := importDeclaration(node, source); ok {
				declarations = append(declarations, decl)
			}
		case "export_statement":
			declarations = append(declarations, exportDeclaration(node, source))
		}
	}

	return declarations
}

func importDeclaration(node *sitter.Node, source []byte) (Declaration, bool) {
	src := node.ChildByFieldName("source")
	if src == nil {
		// import x = require("s")
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child != nil && child.Type() == "import_require_clause" {
				src = stringChild(child)
				break
			}
		}
	}
	if src == nil {
		return Declaration{}, false
	}

	return Declaration{
		Kind:      Import,
		Source:    cleanImportPath(src.Content(source)),
		HasSource: true,
		Line:      line(node),
	}, true
}

func exportDeclaration(node *sitter.Node, source []byte) Declaration {
	decl := Declaration{Line: line(node)}

	var hasStar, hasDefault, hasClause bool
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "*":
			hasStar = true
		case "default":
			hasDefault = true
		case "export_clause":
			hasClause = true
		}
	}

	if src := node.ChildByFieldName("source"); src != nil {
		decl.Source = cleanImportPath(src.Content(source))
		decl.HasSource = true
		if hasStar {
			decl.Kind = ExportAll
		} else {
			decl.Kind = ExportNamed
		}
		return decl
	}

	switch {
	case hasDefault && node.ChildByFieldName("declaration") != nil:
		decl.Kind = ExportDefaultDeclaration
	case hasDefault:
		decl.Kind = ExportDefaultExpression
	case hasClause:
		decl.Kind = ExportNamed
	default:
		decl.Kind = ExportDeclaration
	}
	return decl
}

// syntaxError locates the first ERROR or MISSING node in document order.
func syntaxError(root *sitter.Node, source []byte, dialect Dialect) *ParseError {
	var found *sitter.Node

	var walk func(*sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil || found != nil {
			return
		}
		if n.Type() == "ERROR" || n.IsMissing() {
			found = n
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)

	if found == nil {
		found = root
	}

	near := found.Content(source)
	if idx := strings.IndexByte(near, '\n'); idx >= 0 {
		near = near[:idx]
	}
	if len(near) > 40 {
		near = near[:40]
	}

	point := found.StartPoint()
	return &ParseError{
		Dialect: dialect,
		Line:    int(point.Row) + 1,
		Column:  int(point.Column) + 1,
		Near:    strings.TrimSpace(near),
	}
}

// stringChild returns the source field of node, or its first string child
// for grammar versions that do not name the field.
func stringChild(node *sitter.Node) *sitter.Node {
	if src := node.ChildByFieldName("source"); src != nil {
		return src
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child != nil && child.Type() == "string" {
			return child
		}
	}
	return nil
}

func line(node *sitter.Node) int {
	return int(node.StartPoint().Row) + 1
}

// cleanImportPath removes quotes from import path strings
func cleanImportPath(raw string) string {
	cleaned := strings.Trim(raw, "'\"`")
	return strings.TrimSpace(cleaned)
}
