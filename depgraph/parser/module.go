package parser

// DeclarationKind is the form of a top-level import or export declaration.
type DeclarationKind int

const (
	// Import is `import ... from "s"`, `import "s"` or `import x = require("s")`.
	Import DeclarationKind = iota
	// ExportAll is `export * from "s"`.
	ExportAll
	// ExportNamed is `export { x } from "s"`, `export * as ns from "s"` or,
	// without a source, `export { x }`.
	ExportNamed
	// ExportDeclaration is `export const x = ...`, `export function f() {}` and similar.
	ExportDeclaration
	// ExportDefaultDeclaration is `export default function f() {}` or `export default class {}`.
	ExportDefaultDeclaration
	// ExportDefaultExpression is `export default expr`.
	ExportDefaultExpression
)

func (k DeclarationKind) String() string {
	switch k {
	case Import:
		return "import"
	case ExportAll:
		return "export-all"
	case ExportNamed:
		return "export-named"
	case ExportDeclaration:
		return "export-declaration"
	case ExportDefaultDeclaration:
		return "export-default-declaration"
	case ExportDefaultExpression:
		return "export-default-expression"
	default:
		return "unknown"
	}
}

// Declaration is one top-level import or export.
type Declaration struct {
	Kind DeclarationKind
	// Source is the specifier in the from-clause, without quotes.
	Source string
	// HasSource is false for exports that carry no from-clause.
	HasSource bool
	// Line is 1-based.
	Line int
}

// Module is the part of a parsed source file the analyzer consumes:
// its top-level import and export declarations in source order.
type Module struct {
	Dialect      Dialect
	Declarations []Declaration
}
