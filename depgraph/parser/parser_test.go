package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, source string, dialect Dialect) *Module {
	t.Helper()

	mod, err := NewTreeSitter().Parse(context.Background(), []byte(source), dialect)
	require.NoError(t, err)
	return mod
}

func TestParse_Imports(t *testing.T) {
	source := `
import React from 'react';
import { Button } from "./components/Button";
import './polyfills';
import type { Props } from './types';
`
	mod := parse(t, source, TypeScript)

	require.Len(t, mod.Declarations, 4)
	for _, decl := range mod.Declarations {
		assert.Equal(t, Import, decl.Kind)
		assert.True(t, decl.HasSource)
	}
	assert.Equal(t, "react", mod.Declarations[0].Source)
	assert.Equal(t, "./components/Button", mod.Declarations[1].Source)
	assert.Equal(t, "./polyfills", mod.Declarations[2].Source)
	assert.Equal(t, "./types", mod.Declarations[3].Source)
	assert.Equal(t, 2, mod.Declarations[0].Line)
}

func TestParse_ExportForms(t *testing.T) {
	source := `export * from './all';
export { a, b as c } from './named';
const x = 1;
export { x };
export const y = 2;
export default x;
`
	mod := parse(t, source, JavaScript)

	require.Len(t, mod.Declarations, 5)

	assert.Equal(t, ExportAll, mod.Declarations[0].Kind)
	assert.Equal(t, "./all", mod.Declarations[0].Source)

	assert.Equal(t, ExportNamed, mod.Declarations[1].Kind)
	assert.Equal(t, "./named", mod.Declarations[1].Source)
	assert.True(t, mod.Declarations[1].HasSource)

	assert.Equal(t, ExportNamed, mod.Declarations[2].Kind)
	assert.False(t, mod.Declarations[2].HasSource)
	assert.Empty(t, mod.Declarations[2].Source)

	assert.Equal(t, ExportDeclaration, mod.Declarations[3].Kind)
	assert.Equal(t, ExportDefaultExpression, mod.Declarations[4].Kind)
}

func TestParse_ExportDefaultDeclaration(t *testing.T) {
	mod := parse(t, "export default function App() { return null; }\n", JavaScript)

	require.Len(t, mod.Declarations, 1)
	assert.Contains(t, []DeclarationKind{ExportDefaultDeclaration, ExportDefaultExpression}, mod.Declarations[0].Kind)
	assert.False(t, mod.Declarations[0].HasSource)
}

func TestParse_NamespaceReexportHasSource(t *testing.T) {
	mod := parse(t, "export * as utils from './utils';\n", TypeScript)

	require.Len(t, mod.Declarations, 1)
	assert.True(t, mod.Declarations[0].HasSource)
	assert.Equal(t, "./utils", mod.Declarations[0].Source)
}

func TestParse_TSX(t *testing.T) {
	source := `import { Button } from './Button';

export function App() {
	return <Button label="hi" />;
}
`
	mod := parse(t, source, TSX)

	require.Len(t, mod.Declarations, 2)
	assert.Equal(t, "./Button", mod.Declarations[0].Source)
	assert.Equal(t, ExportDeclaration, mod.Declarations[1].Kind)
}

func TestParse_ImportRequireClause(t *testing.T) {
	mod := parse(t, "import fs = require('fs');\n", TypeScript)

	require.Len(t, mod.Declarations, 1)
	assert.Equal(t, Import, mod.Declarations[0].Kind)
	assert.Equal(t, "fs", mod.Declarations[0].Source)
}

func TestParse_IgnoresNestedAndDynamicImports(t *testing.T) {
	source := `
function load() {
	return import('./lazy');
}
const x = require('./cjs');
`
	mod := parse(t, source, JavaScript)

	assert.Empty(t, mod.Declarations)
}

func TestParse_SyntaxErrorIsParseError(t *testing.T) {
	_, err := NewTreeSitter().Parse(context.Background(), []byte("import { from './x';\nconst = ;\n"), JavaScript)

	require.Error(t, err)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, JavaScript, parseErr.Dialect)
	assert.GreaterOrEqual(t, parseErr.Line, 1)
	assert.Contains(t, parseErr.Error(), "javascript syntax error")
}

func TestDialectFor(t *testing.T) {
	tests := []struct {
		path string
		want Dialect
		ok   bool
	}{
		{"/a/b.ts", TypeScript, true},
		{"/a/b.mts", TypeScript, true},
		{"/a/b.tsx", TSX, true},
		{"/a/b.js", JavaScript, true},
		{"/a/b.JSX", JavaScript, true},
		{"/a/b.cjs", JavaScript, true},
		{"/a/b.css", JavaScript, false},
		{"/a/Makefile", JavaScript, false},
	}

	for _, tt := range tests {
		got, ok := DialectFor(tt.path)
		assert.Equal(t, tt.want, got, tt.path)
		assert.Equal(t, tt.ok, ok, tt.path)
	}
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "export-all", ExportAll.String())
	assert.Equal(t, "tsx", TSX.String())
}
