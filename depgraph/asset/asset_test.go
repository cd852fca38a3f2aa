package asset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencies_AccessorsReturnCopies(t *testing.T) {
	first := []string{"/p/a.ts"}
	deps := NewDependencies(first, []string{"react"}, nil)

	first[0] = "/mutated"
	got := deps.FirstParty()
	got[0] = "/also-mutated"

	assert.Equal(t, []string{"/p/a.ts"}, deps.FirstParty())
	assert.Equal(t, []string{"react"}, deps.ThirdParty())
	assert.Empty(t, deps.Reexports())
	assert.False(t, deps.IsEmpty())
	assert.True(t, Dependencies{}.IsEmpty())
}

func TestModuleGraph_InsertOnce(t *testing.T) {
	g := NewModuleGraph()

	require.NoError(t, g.Insert(New(1, "/p/b.ts", Dependencies{})))
	require.NoError(t, g.Insert(New(2, "/p/a.ts", Dependencies{})))

	err := g.Insert(New(3, "/p/a.ts", Dependencies{}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateAsset))

	assert.Equal(t, 2, g.Len())
	assert.True(t, g.Has("/p/a.ts"))
	assert.Equal(t, []string{"/p/a.ts", "/p/b.ts"}, g.Paths())

	assets := g.Assets()
	require.Len(t, assets, 2)
	assert.Equal(t, 1, assets[0].ID())
	assert.Equal(t, "/p/b.ts", assets[0].Path())

	a, ok := g.Get("/p/a.ts")
	require.True(t, ok)
	assert.Equal(t, 2, a.ID())
}

func TestModuleGraph_EdgesOnlyPointAtKnownAssets(t *testing.T) {
	g := NewModuleGraph()
	require.NoError(t, g.Insert(New(1, "/p/a.ts", NewDependencies([]string{"/p/b.ts", "/p/gone.ts"}, []string{"react"}, nil))))
	require.NoError(t, g.Insert(New(2, "/p/b.ts", Dependencies{})))

	assert.Equal(t, map[string][]string{
		"/p/a.ts": {"/p/b.ts"},
		"/p/b.ts": {},
	}, g.Edges())
}
