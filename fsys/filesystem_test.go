package fsys

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type faultyFS struct {
	OS
	err error
}

func (f faultyFS) Stat(string) (fs.FileInfo, error) {
	return nil, f.err
}

func TestProbe_ClassifiesEntries(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.ts")
	require.NoError(t, os.WriteFile(file, []byte("export {}\n"), 0o644))

	kind, err := Probe(OS{}, file)
	require.NoError(t, err)
	assert.Equal(t, File, kind)

	kind, err = Probe(OS{}, dir)
	require.NoError(t, err)
	assert.Equal(t, Dir, kind)

	kind, err = Probe(OS{}, filepath.Join(dir, "missing.ts"))
	require.NoError(t, err)
	assert.Equal(t, Missing, kind)
}

func TestProbe_PathThroughFileIsMissing(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.ts")
	require.NoError(t, os.WriteFile(file, []byte(""), 0o644))

	kind, err := Probe(OS{}, filepath.Join(file, "index.ts"))
	require.NoError(t, err)
	assert.Equal(t, Missing, kind)
}

func TestProbe_SurfacesFaults(t *testing.T) {
	_, err := Probe(faultyFS{err: fs.ErrPermission}, "/proj/a.ts")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.False(t, IsNotExist(err))
}

func TestReader_ReadsThroughFileSystem(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.js")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	content, err := Reader(OS{})(file)
	require.NoError(t, err)
	assert.Equal(t, "x", string(content))
}
