package resolve

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/LegacyCodeHQ/esgraph/fsys"
)

// writeFiles creates files relative to root, making parent directories as needed.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("os.MkdirAll() error = %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("os.WriteFile() error = %v", err)
		}
	}
}

// deniedFS fails every Stat and ReadFile under a denied path with a permission error.
type deniedFS struct {
	fsys.OS
	denied string
}

func (d deniedFS) Stat(name string) (fs.FileInfo, error) {
	if name == d.denied {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrPermission}
	}
	return d.OS.Stat(name)
}

func (d deniedFS) ReadFile(name string) ([]byte, error) {
	if name == d.denied {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return d.OS.ReadFile(name)
}

// countingFS counts Stat calls.
type countingFS struct {
	fsys.OS
	stats int
}

func (c *countingFS) Stat(name string) (fs.FileInfo, error) {
	c.stats++
	return c.OS.Stat(name)
}
