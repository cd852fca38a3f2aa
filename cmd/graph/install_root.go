package graph

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LegacyCodeHQ/esgraph/fsys"
)

const (
	manifestFile = "package.json"
	packagesDir  = "node_modules"
)

// Targets are the resolved positional arguments of a graph or watch run.
type Targets struct {
	Entry       string
	InstallRoot string
	// ProjectRoot is the directory output paths are printed relative to.
	ProjectRoot string
}

// ResolveTargets turns `<entry> [node_modules]` into absolute paths. Without an
// explicit install root, the node_modules directory beside the nearest
// package.json above the entry is used, falling back to the entry's directory.
func ResolveTargets(args []string) (Targets, error) {
	if len(args) == 0 || args[0] == "" {
		return Targets{}, errors.New("entry module is required")
	}

	entry, err := filepath.Abs(args[0])
	if err != nil {
		return Targets{}, fmt.Errorf("failed to resolve entry path: %w", err)
	}

	project, found, err := FindProjectRoot(filepath.Dir(entry))
	if err != nil {
		return Targets{}, err
	}
	if !found {
		project = filepath.Dir(entry)
	}

	installRoot := filepath.Join(project, packagesDir)
	if len(args) > 1 && args[1] != "" {
		installRoot, err = filepath.Abs(args[1])
		if err != nil {
			return Targets{}, fmt.Errorf("failed to resolve install root: %w", err)
		}
	}

	return Targets{Entry: entry, InstallRoot: installRoot, ProjectRoot: project}, nil
}

// FindProjectRoot walks up from dir to the first directory holding a package.json.
func FindProjectRoot(dir string) (string, bool, error) {
	for {
		_, err := os.Stat(filepath.Join(dir, manifestFile))
		if err == nil {
			return dir, true, nil
		}
		if !fsys.IsNotExist(err) {
			return "", false, fmt.Errorf("failed to check %s: %w", filepath.Join(dir, manifestFile), err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
