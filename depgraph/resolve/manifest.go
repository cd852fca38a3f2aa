package resolve

import (
	"encoding/json"
	"path/filepath"

	"github.com/LegacyCodeHQ/esgraph/fsys"
)

const manifestName = "package.json"

type packageManifest struct {
	Main   string `json:"main"`
	Module string `json:"module"`
}

// entryPoints lists declared entry points in lookup order.
func (m packageManifest) entryPoints() []string {
	var entries []string
	for _, entry := range []string{m.Main, m.Module} {
		if entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}

// readManifest loads pkgDir/package.json. A missing manifest yields an empty
// one; an unreadable or malformed manifest is an IO fault.
func readManifest(fs fsys.FileSystem, pkgDir string) (packageManifest, error) {
	path := filepath.Join(pkgDir, manifestName)

	content, err := fs.ReadFile(path)
	if err != nil {
		if fsys.IsNotExist(err) {
			return packageManifest{}, nil
		}
		return packageManifest{}, &IOFaultError{Path: path, Err: err}
	}

	var manifest packageManifest
	if err := json.Unmarshal(content, &manifest); err != nil {
		return packageManifest{}, &IOFaultError{Path: path, Err: err}
	}
	return manifest, nil
}
