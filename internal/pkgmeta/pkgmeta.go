// Package pkgmeta reads project metadata from a package.json manifest.
package pkgmeta

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strings"

	ferrors "git.home.luguber.info/inful/navconfig/internal/foundation/errors"
)

// Package is the subset of package.json that navconfig uses.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Read loads and decodes the manifest at path.
func Read(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ferrors.NotFoundError("package manifest not found").
				WithCause(err).WithContext("path", path).Build()
		}
		return nil, ferrors.FileSystemError("failed to read package manifest").
			WithCause(err).WithContext("path", path).Build()
	}
	var pkg Package
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, ferrors.ConfigError("package manifest is not valid JSON").
			WithCause(err).WithContext("path", path).Build()
	}
	pkg.Version = strings.TrimSpace(pkg.Version)
	return &pkg, nil
}

// Version returns the version field of the manifest at path. An empty
// version is an error.
func Version(path string) (string, error) {
	pkg, err := Read(path)
	if err != nil {
		return "", err
	}
	if pkg.Version == "" {
		return "", ferrors.ConfigError("package manifest has no version").
			WithContext("path", path).Build()
	}
	return pkg.Version, nil
}
