package resolver

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OwnPackageName is the toolchain's own support package. It gets one
// deliberate escape hatch: when a project imports it without declaring it
// as a dependency (typical for global installs), it is resolved relative
// to the running executable instead of the project's node_modules tree.
const OwnPackageName = "solgraph"

// ErrPackageNotFound is returned by a PackageFinder when a library's
// metadata file cannot be located.
var ErrPackageNotFound = errors.New("package not found")

// PackageFinder locates a library's package.json starting from a
// directory, mirroring the host package manager's resolution order. It
// is injected so the resolver can be tested without a real package tree.
type PackageFinder func(library, fromDir string) (string, error)

// FindPackageJSON is the default PackageFinder. It walks from fromDir
// towards the filesystem root, probing <dir>/node_modules/<library>/package.json
// at every level.
func FindPackageJSON(library, fromDir string) (string, error) {
	for dir := fromDir; ; {
		candidate := filepath.Join(dir, NodeModules, filepath.FromSlash(library), "package.json")
		if fileExists(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrPackageNotFound
		}
		dir = parent
	}
}

// ownPackageJSONPath locates the package.json shipped alongside the
// running executable, walking upwards from the binary's directory.
func ownPackageJSONPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", ErrPackageNotFound
	}
	for dir := filepath.Dir(exe); ; {
		candidate := filepath.Join(dir, "package.json")
		if fileExists(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrPackageNotFound
		}
		dir = parent
	}
}

// libraryName extracts the library a source name belongs to: its first
// path segment, or its first two segments for a scoped package such as
// "@scope/lib/...".
func libraryName(sourceName string) string {
	segments := strings.SplitN(sourceName, "/", 3)
	if strings.HasPrefix(sourceName, "@") && len(segments) >= 2 {
		return segments[0] + "/" + segments[1]
	}
	return segments[0]
}

// readPackageVersion reads the declared version out of a package.json
// file. Failures here are environmental, not resolution errors.
func readPackageVersion(packageJSONPath string) (string, error) {
	data, err := os.ReadFile(packageJSONPath)
	if err != nil {
		return "", fmt.Errorf("reading package metadata %s: %w", packageJSONPath, err)
	}
	var metadata struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &metadata); err != nil {
		return "", fmt.Errorf("parsing package metadata %s: %w", packageJSONPath, err)
	}
	if metadata.Version == "" {
		return "local", nil
	}
	return metadata.Version, nil
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
