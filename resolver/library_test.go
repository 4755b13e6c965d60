package resolver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLibraryName_UnscopedPackage_FirstSegment(t *testing.T) {
	if got := libraryName("lib/contracts/Token.sol"); got != "lib" {
		t.Fatalf("libraryName() = %q, want %q", got, "lib")
	}
}

func TestLibraryName_ScopedPackage_FirstTwoSegments(t *testing.T) {
	if got := libraryName("@openzeppelin/contracts/token/ERC20/ERC20.sol"); got != "@openzeppelin/contracts" {
		t.Fatalf("libraryName() = %q, want %q", got, "@openzeppelin/contracts")
	}
}

func TestLibraryName_BarePackage_ReturnedWhole(t *testing.T) {
	if got := libraryName("lib"); got != "lib" {
		t.Fatalf("libraryName() = %q, want %q", got, "lib")
	}
}

func installPackage(t *testing.T, root, library, version string, files ...string) string {
	t.Helper()
	packageDir := filepath.Join(root, NodeModules, filepath.FromSlash(library))
	if err := os.MkdirAll(packageDir, 0o755); err != nil {
		t.Fatalf("os.MkdirAll() error = %v", err)
	}
	packageJSON := filepath.Join(packageDir, "package.json")
	metadata := `{"name": "` + library + `", "version": "` + version + `"}`
	if err := os.WriteFile(packageJSON, []byte(metadata), 0o644); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}
	for _, file := range files {
		writeSourceFile(t, packageDir, file)
	}
	return packageJSON
}

func TestFindPackageJSON_InstalledInProjectRoot_Found(t *testing.T) {
	root := t.TempDir()
	want := installPackage(t, root, "lib", "1.2.3")

	got, err := FindPackageJSON("lib", root)
	if err != nil {
		t.Fatalf("FindPackageJSON() error = %v", err)
	}
	if got != want {
		t.Fatalf("FindPackageJSON() = %q, want %q", got, want)
	}
}

func TestFindPackageJSON_InstalledInParentDirectory_FoundByWalkingUp(t *testing.T) {
	workspace := t.TempDir()
	want := installPackage(t, workspace, "lib", "1.2.3")

	nested := filepath.Join(workspace, "packages", "app")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("os.MkdirAll() error = %v", err)
	}

	got, err := FindPackageJSON("lib", nested)
	if err != nil {
		t.Fatalf("FindPackageJSON() error = %v", err)
	}
	if got != want {
		t.Fatalf("FindPackageJSON() = %q, want %q", got, want)
	}
}

func TestFindPackageJSON_NotInstalled_ReportsPackageNotFound(t *testing.T) {
	_, err := FindPackageJSON("missing-lib", t.TempDir())
	if !errors.Is(err, ErrPackageNotFound) {
		t.Fatalf("FindPackageJSON() error = %v, want ErrPackageNotFound", err)
	}
}

func TestReadPackageVersion_DeclaredVersion_Returned(t *testing.T) {
	root := t.TempDir()
	packageJSON := installPackage(t, root, "lib", "1.2.3")

	version, err := readPackageVersion(packageJSON)
	if err != nil {
		t.Fatalf("readPackageVersion() error = %v", err)
	}
	if version != "1.2.3" {
		t.Fatalf("readPackageVersion() = %q, want %q", version, "1.2.3")
	}
}

func TestReadPackageVersion_MissingVersionField_ReportsLocal(t *testing.T) {
	root := t.TempDir()
	packageJSON := filepath.Join(root, "package.json")
	if err := os.WriteFile(packageJSON, []byte(`{"name": "lib"}`), 0o644); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}

	version, err := readPackageVersion(packageJSON)
	if err != nil {
		t.Fatalf("readPackageVersion() error = %v", err)
	}
	if version != "local" {
		t.Fatalf("readPackageVersion() = %q, want %q", version, "local")
	}
}

func TestReadPackageVersion_MalformedMetadata_PropagatesError(t *testing.T) {
	root := t.TempDir()
	packageJSON := filepath.Join(root, "package.json")
	if err := os.WriteFile(packageJSON, []byte("not json"), 0o644); err != nil {
		t.Fatalf("os.WriteFile() error = %v", err)
	}

	if _, err := readPackageVersion(packageJSON); err == nil {
		t.Fatal("readPackageVersion() error = nil, want parse failure")
	}
}
