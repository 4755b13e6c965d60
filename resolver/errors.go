package resolver

import "fmt"

// AbsolutePathNotAllowedError reports a source name given as an absolute
// path.
type AbsolutePathNotAllowedError struct {
	SourceName string
}

func (e *AbsolutePathNotAllowedError) Error() string {
	return fmt.Sprintf("invalid source name %q: absolute paths are not allowed", e.SourceName)
}

// RelativePathNotAllowedError reports a source name starting with ".".
type RelativePathNotAllowedError struct {
	SourceName string
}

func (e *RelativePathNotAllowedError) Error() string {
	return fmt.Sprintf("invalid source name %q: source names must not start with '.'", e.SourceName)
}

// BackslashesNotAllowedError reports a source name containing backslashes.
type BackslashesNotAllowedError struct {
	SourceName string
}

func (e *BackslashesNotAllowedError) Error() string {
	return fmt.Sprintf("invalid source name %q: backslashes are not allowed, use '/' instead", e.SourceName)
}

// NotNormalizedError reports a source name whose normalized form differs
// from the name itself, e.g. one containing "a/../b" or a trailing slash.
type NotNormalizedError struct {
	SourceName string
}

func (e *NotNormalizedError) Error() string {
	return fmt.Sprintf("invalid source name %q: source names must be normalized", e.SourceName)
}

// FileNotFoundError reports a project file that does not exist, not even
// under a different casing.
type FileNotFoundError struct {
	SourceName string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("file %s not found; double check your path", e.SourceName)
}

// LibraryFileNotFoundError reports a file missing from an installed
// library. The remediation differs from FileNotFoundError: the installed
// library version may simply not include the file.
type LibraryFileNotFoundError struct {
	SourceName string
}

func (e *LibraryFileNotFoundError) Error() string {
	return fmt.Sprintf("file %s not found; make sure the installed library version includes it", e.SourceName)
}

// WrongCasingError reports a file that exists on disk but with a
// different letter casing than requested. Casing mismatches are always
// errors so that builds fail identically on case-sensitive and
// case-insensitive filesystems.
type WrongCasingError struct {
	Requested string
	Actual    string
}

func (e *WrongCasingError) Error() string {
	return fmt.Sprintf("trying to resolve %s, but its correct case-sensitive name is %s", e.Requested, e.Actual)
}

// LibraryNotInstalledError reports a library that could not be located in
// any node_modules directory reachable from the project root.
type LibraryNotInstalledError struct {
	Library string
}

func (e *LibraryNotInstalledError) Error() string {
	return fmt.Sprintf("library %s is not installed", e.Library)
}

// InvalidImportProtocolError reports an import using a URL scheme, e.g.
// "http://...". Only filesystem imports are supported.
type InvalidImportProtocolError struct {
	Imported string
	From     string
}

func (e *InvalidImportProtocolError) Error() string {
	return fmt.Sprintf("invalid import %q from %s: URL-style imports are not supported", e.Imported, e.From)
}

// InvalidImportBackslashError reports an import containing backslashes.
type InvalidImportBackslashError struct {
	Imported string
	From     string
}

func (e *InvalidImportBackslashError) Error() string {
	return fmt.Sprintf("invalid import %q from %s: backslashes are not allowed, use '/' instead", e.Imported, e.From)
}

// InvalidImportAbsolutePathError reports an import given as an absolute
// path.
type InvalidImportAbsolutePathError struct {
	Imported string
	From     string
}

func (e *InvalidImportAbsolutePathError) Error() string {
	return fmt.Sprintf("invalid import %q from %s: absolute paths are not allowed", e.Imported, e.From)
}

// InvalidImportOutsideOfProjectError reports a relative import from a
// project file that climbs above the project root.
type InvalidImportOutsideOfProjectError struct {
	Imported string
	From     string
}

func (e *InvalidImportOutsideOfProjectError) Error() string {
	return fmt.Sprintf("invalid import %q from %s: the import reaches outside of the project", e.Imported, e.From)
}

// IllegalImportError reports a relative import from a library file that
// leaves the library's own tree. Libraries may only reach other libraries
// through non-relative source names, otherwise the dependency graph would
// depend on filesystem layout rather than on declarations.
type IllegalImportError struct {
	Imported string
	From     string
}

func (e *IllegalImportError) Error() string {
	return fmt.Sprintf("illegal import %q from %s: relative imports cannot reach a different library", e.Imported, e.From)
}

// ImportedFileNotFoundError reports a missing file discovered while
// resolving an import edge. It names both the importer and the raw
// import string, since the actionable fix is on that edge.
type ImportedFileNotFoundError struct {
	Imported string
	From     string
}

func (e *ImportedFileNotFoundError) Error() string {
	return fmt.Sprintf("file %q, imported from %s, not found", e.Imported, e.From)
}

// InvalidImportWrongCasingError reports an import edge whose target
// exists under a different casing.
type InvalidImportWrongCasingError struct {
	Imported string
	From     string
	Actual   string
}

func (e *InvalidImportWrongCasingError) Error() string {
	return fmt.Sprintf("trying to import %q from %s, but its correct case-sensitive name is %s", e.Imported, e.From, e.Actual)
}
