// Package resolver maps source names and raw import strings to the
// concrete files they denote. A source name is the canonical,
// slash-separated, non-relative identifier the compiler uses for a file;
// this package is the only place where malformed, ambiguous or escaping
// identifiers are caught before a compiler consumes them.
package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Parser extracts import strings and version pragmas from raw source
// text. It is assumed total and deterministic: malformed text yields
// best-effort empty lists, never an error.
type Parser interface {
	Parse(rawText, absolutePath string) (imports, versionPragmas []string)
}

// Resolver resolves source names and imports against one project root.
// It holds no mutable state and no cache, so concurrent resolutions for
// different source names are safe; caching, if wanted, belongs to the
// caller.
type Resolver struct {
	projectRoot string
	parser      Parser
	findPackage PackageFinder
}

// NewResolver creates a resolver rooted at projectRoot, which must be an
// absolute path. Libraries are located through the default node_modules
// walk.
func NewResolver(projectRoot string, parser Parser) *Resolver {
	return NewResolverWithPackageFinder(projectRoot, parser, FindPackageJSON)
}

// NewResolverWithPackageFinder creates a resolver with a custom package
// lookup, used to test library resolution without a real package tree.
func NewResolverWithPackageFinder(projectRoot string, parser Parser, findPackage PackageFinder) *Resolver {
	return &Resolver{
		projectRoot: projectRoot,
		parser:      parser,
		findPackage: findPackage,
	}
}

// ResolveSourceName resolves a source name to the single file it
// denotes, either inside the project tree or inside an installed
// library.
func (r *Resolver) ResolveSourceName(sourceName string) (*ResolvedFile, error) {
	if err := ValidateSourceName(sourceName); err != nil {
		return nil, err
	}
	local, err := r.isLocalSourceName(sourceName)
	if err != nil {
		return nil, err
	}
	if local {
		return r.resolveLocalSourceName(sourceName)
	}
	return r.resolveLibrarySourceName(sourceName)
}

// ResolveImport resolves a raw import string found inside an already
// resolved file. Missing-file and casing failures are reported against
// the import edge rather than the translated source name, because the
// end-user-actionable fix differs.
func (r *Resolver) ResolveImport(from *ResolvedFile, imported string) (*ResolvedFile, error) {
	sourceName, err := importToSourceName(from, imported)
	if err != nil {
		return nil, err
	}

	file, err := r.ResolveSourceName(sourceName)
	if err != nil {
		var notFound *FileNotFoundError
		var libraryNotFound *LibraryFileNotFoundError
		var wrongCasing *WrongCasingError
		switch {
		case errors.As(err, &notFound), errors.As(err, &libraryNotFound):
			return nil, &ImportedFileNotFoundError{Imported: imported, From: from.SourceName}
		case errors.As(err, &wrongCasing):
			return nil, &InvalidImportWrongCasingError{Imported: imported, From: from.SourceName, Actual: wrongCasing.Actual}
		}
		return nil, err
	}
	return file, nil
}

// isLocalSourceName reports whether sourceName denotes a project file. A
// name with a node_modules segment is never local; otherwise it is local
// iff an entry exists at projectRoot/sourceName. The existence check is
// case-insensitive on every platform so that classification, and with it
// every diagnostic, is identical on case-sensitive and case-insensitive
// filesystems. Casing is verified later, separately. Non-existence
// failures of the probe (permissions etc.) are environmental and
// propagate.
func (r *Resolver) isLocalSourceName(sourceName string) (bool, error) {
	if containsNodeModules(sourceName) {
		return false, nil
	}
	if _, err := trueCasePath(sourceName, r.projectRoot); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *Resolver) resolveLocalSourceName(sourceName string) (*ResolvedFile, error) {
	actual, err := trueCasePath(sourceName, r.projectRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &FileNotFoundError{SourceName: sourceName}
		}
		return nil, err
	}
	if actual != sourceName {
		return nil, &WrongCasingError{Requested: sourceName, Actual: actual}
	}

	absolutePath := filepath.Join(r.projectRoot, filepath.FromSlash(sourceName))
	return r.load(sourceName, absolutePath, nil)
}

func (r *Resolver) resolveLibrarySourceName(sourceName string) (*ResolvedFile, error) {
	library := libraryName(sourceName)

	packageJSONPath, err := r.findPackage(library, r.projectRoot)
	if err != nil {
		if library == OwnPackageName {
			packageJSONPath, err = ownPackageJSONPath()
		}
		if err != nil {
			return nil, &LibraryNotInstalledError{Library: library}
		}
	}
	libraryRoot := filepath.Dir(packageJSONPath)

	relPath := strings.TrimPrefix(sourceName, library+"/")
	actual, err := trueCasePath(relPath, libraryRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LibraryFileNotFoundError{SourceName: sourceName}
		}
		return nil, err
	}
	if actual != relPath {
		return nil, &WrongCasingError{Requested: sourceName, Actual: library + "/" + actual}
	}

	version, err := readPackageVersion(packageJSONPath)
	if err != nil {
		return nil, err
	}

	absolutePath := filepath.Join(libraryRoot, filepath.FromSlash(relPath))
	return r.load(sourceName, absolutePath, &LibraryInfo{Name: library, Version: version})
}

// load reads the file, captures its status-change timestamp, runs the
// Parser and assembles the immutable result. Existence was already
// confirmed by the casing walk, so any failure here is environmental and
// propagates unclassified.
func (r *Resolver) load(sourceName, absolutePath string, library *LibraryInfo) (*ResolvedFile, error) {
	raw, err := os.ReadFile(absolutePath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", absolutePath, err)
	}
	info, err := os.Stat(absolutePath)
	if err != nil {
		return nil, fmt.Errorf("stating %s: %w", absolutePath, err)
	}

	rawText := string(raw)
	imports, versionPragmas := r.parser.Parse(rawText, absolutePath)

	return &ResolvedFile{
		SourceName:   sourceName,
		AbsolutePath: absolutePath,
		Content: FileContent{
			RawText:        rawText,
			Imports:        imports,
			VersionPragmas: versionPragmas,
		},
		LastModificationDate: changeTime(info),
		Library:              library,
	}, nil
}
