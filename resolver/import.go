package resolver

import (
	"path"
	"strings"
)

// importToSourceName translates a raw import string found inside from
// into a canonical source name. It does not touch the filesystem; the
// returned name still has to be resolved.
func importToSourceName(from *ResolvedFile, imported string) (string, error) {
	if strings.Contains(imported, "://") {
		return "", &InvalidImportProtocolError{Imported: imported, From: from.SourceName}
	}
	if strings.Contains(imported, "\\") {
		return "", &InvalidImportBackslashError{Imported: imported, From: from.SourceName}
	}
	if isAbsolutePath(imported) {
		return "", &InvalidImportAbsolutePathError{Imported: imported, From: from.SourceName}
	}

	// Non-relative imports are already source names. This is how
	// project-to-library and library-to-library imports are expressed.
	if !isRelativeImport(imported) {
		return normalizeSourceName(imported), nil
	}

	sourceName := normalizeSourceName(path.Join(path.Dir(from.SourceName), imported))

	// A relative import from a project file that tunnels into the
	// dependency directory is rewritten to the direct library source
	// name, so the same on-disk library file can never acquire two
	// different identities depending on how it was reached.
	if from.Library == nil {
		if rewritten, ok := afterNodeModules(sourceName); ok {
			return rewritten, nil
		}
	}

	if from.Library == nil && escapesRoot(sourceName) {
		return "", &InvalidImportOutsideOfProjectError{Imported: imported, From: from.SourceName}
	}
	if from.Library != nil && !strings.HasPrefix(sourceName, from.Library.Name+"/") {
		return "", &IllegalImportError{Imported: imported, From: from.SourceName}
	}

	return sourceName, nil
}

// afterNodeModules strips everything up to and including the first
// node_modules path segment. Matching is segment-wise, consistent with
// containsNodeModules, so a directory merely named "my_node_modules"
// never triggers the rewrite.
func afterNodeModules(sourceName string) (string, bool) {
	segments := strings.Split(sourceName, "/")
	for i, segment := range segments {
		if segment == NodeModules && i < len(segments)-1 {
			return strings.Join(segments[i+1:], "/"), true
		}
	}
	return "", false
}

func isRelativeImport(imported string) bool {
	return imported == "." || imported == ".." ||
		strings.HasPrefix(imported, "./") || strings.HasPrefix(imported, "../")
}

func escapesRoot(sourceName string) bool {
	return sourceName == ".." || strings.HasPrefix(sourceName, "../")
}
