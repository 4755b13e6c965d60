package resolver

import "time"

// FileContent is the parsed view of a resolved file. Imports and
// VersionPragmas come straight from the Parser and are not interpreted
// here.
type FileContent struct {
	RawText        string
	Imports        []string
	VersionPragmas []string
}

// LibraryInfo identifies the installed package a file was resolved from.
type LibraryInfo struct {
	Name    string
	Version string
}

// ResolvedFile is the fully-described handle to one file of the
// compilation unit. It is assembled once, inside a single resolution
// call, and never mutated afterwards.
//
// LastModificationDate is the file's status-change time rather than its
// last-write time, so that renames also invalidate downstream caches.
type ResolvedFile struct {
	SourceName           string
	AbsolutePath         string
	Content              FileContent
	LastModificationDate time.Time

	// Library is nil for files rooted at the project root.
	Library *LibraryInfo
}

// VersionedName returns the source name qualified with the owning
// library's version, disambiguating files that share a source name across
// different library versions in a dependency tree.
func (f *ResolvedFile) VersionedName() string {
	if f.Library == nil {
		return f.SourceName
	}
	return f.SourceName + "@v" + f.Library.Version
}
