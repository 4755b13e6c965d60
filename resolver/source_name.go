package resolver

import (
	"path"
	"strings"
)

// NodeModules is the directory segment reserved for installed third-party
// packages. A source name containing it is always a library source name.
const NodeModules = "node_modules"

// normalizeSourceName lexically normalizes a path-like string into its
// slash-separated form, collapsing "." and ".." segments. It never
// touches the filesystem.
func normalizeSourceName(name string) string {
	return path.Clean(strings.ReplaceAll(name, "\\", "/"))
}

// ValidateSourceName checks the syntactic contract of a source name. The
// checks run in a fixed order so that each malformed name maps to one
// specific, actionable diagnostic: absolute path, leading ".",
// backslashes, then unnormalized form.
func ValidateSourceName(sourceName string) error {
	if isAbsolutePath(sourceName) {
		return &AbsolutePathNotAllowedError{SourceName: sourceName}
	}
	if strings.HasPrefix(sourceName, ".") {
		return &RelativePathNotAllowedError{SourceName: sourceName}
	}
	if strings.Contains(sourceName, "\\") {
		return &BackslashesNotAllowedError{SourceName: sourceName}
	}
	if normalizeSourceName(sourceName) != sourceName {
		return &NotNormalizedError{SourceName: sourceName}
	}
	return nil
}

// isAbsolutePath reports whether p is absolute in either slash form or
// Windows drive-letter form. Source names are platform independent, so
// both spellings are rejected regardless of the host OS.
func isAbsolutePath(p string) bool {
	if path.IsAbs(p) {
		return true
	}
	return len(p) >= 2 && p[1] == ':' && isDriveLetter(p[0])
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// containsNodeModules reports whether sourceName has a node_modules path
// segment. Matching is segment-wise so that e.g. "my_node_modules_fork"
// does not count.
func containsNodeModules(sourceName string) bool {
	return sourceName == NodeModules ||
		strings.HasPrefix(sourceName, NodeModules+"/") ||
		strings.HasSuffix(sourceName, "/"+NodeModules) ||
		strings.Contains(sourceName, "/"+NodeModules+"/")
}
