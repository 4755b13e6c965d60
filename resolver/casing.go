package resolver

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// trueCasePath discovers the exact on-disk casing of the slash-separated
// relPath underneath searchDir, independent of whether the host
// filesystem is case sensitive. It returns fs.ErrNotExist when no entry
// matches even case-insensitively; any other filesystem failure is
// returned as-is.
func trueCasePath(relPath, searchDir string) (string, error) {
	segments := strings.Split(relPath, "/")
	trueSegments := make([]string, 0, len(segments))

	dir := searchDir
	for _, segment := range segments {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
				return "", fs.ErrNotExist
			}
			return "", err
		}

		match := ""
		for _, entry := range entries {
			if entry.Name() == segment {
				match = segment
				break
			}
			if match == "" && strings.EqualFold(entry.Name(), segment) {
				match = entry.Name()
			}
		}
		if match == "" {
			return "", fs.ErrNotExist
		}

		trueSegments = append(trueSegments, match)
		dir = filepath.Join(dir, match)
	}

	return strings.Join(trueSegments, "/"), nil
}
