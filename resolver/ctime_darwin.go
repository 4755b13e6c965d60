//go:build darwin

package resolver

import (
	"os"
	"syscall"
	"time"
)

// changeTime returns the file's status-change time. Downstream cache
// invalidation keys off ctime rather than mtime so that renames also
// invalidate.
func changeTime(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctimespec.Sec, st.Ctimespec.Nsec)
	}
	return info.ModTime()
}
