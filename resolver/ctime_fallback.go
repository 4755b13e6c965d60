//go:build !linux && !darwin

package resolver

import (
	"os"
	"time"
)

// changeTime falls back to the modification time on platforms without a
// portable status-change timestamp.
func changeTime(info os.FileInfo) time.Time {
	return info.ModTime()
}
