//go:build !linux && !openbsd && !dragonfly && !darwin && !freebsd && !netbsd && !windows

package entry

import (
	"os"
	"time"
)

// No portable creation time here; fall back to the modification time.
func createdAt(info os.FileInfo) time.Time {
	return info.ModTime()
}
