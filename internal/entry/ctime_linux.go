//go:build linux || openbsd || dragonfly

package entry

import (
	"os"
	"syscall"
	"time"
)

// createdAt reports the inode change time (st_ctim).
func createdAt(info os.FileInfo) time.Time {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(st.Ctim.Unix())
}
