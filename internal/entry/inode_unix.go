//go:build unix

package entry

import (
	"os"
	"syscall"
)

// inodeOf lets the copy fallback detect a source swapped out mid-copy.

func inodeOf(info os.FileInfo) uint64 {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0
	}
	return uint64(st.Ino)
}
