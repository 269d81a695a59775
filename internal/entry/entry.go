// Package entry describes the directory entries a rotation pass looks at.
package entry

import (
	"os"
	"path/filepath"
	"time"
)

// Entry describes a single immediate child of the scanned directory.
type Entry struct {
	Name      string    `json:"name" yaml:"name" toml:"name"`
	Path      string    `json:"path" yaml:"path" toml:"path"`
	Size      int64     `json:"size" yaml:"size" toml:"size"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt" toml:"createdAt"`
	ModTime   time.Time `json:"modTime" yaml:"modTime" toml:"modTime"`
	Regular   bool      `json:"regular" yaml:"regular" toml:"regular"`
	Dir       bool      `json:"dir" yaml:"dir" toml:"dir"`
	Inode     uint64    `json:"-" yaml:"-" toml:"-"`
}

// FromFileInfo constructs an Entry from a file path and os.FileInfo.
func FromFileInfo(path string, info os.FileInfo) Entry {
	return Entry{
		Name:      filepath.Base(path),
		Path:      path,
		Size:      info.Size(),
		CreatedAt: createdAt(info),
		ModTime:   info.ModTime(),
		Regular:   info.Mode().IsRegular(),
		Dir:       info.IsDir(),
		Inode:     inodeOf(info),
	}
}

// Kind returns a short label for logs and reports.
func (e Entry) Kind() string {
	switch {
	case e.Regular:
		return "file"
	case e.Dir:
		return "dir"
	default:
		return "other"
	}
}
