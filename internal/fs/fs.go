// Package fs defines the filesystem abstraction used by bak-rotate.
// It provides the FS interface the rotator scans and renames through.
package fs

import (
	"context"

	"github.com/raoulx24/bak-rotate/internal/entry"
)

type FS interface {
	// ReadDir lists the immediate children of dir. Metadata follows symlinks.
	ReadDir(dir string) ([]entry.Entry, error)
	Stat(path string) (entry.Entry, error)
	Rename(ctx context.Context, oldPath, newPath string) error
	MkdirAll(path string) error
}
