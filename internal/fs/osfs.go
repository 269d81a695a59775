package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raoulx24/bak-rotate/internal/entry"
)

// OSFS is the concrete implementation of FS backed by the local OS filesystem.
// Platform-specific details (creation time, inode) live in the entry package.
type OSFS struct {
	rename func(oldPath, newPath string) error
}

func New() *OSFS {
	return &OSFS{rename: os.Rename}
}

func (o *OSFS) Stat(path string) (entry.Entry, error) {
	st, err := os.Stat(path)
	if err != nil {
		return entry.Entry{}, err
	}
	return entry.FromFileInfo(path, st), nil
}

// ReadDir stats every child so that symlinks report their target's metadata.
// Dangling links are described by the link itself; children removed while
// listing are dropped.
func (o *OSFS) ReadDir(dir string) ([]entry.Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	entries := make([]entry.Entry, 0, len(dirents))
	for _, d := range dirents {
		path := filepath.Join(dir, d.Name())

		st, err := os.Stat(path)
		if err != nil {
			st, err = os.Lstat(path)
		}
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return entries, fmt.Errorf("stat %s: %w", d.Name(), err)
		}

		entries = append(entries, entry.FromFileInfo(path, st))
	}
	return entries, nil
}

func (o *OSFS) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}

func (o *OSFS) Rename(ctx context.Context, oldPath, newPath string) error {
	return renameWithRetry(ctx, o, oldPath, newPath)
}

func (o *OSFS) renameFunc() func(oldPath, newPath string) error {
	if o.rename == nil {
		return os.Rename
	}
	return o.rename
}
