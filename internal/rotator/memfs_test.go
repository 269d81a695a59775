package rotator

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/raoulx24/bak-rotate/internal/entry"
)

// memFS is an in-memory fs.FS with controllable creation times.
type memFS struct {
	mu      sync.Mutex
	entries map[string]entry.Entry
	failOn  map[string]error
	renames [][2]string
}

func newMemFS() *memFS {
	return &memFS{
		entries: map[string]entry.Entry{},
		failOn:  map[string]error{},
	}
}

func (m *memFS) addFile(path string, size int64, created time.Time) {
	m.entries[path] = entry.Entry{
		Name:      filepath.Base(path),
		Path:      path,
		Size:      size,
		CreatedAt: created,
		ModTime:   created,
		Regular:   true,
	}
}

func (m *memFS) addDir(path string, created time.Time) {
	m.entries[path] = entry.Entry{
		Name:      filepath.Base(path),
		Path:      path,
		Size:      4096,
		CreatedAt: created,
		ModTime:   created,
		Dir:       true,
	}
}

func (m *memFS) exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[path]
	return ok
}

func (m *memFS) ReadDir(dir string) ([]entry.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d, ok := m.entries[dir]; !ok || !d.Dir {
		return nil, &os.PathError{Op: "open", Path: dir, Err: syscall.ENOENT}
	}

	var out []entry.Entry
	for p, e := range m.entries {
		if filepath.Dir(p) == dir && p != dir {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memFS) Stat(path string) (entry.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[path]
	if !ok {
		return entry.Entry{}, &os.PathError{Op: "stat", Path: path, Err: syscall.ENOENT}
	}
	return e, nil
}

func (m *memFS) Rename(_ context.Context, oldPath, newPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.failOn[oldPath]; ok {
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: err}
	}

	e, ok := m.entries[oldPath]
	if !ok {
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: syscall.ENOENT}
	}
	if parent, ok := m.entries[filepath.Dir(newPath)]; !ok || !parent.Dir {
		return &os.LinkError{Op: "rename", Old: oldPath, New: newPath, Err: syscall.ENOENT}
	}

	delete(m.entries, oldPath)
	e.Path = newPath
	e.Name = filepath.Base(newPath)
	m.entries[newPath] = e
	m.renames = append(m.renames, [2]string{oldPath, newPath})
	return nil
}

func (m *memFS) MkdirAll(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for p := path; p != "/" && p != "."; p = filepath.Dir(p) {
		if _, ok := m.entries[p]; ok {
			continue
		}
		m.entries[p] = entry.Entry{Name: filepath.Base(p), Path: p, Dir: true, CreatedAt: time.Now()}
	}
	return nil
}
