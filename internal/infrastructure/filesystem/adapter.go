package filesystem

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"sort"

	"github.com/chanomhub/desktop/internal/application/port"
)

const dirPerm = 0o755

// Adapter implements port.FileSystem using the OS filesystem.
type Adapter struct{}

// New creates a new filesystem adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (a *Adapter) IsDirectory(_ context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// ListDirectories returns the sorted names of path's immediate subdirectories.
// Symlinks are not followed.
func (a *Adapter) ListDirectories(_ context.Context, path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

func (a *Adapter) EnsureDir(_ context.Context, path string) error {
	return os.MkdirAll(path, dirPerm)
}

var _ port.FileSystem = (*Adapter)(nil)
