package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/chanomhub/desktop/internal/application/port"
	"github.com/chanomhub/desktop/internal/logging"
)

// DownloadPathSource yields the current download directory.
type DownloadPathSource interface {
	DownloadPath() string
}

// BrowseFoldersUseCase lists and opens folders under the download directory.
type BrowseFoldersUseCase struct {
	fs    port.FileSystem
	fm    port.FileManager
	paths DownloadPathSource
}

// NewBrowseFoldersUseCase creates a new browse folders use case.
func NewBrowseFoldersUseCase(fs port.FileSystem, fm port.FileManager, paths DownloadPathSource) *BrowseFoldersUseCase {
	return &BrowseFoldersUseCase{fs: fs, fm: fm, paths: paths}
}

// ListDirectories returns the immediate subdirectory names of path.
// Filesystem errors are returned to the caller.
func (uc *BrowseFoldersUseCase) ListDirectories(ctx context.Context, path string) ([]string, error) {
	dirs, err := uc.fs.ListDirectories(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("list directories in %s: %w", path, err)
	}
	if dirs == nil {
		dirs = []string{}
	}
	return dirs, nil
}

// ListDownloadFolders lists the subdirectories of the current download path.
func (uc *BrowseFoldersUseCase) ListDownloadFolders(ctx context.Context) ([]string, error) {
	return uc.ListDirectories(ctx, uc.paths.DownloadPath())
}

// OpenFolder opens the named folder inside the download path, if it exists.
func (uc *BrowseFoldersUseCase) OpenFolder(ctx context.Context, folder string) {
	path := filepath.Join(uc.paths.DownloadPath(), filepath.Base(filepath.Clean("/"+folder)))

	isDir, err := uc.fs.IsDirectory(ctx, path)
	if err != nil || !isDir {
		logging.FromContext(ctx).Debug().Err(err).Str("path", path).Msg("folder not found, not opening")
		return
	}
	uc.OpenInFileManager(ctx, path)
}

// OpenInFileManager shows path in the file manager. Failures are logged only.
func (uc *BrowseFoldersUseCase) OpenInFileManager(ctx context.Context, path string) {
	if err := uc.fm.OpenFolder(ctx, path); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("path", path).Msg("failed to open file manager")
	}
}
