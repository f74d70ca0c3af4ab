package port

import "context"

// FileSystem provides file system operations for the application layer.
type FileSystem interface {
	Exists(ctx context.Context, path string) (bool, error)
	IsDirectory(ctx context.Context, path string) (bool, error)
	// ListDirectories returns the names of the immediate subdirectories of path.
	ListDirectories(ctx context.Context, path string) ([]string, error)
	EnsureDir(ctx context.Context, path string) error
}
