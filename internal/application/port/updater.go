package port

import (
	"context"
	"errors"

	"github.com/chanomhub/desktop/internal/domain/entity"
)

var (
	// ErrUpdateCheckTransient marks a check failure worth retrying later.
	ErrUpdateCheckTransient = errors.New("transient update check failure")
	// ErrNoStagedUpdate is returned by install-update when nothing is staged.
	ErrNoStagedUpdate = errors.New("no staged update")
)

// UpdateChecker reads the latest release from the release feed.
type UpdateChecker interface {
	CheckForUpdate(ctx context.Context, currentVersion string) (*entity.UpdateInfo, error)
}

// UpdateDownloader fetches a release archive into destDir and unpacks the
// binary from it. Download verifies the archive against the release
// checksums before returning.
type UpdateDownloader interface {
	Download(ctx context.Context, downloadURL, destDir string) (archivePath string, err error)
	Extract(ctx context.Context, archivePath, destDir string) (binaryPath string, err error)
}

// UpdateApplier owns the staged binary between download and shutdown.
type UpdateApplier interface {
	// CanSelfUpdate reports whether the running binary can be replaced.
	CanSelfUpdate(ctx context.Context) bool
	StageUpdate(ctx context.Context, newBinaryPath string) error
	HasStagedUpdate(ctx context.Context) bool
	// ApplyOnExit swaps the staged binary in and returns the backup path.
	ApplyOnExit(ctx context.Context) (backupPath string, err error)
	ClearStagedUpdate(ctx context.Context) error
}
