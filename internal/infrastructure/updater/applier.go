package updater

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/chanomhub/desktop/internal/application/port"
	"github.com/chanomhub/desktop/internal/logging"
)

const (
	stagingDirName = "pending-update"
	backupSuffix   = ".old"
	execBit        = 0o100
)

// Applier stages a verified binary under the state directory and swaps it
// over the running executable during shutdown.
type Applier struct {
	stateDir string
	// executable resolves the running binary; replaced in tests.
	executable func() (string, error)
}

// NewApplier creates an applier staging under stateDir.
func NewApplier(stateDir string) *Applier {
	return &Applier{stateDir: stateDir, executable: os.Executable}
}

func (a *Applier) stagingDir() string {
	return filepath.Join(a.stateDir, stagingDirName)
}

func (a *Applier) stagedBinaryPath() string {
	return filepath.Join(a.stagingDir(), binaryName)
}

// CanSelfUpdate checks if the current binary is writable by the current user.
func (a *Applier) CanSelfUpdate(ctx context.Context) bool {
	log := logging.FromContext(ctx)

	binaryPath, err := a.runningBinary()
	if err != nil {
		log.Debug().Err(err).Msg("failed to get binary path")
		return false
	}

	// Both the file and its directory must be writable for the rename swap.
	if err := unix.Access(binaryPath, unix.W_OK); err != nil {
		log.Debug().
			Str("path", binaryPath).
			Err(err).
			Msg("binary is not writable, self-update disabled")
		return false
	}
	if err := unix.Access(filepath.Dir(binaryPath), unix.W_OK); err != nil {
		log.Debug().Str("dir", filepath.Dir(binaryPath)).Err(err).Msg("binary directory is not writable")
		return false
	}

	log.Debug().Str("path", binaryPath).Msg("binary is writable, self-update enabled")
	return true
}

// runningBinary resolves the executable through symlinks, so the swap
// replaces the real file and not a link to it.
func (a *Applier) runningBinary() (string, error) {
	path, err := a.executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve symlinks: %w", err)
	}

	return resolved, nil
}

// StageUpdate copies the new binary into the staging directory. The copy
// goes to a temp name first so a crash never leaves a half-written stage.
func (a *Applier) StageUpdate(ctx context.Context, newBinaryPath string) error {
	log := logging.FromContext(ctx)

	stagingDir := a.stagingDir()
	if err := os.MkdirAll(stagingDir, execPerm); err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}

	src, err := os.Open(newBinaryPath)
	if err != nil {
		return fmt.Errorf("failed to open new binary: %w", err)
	}
	defer func() { _ = src.Close() }()

	tmp, err := os.CreateTemp(stagingDir, binaryName+".*.part")
	if err != nil {
		return fmt.Errorf("failed to create staged binary: %w", err)
	}
	size, err := io.Copy(tmp, src)
	if closeErr := tmp.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmp.Name(), execPerm)
	}
	if err == nil {
		err = os.Rename(tmp.Name(), a.stagedBinaryPath())
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write staged binary: %w", err)
	}

	log.Info().
		Str("staged_path", a.stagedBinaryPath()).
		Int64("size", size).
		Msg("update staged for exit")
	return nil
}

// HasStagedUpdate checks if there is an update staged and ready to apply.
func (a *Applier) HasStagedUpdate(_ context.Context) bool {
	stagedPath := a.stagedBinaryPath()
	info, err := os.Stat(stagedPath)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode()&execBit != 0
}

// ApplyOnExit replaces the current binary with the staged update.
// This should be called during graceful shutdown.
func (a *Applier) ApplyOnExit(ctx context.Context) (string, error) {
	log := logging.FromContext(ctx)

	if !a.HasStagedUpdate(ctx) {
		return "", port.ErrNoStagedUpdate
	}

	binaryPath, err := a.runningBinary()
	if err != nil {
		return "", err
	}

	stagedPath := a.stagedBinaryPath()
	backupPath := binaryPath + backupSuffix

	log.Info().
		Str("current", binaryPath).
		Str("staged", stagedPath).
		Str("backup", backupPath).
		Msg("applying staged update")

	_ = os.Remove(backupPath)

	if err := os.Rename(binaryPath, backupPath); err != nil {
		return "", fmt.Errorf("failed to backup current binary: %w", err)
	}

	if err := os.Rename(stagedPath, binaryPath); err != nil {
		if restoreErr := os.Rename(backupPath, binaryPath); restoreErr != nil {
			log.Error().Err(restoreErr).Msg("failed to restore backup after update failure")
		}
		return "", fmt.Errorf("failed to install new binary: %w", err)
	}

	_ = os.RemoveAll(a.stagingDir())

	log.Info().
		Str("binary", binaryPath).
		Str("backup", backupPath).
		Msg("update applied successfully")

	return backupPath, nil
}

// ClearStagedUpdate removes any staged update without applying it.
func (a *Applier) ClearStagedUpdate(ctx context.Context) error {
	log := logging.FromContext(ctx)

	stagingDir := a.stagingDir()
	if err := os.RemoveAll(stagingDir); err != nil {
		return fmt.Errorf("failed to clear staged update: %w", err)
	}

	log.Debug().Str("path", stagingDir).Msg("cleared staged update")
	return nil
}
