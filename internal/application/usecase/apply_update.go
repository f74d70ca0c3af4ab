package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chanomhub/desktop/internal/application/port"
	"github.com/chanomhub/desktop/internal/domain/entity"
	"github.com/chanomhub/desktop/internal/logging"
)

// ApplyUpdateOutput reports how far staging got. Failures to download,
// unpack or stage are reported here, not as errors.
type ApplyUpdateOutput struct {
	Status  entity.UpdateStatus
	Message string
}

// ApplyUpdateUseCase downloads a release and stages it for the next exit.
type ApplyUpdateUseCase struct {
	downloader port.UpdateDownloader
	applier    port.UpdateApplier
	workDir    string
}

// NewApplyUpdateUseCase stages through cacheDir/updates.
func NewApplyUpdateUseCase(downloader port.UpdateDownloader, applier port.UpdateApplier, cacheDir string) *ApplyUpdateUseCase {
	return &ApplyUpdateUseCase{
		downloader: downloader,
		applier:    applier,
		workDir:    filepath.Join(cacheDir, "updates"),
	}
}

// Execute fetches downloadURL, unpacks the binary and stages it. The
// archive and unpacked binary are removed whatever the outcome.
func (uc *ApplyUpdateUseCase) Execute(ctx context.Context, downloadURL string) (*ApplyUpdateOutput, error) {
	log := logging.FromContext(ctx)

	if !uc.applier.CanSelfUpdate(ctx) {
		return failed("binary is not writable, update manually"), nil
	}
	if err := os.MkdirAll(uc.workDir, 0o755); err != nil {
		return nil, fmt.Errorf("create update dir: %w", err)
	}

	log.Info().Str("url", downloadURL).Msg("downloading update")
	archive, err := uc.downloader.Download(ctx, downloadURL, uc.workDir)
	if err != nil {
		return failed("download failed: %v", err), nil
	}
	defer removeQuietly(archive)

	binary, err := uc.downloader.Extract(ctx, archive, uc.workDir)
	if err != nil {
		return failed("unpack failed: %v", err), nil
	}
	defer removeQuietly(binary)

	if err := uc.applier.StageUpdate(ctx, binary); err != nil {
		if clearErr := uc.applier.ClearStagedUpdate(ctx); clearErr != nil {
			log.Warn().Err(clearErr).Msg("failed to clear partial staging")
		}
		return failed("staging failed: %v", err), nil
	}

	log.Info().Msg("update staged, applies on exit")
	return &ApplyUpdateOutput{Status: entity.UpdateStatusReady, Message: "Update ready, applies on exit"}, nil
}

// FinalizeOnExit swaps in a staged binary during shutdown. Without one it
// does nothing.
func (uc *ApplyUpdateUseCase) FinalizeOnExit(ctx context.Context) error {
	log := logging.FromContext(ctx)
	if !uc.applier.HasStagedUpdate(ctx) {
		return nil
	}

	backup, err := uc.applier.ApplyOnExit(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to apply staged update")
		return err
	}
	log.Info().Str("backup", backup).Msg("update applied")
	return nil
}

// HasPendingUpdate reports whether a binary is staged.
func (uc *ApplyUpdateUseCase) HasPendingUpdate(ctx context.Context) bool {
	return uc.applier.HasStagedUpdate(ctx)
}

func failed(format string, args ...any) *ApplyUpdateOutput {
	return &ApplyUpdateOutput{Status: entity.UpdateStatusFailed, Message: fmt.Sprintf(format, args...)}
}

func removeQuietly(path string) {
	_ = os.Remove(path)
}
