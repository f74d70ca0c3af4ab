package usecase

import (
	"context"
	"fmt"

	"github.com/chanomhub/desktop/internal/application/port"
	"github.com/chanomhub/desktop/internal/domain/entity"
	"github.com/chanomhub/desktop/internal/logging"
)

// UpdateAvailablePayload is pushed with port.EventUpdateAvailable.
type UpdateAvailablePayload struct {
	CurrentVersion string `json:"currentVersion"`
	LatestVersion  string `json:"latestVersion"`
	ReleaseURL     string `json:"releaseUrl"`
	CanAutoUpdate  bool   `json:"canAutoUpdate"`
}

// UpdateDownloadedPayload is pushed with port.EventUpdateDownloaded.
type UpdateDownloadedPayload struct {
	Version string `json:"version"`
}

// AutoUpdateUseCase runs the startup update flow: check, tell the window,
// and optionally download and stage.
type AutoUpdateUseCase struct {
	check        *CheckUpdateUseCase
	apply        *ApplyUpdateUseCase
	emitter      port.EventEmitter
	autoDownload bool
}

// NewAutoUpdateUseCase creates a new auto update use case.
func NewAutoUpdateUseCase(
	check *CheckUpdateUseCase,
	apply *ApplyUpdateUseCase,
	emitter port.EventEmitter,
	autoDownload bool,
) *AutoUpdateUseCase {
	return &AutoUpdateUseCase{
		check:        check,
		apply:        apply,
		emitter:      emitter,
		autoDownload: autoDownload,
	}
}

// Run executes the flow once and returns the final status.
func (uc *AutoUpdateUseCase) Run(ctx context.Context) (entity.UpdateStatus, error) {
	log := logging.FromContext(ctx)

	out, err := uc.check.Execute(ctx)
	if err != nil {
		return entity.UpdateStatusFailed, fmt.Errorf("check for update: %w", err)
	}
	if !out.UpdateAvailable {
		return entity.UpdateStatusUpToDate, nil
	}

	uc.emitter.Emit(ctx, port.EventUpdateAvailable, UpdateAvailablePayload{
		CurrentVersion: out.CurrentVersion,
		LatestVersion:  out.LatestVersion,
		ReleaseURL:     out.ReleaseURL,
		CanAutoUpdate:  out.CanAutoUpdate,
	})

	if !uc.autoDownload || !out.CanAutoUpdate || out.DownloadURL == "" {
		return entity.UpdateStatusAvailable, nil
	}

	res, err := uc.apply.Execute(ctx, out.DownloadURL)
	if err != nil {
		return entity.UpdateStatusFailed, fmt.Errorf("apply update: %w", err)
	}
	if res.Status != entity.UpdateStatusReady {
		log.Warn().Str("reason", res.Message).Msg("update not staged")
		return res.Status, nil
	}

	uc.emitter.Emit(ctx, port.EventUpdateDownloaded, UpdateDownloadedPayload{Version: out.LatestVersion})
	return entity.UpdateStatusReady, nil
}

// InstallUpdateUseCase quits the application so the staged update applies.
type InstallUpdateUseCase struct {
	apply     *ApplyUpdateUseCase
	lifecycle port.AppLifecycle
}

// NewInstallUpdateUseCase creates a new install update use case.
func NewInstallUpdateUseCase(apply *ApplyUpdateUseCase, lifecycle port.AppLifecycle) *InstallUpdateUseCase {
	return &InstallUpdateUseCase{apply: apply, lifecycle: lifecycle}
}

// Execute quits when an update is staged and returns port.ErrNoStagedUpdate otherwise.
func (uc *InstallUpdateUseCase) Execute(ctx context.Context) error {
	if !uc.apply.HasPendingUpdate(ctx) {
		return port.ErrNoStagedUpdate
	}
	logging.FromContext(ctx).Info().Msg("quitting to install update")
	uc.lifecycle.Quit(ctx)
	return nil
}
