package usecase

import (
	"context"
	"errors"

	"github.com/chanomhub/desktop/internal/application/port"
	"github.com/chanomhub/desktop/internal/domain/build"
	"github.com/chanomhub/desktop/internal/logging"
)

// CheckUpdateOutput is what the update flows and `chanomhub update` act on.
type CheckUpdateOutput struct {
	UpdateAvailable bool
	// CanAutoUpdate is only computed when an update is available.
	CanAutoUpdate  bool
	CurrentVersion string
	LatestVersion  string
	ReleaseURL     string
	DownloadURL    string
}

// CheckUpdateUseCase asks the release feed whether this build is outdated.
type CheckUpdateUseCase struct {
	checker port.UpdateChecker
	applier port.UpdateApplier
	build   build.Info
}

func NewCheckUpdateUseCase(checker port.UpdateChecker, applier port.UpdateApplier, info build.Info) *CheckUpdateUseCase {
	return &CheckUpdateUseCase{checker: checker, applier: applier, build: info}
}

// Execute returns "up to date" for transient feed failures (rate limits,
// network) so startup is never blocked by them. Other errors propagate.
func (uc *CheckUpdateUseCase) Execute(ctx context.Context) (*CheckUpdateOutput, error) {
	log := logging.FromContext(ctx)
	current := uc.build.Version

	info, err := uc.checker.CheckForUpdate(ctx, current)
	switch {
	case errors.Is(err, port.ErrUpdateCheckTransient):
		log.Debug().Err(err).Msg("update feed unavailable, skipping")
		return &CheckUpdateOutput{CurrentVersion: current, LatestVersion: current}, nil
	case err != nil:
		log.Warn().Err(err).Msg("update check failed")
		return nil, err
	}

	out := &CheckUpdateOutput{
		UpdateAvailable: info.IsNewer,
		CurrentVersion:  info.CurrentVersion,
		LatestVersion:   info.LatestVersion,
		ReleaseURL:      info.ReleaseURL,
		DownloadURL:     info.DownloadURL,
	}
	if out.UpdateAvailable {
		out.CanAutoUpdate = uc.applier.CanSelfUpdate(ctx)
	}

	log.Debug().
		Str("current", out.CurrentVersion).
		Str("latest", out.LatestVersion).
		Bool("available", out.UpdateAvailable).
		Bool("self_update", out.CanAutoUpdate).
		Msg("update check done")
	return out, nil
}
