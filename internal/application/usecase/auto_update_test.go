package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/chanomhub/desktop/internal/application/port"
	"github.com/chanomhub/desktop/internal/application/port/mocks"
	"github.com/chanomhub/desktop/internal/domain/build"
	"github.com/chanomhub/desktop/internal/domain/entity"
)

const testReleaseAsset = "https://github.com/chanomhub/desktop/releases/download/v2.0.0/chanomhub_linux_x86_64.tar.gz"

type autoUpdateFixture struct {
	checker    *mocks.MockUpdateChecker
	downloader *mocks.MockUpdateDownloader
	applier    *mocks.MockUpdateApplier
	emitter    *mocks.MockEventEmitter
	cacheDir   string
}

func newAutoUpdateFixture(t *testing.T) *autoUpdateFixture {
	return &autoUpdateFixture{
		checker:    mocks.NewMockUpdateChecker(t),
		downloader: mocks.NewMockUpdateDownloader(t),
		applier:    mocks.NewMockUpdateApplier(t),
		emitter:    mocks.NewMockEventEmitter(t),
		cacheDir:   t.TempDir(),
	}
}

func (f *autoUpdateFixture) useCase(autoDownload bool) *AutoUpdateUseCase {
	check := NewCheckUpdateUseCase(f.checker, f.applier, build.Info{Version: "1.0.0"})
	apply := NewApplyUpdateUseCase(f.downloader, f.applier, f.cacheDir)
	return NewAutoUpdateUseCase(check, apply, f.emitter, autoDownload)
}

func newerRelease() *entity.UpdateInfo {
	return &entity.UpdateInfo{
		CurrentVersion: "1.0.0",
		LatestVersion:  "2.0.0",
		IsNewer:        true,
		ReleaseURL:     "https://github.com/chanomhub/desktop/releases/tag/v2.0.0",
		DownloadURL:    testReleaseAsset,
	}
}

func TestAutoUpdateUseCase_UpToDateEmitsNothing(t *testing.T) {
	f := newAutoUpdateFixture(t)
	f.checker.EXPECT().CheckForUpdate(mock.Anything, "1.0.0").
		Return(&entity.UpdateInfo{CurrentVersion: "1.0.0", LatestVersion: "1.0.0"}, nil).Once()

	status, err := f.useCase(true).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.UpdateStatusUpToDate, status)
}

func TestAutoUpdateUseCase_AvailableWithoutAutoDownload(t *testing.T) {
	f := newAutoUpdateFixture(t)
	f.checker.EXPECT().CheckForUpdate(mock.Anything, "1.0.0").Return(newerRelease(), nil).Once()
	f.applier.EXPECT().CanSelfUpdate(mock.Anything).Return(true).Once()
	f.emitter.EXPECT().Emit(mock.Anything, port.EventUpdateAvailable, UpdateAvailablePayload{
		CurrentVersion: "1.0.0",
		LatestVersion:  "2.0.0",
		ReleaseURL:     "https://github.com/chanomhub/desktop/releases/tag/v2.0.0",
		CanAutoUpdate:  true,
	}).Return().Once()

	status, err := f.useCase(false).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.UpdateStatusAvailable, status)
}

func TestAutoUpdateUseCase_DownloadsStagesAndNotifies(t *testing.T) {
	f := newAutoUpdateFixture(t)
	updatesDir := filepath.Join(f.cacheDir, "updates")
	archive := filepath.Join(updatesDir, "chanomhub.tar.gz")
	binary := filepath.Join(updatesDir, "chanomhub")

	f.checker.EXPECT().CheckForUpdate(mock.Anything, "1.0.0").Return(newerRelease(), nil).Once()
	f.applier.EXPECT().CanSelfUpdate(mock.Anything).Return(true).Twice()
	f.emitter.EXPECT().Emit(mock.Anything, port.EventUpdateAvailable, mock.Anything).Return().Once()
	f.downloader.EXPECT().Download(mock.Anything, testReleaseAsset, updatesDir).
		RunAndReturn(func(context.Context, string, string) (string, error) {
			return archive, os.WriteFile(archive, []byte("archive"), 0o600)
		}).Once()
	f.downloader.EXPECT().Extract(mock.Anything, archive, updatesDir).
		RunAndReturn(func(context.Context, string, string) (string, error) {
			return binary, os.WriteFile(binary, []byte("bin"), 0o700)
		}).Once()
	f.applier.EXPECT().StageUpdate(mock.Anything, binary).Return(nil).Once()
	f.emitter.EXPECT().Emit(mock.Anything, port.EventUpdateDownloaded, UpdateDownloadedPayload{Version: "2.0.0"}).
		Return().Once()

	status, err := f.useCase(true).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.UpdateStatusReady, status)
	assert.NoFileExists(t, archive)
	assert.NoFileExists(t, binary)
}

func TestAutoUpdateUseCase_DownloadFailureDoesNotNotifyDownloaded(t *testing.T) {
	f := newAutoUpdateFixture(t)
	updatesDir := filepath.Join(f.cacheDir, "updates")

	f.checker.EXPECT().CheckForUpdate(mock.Anything, "1.0.0").Return(newerRelease(), nil).Once()
	f.applier.EXPECT().CanSelfUpdate(mock.Anything).Return(true).Twice()
	f.emitter.EXPECT().Emit(mock.Anything, port.EventUpdateAvailable, mock.Anything).Return().Once()
	f.downloader.EXPECT().Download(mock.Anything, testReleaseAsset, updatesDir).
		Return("", errors.New("checksum mismatch")).Once()

	status, err := f.useCase(true).Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, entity.UpdateStatusFailed, status)
}

func TestInstallUpdateUseCase(t *testing.T) {
	t.Run("quits when staged", func(t *testing.T) {
		applier := mocks.NewMockUpdateApplier(t)
		lifecycle := mocks.NewMockAppLifecycle(t)
		applier.EXPECT().HasStagedUpdate(mock.Anything).Return(true).Once()
		lifecycle.EXPECT().Quit(mock.Anything).Return().Once()

		uc := NewInstallUpdateUseCase(NewApplyUpdateUseCase(mocks.NewMockUpdateDownloader(t), applier, t.TempDir()), lifecycle)
		require.NoError(t, uc.Execute(context.Background()))
	})

	t.Run("nothing staged", func(t *testing.T) {
		applier := mocks.NewMockUpdateApplier(t)
		applier.EXPECT().HasStagedUpdate(mock.Anything).Return(false).Once()

		uc := NewInstallUpdateUseCase(NewApplyUpdateUseCase(mocks.NewMockUpdateDownloader(t), applier, t.TempDir()), mocks.NewMockAppLifecycle(t))
		assert.ErrorIs(t, uc.Execute(context.Background()), port.ErrNoStagedUpdate)
	})
}
