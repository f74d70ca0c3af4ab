package cmd

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chanomhub/desktop/internal/application/usecase"
	"github.com/chanomhub/desktop/internal/cli/styles"
	"github.com/chanomhub/desktop/internal/domain/entity"
)

func newTestUpdateModel(t *testing.T, check *usecase.CheckUpdateOutput, apply *usecase.ApplyUpdateOutput) (updateModel, *int) {
	t.Helper()
	applied := 0
	theme := styles.NewTheme()
	m := newUpdateModel(context.Background(), styles.NewUpdateRenderer(theme), theme.Accent,
		func(context.Context) (*usecase.CheckUpdateOutput, error) { return check, nil },
		func(context.Context, string) (*usecase.ApplyUpdateOutput, error) {
			applied++
			return apply, nil
		})
	return m, &applied
}

func step(t *testing.T, m updateModel, msg tea.Msg) (updateModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	um, ok := next.(updateModel)
	require.True(t, ok)
	return um, cmd
}

func TestUpdateModel_UpToDate(t *testing.T) {
	resetFlags()
	out := &usecase.CheckUpdateOutput{CurrentVersion: "1.0.0", LatestVersion: "1.0.0"}
	m, applied := newTestUpdateModel(t, out, nil)

	m, cmd := step(t, m, checkResultMsg{output: out})
	assert.Equal(t, stateDone, m.state)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, m.View(), "Already up to date")
	assert.Zero(t, *applied)
}

func TestUpdateModel_DevBuild(t *testing.T) {
	resetFlags()
	out := &usecase.CheckUpdateOutput{CurrentVersion: "dev"}
	m, _ := newTestUpdateModel(t, out, nil)

	m, _ = step(t, m, checkResultMsg{output: out})
	assert.Equal(t, stateDone, m.state)
	assert.Equal(t, m.renderer.RenderDevBuild(), m.View())
}

func TestUpdateModel_DownloadsAndStages(t *testing.T) {
	resetFlags()
	out := &usecase.CheckUpdateOutput{
		UpdateAvailable: true, CanAutoUpdate: true,
		CurrentVersion: "1.0.0", LatestVersion: "1.1.0",
		DownloadURL: "https://github.com/chanomhub/desktop/releases/download/v1.1.0/chanomhub_linux_amd64.tar.gz",
	}
	staged := &usecase.ApplyUpdateOutput{Status: entity.UpdateStatusReady}
	m, applied := newTestUpdateModel(t, out, staged)

	m, cmd := step(t, m, checkResultMsg{output: out})
	assert.Equal(t, stateDownloading, m.state)
	assert.Contains(t, m.View(), "1.1.0")

	msg := cmd()
	assert.Equal(t, 1, *applied)

	m, _ = step(t, m, msg)
	assert.True(t, m.updateStaged)
	assert.Equal(t, m.renderer.RenderStaged("1.1.0"), m.View())
}

func TestUpdateModel_CheckOnly(t *testing.T) {
	resetFlags()
	updateCheckOnly = true
	out := &usecase.CheckUpdateOutput{UpdateAvailable: true, CanAutoUpdate: true, CurrentVersion: "1.0.0", LatestVersion: "1.1.0"}
	m, applied := newTestUpdateModel(t, out, nil)

	m, _ = step(t, m, checkResultMsg{output: out})
	assert.Equal(t, stateDone, m.state)
	assert.Contains(t, m.View(), "Update available")
	assert.Zero(t, *applied)
}

func TestUpdateModel_CannotAutoUpdate(t *testing.T) {
	resetFlags()
	out := &usecase.CheckUpdateOutput{UpdateAvailable: true, CurrentVersion: "1.0.0", LatestVersion: "1.1.0", ReleaseURL: "https://example.test/r"}
	m, applied := newTestUpdateModel(t, out, nil)

	m, _ = step(t, m, checkResultMsg{output: out})
	assert.Equal(t, m.renderer.RenderCannotAutoUpdate("1.0.0", "1.1.0", "https://example.test/r"), m.View())
	assert.Zero(t, *applied)
}

func TestUpdateModel_Errors(t *testing.T) {
	resetFlags()
	m, _ := newTestUpdateModel(t, nil, nil)

	m, _ = step(t, m, checkResultMsg{err: errors.New("rate limited")})
	assert.EqualError(t, m.err, "rate limited")
	assert.Contains(t, m.View(), "rate limited")
}

func TestUpdateModel_FailedStaging(t *testing.T) {
	resetFlags()
	m, _ := newTestUpdateModel(t, nil, nil)
	m.state = stateDownloading

	m, _ = step(t, m, downloadResultMsg{output: &usecase.ApplyUpdateOutput{Status: entity.UpdateStatusFailed, Message: "checksum mismatch"}})
	assert.False(t, m.updateStaged)
	assert.Contains(t, m.View(), "checksum mismatch")
}
