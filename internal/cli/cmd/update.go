package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/chanomhub/desktop/internal/application/usecase"
	"github.com/chanomhub/desktop/internal/cli/styles"
	"github.com/chanomhub/desktop/internal/domain/entity"
)

var (
	updateForce     bool
	updateCheckOnly bool
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for and install updates",
	Long: `Check GitHub releases for a newer chanomhub, download it, verify it
against the release checksums and stage it. The staged binary replaces
this one when the command exits.

Use --check to only report whether an update exists, and --force to
reinstall the latest release even when already up to date.`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().BoolVarP(&updateForce, "force", "f", false, "force reinstall (skips version check)")
	updateCmd.Flags().BoolVarP(&updateCheckOnly, "check", "c", false, "only check, do not download")
}

// updateState represents the current state of the update process.
type updateState int

const (
	stateChecking updateState = iota
	stateDownloading
	stateDone
)

type checkFunc func(ctx context.Context) (*usecase.CheckUpdateOutput, error)

type applyFunc func(ctx context.Context, downloadURL string) (*usecase.ApplyUpdateOutput, error)

// updateModel walks checking -> downloading -> done.
type updateModel struct {
	ctx       context.Context
	spinner   spinner.Model
	renderer  *styles.UpdateRenderer
	state     updateState
	force     bool
	checkOnly bool

	check checkFunc
	apply applyFunc

	release      *usecase.CheckUpdateOutput
	result       string
	err          error
	quitting     bool
	updateStaged bool
}

type checkResultMsg struct {
	output *usecase.CheckUpdateOutput
	err    error
}

type downloadResultMsg struct {
	output *usecase.ApplyUpdateOutput
	err    error
}

func newUpdateModel(
	ctx context.Context,
	renderer *styles.UpdateRenderer,
	accentColor lipgloss.Color,
	check checkFunc,
	apply applyFunc,
) updateModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(accentColor)

	return updateModel{
		ctx:       ctx,
		spinner:   s,
		renderer:  renderer,
		state:     stateChecking,
		force:     updateForce,
		checkOnly: updateCheckOnly,
		check:     check,
		apply:     apply,
	}
}

func (m updateModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runCheck())
}

func (m updateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s := msg.String(); s == "q" || s == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case checkResultMsg:
		return m.onChecked(msg)
	case downloadResultMsg:
		return m.onDownloaded(msg)
	}
	return m, nil
}

func (m updateModel) onChecked(msg checkResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		return m.done("")
	}
	r := msg.output
	m.release = r

	switch {
	case r.CurrentVersion == "" || r.CurrentVersion == "dev":
		return m.done(m.renderer.RenderDevBuild())
	case !r.UpdateAvailable && !m.force:
		return m.done(m.renderer.RenderUpToDate(r.CurrentVersion))
	case m.checkOnly:
		return m.done(m.renderer.RenderAvailable(r.CurrentVersion, r.LatestVersion, r.ReleaseURL))
	case r.UpdateAvailable && !r.CanAutoUpdate:
		return m.done(m.renderer.RenderCannotAutoUpdate(r.CurrentVersion, r.LatestVersion, r.ReleaseURL))
	}
	m.state = stateDownloading
	return m, m.runApply(r.DownloadURL)
}

func (m updateModel) onDownloaded(msg downloadResultMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.err != nil:
		m.err = msg.err
		return m.done("")
	case msg.output.Status == entity.UpdateStatusFailed:
		return m.done(m.renderer.RenderError(errors.New(msg.output.Message)))
	}
	m.updateStaged = true
	return m.done(m.renderer.RenderStaged(m.targetVersion()))
}

func (m updateModel) done(result string) (tea.Model, tea.Cmd) {
	m.state = stateDone
	m.result = result
	return m, tea.Quit
}

// targetVersion is what gets installed; a forced reinstall keeps the
// current version.
func (m updateModel) targetVersion() string {
	if m.release == nil {
		return ""
	}
	if m.force && !m.release.UpdateAvailable {
		return m.release.CurrentVersion
	}
	return m.release.LatestVersion
}

func (m updateModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.err != nil:
		return m.renderer.RenderError(m.err)
	case m.state == stateChecking:
		return m.renderer.RenderChecking(m.spinner.View())
	case m.state == stateDownloading:
		return m.renderer.RenderDownloading(m.spinner.View(), m.targetVersion())
	}
	return m.result
}

func (m updateModel) runCheck() tea.Cmd {
	return func() tea.Msg {
		out, err := m.check(m.ctx)
		return checkResultMsg{output: out, err: err}
	}
}

func (m updateModel) runApply(downloadURL string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.apply(m.ctx, downloadURL)
		return downloadResultMsg{output: out, err: err}
	}
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	a, err := openApp(cmd.Context(), nil)
	if err != nil {
		return err
	}

	check := func(ctx context.Context) (*usecase.CheckUpdateOutput, error) {
		return a.CheckUpdate.Execute(ctx)
	}
	apply := func(ctx context.Context, url string) (*usecase.ApplyUpdateOutput, error) {
		return a.ApplyUpdate.Execute(ctx, url)
	}

	renderer := styles.NewUpdateRenderer(a.Theme)
	m := newUpdateModel(a.Context(), renderer, a.Theme.Accent, check, apply)

	final, err := tea.NewProgram(m, tea.WithOutput(cmd.OutOrStdout())).Run()
	if err != nil {
		return fmt.Errorf("update failed: %w", err)
	}

	// The staged binary is swapped in by App.Close when the command returns.
	if um, ok := final.(updateModel); ok && um.err != nil {
		return um.err
	}
	return nil
}
