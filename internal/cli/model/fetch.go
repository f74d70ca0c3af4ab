// Package model holds the bubbletea models of the CLI commands.
package model

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chanomhub/desktop/internal/app/messaging"
	"github.com/chanomhub/desktop/internal/application/port"
	"github.com/chanomhub/desktop/internal/cli/styles"
	"github.com/chanomhub/desktop/internal/domain/entity"
)

// FetchResult describes one transfer that reached a terminal state.
type FetchResult struct {
	URL           string
	Name          string
	SavePath      string
	Outcome       entity.DownloadOutcome
	ReceivedBytes int64
	TotalBytes    int64
}

// DownloadControls is what the fetch view can do to running transfers.
type DownloadControls interface {
	Pause(ctx context.Context, id string)
	Resume(ctx context.Context, id string)
	Cancel(ctx context.Context, id string)
}

type eventMsg messaging.Event

type resultMsg FetchResult

type channelClosedMsg struct{}

// FetchModel renders download-update snapshots as progress bars until
// every started transfer finished.
type FetchModel struct {
	ctx      context.Context
	renderer *styles.DownloadRenderer
	bar      progress.Model
	controls DownloadControls

	events  <-chan messaging.Event
	results <-chan FetchResult

	dir      string
	expected int
	rows     []entity.Download
	finished []FetchResult
	paused   bool
	quitting bool
}

// NewFetchModel creates the model. expected is the number of transfers
// started; the program quits once that many results arrived.
func NewFetchModel(
	ctx context.Context,
	theme *styles.Theme,
	controls DownloadControls,
	events <-chan messaging.Event,
	results <-chan FetchResult,
	dir string,
	expected int,
) FetchModel {
	bar := progress.New(
		progress.WithSolidFill(string(theme.Accent)),
		progress.WithWidth(40),
	)
	return FetchModel{
		ctx:      ctx,
		renderer: styles.NewDownloadRenderer(theme),
		bar:      bar,
		controls: controls,
		events:   events,
		results:  results,
		dir:      dir,
		expected: expected,
	}
}

// Results returns the finished transfers in completion order.
func (m FetchModel) Results() []FetchResult { return m.finished }

func (m FetchModel) Init() tea.Cmd {
	if m.expected == 0 {
		return tea.Quit
	}
	return tea.Batch(waitEvent(m.events), waitResult(m.results))
}

func waitEvent(ch <-chan messaging.Event) tea.Cmd {
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return channelClosedMsg{}
		}
		return eventMsg(e)
	}
}

func waitResult(ch <-chan FetchResult) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return channelClosedMsg{}
		}
		return resultMsg(r)
	}
}

func (m FetchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "p", " ":
			m.togglePause()
		case "q", "ctrl+c":
			m.quitting = true
			for _, d := range m.rows {
				m.controls.Cancel(m.ctx, d.ID)
			}
			if len(m.rows) == 0 {
				return m, tea.Quit
			}
		}
		return m, nil

	case eventMsg:
		if msg.Name == port.EventDownloadUpdate {
			if list, ok := msg.Payload.([]entity.Download); ok {
				m.rows = list
			}
		}
		return m, waitEvent(m.events)

	case resultMsg:
		m.finished = append(m.finished, FetchResult(msg))
		if len(m.finished) >= m.expected {
			return m, tea.Quit
		}
		return m, waitResult(m.results)

	case channelClosedMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m *FetchModel) togglePause() {
	m.paused = !m.paused
	for _, d := range m.rows {
		if m.paused {
			m.controls.Pause(m.ctx, d.ID)
		} else {
			m.controls.Resume(m.ctx, d.ID)
		}
	}
}

func (m FetchModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderer.RenderHeader(m.dir))
	b.WriteString("\n")

	for _, r := range m.finished {
		b.WriteString(m.renderer.RenderOutcome(r.Name, r.Outcome, outcomeDetail(r)))
	}
	for _, d := range m.rows {
		name := d.Name
		if m.paused {
			name += " (paused)"
		}
		b.WriteString(m.renderer.RenderRow(name, m.bar.ViewAs(float64(d.Progress)/100)))
	}

	if len(m.finished) >= m.expected || m.expected == 0 {
		completed := 0
		for _, r := range m.finished {
			if r.Outcome.Succeeded() {
				completed++
			}
		}
		b.WriteString(m.renderer.RenderSummary(completed, len(m.finished)-completed))
		return b.String()
	}

	if !m.quitting {
		b.WriteString(m.renderer.RenderHelp())
	}
	return b.String()
}

func outcomeDetail(r FetchResult) string {
	if r.Outcome.Succeeded() {
		return styles.FormatSize(r.ReceivedBytes, r.TotalBytes) + " " + r.SavePath
	}
	return string(r.Outcome)
}
