package model

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chanomhub/desktop/internal/cli/styles"
	"github.com/chanomhub/desktop/internal/domain/entity"
	"github.com/chanomhub/desktop/internal/domain/repository"
)

const historyTableHeight = 15

type historyLoadedMsg struct {
	records []*entity.DownloadRecord
	err     error
}

// HistoryModel shows the download journal in a scrollable table.
type HistoryModel struct {
	ctx     context.Context
	theme   *styles.Theme
	journal repository.DownloadJournal
	filter  repository.JournalFilter

	table   table.Model
	records []*entity.DownloadRecord
	err     error
	loaded  bool
}

// NewHistoryModel creates a model listing journal rows matching filter.
func NewHistoryModel(
	ctx context.Context,
	theme *styles.Theme,
	journal repository.DownloadJournal,
	filter repository.JournalFilter,
) HistoryModel {
	return HistoryModel{
		ctx:     ctx,
		theme:   theme,
		journal: journal,
		filter:  filter,
		table:   styles.NewStyledTable(theme, styles.JournalTableColumns(), nil, 120, historyTableHeight),
	}
}

// Records returns the loaded rows.
func (m HistoryModel) Records() []*entity.DownloadRecord { return m.records }

// Err returns the load error, if any.
func (m HistoryModel) Err() error { return m.err }

func (m HistoryModel) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := m.journal.List(m.ctx, m.filter)
		return historyLoadedMsg{records: records, err: err}
	}
}

func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loaded = true
		m.records, m.err = msg.records, msg.err
		if m.err != nil || len(m.records) == 0 {
			return m, tea.Quit
		}
		rows := make([]table.Row, 0, len(m.records))
		for _, rec := range m.records {
			rows = append(rows, styles.JournalRow(rec))
		}
		m.table.SetRows(rows)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m HistoryModel) View() string {
	switch {
	case !m.loaded:
		return m.theme.Subtle.Render("  loading journal...") + "\n"
	case m.err != nil:
		return m.theme.ErrorStyle.Render("  "+styles.IconX+" "+m.err.Error()) + "\n"
	case len(m.records) == 0:
		return m.theme.Subtle.Render("  no downloads recorded") + "\n"
	}
	return m.theme.Box.Render(m.table.View()) + "\n" +
		m.theme.HelpKey.Render("  q") + " " + m.theme.HelpDesc.Render("quit") + "\n"
}
