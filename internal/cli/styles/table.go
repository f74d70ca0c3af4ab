package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/chanomhub/desktop/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// JournalTableColumns returns the columns of `downloads history`.
func JournalTableColumns() []table.Column {
	return []table.Column{
		{Title: "Finished", Width: 16},
		{Title: "Outcome", Width: 10},
		{Title: "Name", Width: 36},
		{Title: "Size", Width: 10},
		{Title: "URL", Width: 40},
	}
}

// JournalRow converts a journal record to a table row.
func JournalRow(rec *entity.DownloadRecord) table.Row {
	return table.Row{
		humanize.Time(rec.FinishedAt),
		string(rec.Outcome),
		rec.Name,
		FormatSize(rec.ReceivedBytes, rec.TotalBytes),
		rec.URL,
	}
}

// FormatSize renders received/total, or just received when total is unknown.
func FormatSize(received, total int64) string {
	if total <= 0 {
		return humanize.IBytes(uint64(max(received, 0)))
	}
	if received >= total {
		return humanize.IBytes(uint64(total))
	}
	return humanize.IBytes(uint64(received)) + "/" + humanize.IBytes(uint64(total))
}
