package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chanomhub/desktop/internal/domain/entity"
)

// DownloadRenderer renders the headless fetch output.
type DownloadRenderer struct {
	theme *Theme
}

// NewDownloadRenderer creates a renderer using theme.
func NewDownloadRenderer(theme *Theme) *DownloadRenderer {
	return &DownloadRenderer{theme: theme}
}

// RenderHeader renders the target directory line.
func (r *DownloadRenderer) RenderHeader(dir string) string {
	return fmt.Sprintf("\n  %s Saving to %s\n", r.theme.Highlight.Render(IconFolder), r.theme.Subtle.Render(dir))
}

// RenderRow renders one active download with its progress bar.
func (r *DownloadRenderer) RenderRow(name, bar string) string {
	return fmt.Sprintf("  %s %s\n    %s\n", r.theme.Highlight.Render(IconDownload), r.theme.Title.Render(name), bar)
}

// RenderOutcome renders a finished download.
func (r *DownloadRenderer) RenderOutcome(name string, outcome entity.DownloadOutcome, detail string) string {
	icon, style := IconCheck, r.theme.SuccessStyle
	switch outcome {
	case entity.DownloadOutcomeCancelled:
		icon, style = IconBan, r.theme.WarningStyle
	case entity.DownloadOutcomeFailed:
		icon, style = IconX, r.theme.ErrorStyle
	}

	line := fmt.Sprintf("  %s %s", style.Render(icon), name)
	if detail != "" {
		line += " " + r.theme.Subtle.Render(detail)
	}
	return line + "\n"
}

// RenderSummary renders the final count line.
func (r *DownloadRenderer) RenderSummary(completed, failed int) string {
	parts := []string{r.theme.SuccessStyle.Render(fmt.Sprintf("%d completed", completed))}
	if failed > 0 {
		parts = append(parts, r.theme.ErrorStyle.Render(fmt.Sprintf("%d not completed", failed)))
	}
	return "\n  " + strings.Join(parts, lipgloss.NewStyle().Foreground(r.theme.Muted).Render(", ")) + "\n"
}

// RenderHelp renders the key hints.
func (r *DownloadRenderer) RenderHelp() string {
	return fmt.Sprintf("\n  %s %s  %s %s\n",
		r.theme.HelpKey.Render("p"), r.theme.HelpDesc.Render("pause/resume"),
		r.theme.HelpKey.Render("q"), r.theme.HelpDesc.Render("cancel all"))
}
