package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// UpdateRenderer renders the `chanomhub update` screens.
type UpdateRenderer struct {
	theme *Theme
}

func NewUpdateRenderer(theme *Theme) *UpdateRenderer {
	return &UpdateRenderer{theme: theme}
}

// block renders lines indented under a leading blank line.
func block(lines ...string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, l := range lines {
		b.WriteString("  ")
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.String()
}

func (r *UpdateRenderer) icon(color lipgloss.Color, icon string) string {
	return lipgloss.NewStyle().Foreground(color).Render(icon)
}

func (r *UpdateRenderer) versions(current, latest string) string {
	return fmt.Sprintf("%s %s %s",
		r.theme.Highlight.Render(current),
		r.icon(r.theme.Accent, IconArrow),
		r.theme.Highlight.Render(latest))
}

func (*UpdateRenderer) RenderChecking(spinner string) string {
	return block(spinner + " Checking for updates...")
}

func (r *UpdateRenderer) RenderUpToDate(version string) string {
	return block(fmt.Sprintf("%s Already up to date (%s)",
		r.icon(r.theme.Success, IconCheck), r.theme.Highlight.Render(version)))
}

func (r *UpdateRenderer) RenderAvailable(current, latest, releaseURL string) string {
	return block(
		fmt.Sprintf("%s Update available: %s", r.icon(r.theme.Accent, IconRocket), r.versions(current, latest)),
		"   "+r.theme.Subtle.Render(releaseURL),
	)
}

func (r *UpdateRenderer) RenderDownloading(spinner, version string) string {
	return block(fmt.Sprintf("%s Downloading %s...", spinner, r.theme.Highlight.Render(version)))
}

// RenderStaged is shown once the archive passed its checksum and the
// binary is staged.
func (r *UpdateRenderer) RenderStaged(version string) string {
	ok := r.icon(r.theme.Success, IconCheck)
	return block(
		fmt.Sprintf("%s Update %s downloaded and verified", ok, r.theme.Highlight.Render(version)),
		ok+" Replaces the binary when this command exits",
	)
}

func (r *UpdateRenderer) RenderError(err error) string {
	return block(fmt.Sprintf("%s Update failed: %v", r.icon(r.theme.Error, IconX), err))
}

func (r *UpdateRenderer) RenderCannotAutoUpdate(current, latest, releaseURL string) string {
	warn := r.icon(r.theme.Warning, IconWarning)
	return block(
		fmt.Sprintf("%s Update available: %s", r.icon(r.theme.Warning, IconRocket), r.versions(current, latest)),
		warn+" Cannot auto-update: binary is not writable",
		"   Download manually: "+r.theme.Subtle.Render(releaseURL),
	)
}

// RenderDevBuild: dev builds have no version to compare against a release.
func (r *UpdateRenderer) RenderDevBuild() string {
	return block(r.icon(r.theme.Warning, IconInfo) + " Development build, update check skipped")
}
