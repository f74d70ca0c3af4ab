package styles

import (
	"fmt"
	"strings"

	"github.com/chanomhub/desktop/internal/domain/build"
)

// VersionRenderer renders `chanomhub version`.
type VersionRenderer struct {
	theme *Theme
}

// NewVersionRenderer creates a renderer using theme.
func NewVersionRenderer(theme *Theme) *VersionRenderer {
	return &VersionRenderer{theme: theme}
}

// Render renders build information as a box.
func (r *VersionRenderer) Render(info build.Info) string {
	row := func(icon, label, value string) string {
		return fmt.Sprintf("%s  %-8s %s", r.theme.Highlight.Render(icon), r.theme.Subtle.Render(label), value)
	}

	lines := []string{
		r.theme.Title.Render("chanomhub desktop"),
		"",
		row(IconVersion, "version", info.Version),
	}
	if info.Commit != "" {
		lines = append(lines, row(IconGitCommit, "commit", info.Commit))
	}
	if info.BuildDate != "" {
		lines = append(lines, row(IconCalendar, "built", info.BuildDate))
	}
	lines = append(lines,
		row(IconGo, "go", info.GoVersion),
		row(IconGithub, "source", build.RepoURL()),
	)
	return r.theme.Box.Render(strings.Join(lines, "\n"))
}
