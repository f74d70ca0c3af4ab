package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DoctorReport is what `chanomhub doctor` prints.
type DoctorReport struct {
	OK     bool
	Prefix string
	Checks []DoctorCheck
}

// DoctorCheck is one library line.
type DoctorCheck struct {
	Name       string
	Installed  bool
	Version    string
	MinVersion string
	OK         bool
	Error      string
}

// DoctorRenderer renders runtime diagnostics.
type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	status, statusStyle := "OK", r.theme.SuccessStyle
	if !report.OK {
		status, statusStyle = "Needs attention", r.theme.WarningStyle
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconDoctor),
		" ",
		r.theme.Title.Render("Doctor"),
		" ",
		r.theme.BadgeMuted.Render(statusStyle.Render(status)),
	)

	lines := make([]string, 0, len(report.Checks)+1)
	if strings.TrimSpace(report.Prefix) != "" {
		lines = append(lines, r.theme.Subtle.Render("Prefix ")+report.Prefix)
	}
	for _, c := range report.Checks {
		lines = append(lines, r.renderCheck(c))
	}

	body := r.theme.Highlight.Render(IconPackage+" Runtime") + "\n" + strings.Join(lines, "\n")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", r.theme.Box.Render(body))
}

func (r *DoctorRenderer) renderCheck(c DoctorCheck) string {
	icon, style, status := IconCheck, r.theme.SuccessStyle, "OK"
	summary := fmt.Sprintf("%s (>= %s)", c.Version, c.MinVersion)
	switch {
	case !c.Installed:
		icon, style, status = IconX, r.theme.ErrorStyle, "Missing"
		summary = c.Error
	case !c.OK:
		icon, style, status = IconWarning, r.theme.WarningStyle, "Too old"
		summary = fmt.Sprintf("have %s, need >= %s", c.Version, c.MinVersion)
	}
	return fmt.Sprintf("%s %s %s\n  %s",
		style.Render(icon),
		c.Name,
		r.theme.BadgeMuted.Render(style.Render(status)),
		r.theme.Subtle.Render(summary),
	)
}
