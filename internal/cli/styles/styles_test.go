package styles

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chanomhub/desktop/internal/domain/build"
	"github.com/chanomhub/desktop/internal/domain/entity"
)

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0 B", FormatSize(0, 0))
	assert.Equal(t, "1.0 KiB", FormatSize(1024, 0))
	assert.Equal(t, "2.0 MiB", FormatSize(2<<20, 2<<20))
	assert.Equal(t, "1.0 MiB/2.0 MiB", FormatSize(1<<20, 2<<20))
}

func TestJournalRow(t *testing.T) {
	rec := &entity.DownloadRecord{
		URL:           "https://x.test/a.zip",
		Name:          "a.zip",
		Outcome:       entity.DownloadOutcomeFailed,
		ReceivedBytes: 10,
		TotalBytes:    20,
		FinishedAt:    time.Now().Add(-2 * time.Hour),
	}
	row := JournalRow(rec)

	assert.Len(t, row, len(JournalTableColumns()))
	assert.Equal(t, "2 hours ago", row[0])
	assert.Equal(t, "failed", row[1])
	assert.Equal(t, "a.zip", row[2])
	assert.Equal(t, "https://x.test/a.zip", row[4])
}

func TestDownloadRenderer(t *testing.T) {
	r := NewDownloadRenderer(NewTheme())

	assert.Contains(t, r.RenderOutcome("a.zip", entity.DownloadOutcomeCompleted, ""), "a.zip")
	assert.Contains(t, r.RenderOutcome("b.zip", entity.DownloadOutcomeFailed, "404"), "404")
	assert.Contains(t, r.RenderSummary(2, 1), "1 not completed")
	assert.NotContains(t, r.RenderSummary(2, 0), "not completed")
}

func TestVersionRenderer(t *testing.T) {
	out := NewVersionRenderer(NewTheme()).Render(build.Info{Version: "1.2.3", GoVersion: "go1.24"})
	assert.Contains(t, out, "1.2.3")
	assert.Contains(t, out, "github.com/chanomhub/desktop")
	assert.False(t, strings.Contains(out, "commit"), "empty commit is omitted")
}

func TestUpdateRenderer(t *testing.T) {
	r := NewUpdateRenderer(NewTheme())
	assert.Contains(t, r.RenderUpToDate("1.0.0"), "1.0.0")
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
	assert.Contains(t, r.RenderCannotAutoUpdate("1.0.0", "1.1.0", "https://r"), "not writable")
}

func TestDoctorRenderer(t *testing.T) {
	r := NewDoctorRenderer(NewTheme())

	out := r.Render(DoctorReport{
		OK:     false,
		Prefix: "/opt/gnome",
		Checks: []DoctorCheck{
			{Name: "GTK4", Installed: true, Version: "4.16.2", MinVersion: "4.12", OK: true},
			{Name: "GLib", Installed: true, Version: "2.70", MinVersion: "2.76"},
			{Name: "WebKitGTK 6.0", Error: "webkitgtk-6.0: library not found"},
		},
	})

	assert.Contains(t, out, "Needs attention")
	assert.Contains(t, out, "/opt/gnome")
	assert.Contains(t, out, "4.16.2 (>= 4.12)")
	assert.Contains(t, out, "have 2.70, need >= 2.76")
	assert.Contains(t, out, "Missing")
	assert.Contains(t, out, "library not found")
}
