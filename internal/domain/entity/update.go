package entity

import "time"

// UpdateInfo describes the newest published release relative to the
// running build.
type UpdateInfo struct {
	CurrentVersion string
	LatestVersion  string
	// IsNewer is false for dev builds and for releases at or below CurrentVersion.
	IsNewer     bool
	ReleaseURL  string
	DownloadURL string
	PublishedAt time.Time
}

// UpdateStatus is where the self-update flow ended.
type UpdateStatus int

const (
	UpdateStatusUnknown UpdateStatus = iota
	UpdateStatusUpToDate
	// UpdateStatusAvailable: a release exists but was not staged.
	UpdateStatusAvailable
	// UpdateStatusReady: the binary is staged and replaces the running one on exit.
	UpdateStatusReady
	UpdateStatusFailed
)

var updateStatusNames = map[UpdateStatus]string{
	UpdateStatusUpToDate:  "up-to-date",
	UpdateStatusAvailable: "available",
	UpdateStatusReady:     "ready",
	UpdateStatusFailed:    "failed",
}

func (s UpdateStatus) String() string {
	if name, ok := updateStatusNames[s]; ok {
		return name
	}
	return "unknown"
}
