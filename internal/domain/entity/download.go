// Package entity defines domain entities for the chanomhub shell.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Download is the UI-facing view of one tracked transfer.
// ID is the source URL: two downloads from the same URL share a key.
type Download struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

// DownloadOutcome is the terminal result of a transfer.
type DownloadOutcome string

const (
	DownloadOutcomeCompleted DownloadOutcome = "completed"
	DownloadOutcomeCancelled DownloadOutcome = "cancelled"
	DownloadOutcomeFailed    DownloadOutcome = "failed"
)

// Succeeded reports whether the outcome is a successful completion.
func (o DownloadOutcome) Succeeded() bool {
	return o == DownloadOutcomeCompleted
}

// DownloadRecord is a journal row written when a transfer reaches a terminal state.
// Records are diagnostics only; they never flow back into the live registry.
type DownloadRecord struct {
	ID            string
	URL           string
	Name          string
	SavePath      string
	Outcome       DownloadOutcome
	ReceivedBytes int64
	TotalBytes    int64
	FinishedAt    time.Time
}

// NewDownloadRecord creates a journal record with a fresh ID.
func NewDownloadRecord(url, name, savePath string, outcome DownloadOutcome) *DownloadRecord {
	return &DownloadRecord{
		ID:         uuid.NewString(),
		URL:        url,
		Name:       name,
		SavePath:   savePath,
		Outcome:    outcome,
		FinishedAt: time.Now(),
	}
}
