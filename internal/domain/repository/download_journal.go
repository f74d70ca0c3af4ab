// Package repository declares persistence contracts for domain entities.
package repository

import (
	"context"
	"time"

	"github.com/chanomhub/desktop/internal/domain/entity"
)

// JournalFilter narrows a journal query.
type JournalFilter struct {
	// Since excludes records finished before it when non-zero.
	Since time.Time
	// Outcome restricts to one outcome when non-empty.
	Outcome entity.DownloadOutcome
	// Limit caps the number of rows; zero means no cap.
	Limit int
}

// DownloadJournal stores terminal transfer outcomes.
type DownloadJournal interface {
	// Append records one outcome.
	Append(ctx context.Context, rec *entity.DownloadRecord) error

	// List returns records, newest first.
	List(ctx context.Context, filter JournalFilter) ([]*entity.DownloadRecord, error)

	// Prune deletes records finished before the cutoff and returns how many went.
	Prune(ctx context.Context, before time.Time) (int64, error)
}
