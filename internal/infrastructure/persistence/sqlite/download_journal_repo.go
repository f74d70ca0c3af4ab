package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/chanomhub/desktop/internal/domain/entity"
	"github.com/chanomhub/desktop/internal/domain/repository"
)

const journalTable = "download_journal"

var journalColumns = []string{
	"id", "url", "name", "save_path", "outcome", "received_bytes", "total_bytes", "finished_at",
}

// DownloadJournalRepository implements repository.DownloadJournal.
type DownloadJournalRepository struct {
	db *sql.DB
}

// NewDownloadJournalRepository creates a journal backed by db.
func NewDownloadJournalRepository(db *sql.DB) *DownloadJournalRepository {
	return &DownloadJournalRepository{db: db}
}

func (r *DownloadJournalRepository) Append(ctx context.Context, rec *entity.DownloadRecord) error {
	_, err := sq.Insert(journalTable).
		Columns(journalColumns...).
		Values(
			rec.ID,
			rec.URL,
			rec.Name,
			rec.SavePath,
			string(rec.Outcome),
			rec.ReceivedBytes,
			rec.TotalBytes,
			rec.FinishedAt.UnixMilli(),
		).
		RunWith(r.db).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("append journal record: %w", err)
	}
	return nil
}

func (r *DownloadJournalRepository) List(ctx context.Context, filter repository.JournalFilter) ([]*entity.DownloadRecord, error) {
	query := sq.Select(journalColumns...).
		From(journalTable).
		OrderBy("finished_at DESC")

	if !filter.Since.IsZero() {
		query = query.Where(sq.GtOrEq{"finished_at": filter.Since.UnixMilli()})
	}
	if filter.Outcome != "" {
		query = query.Where(sq.Eq{"outcome": string(filter.Outcome)})
	}
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	rows, err := query.RunWith(r.db).QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("query journal: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*entity.DownloadRecord
	for rows.Next() {
		var (
			rec        entity.DownloadRecord
			outcome    string
			finishedAt int64
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.URL,
			&rec.Name,
			&rec.SavePath,
			&outcome,
			&rec.ReceivedBytes,
			&rec.TotalBytes,
			&finishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan journal row: %w", err)
		}
		rec.Outcome = entity.DownloadOutcome(outcome)
		rec.FinishedAt = time.UnixMilli(finishedAt)
		out = append(out, &rec)
	}
	return out, rows.Err()
}

func (r *DownloadJournalRepository) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := sq.Delete(journalTable).
		Where(sq.Lt{"finished_at": before.UnixMilli()}).
		RunWith(r.db).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune journal: %w", err)
	}
	return res.RowsAffected()
}

var _ repository.DownloadJournal = (*DownloadJournalRepository)(nil)
