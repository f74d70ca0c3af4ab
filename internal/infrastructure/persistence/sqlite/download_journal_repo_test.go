package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chanomhub/desktop/internal/domain/entity"
	"github.com/chanomhub/desktop/internal/domain/repository"
	"github.com/chanomhub/desktop/internal/infrastructure/persistence/sqlite"
	"github.com/chanomhub/desktop/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newJournal(t *testing.T) *sqlite.DownloadJournalRepository {
	t.Helper()
	db, err := sqlite.NewConnection(testCtx(), filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	return sqlite.NewDownloadJournalRepository(db)
}

func record(url string, outcome entity.DownloadOutcome, at time.Time) *entity.DownloadRecord {
	rec := entity.NewDownloadRecord(url, filepath.Base(url), "/dl/"+filepath.Base(url), outcome)
	rec.FinishedAt = at
	rec.TotalBytes = 1024
	rec.ReceivedBytes = 512
	return rec
}

func TestDownloadJournalRepository_AppendAndList(t *testing.T) {
	ctx := testCtx()
	repo := newJournal(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, record("https://cdn.example.com/a.zip", entity.DownloadOutcomeCompleted, base)))
	require.NoError(t, repo.Append(ctx, record("https://cdn.example.com/b.zip", entity.DownloadOutcomeFailed, base.Add(time.Hour))))
	require.NoError(t, repo.Append(ctx, record("https://cdn.example.com/c.zip", entity.DownloadOutcomeCancelled, base.Add(2*time.Hour))))

	all, err := repo.List(ctx, repository.JournalFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "https://cdn.example.com/c.zip", all[0].URL, "newest first")
	assert.Equal(t, entity.DownloadOutcomeCancelled, all[0].Outcome)
	assert.Equal(t, int64(512), all[0].ReceivedBytes)
	assert.True(t, all[2].FinishedAt.Equal(base))

	failed, err := repo.List(ctx, repository.JournalFilter{Outcome: entity.DownloadOutcomeFailed})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "b.zip", failed[0].Name)

	recent, err := repo.List(ctx, repository.JournalFilter{Since: base.Add(30 * time.Minute), Limit: 1})
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "c.zip", recent[0].Name)
}

func TestDownloadJournalRepository_Prune(t *testing.T) {
	ctx := testCtx()
	repo := newJournal(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, record("https://cdn.example.com/old.zip", entity.DownloadOutcomeCompleted, base)))
	require.NoError(t, repo.Append(ctx, record("https://cdn.example.com/new.zip", entity.DownloadOutcomeCompleted, base.Add(48*time.Hour))))

	n, err := repo.Prune(ctx, base.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	left, err := repo.List(ctx, repository.JournalFilter{})
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "new.zip", left[0].Name)
}
