package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/pressly/goose/v3"

	"github.com/chanomhub/desktop/internal/logging"
)

// schemaTable records applied journal migrations.
const schemaTable = "journal_schema"

//go:embed migrations/*.sql
var embedMigrations embed.FS

func newProvider(db *sql.DB) (*goose.Provider, error) {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(goose.DialectSQLite3, db, migrations,
		goose.WithTableName(schemaTable),
		goose.WithDisableGlobalRegistry(true),
	)
}

// RunMigrations applies pending journal migrations, logging each one.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	log := logging.FromContext(ctx)

	provider, err := newProvider(db)
	if err != nil {
		return fmt.Errorf("load journal migrations: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrate journal schema: %w", err)
	}
	for _, r := range results {
		log.Info().
			Int64("version", r.Source.Version).
			Str("file", path.Base(r.Source.Path)).
			Dur("took", r.Duration).
			Msg("journal migration applied")
	}
	if len(results) == 0 {
		log.Debug().Msg("journal schema up to date")
	}
	return nil
}

// SchemaVersion returns the newest applied journal migration.
func SchemaVersion(ctx context.Context, db *sql.DB) (int64, error) {
	provider, err := newProvider(db)
	if err != nil {
		return 0, err
	}
	return provider.GetDBVersion(ctx)
}
