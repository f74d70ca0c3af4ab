package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver (pure Go)
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite WASM binary

	"github.com/chanomhub/desktop/internal/logging"
)

// journalPragmas run on every connection the pool opens. The window and the
// CLI may append to the journal at the same time.
var journalPragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(wal)",
	"synchronous(normal)",
}

// NewConnection opens the download journal at dbPath, creating its directory,
// and migrates the schema.
func NewConnection(ctx context.Context, dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		return nil, errors.New("journal database path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite3", journalDSN(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	// Appends are a single row; one connection also keeps writes serial.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open journal %s: %w", dbPath, err)
	}

	log := logging.FromContext(ctx).With().Str("path", dbPath).Logger()

	// WAL is refused on some filesystems (network mounts); SQLite then keeps
	// the rollback journal and concurrent writers wait on busy_timeout.
	var mode string
	if err := db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode); err == nil && mode != "wal" {
		log.Warn().Str("journal_mode", mode).Msg("journal is not in WAL mode")
	}

	if err := RunMigrations(log.WithContext(ctx), db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// journalDSN builds the driver URI. Transactions begin IMMEDIATE so a writer
// takes the lock up front instead of failing on upgrade.
func journalDSN(path string) string {
	q := url.Values{}
	q.Set("_txlock", "immediate")
	for _, p := range journalPragmas {
		q.Add("_pragma", p)
	}
	return (&url.URL{Scheme: "file", Path: path, RawQuery: q.Encode()}).String()
}

// Close closes db; a nil db is ignored.
func Close(db *sql.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}
