// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
//
// The ledger is stored as two flat records (roster, session list) in a single
// key-value table, each record a JSON blob. SQLite is used purely as a durable
// key-value collaborator; there is no relational schema beyond the one table.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/jteoh/courtsplit/internal/models"
	"github.com/jteoh/courtsplit/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS records (
    name TEXT PRIMARY KEY,
    data BLOB NOT NULL
);
`

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and the schema automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads both records and decodes them. A missing record reads as nil,
// which the codec maps to the first-run defaults.
func (s *SQLiteStore) Load(ctx context.Context) ([]string, []models.Session, error) {
	rosterData, err := s.getRecord(ctx, storage.RosterRecord)
	if err != nil {
		return nil, nil, err
	}
	sessionsData, err := s.getRecord(ctx, storage.SessionsRecord)
	if err != nil {
		return nil, nil, err
	}

	roster, err := storage.DecodeRoster(rosterData)
	if err != nil {
		return nil, nil, err
	}
	sessions, err := storage.DecodeSessions(sessionsData)
	if err != nil {
		return nil, nil, err
	}
	return roster, sessions, nil
}

// Save replaces both records in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, roster []string, sessions []models.Session) error {
	rosterData, err := storage.EncodeRoster(roster)
	if err != nil {
		return err
	}
	sessionsData, err := storage.EncodeSessions(sessions)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, rec := range []struct {
		name string
		data []byte
	}{
		{storage.RosterRecord, rosterData},
		{storage.SessionsRecord, sessionsData},
	} {
		_, err = tx.ExecContext(ctx,
			"INSERT OR REPLACE INTO records (name, data) VALUES (?, ?)",
			rec.name, rec.data,
		)
		if err != nil {
			return fmt.Errorf("failed to write record %q: %w", rec.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQLiteStore) getRecord(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM records WHERE name = ?", name,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record %q: %w", name, err)
	}
	return data, nil
}
