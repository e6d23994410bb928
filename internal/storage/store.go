// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/jteoh/courtsplit/internal/models"
)

// Record names under which the two snapshots are stored.
// The roster record is a JSON array of player names; the session record is a
// JSON array of session objects.
const (
	RosterRecord   = "players"
	SessionsRecord = "sessions"
)

// Store defines the interface for ledger persistence.
// This abstraction allows swapping storage backends (SQLite, Badger, etc.)
// without changing the service layer.
//
// Writes are full-snapshot: Save rewrites both records in a single
// transaction. There are no partial or incremental writes.
type Store interface {
	// Load reads the roster and session list. On first run (no stored
	// records) it returns the default roster and an empty session list.
	// Sessions stored without an ID are repaired by assigning one.
	// Corrupt stored data is a load error; there is no partial recovery.
	Load(ctx context.Context) (roster []string, sessions []models.Session, err error)

	// Save replaces both stored records with the given snapshot.
	Save(ctx context.Context, roster []string, sessions []models.Session) error

	// Close releases any resources held by the store.
	Close() error
}
