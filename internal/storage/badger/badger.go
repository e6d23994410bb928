// Package badger provides a Badger-backed implementation of the storage.Store interface.
//
// Badger is an embedded key-value store, so the two records map directly onto
// two keys. Functionally interchangeable with the sqlite engine; selected by
// configuration.
package badger

import (
	"context"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/jteoh/courtsplit/internal/models"
	"github.com/jteoh/courtsplit/internal/storage"
)

// Ensure BadgerStore implements storage.Store
var _ storage.Store = (*BadgerStore)(nil)

// BadgerStore implements storage.Store using BadgerDB.
type BadgerStore struct {
	db *badger.DB
}

// New creates a new BadgerStore rooted at the given directory.
func New(dir string) (*BadgerStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Badger's own logger is too chatty for a CLI tool
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Close closes the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

// Load reads both records in one view transaction. A missing key reads as
// nil, which the codec maps to the first-run defaults.
func (s *BadgerStore) Load(ctx context.Context) ([]string, []models.Session, error) {
	var rosterData, sessionsData []byte

	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		if rosterData, err = getValue(txn, storage.RosterRecord); err != nil {
			return err
		}
		sessionsData, err = getValue(txn, storage.SessionsRecord)
		return err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read records: %w", err)
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

// Save replaces both records in one update transaction.
func (s *BadgerStore) Save(ctx context.Context, roster []string, sessions []models.Session) error {
	rosterData, err := storage.EncodeRoster(roster)
	if err != nil {
		return err
	}
	sessionsData, err := storage.EncodeSessions(sessions)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(storage.RosterRecord), rosterData); err != nil {
			return err
		}
		return txn.Set([]byte(storage.SessionsRecord), sessionsData)
	})
	if err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}

func getValue(txn *badger.Txn, key string) ([]byte, error) {
	item, err := txn.Get([]byte(key))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}
