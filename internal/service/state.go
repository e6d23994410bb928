package service

import (
	"context"
	"log/slog"

	"github.com/jteoh/courtsplit/internal/models"
	"github.com/jteoh/courtsplit/internal/storage"
)

// State holds the roster and session ledger for the process lifetime. It is
// loaded once at startup and persisted in full after every mutation; all
// access goes through RosterService and LedgerService.
//
// The execution model is a single logical writer (one user action at a time),
// so State does no locking and is not safe for concurrent use.
type State struct {
	store    storage.Store
	roster   []string
	sessions []models.Session
}

// Load reads the persisted snapshot through the store and returns the
// process-wide state. A corrupt snapshot is a fatal initialization error.
func Load(ctx context.Context, store storage.Store) (*State, error) {
	roster, sessions, err := store.Load(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}
	slog.Debug("State loaded", "players", len(roster), "sessions", len(sessions))
	return &State{store: store, roster: roster, sessions: sessions}, nil
}

// replace writes the new snapshot to the store and, only on success, swaps it
// into memory. A failed write leaves both memory and storage at the prior
// snapshot, so they can never diverge.
func (st *State) replace(ctx context.Context, op string, roster []string, sessions []models.Session) error {
	if err := st.store.Save(ctx, roster, sessions); err != nil {
		return &PersistenceError{Op: op, Err: err}
	}
	st.roster = roster
	st.sessions = sessions
	return nil
}
