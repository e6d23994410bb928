package service

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/jteoh/courtsplit/internal/models"
	"github.com/jteoh/courtsplit/internal/storage"
)

// memStore is an in-memory storage.Store for service tests. Setting
// failWrites makes Save reject, to exercise the write-failure path.
type memStore struct {
	roster     []string
	sessions   []models.Session
	saves      int
	failWrites bool
}

var _ storage.Store = (*memStore)(nil)

func (m *memStore) Load(ctx context.Context) ([]string, []models.Session, error) {
	roster := m.roster
	if len(roster) == 0 {
		roster = storage.DefaultRoster()
	}
	return slices.Clone(roster), slices.Clone(m.sessions), nil
}

func (m *memStore) Save(ctx context.Context, roster []string, sessions []models.Session) error {
	if m.failWrites {
		return errors.New("write rejected")
	}
	m.roster = slices.Clone(roster)
	m.sessions = slices.Clone(sessions)
	m.saves++
	return nil
}

func (m *memStore) Close() error { return nil }

func loadState(t *testing.T, store *memStore) *State {
	t.Helper()
	state, err := Load(context.Background(), store)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return state
}
