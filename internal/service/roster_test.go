package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestAddPlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("appends in insertion order and persists", func(t *testing.T) {
		store := &memStore{roster: []string{"Alice"}}
		roster := NewRosterService(loadState(t, store))

		if err := roster.AddPlayer(ctx, "Bob"); err != nil {
			t.Fatalf("AddPlayer failed: %v", err)
		}
		if want := []string{"Alice", "Bob"}; !reflect.DeepEqual(roster.Players(), want) {
			t.Errorf("roster = %v, want %v", roster.Players(), want)
		}
		if store.saves != 1 {
			t.Errorf("expected 1 save, got %d", store.saves)
		}
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		store := &memStore{roster: []string{"Alice"}}
		roster := NewRosterService(loadState(t, store))

		if err := roster.AddPlayer(ctx, "  Wei Ming  "); err != nil {
			t.Fatalf("AddPlayer failed: %v", err)
		}
		if players := roster.Players(); players[1] != "Wei Ming" {
			t.Errorf("stored name = %q, want %q", players[1], "Wei Ming")
		}
	})

	t.Run("rejects empty and whitespace-only names", func(t *testing.T) {
		store := &memStore{roster: []string{"Alice"}}
		roster := NewRosterService(loadState(t, store))

		for _, name := range []string{"", "   "} {
			err := roster.AddPlayer(ctx, name)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("AddPlayer(%q) = %v, want ValidationError", name, err)
			}
		}
		if len(roster.Players()) != 1 {
			t.Errorf("roster size changed on rejection: %v", roster.Players())
		}
		if store.saves != 0 {
			t.Errorf("expected no saves on rejection, got %d", store.saves)
		}
	})

	t.Run("rejects case-insensitive duplicates", func(t *testing.T) {
		store := &memStore{roster: []string{"Alice", "Bob"}}
		roster := NewRosterService(loadState(t, store))

		err := roster.AddPlayer(ctx, "alice")
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("AddPlayer(alice) = %v, want ValidationError", err)
		}
		if len(roster.Players()) != 2 {
			t.Errorf("roster size changed on rejection: %v", roster.Players())
		}
	})

	t.Run("failed write leaves the roster unchanged", func(t *testing.T) {
		store := &memStore{roster: []string{"Alice"}, failWrites: true}
		roster := NewRosterService(loadState(t, store))

		err := roster.AddPlayer(ctx, "Bob")
		var perr *PersistenceError
		if !errors.As(err, &perr) {
			t.Fatalf("AddPlayer = %v, want PersistenceError", err)
		}
		if want := []string{"Alice"}; !reflect.DeepEqual(roster.Players(), want) {
			t.Errorf("roster mutated despite failed write: %v", roster.Players())
		}
	})
}

func TestRemovePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("removes by position and persists", func(t *testing.T) {
		store := &memStore{roster: []string{"Alice", "Bob", "Charlie"}}
		roster := NewRosterService(loadState(t, store))

		if err := roster.RemovePlayer(ctx, 1); err != nil {
			t.Fatalf("RemovePlayer failed: %v", err)
		}
		if want := []string{"Alice", "Charlie"}; !reflect.DeepEqual(roster.Players(), want) {
			t.Errorf("roster = %v, want %v", roster.Players(), want)
		}
		if store.saves != 1 {
			t.Errorf("expected 1 save, got %d", store.saves)
		}
	})

	t.Run("out-of-range index is a silent no-op", func(t *testing.T) {
		store := &memStore{roster: []string{"Alice"}}
		roster := NewRosterService(loadState(t, store))

		for _, idx := range []int{-1, 1, 99} {
			if err := roster.RemovePlayer(ctx, idx); err != nil {
				t.Errorf("RemovePlayer(%d) = %v, want nil", idx, err)
			}
		}
		if len(roster.Players()) != 1 {
			t.Errorf("roster changed: %v", roster.Players())
		}
	})
}
