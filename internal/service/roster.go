package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// RosterService owns the list of player names eligible for new sessions.
type RosterService struct {
	state *State
}

// NewRosterService creates a RosterService over the loaded state.
func NewRosterService(state *State) *RosterService {
	return &RosterService{state: state}
}

// Players returns a copy of the current roster in insertion order.
func (s *RosterService) Players() []string {
	return slices.Clone(s.state.roster)
}

// AddPlayer appends a player to the roster and persists. The name is
// whitespace-trimmed first; empty names and case-insensitive duplicates are
// rejected with no mutation.
func (s *RosterService) AddPlayer(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	for _, existing := range s.state.roster {
		if strings.EqualFold(existing, name) {
			return &ValidationError{Field: "name", Reason: fmt.Sprintf("player %q already exists", existing)}
		}
	}

	roster := append(slices.Clone(s.state.roster), name)
	if err := s.state.replace(ctx, "add player", roster, s.state.sessions); err != nil {
		return err
	}

	slog.Info("Player added", "name", name, "roster_size", len(roster))
	return nil
}

// RemovePlayer removes the player at the given roster position and persists.
// Out-of-range positions are a silent no-op. Historical sessions keep the
// removed name. Confirming intent is the caller's concern.
func (s *RosterService) RemovePlayer(ctx context.Context, index int) error {
	if index < 0 || index >= len(s.state.roster) {
		slog.Warn("RemovePlayer ignored out-of-range index", "index", index)
		return nil
	}

	name := s.state.roster[index]
	roster := slices.Delete(slices.Clone(s.state.roster), index, index+1)
	if err := s.state.replace(ctx, "remove player", roster, s.state.sessions); err != nil {
		return err
	}

	slog.Info("Player removed", "name", name, "roster_size", len(roster))
	return nil
}
