package storage

import (
	"encoding/json"
	"fmt"

	"github.com/jteoh/courtsplit/internal/models"
)

// DefaultRoster returns the placeholder roster used on first run, or when the
// stored roster is empty.
func DefaultRoster() []string {
	return []string{"Player 1", "Player 2"}
}

// EncodeRoster serializes the roster record.
func EncodeRoster(roster []string) ([]byte, error) {
	if roster == nil {
		roster = []string{}
	}
	data, err := json.Marshal(roster)
	if err != nil {
		return nil, fmt.Errorf("failed to encode roster: %w", err)
	}
	return data, nil
}

// DecodeRoster deserializes the roster record. A nil record (first run) or an
// empty stored roster yields the default roster.
func DecodeRoster(data []byte) ([]string, error) {
	if data == nil {
		return DefaultRoster(), nil
	}
	var roster []string
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("failed to decode roster: %w", err)
	}
	if len(roster) == 0 {
		return DefaultRoster(), nil
	}
	return roster, nil
}

// EncodeSessions serializes the session-list record.
func EncodeSessions(sessions []models.Session) ([]byte, error) {
	if sessions == nil {
		sessions = []models.Session{}
	}
	data, err := json.Marshal(sessions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sessions: %w", err)
	}
	return data, nil
}

// DecodeSessions deserializes the session-list record. Sessions persisted by
// older versions without an ID get one assigned here so that edits and
// deletes can address them; the repair itself never fails a load.
func DecodeSessions(data []byte) ([]models.Session, error) {
	if data == nil {
		return []models.Session{}, nil
	}
	var sessions []models.Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}
	for i := range sessions {
		if sessions[i].ID == "" {
			sessions[i].ID = models.NewSessionID()
		}
	}
	return sessions, nil
}
