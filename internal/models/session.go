package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents one recorded badminton session whose cost is split
// equally among the players who showed up.
type Session struct {
	// ID is the unique identifier for the session.
	// Stable for the session's lifetime; used to address edits and deletes.
	ID string `json:"id"`

	// Date is the calendar date of the session in YYYY-MM-DD form.
	Date string `json:"date"`

	// MonthKey is the YYYY-MM grouping derived from Date.
	// Recomputed whenever Date changes.
	MonthKey string `json:"monthKey"`

	// CourtCost is the flat court booking fee.
	CourtCost float64 `json:"courtCost"`

	// ShuttleCost is the price of a single shuttlecock.
	ShuttleCost float64 `json:"shuttleCost"`

	// ShuttlesUsed is how many shuttles were used up.
	// Fractional values are allowed (a shuttle can survive into the next session).
	ShuttlesUsed float64 `json:"shuttlesUsed"`

	// Total is CourtCost + ShuttleCost*ShuttlesUsed.
	// Derived; recomputed on every create/update, never edited directly.
	Total float64 `json:"total"`

	// PerPlayer is Total divided by the number of participants.
	// Derived; a session is never persisted with zero participants.
	PerPlayer float64 `json:"perPlayer"`

	// Participants are the player names captured when the session was
	// recorded or last edited. This is a historical snapshot, not a live
	// reference to the roster: removing a player from the roster later
	// does not alter past sessions.
	Participants []string `json:"participants"`
}

// NewSessionID generates a session identifier from the current time plus a
// random component, e.g. "s_1710480000000_9f2c41aa". Unique across the
// process lifetime and across reloads of persisted data.
func NewSessionID() string {
	return fmt.Sprintf("s_%d_%.8s", time.Now().UnixMilli(), uuid.NewString())
}
