package calculator

import (
	"sort"

	"github.com/samber/lo"

	"github.com/jteoh/courtsplit/internal/models"
)

// PlayerTotal represents one player's accumulated share for a month.
type PlayerTotal struct {
	Name   string
	Amount float64
}

// Months returns the distinct month keys present in the ledger, sorted
// ascending. Lexicographic order equals chronological order for YYYY-MM
// strings. Returns an empty slice when there are no sessions.
func Months(sessions []models.Session) []string {
	keys := lo.FilterMap(sessions, func(s models.Session, _ int) (string, bool) {
		return s.MonthKey, s.MonthKey != ""
	})
	months := lo.Uniq(keys)
	sort.Strings(months)
	return months
}

// MonthlyTotals sums each player's per-player share across all sessions of
// the given month. Every name appearing in a matching session's participant
// list is attributed that session's PerPlayer amount. Results are sorted by
// name for presentation; empty when the month has no sessions.
func MonthlyTotals(sessions []models.Session, monthKey string) []PlayerTotal {
	if monthKey == "" {
		return nil
	}

	totals := make(map[string]float64)
	for _, s := range sessions {
		if s.MonthKey != monthKey {
			continue
		}
		for _, name := range s.Participants {
			totals[name] += s.PerPlayer
		}
	}

	names := lo.Keys(totals)
	sort.Strings(names)

	result := make([]PlayerTotal, len(names))
	for i, name := range names {
		result[i] = PlayerTotal{Name: name, Amount: totals[name]}
	}
	return result
}
