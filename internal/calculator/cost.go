package calculator

import (
	"fmt"
)

// Cost computes the total and per-player cost of a session.
// Based on the formula: total = court_cost + shuttle_cost × shuttles_used
func Cost(courtCost, shuttleCost, shuttlesUsed float64, numPlayers int) (total, perPlayer float64, err error) {
	if numPlayers < 1 {
		return 0, 0, fmt.Errorf("must have at least one player")
	}

	total = courtCost + shuttleCost*shuttlesUsed
	perPlayer = total / float64(numPlayers)
	return total, perPlayer, nil
}

// MonthKey derives the YYYY-MM grouping from a YYYY-MM-DD date string.
func MonthKey(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
