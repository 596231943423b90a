// Package form computes recent-form summaries from the match ledger.
package form

import (
	"sort"

	"jleague-data-mcp/internal/ledger"
)

// DefaultWindow is the number of recent matches used when the caller
// does not override the window.
const DefaultWindow = 5

// Recent returns the points a team earned over its most recent window
// matches in the given league. A team with no ledger entries scores 0;
// this function deliberately does not distinguish "no data" from "0
// points in window games" — callers needing that check ledger emptiness
// themselves.
func Recent(entries []ledger.Entry, team, league string, window int) int {
	if window <= 0 {
		window = DefaultWindow
	}

	mine := make([]ledger.Entry, 0, window)
	for _, e := range entries {
		if e.League == league && e.Team == team {
			mine = append(mine, e)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].Date.After(mine[j].Date)
	})

	if len(mine) > window {
		mine = mine[:window]
	}
	total := 0
	for _, e := range mine {
		total += e.Points
	}
	return total
}
