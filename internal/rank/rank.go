// Package rank reconstructs league standings at points in time from the
// match ledger, producing the rank-over-time series behind the
// standings chart.
package rank

import (
	"sort"
	"time"

	"jleague-data-mcp/internal/ledger"
)

// Policy selects how checkpoint dates are chosen.
type Policy string

const (
	// MatchDays puts one checkpoint on every distinct date a match was
	// played in the league. Teams that have not played yet are absent
	// from those checkpoints.
	MatchDays Policy = "matchdays"
	// Weekly puts a checkpoint on every Monday from the first Monday
	// on-or-after the first match date through one week past the last
	// match date. Teams that have not played yet are carried at the
	// zero floor, and between matches a team's last-known totals are
	// carried forward.
	Weekly Policy = "weekly"
)

// TeamStanding is one team's reconstructed position at a checkpoint.
type TeamStanding struct {
	Team     string `json:"team"`
	Rank     int    `json:"rank"`
	Points   int    `json:"points"`
	GoalDiff int    `json:"goal_diff"`
	GoalsFor int    `json:"goals_for"`
}

// Checkpoint is a full league ranking as of one date.
type Checkpoint struct {
	Date      time.Time      `json:"date"`
	Standings []TeamStanding `json:"standings"`
}

// OverTime builds the checkpoint series for a league. An empty league
// ledger yields an empty series, not an error.
func OverTime(entries []ledger.Entry, league string, policy Policy) []Checkpoint {
	inLeague := make([]ledger.Entry, 0, len(entries))
	for _, e := range entries {
		if e.League == league {
			inLeague = append(inLeague, e)
		}
	}
	if len(inLeague) == 0 {
		return nil
	}
	sort.SliceStable(inLeague, func(i, j int) bool {
		return inLeague[i].Date.Before(inLeague[j].Date)
	})

	checkpoints := checkpointDates(inLeague, policy)

	// Weekly checkpoints rank every team in the league's ledger from the
	// start, at the zero floor until its first match.
	state := make(map[string]TeamStanding)
	if policy == Weekly {
		for _, e := range inLeague {
			if _, ok := state[e.Team]; !ok {
				state[e.Team] = TeamStanding{Team: e.Team}
			}
		}
	}

	out := make([]Checkpoint, 0, len(checkpoints))
	idx := 0
	for _, cp := range checkpoints {
		// Advance through entries up to and including this checkpoint;
		// the latest entry per team carries its cumulative totals.
		for idx < len(inLeague) && !inLeague[idx].Date.After(cp) {
			e := inLeague[idx]
			state[e.Team] = TeamStanding{
				Team:     e.Team,
				Points:   e.CumPoints,
				GoalDiff: e.CumGoalDiff,
				GoalsFor: e.CumGoalsFor,
			}
			idx++
		}
		out = append(out, Checkpoint{Date: cp, Standings: rankStandings(state)})
	}
	return out
}

// checkpointDates returns the checkpoint series for sorted entries.
func checkpointDates(sorted []ledger.Entry, policy Policy) []time.Time {
	first := sorted[0].Date
	last := sorted[len(sorted)-1].Date

	if policy == Weekly {
		var mondays []time.Time
		end := last.AddDate(0, 0, 7)
		for m := nextMonday(first); !m.After(end); m = m.AddDate(0, 0, 7) {
			mondays = append(mondays, m)
		}
		return mondays
	}

	var dates []time.Time
	for _, e := range sorted {
		if len(dates) == 0 || !e.Date.Equal(dates[len(dates)-1]) {
			dates = append(dates, e.Date)
		}
	}
	return dates
}

// nextMonday returns d itself when d is a Monday, otherwise the first
// Monday after it.
func nextMonday(d time.Time) time.Time {
	offset := (int(time.Monday) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset)
}

// rankStandings orders the current state by points, then goal
// difference, then goals scored (each descending), and assigns
// competition ranks: tied teams share a rank and the next team skips
// past them ([10,10,8] ranks as [1,1,3]). Name order is a deterministic
// final sort only and never influences the rank number.
func rankStandings(state map[string]TeamStanding) []TeamStanding {
	rows := make([]TeamStanding, 0, len(state))
	for _, s := range state {
		rows = append(rows, s)
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDiff != b.GoalDiff {
			return a.GoalDiff > b.GoalDiff
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.Team < b.Team
	})
	for i := range rows {
		if i > 0 && rows[i].Points == rows[i-1].Points &&
			rows[i].GoalDiff == rows[i-1].GoalDiff &&
			rows[i].GoalsFor == rows[i-1].GoalsFor {
			rows[i].Rank = rows[i-1].Rank
		} else {
			rows[i].Rank = i + 1
		}
	}
	return rows
}
