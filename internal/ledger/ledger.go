// Package ledger turns a scraped fixture table into the per-team match
// ledger the rest of the service is built on. Every finished match
// contributes exactly two entries, one per side, each carrying the
// match result and the team's running cumulative totals.
package ledger

import (
	"log"
	"sort"
	"time"
)

// Outcome is a single team's result for one match.
type Outcome string

const (
	Win  Outcome = "W"
	Draw Outcome = "D"
	Loss Outcome = "L"
)

// RawFixture is one row of the schedule table exactly as scraped,
// before any normalization or filtering.
type RawFixture struct {
	League    string
	Date      string
	Kickoff   string
	Venue     string
	Home      string
	Score     string
	Away      string
	Broadcast string
}

// MatchRecord is one finished match with a parsed date and scores.
type MatchRecord struct {
	League    string
	Date      time.Time
	Home      string
	Away      string
	HomeScore int
	AwayScore int
}

// Entry is one team's perspective of one MatchRecord, including running
// cumulative sums over that team's matches in date order.
type Entry struct {
	League       string
	Date         time.Time
	Team         string
	Opponent     string
	Outcome      Outcome
	GoalsFor     int
	GoalsAgainst int
	GoalDiff     int
	Points       int
	CumPoints    int
	CumGoalDiff  int
	CumGoalsFor  int
}

// ParseMatches filters fixtures to finished matches with a parseable
// date inside seasonYear and returns one MatchRecord per surviving row.
// Unplayed, postponed and malformed rows are dropped, never coerced.
func ParseMatches(fixtures []RawFixture, seasonYear int) []MatchRecord {
	records := make([]MatchRecord, 0, len(fixtures))
	dropped := 0
	for _, f := range fixtures {
		hs, as, ok := parseScore(f.Score)
		if !ok {
			dropped++
			continue
		}
		date, ok := parseMatchDate(f.Date, seasonYear)
		if !ok {
			dropped++
			continue
		}
		records = append(records, MatchRecord{
			League:    f.League,
			Date:      date,
			Home:      f.Home,
			Away:      f.Away,
			HomeScore: hs,
			AwayScore: as,
		})
	}
	if dropped > 0 {
		log.Printf("ledger: dropped %d of %d fixture rows (unfinished or unparseable)", dropped, len(fixtures))
	}
	return records
}

// Build expands fixtures into the full match ledger. The result is
// sorted by match date ascending (stable with respect to input order for
// same-date matches) with per-team cumulative sums filled in. Empty or
// entirely unparseable input yields an empty ledger.
func Build(fixtures []RawFixture, seasonYear int) []Entry {
	return Expand(ParseMatches(fixtures, seasonYear))
}

// Expand emits the two per-side entries for each match record and
// computes running cumulative totals per team.
func Expand(records []MatchRecord) []Entry {
	entries := make([]Entry, 0, len(records)*2)
	for _, r := range records {
		entries = append(entries,
			sideEntry(r, r.Home, r.Away, r.HomeScore, r.AwayScore),
			sideEntry(r, r.Away, r.Home, r.AwayScore, r.HomeScore),
		)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	// True prefix sums over each team's own chronological sequence.
	// The grouping key is the team name alone: this service assumes one
	// competition per ledger build.
	type running struct{ points, goalDiff, goalsFor int }
	totals := make(map[string]*running)
	for i := range entries {
		e := &entries[i]
		r := totals[e.Team]
		if r == nil {
			r = &running{}
			totals[e.Team] = r
		}
		r.points += e.Points
		r.goalDiff += e.GoalDiff
		r.goalsFor += e.GoalsFor
		e.CumPoints = r.points
		e.CumGoalDiff = r.goalDiff
		e.CumGoalsFor = r.goalsFor
	}
	return entries
}

func sideEntry(r MatchRecord, team, opponent string, goalsFor, goalsAgainst int) Entry {
	outcome, points := resultFromGoals(goalsFor, goalsAgainst)
	return Entry{
		League:       r.League,
		Date:         r.Date,
		Team:         team,
		Opponent:     opponent,
		Outcome:      outcome,
		GoalsFor:     goalsFor,
		GoalsAgainst: goalsAgainst,
		GoalDiff:     goalsFor - goalsAgainst,
		Points:       points,
	}
}

func resultFromGoals(goalsFor, goalsAgainst int) (Outcome, int) {
	switch {
	case goalsFor > goalsAgainst:
		return Win, 3
	case goalsFor < goalsAgainst:
		return Loss, 0
	default:
		return Draw, 1
	}
}
