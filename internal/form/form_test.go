package form

import (
	"testing"
	"time"

	"jleague-data-mcp/internal/ledger"
)

// entry builds a minimal ledger entry for form tests; only league, team,
// date and points matter here.
func entry(league, team string, day int, points int) ledger.Entry {
	return ledger.Entry{
		League: league,
		Team:   team,
		Date:   time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
		Points: points,
	}
}

func TestRecent_WindowOverSeven(t *testing.T) {
	// Seven matches, chronological points [3,3,0,1,3,0,1]; the most
	// recent five are [0,1,3,0,1] = 5.
	points := []int{3, 3, 0, 1, 3, 0, 1}
	var entries []ledger.Entry
	for i, p := range points {
		entries = append(entries, entry("J1", "浦和レッズ", i+1, p))
	}

	if got := Recent(entries, "浦和レッズ", "J1", 5); got != 5 {
		t.Errorf("Recent(window=5) = %d; want 5", got)
	}
}

func TestRecent_WindowSmallerThanHistory(t *testing.T) {
	entries := []ledger.Entry{
		entry("J1", "浦和レッズ", 1, 3),
		entry("J1", "浦和レッズ", 8, 0),
		entry("J1", "浦和レッズ", 15, 3),
	}
	if got := Recent(entries, "浦和レッズ", "J1", 2); got != 3 {
		t.Errorf("Recent(window=2) = %d; want 3", got)
	}
}

func TestRecent_FewerMatchesThanWindow(t *testing.T) {
	entries := []ledger.Entry{
		entry("J1", "浦和レッズ", 1, 3),
		entry("J1", "浦和レッズ", 8, 1),
	}
	if got := Recent(entries, "浦和レッズ", "J1", 5); got != 4 {
		t.Errorf("Recent with short history = %d; want 4", got)
	}
}

func TestRecent_FiltersLeagueAndTeam(t *testing.T) {
	entries := []ledger.Entry{
		entry("J1", "浦和レッズ", 1, 3),
		entry("ルヴァンカップ", "浦和レッズ", 2, 3), // other competition
		entry("J1", "FC東京", 3, 3),          // other team
	}
	if got := Recent(entries, "浦和レッズ", "J1", 5); got != 3 {
		t.Errorf("Recent = %d; want 3 (only the J1 entry)", got)
	}
}

func TestRecent_NoEntries(t *testing.T) {
	if got := Recent(nil, "任意チーム", "J1", 5); got != 0 {
		t.Errorf("Recent(nil) = %d; want 0", got)
	}
	entries := []ledger.Entry{entry("J1", "FC東京", 1, 3)}
	if got := Recent(entries, "浦和レッズ", "J1", 5); got != 0 {
		t.Errorf("Recent(unknown team) = %d; want 0", got)
	}
}

func TestRecent_DefaultWindow(t *testing.T) {
	// window <= 0 falls back to the default of 5.
	var entries []ledger.Entry
	for i := 0; i < 7; i++ {
		entries = append(entries, entry("J1", "浦和レッズ", i+1, 1))
	}
	if got := Recent(entries, "浦和レッズ", "J1", 0); got != 5 {
		t.Errorf("Recent(window=0) = %d; want 5", got)
	}
	if got := Recent(entries, "浦和レッズ", "J1", -3); got != 5 {
		t.Errorf("Recent(window=-3) = %d; want 5", got)
	}
}
