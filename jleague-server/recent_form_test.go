package main

import (
	"context"
	"testing"
)

func TestBuildRecentForm(t *testing.T) {
	ds := seedDataSource(t)

	result, err := buildRecentForm(context.Background(), ds, RecentFormArgs{League: "J1", Team: "浦和"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Team != "浦和レッズ" {
		t.Errorf("team: want 浦和レッズ, got %s", result.Team)
	}
	if result.Window != 5 {
		t.Errorf("window: want default 5, got %d", result.Window)
	}
	// Win plus draw in J1; the cup win must not count.
	if result.Points != 4 {
		t.Errorf("points: want 4, got %d", result.Points)
	}
	if result.MatchesPlayed != 2 {
		t.Errorf("matches played: want 2, got %d", result.MatchesPlayed)
	}
}

func TestBuildRecentForm_Window(t *testing.T) {
	ds := seedDataSource(t)

	result, err := buildRecentForm(context.Background(), ds, RecentFormArgs{League: "J1", Team: "浦和", Window: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Most recent J1 match is the 03/09 draw.
	if result.Points != 1 {
		t.Errorf("points over last match: want 1, got %d", result.Points)
	}
}

func TestBuildRecentForm_UnknownTeam(t *testing.T) {
	ds := seedDataSource(t)

	result, err := buildRecentForm(context.Background(), ds, RecentFormArgs{League: "J1", Team: "レイラック滋賀"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Points != 0 || result.MatchesPlayed != 0 {
		t.Errorf("team outside the league: want 0/0, got %d/%d", result.Points, result.MatchesPlayed)
	}
}

func TestBuildRecentForm_MissingTeam(t *testing.T) {
	ds := seedDataSource(t)
	if _, err := buildRecentForm(context.Background(), ds, RecentFormArgs{League: "J1"}); err == nil {
		t.Error("expected error for missing team")
	}
}
