package main

import (
	"context"
	"testing"
)

func TestBuildRankTimeline_MatchDays(t *testing.T) {
	ds := seedDataSource(t)

	result, err := buildRankTimeline(context.Background(), ds, RankTimelineArgs{League: "J1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Policy != "matchdays" {
		t.Errorf("policy: want matchdays, got %s", result.Policy)
	}
	if len(result.Checkpoints) != 3 {
		t.Fatalf("expected 3 match-day checkpoints, got %d", len(result.Checkpoints))
	}

	first := result.Checkpoints[0]
	if first.Date != "2024-03-02" {
		t.Errorf("first checkpoint date: want 2024-03-02, got %s", first.Date)
	}
	// Only the two clubs that have played appear on the first match day.
	if len(first.Standings) != 2 {
		t.Fatalf("first checkpoint: expected 2 teams, got %d", len(first.Standings))
	}
	if first.Standings[0].Team != "浦和レッズ" || first.Standings[0].Points != 3 {
		t.Errorf("first checkpoint leader: want 浦和レッズ on 3, got %s on %d",
			first.Standings[0].Team, first.Standings[0].Points)
	}

	last := result.Checkpoints[2]
	if last.Date != "2024-03-16" {
		t.Errorf("last checkpoint date: want 2024-03-16, got %s", last.Date)
	}
	if len(last.Standings) != 3 {
		t.Fatalf("last checkpoint: expected 3 teams, got %d", len(last.Standings))
	}
	// 町田 and 浦和 both sit on 4 points; goal difference separates them.
	if last.Standings[0].Team != "FC町田ゼルビア" || last.Standings[0].Rank != 1 || last.Standings[0].GoalDiff != 2 {
		t.Errorf("leader: want FC町田ゼルビア rank 1 gd 2, got %s rank %d gd %d",
			last.Standings[0].Team, last.Standings[0].Rank, last.Standings[0].GoalDiff)
	}
	if last.Standings[1].Team != "浦和レッズ" || last.Standings[1].Rank != 2 {
		t.Errorf("2nd: want 浦和レッズ rank 2, got %s rank %d",
			last.Standings[1].Team, last.Standings[1].Rank)
	}
	if last.Standings[2].Team != "FC東京" || last.Standings[2].Points != 0 {
		t.Errorf("3rd: want FC東京 on 0, got %s on %d",
			last.Standings[2].Team, last.Standings[2].Points)
	}
}

func TestBuildRankTimeline_Weekly(t *testing.T) {
	ds := seedDataSource(t)

	result, err := buildRankTimeline(context.Background(), ds, RankTimelineArgs{League: "J1", Policy: "weekly"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Policy != "weekly" {
		t.Errorf("policy: want weekly, got %s", result.Policy)
	}
	// Matches run 03/02 through 03/16, so Mondays 03/04, 03/11, 03/18.
	if len(result.Checkpoints) != 3 {
		t.Fatalf("expected 3 Monday checkpoints, got %d", len(result.Checkpoints))
	}
	if result.Checkpoints[0].Date != "2024-03-04" {
		t.Errorf("first Monday: want 2024-03-04, got %s", result.Checkpoints[0].Date)
	}

	// Weekly checkpoints carry every club from the start; 町田 has not
	// played in J1 yet and sits at the zero floor, above FC東京 whose
	// opening loss left it on goal difference -1.
	first := result.Checkpoints[0]
	if len(first.Standings) != 3 {
		t.Fatalf("first Monday: expected 3 teams, got %d", len(first.Standings))
	}
	if first.Standings[0].Team != "浦和レッズ" || first.Standings[0].Rank != 1 {
		t.Errorf("first Monday leader: want 浦和レッズ rank 1, got %s rank %d",
			first.Standings[0].Team, first.Standings[0].Rank)
	}
	if first.Standings[1].Team != "FC町田ゼルビア" || first.Standings[1].Rank != 2 {
		t.Errorf("2nd: want zero-floor FC町田ゼルビア rank 2, got %s rank %d",
			first.Standings[1].Team, first.Standings[1].Rank)
	}
	if first.Standings[2].Team != "FC東京" || first.Standings[2].Rank != 3 || first.Standings[2].GoalDiff != -1 {
		t.Errorf("3rd: want FC東京 rank 3 gd -1, got %s rank %d gd %d",
			first.Standings[2].Team, first.Standings[2].Rank, first.Standings[2].GoalDiff)
	}
}

func TestBuildRankTimeline_EmptyLeague(t *testing.T) {
	ds := seedDataSource(t)

	result, err := buildRankTimeline(context.Background(), ds, RankTimelineArgs{League: "J3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Checkpoints) != 0 {
		t.Errorf("expected no checkpoints for a league with no matches, got %d", len(result.Checkpoints))
	}
}
