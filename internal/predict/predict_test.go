package predict

import (
	"math"
	"testing"
)

func TestFeaturesFor(t *testing.T) {
	// The worked example from the season-16 fixture: home ranked 3rd
	// with GD+15 and 8 recent points, away ranked 1st with GD+22 and 5.
	home := TeamState{Rank: 3, GoalDiff: 15, RecentForm: 8}
	away := TeamState{Rank: 1, GoalDiff: 22, RecentForm: 5}

	f := FeaturesFor(home, away)
	if f.RankDiff != -2 {
		t.Errorf("RankDiff = %v; want -2", f.RankDiff)
	}
	if f.FormDiff != 3 {
		t.Errorf("FormDiff = %v; want 3", f.FormDiff)
	}
	if f.GoalDiffGap != -7 {
		t.Errorf("GoalDiffGap = %v; want -7", f.GoalDiffGap)
	}
	if f.HomeAdvantage != 1.0 {
		t.Errorf("HomeAdvantage = %v; want 1.0", f.HomeAdvantage)
	}
}

func TestPredict_Labels(t *testing.T) {
	tests := []struct {
		name string
		home TeamState
		away TeamState
		want Label
	}{
		{
			"StrongHomeFavorite",
			TeamState{Rank: 1, GoalDiff: 25, RecentForm: 13},
			TeamState{Rank: 18, GoalDiff: -20, RecentForm: 2},
			HomeWin,
		},
		{
			"StrongAwayFavorite",
			TeamState{Rank: 18, GoalDiff: -20, RecentForm: 1},
			TeamState{Rank: 1, GoalDiff: 25, RecentForm: 14},
			AwayWin,
		},
		{
			"EvenMatchLeansDraw",
			TeamState{Rank: 8, GoalDiff: 0, RecentForm: 7},
			TeamState{Rank: 7, GoalDiff: 2, RecentForm: 7},
			DrawOut,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Predict(tc.home, tc.away)
			if p.Label != tc.want {
				t.Errorf("Predict label = %s (score %.2f); want %s", p.Label, p.Score, tc.want)
			}
		})
	}
}

func TestScore_Bounded(t *testing.T) {
	// Absurd inputs must clamp, not run away.
	big := FeaturesFor(
		TeamState{Rank: 1, GoalDiff: 500, RecentForm: 15},
		TeamState{Rank: 60, GoalDiff: -500, RecentForm: 0},
	)
	if s := Score(big); s != 5.0 {
		t.Errorf("score not clamped high: %v", s)
	}
	small := FeaturesFor(
		TeamState{Rank: 60, GoalDiff: -500, RecentForm: 0},
		TeamState{Rank: 1, GoalDiff: 500, RecentForm: 15},
	)
	if s := Score(small); s != -5.0 {
		t.Errorf("score not clamped low: %v", s)
	}
}

func TestPredict_HomeAdvantageBreaksSymmetry(t *testing.T) {
	// Identical teams: the fixed home-advantage term gives the home
	// side a positive score, though not enough to leave the draw band.
	team := TeamState{Rank: 5, GoalDiff: 4, RecentForm: 8}
	p := Predict(team, team)
	if p.Score <= 0 {
		t.Errorf("identical teams: score = %v; want > 0", p.Score)
	}
	if p.Label != DrawOut {
		t.Errorf("identical teams: label = %s; want draw", p.Label)
	}
	if math.Abs(p.Score-wHome) > 1e-9 {
		t.Errorf("identical teams: score = %v; want home-advantage term %v", p.Score, wHome)
	}
}
