// Package predict scores a hypothetical match between two teams with a
// hand-tuned linear heuristic over standings and recent-form features.
// It is intentionally shallow: a bounded advantage number and a
// three-way label, nothing resembling a calibrated model.
package predict

import "math"

// TeamState is the pre-match view of one team: its published standings
// rank and goal difference, and its recent-form points.
type TeamState struct {
	Rank       int
	GoalDiff   int
	RecentForm int
}

// Features is the four-feature vector the heuristic scores.
type Features struct {
	RankDiff      float64 `json:"rank_diff"`      // away rank − home rank
	FormDiff      float64 `json:"form_diff"`      // home recent points − away recent points
	GoalDiffGap   float64 `json:"goal_diff_gap"`  // home GD − away GD
	HomeAdvantage float64 `json:"home_advantage"` // fixed constant
}

// Label is the predicted three-way outcome.
type Label string

const (
	HomeWin Label = "home"
	DrawOut Label = "draw"
	AwayWin Label = "away"
)

// Prediction is the heuristic's full output.
type Prediction struct {
	Score    float64  `json:"score"`
	Label    Label    `json:"label"`
	Features Features `json:"features"`
}

// Hand-tuned weights and bounds. These were eyeballed against a few
// seasons of results, not fitted.
const (
	wRank = 0.10
	wForm = 0.30
	wGD   = 0.08
	wHome = 0.50

	scoreBound    = 5.0
	drawThreshold = 0.75
)

// FeaturesFor builds the feature vector for home vs away.
func FeaturesFor(home, away TeamState) Features {
	return Features{
		RankDiff:      float64(away.Rank - home.Rank),
		FormDiff:      float64(home.RecentForm - away.RecentForm),
		GoalDiffGap:   float64(home.GoalDiff - away.GoalDiff),
		HomeAdvantage: 1.0,
	}
}

// Score collapses a feature vector into a single advantage number,
// positive favoring the home side, clamped to ±scoreBound.
func Score(f Features) float64 {
	s := wRank*f.RankDiff + wForm*f.FormDiff + wGD*f.GoalDiffGap + wHome*f.HomeAdvantage
	return math.Max(-scoreBound, math.Min(scoreBound, s))
}

// Predict scores home vs away and maps the result to a label. Scores
// inside ±drawThreshold read as a draw.
func Predict(home, away TeamState) Prediction {
	f := FeaturesFor(home, away)
	s := Score(f)
	label := DrawOut
	switch {
	case s >= drawThreshold:
		label = HomeWin
	case s <= -drawThreshold:
		label = AwayWin
	}
	return Prediction{Score: s, Label: label, Features: f}
}
