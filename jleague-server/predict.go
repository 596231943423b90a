package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"jleague-data-mcp/internal/form"
	"jleague-data-mcp/internal/names"
	"jleague-data-mcp/internal/predict"
	"jleague-data-mcp/internal/scrape"
)

// PredictMatchArgs is the input schema for the predict_match tool.
type PredictMatchArgs struct {
	League string `json:"league" jsonschema:"League code J1/J2/J3 (required)"`
	Home   string `json:"home" jsonschema:"Home team name (required)"`
	Away   string `json:"away" jsonschema:"Away team name (required)"`
	Season int    `json:"season" jsonschema:"Season year (0 = configured default)"`
	Window int    `json:"window" jsonschema:"Recent-form window (default 5)"`
}

// PredictTeamView echoes the inputs the heuristic saw for one side.
type PredictTeamView struct {
	Team       string `json:"team"`
	Rank       int    `json:"rank"`
	GoalDiff   int    `json:"goal_diff"`
	RecentForm int    `json:"recent_form"`
}

// PredictMatchResult is the output of the predict_match tool.
type PredictMatchResult struct {
	League     string             `json:"league"`
	Season     int                `json:"season"`
	Home       PredictTeamView    `json:"home"`
	Away       PredictTeamView    `json:"away"`
	Prediction predict.Prediction `json:"prediction"`
}

// buildPredictMatch runs the linear heuristic over the published
// standings (rank, goal difference) and ledger-derived recent form.
func buildPredictMatch(ctx context.Context, ds *dataSource, args PredictMatchArgs) (*PredictMatchResult, error) {
	league, err := resolveLeague(args.League)
	if err != nil {
		return nil, err
	}
	home := names.Normalize(args.Home)
	away := names.Normalize(args.Away)
	if home == "" || away == "" {
		return nil, fmt.Errorf("home and away are required")
	}
	if home == away {
		return nil, fmt.Errorf("home and away must differ")
	}

	season := ds.season(args.Season)
	table, err := ds.standingsTable(ctx, league, season)
	if err != nil {
		return nil, err
	}
	homeRow, ok := findStandingsRow(table, home)
	if !ok {
		return nil, fmt.Errorf("no standings data for %s in %s %d", home, league, season)
	}
	awayRow, ok := findStandingsRow(table, away)
	if !ok {
		return nil, fmt.Errorf("no standings data for %s in %s %d", away, league, season)
	}

	entries, err := ds.matchLedger(ctx, season)
	if err != nil {
		return nil, err
	}
	homeForm := form.Recent(entries, home, league, args.Window)
	awayForm := form.Recent(entries, away, league, args.Window)

	homeState := predict.TeamState{Rank: homeRow.Rank, GoalDiff: homeRow.GoalDiff, RecentForm: homeForm}
	awayState := predict.TeamState{Rank: awayRow.Rank, GoalDiff: awayRow.GoalDiff, RecentForm: awayForm}

	return &PredictMatchResult{
		League:     league,
		Season:     season,
		Home:       PredictTeamView{Team: home, Rank: homeRow.Rank, GoalDiff: homeRow.GoalDiff, RecentForm: homeForm},
		Away:       PredictTeamView{Team: away, Rank: awayRow.Rank, GoalDiff: awayRow.GoalDiff, RecentForm: awayForm},
		Prediction: predict.Predict(homeState, awayState),
	}, nil
}

func findStandingsRow(table []scrape.StandingsRow, team string) (scrape.StandingsRow, bool) {
	for _, row := range table {
		if row.Team == team {
			return row, true
		}
	}
	return scrape.StandingsRow{}, false
}

// predictMatchHandler is the MCP tool handler for predict_match.
func predictMatchHandler(ds *dataSource) func(context.Context, *mcp.CallToolRequest, PredictMatchArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args PredictMatchArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildPredictMatch(ctx, ds, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
