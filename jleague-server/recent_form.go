package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"jleague-data-mcp/internal/form"
	"jleague-data-mcp/internal/names"
)

// RecentFormArgs is the input schema for the recent_form tool.
type RecentFormArgs struct {
	League string `json:"league" jsonschema:"League code J1/J2/J3 (required)"`
	Team   string `json:"team" jsonschema:"Team name, canonical or abbreviated (required)"`
	Season int    `json:"season" jsonschema:"Season year (0 = configured default)"`
	Window int    `json:"window" jsonschema:"Number of recent matches (default 5)"`
}

// RecentFormResult is the output of the recent_form tool.
type RecentFormResult struct {
	League        string `json:"league"`
	Team          string `json:"team"`
	Season        int    `json:"season"`
	Window        int    `json:"window"`
	Points        int    `json:"points"`
	MatchesPlayed int    `json:"matches_played"`
}

// buildRecentForm computes form points for one team. A team with no
// played matches reports 0 points and 0 matches played; callers decide
// how to present "no data yet".
func buildRecentForm(ctx context.Context, ds *dataSource, args RecentFormArgs) (*RecentFormResult, error) {
	league, err := resolveLeague(args.League)
	if err != nil {
		return nil, err
	}
	team := names.Normalize(args.Team)
	if team == "" {
		return nil, fmt.Errorf("team is required")
	}
	window := args.Window
	if window <= 0 {
		window = form.DefaultWindow
	}

	season := ds.season(args.Season)
	entries, err := ds.matchLedger(ctx, season)
	if err != nil {
		return nil, err
	}

	played := 0
	for _, e := range entries {
		if e.League == league && e.Team == team {
			played++
		}
	}

	return &RecentFormResult{
		League:        league,
		Team:          team,
		Season:        season,
		Window:        window,
		Points:        form.Recent(entries, team, league, window),
		MatchesPlayed: played,
	}, nil
}

// recentFormHandler is the MCP tool handler for recent_form.
func recentFormHandler(ds *dataSource) func(context.Context, *mcp.CallToolRequest, RecentFormArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args RecentFormArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildRecentForm(ctx, ds, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
