package main

import (
	"context"
	"sort"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// LeagueTeamsArgs is the input schema for the league_teams tool.
type LeagueTeamsArgs struct {
	League string `json:"league" jsonschema:"League code J1/J2/J3 (required)"`
	Season int    `json:"season" jsonschema:"Season year (0 = configured default)"`
}

// LeagueTeamsResult is the output of the league_teams tool.
type LeagueTeamsResult struct {
	League string   `json:"league"`
	Season int      `json:"season"`
	Teams  []string `json:"teams"`
}

// buildLeagueTeams lists the teams with at least one played match in
// the league's ledger, sorted for stable output.
func buildLeagueTeams(ctx context.Context, ds *dataSource, args LeagueTeamsArgs) (*LeagueTeamsResult, error) {
	league, err := resolveLeague(args.League)
	if err != nil {
		return nil, err
	}
	season := ds.season(args.Season)
	entries, err := ds.matchLedger(ctx, season)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, e := range entries {
		if e.League == league {
			seen[e.Team] = true
		}
	}
	teams := make([]string, 0, len(seen))
	for team := range seen {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	return &LeagueTeamsResult{League: league, Season: season, Teams: teams}, nil
}

// leagueTeamsHandler is the MCP tool handler for league_teams.
func leagueTeamsHandler(ds *dataSource) func(context.Context, *mcp.CallToolRequest, LeagueTeamsArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args LeagueTeamsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildLeagueTeams(ctx, ds, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
