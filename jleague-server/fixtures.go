package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"jleague-data-mcp/internal/ledger"
	"jleague-data-mcp/internal/names"
)

// FixturesArgs is the input schema for the fixtures tool.
type FixturesArgs struct {
	League     string `json:"league,omitempty" jsonschema:"Restrict to one league code (optional)"`
	Team       string `json:"team,omitempty" jsonschema:"Restrict to matches a team plays in, home or away (optional)"`
	Season     int    `json:"season" jsonschema:"Season year (0 = configured default)"`
	PlayedOnly bool   `json:"played_only" jsonschema:"Only matches with a final score"`
}

// FixtureRow is one schedule row with canonical names.
type FixtureRow struct {
	League    string `json:"league"`
	Date      string `json:"date"`
	Kickoff   string `json:"kickoff,omitempty"`
	Venue     string `json:"venue,omitempty"`
	Home      string `json:"home"`
	Score     string `json:"score"`
	Away      string `json:"away"`
	Broadcast string `json:"broadcast,omitempty"`
}

// FixturesResult is the output of the fixtures tool.
type FixturesResult struct {
	Season   int          `json:"season"`
	Fixtures []FixtureRow `json:"fixtures"`
}

// buildFixtures returns the normalized schedule, optionally filtered to
// one league, one team, or played matches only.
func buildFixtures(ctx context.Context, ds *dataSource, args FixturesArgs) (*FixturesResult, error) {
	season := ds.season(args.Season)
	raw, err := ds.fixtures(ctx, season)
	if err != nil {
		return nil, err
	}

	league := names.Normalize(args.League)
	team := names.Normalize(args.Team)

	rows := make([]FixtureRow, 0, len(raw))
	for _, f := range raw {
		if league != "" && f.League != league {
			continue
		}
		if team != "" && f.Home != team && f.Away != team {
			continue
		}
		// Same gate the ledger builder applies, so the played filter
		// cannot drift from what the ledger counts.
		if args.PlayedOnly && !ledger.IsFinishedScore(f.Score) {
			continue
		}
		rows = append(rows, FixtureRow{
			League:    f.League,
			Date:      f.Date,
			Kickoff:   f.Kickoff,
			Venue:     f.Venue,
			Home:      f.Home,
			Score:     f.Score,
			Away:      f.Away,
			Broadcast: f.Broadcast,
		})
	}
	return &FixturesResult{Season: season, Fixtures: rows}, nil
}

// fixturesHandler is the MCP tool handler for fixtures.
func fixturesHandler(ds *dataSource) func(context.Context, *mcp.CallToolRequest, FixturesArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args FixturesArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildFixtures(ctx, ds, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
