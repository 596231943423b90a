package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"jleague-data-mcp/internal/scrape"
)

// StandingsArgs is the input schema for the standings tool.
type StandingsArgs struct {
	League string `json:"league" jsonschema:"League code J1/J2/J3 or a raw league label (required)"`
	Season int    `json:"season" jsonschema:"Season year (0 = configured default)"`
}

// StandingsResult is the output of the standings tool.
type StandingsResult struct {
	League    string               `json:"league"`
	Season    int                  `json:"season"`
	Standings []scrape.StandingsRow `json:"standings"`
}

// buildStandings fetches the published table for one league. An empty
// Standings slice means the source had no usable data for the season.
func buildStandings(ctx context.Context, ds *dataSource, args StandingsArgs) (*StandingsResult, error) {
	league, err := resolveLeague(args.League)
	if err != nil {
		return nil, err
	}
	season := ds.season(args.Season)
	rows, err := ds.standingsTable(ctx, league, season)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []scrape.StandingsRow{}
	}
	return &StandingsResult{League: league, Season: season, Standings: rows}, nil
}

// standingsHandler is the MCP tool handler for standings.
func standingsHandler(ds *dataSource) func(context.Context, *mcp.CallToolRequest, StandingsArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args StandingsArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildStandings(ctx, ds, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
