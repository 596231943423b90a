package main

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"jleague-data-mcp/internal/rank"
)

// RankTimelineArgs is the input schema for the rank_timeline tool.
type RankTimelineArgs struct {
	League string `json:"league" jsonschema:"League code J1/J2/J3 (required)"`
	Season int    `json:"season" jsonschema:"Season year (0 = configured default)"`
	Policy string `json:"policy" jsonschema:"Checkpoint policy: matchdays|weekly (default matchdays)"`
}

// TimelineCheckpoint is one dated ranking in the tool output.
type TimelineCheckpoint struct {
	Date      string              `json:"date"`
	Standings []rank.TeamStanding `json:"standings"`
}

// RankTimelineResult is the output of the rank_timeline tool.
type RankTimelineResult struct {
	League      string               `json:"league"`
	Season      int                  `json:"season"`
	Policy      string               `json:"policy"`
	Checkpoints []TimelineCheckpoint `json:"checkpoints"`
}

// normalizePolicy maps the policy argument onto a rank.Policy with
// matchdays as the default.
func normalizePolicy(raw string) rank.Policy {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "weekly":
		return rank.Weekly
	default:
		return rank.MatchDays
	}
}

// buildRankTimeline reconstructs the rank series for one league. An
// empty checkpoint list means no matches have been played.
func buildRankTimeline(ctx context.Context, ds *dataSource, args RankTimelineArgs) (*RankTimelineResult, error) {
	league, err := resolveLeague(args.League)
	if err != nil {
		return nil, err
	}
	season := ds.season(args.Season)
	policy := normalizePolicy(args.Policy)

	entries, err := ds.matchLedger(ctx, season)
	if err != nil {
		return nil, err
	}

	series := rank.OverTime(entries, league, policy)
	checkpoints := make([]TimelineCheckpoint, 0, len(series))
	for _, cp := range series {
		checkpoints = append(checkpoints, TimelineCheckpoint{
			Date:      cp.Date.Format("2006-01-02"),
			Standings: cp.Standings,
		})
	}

	return &RankTimelineResult{
		League:      league,
		Season:      season,
		Policy:      string(policy),
		Checkpoints: checkpoints,
	}, nil
}

// rankTimelineHandler is the MCP tool handler for rank_timeline.
func rankTimelineHandler(ds *dataSource) func(context.Context, *mcp.CallToolRequest, RankTimelineArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args RankTimelineArgs) (*mcp.CallToolResult, any, error) {
		out, err := buildRankTimeline(ctx, ds, args)
		if err != nil {
			return toolError(err), nil, nil
		}
		return toolMarshal(out)
	}
}
