package main

import (
	"context"
	"fmt"

	"jleague-data-mcp/internal/config"
	"jleague-data-mcp/internal/ledger"
	"jleague-data-mcp/internal/names"
	"jleague-data-mcp/internal/scrape"
)

// dataSource ties the scrape client to the configured season and the
// source site's URL scheme. The URL funcs are fields so tests can point
// the source at a local server.
type dataSource struct {
	client       *scrape.Client
	seasonYear   int
	standingsURL func(league string, year int) (string, error)
	scheduleURL  func(year int) string
}

func newDataSource(cfg *config.Config) *dataSource {
	client := scrape.NewClient(cfg.CacheTTL)
	client.HTTP.Timeout = cfg.FetchTimeout
	client.MaxAttempts = cfg.RetryAttempts
	client.RetryDelay = cfg.RetryDelay
	return &dataSource{
		client:       client,
		seasonYear:   cfg.SeasonYear,
		standingsURL: scrape.StandingsURL,
		scheduleURL:  scrape.ScheduleURL,
	}
}

// season resolves a per-call season override; 0 means the configured
// default.
func (ds *dataSource) season(override int) int {
	if override > 0 {
		return override
	}
	return ds.seasonYear
}

// resolveLeague canonicalizes a league argument so callers can pass
// either a code ("J1") or a raw label ("明治安田Ｊ１リーグ").
func resolveLeague(raw string) (string, error) {
	league := names.Normalize(raw)
	if league == "" {
		return "", fmt.Errorf("league is required")
	}
	return league, nil
}

// fixtures fetches and parses the season schedule. An empty slice means
// the site had no usable table; that is degraded data, not an error.
func (ds *dataSource) fixtures(ctx context.Context, year int) ([]ledger.RawFixture, error) {
	doc, err := ds.client.FetchDocument(ctx, ds.scheduleURL(year))
	if err != nil {
		return nil, fmt.Errorf("season %d schedule: %w", year, err)
	}
	return scrape.ParseSchedule(doc), nil
}

// matchLedger builds the full match ledger for a season.
func (ds *dataSource) matchLedger(ctx context.Context, year int) ([]ledger.Entry, error) {
	fixtures, err := ds.fixtures(ctx, year)
	if err != nil {
		return nil, err
	}
	return ledger.Build(fixtures, year), nil
}

// standingsTable fetches and parses the published table for a league.
func (ds *dataSource) standingsTable(ctx context.Context, league string, year int) ([]scrape.StandingsRow, error) {
	u, err := ds.standingsURL(league, year)
	if err != nil {
		return nil, err
	}
	doc, err := ds.client.FetchDocument(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("%s %d standings: %w", league, year, err)
	}
	return scrape.ParseStandings(doc, league), nil
}
