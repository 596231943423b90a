package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SeasonYear < 2000 {
		t.Errorf("season year default looks wrong: %d", cfg.SeasonYear)
	}
	if cfg.FetchTimeout != 20*time.Second {
		t.Errorf("fetch timeout = %v; want 20s", cfg.FetchTimeout)
	}
	if cfg.RetryAttempts != 3 {
		t.Errorf("retry attempts = %d; want 3", cfg.RetryAttempts)
	}
	if cfg.CacheTTL != time.Hour {
		t.Errorf("cache TTL = %v; want 1h", cfg.CacheTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JLEAGUE_SEASON_YEAR", "2023")
	t.Setenv("JLEAGUE_CACHE_TTL_MINUTES", "5")
	t.Setenv("JLEAGUE_MCP_API_KEY", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SeasonYear != 2023 {
		t.Errorf("season year = %d; want 2023", cfg.SeasonYear)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("cache TTL = %v; want 5m", cfg.CacheTTL)
	}
	if cfg.APIKey != "secret" {
		t.Errorf("api key = %q", cfg.APIKey)
	}
}

func TestLoad_MalformedNumber(t *testing.T) {
	t.Setenv("JLEAGUE_FETCH_ATTEMPTS", "many")
	if _, err := Load(); err == nil {
		t.Error("expected error for malformed JLEAGUE_FETCH_ATTEMPTS")
	}
}
