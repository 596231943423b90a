// Package config loads service settings from the environment, with a
// .env file picked up when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the environment-driven settings. Server listen address
// and paths come from flags instead (see jleague-server).
type Config struct {
	// SeasonYear is the season whose tables are fetched by default;
	// individual tool calls can override it.
	SeasonYear int

	// Fetch behavior against the source site.
	FetchTimeout  time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
	CacheTTL      time.Duration

	// APIKey protects the HTTP surface when set.
	APIKey string
}

// Load reads configuration from the environment. A missing .env file
// is fine; malformed numeric values are not.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIKey: os.Getenv("JLEAGUE_MCP_API_KEY"),
	}

	year, err := intEnv("JLEAGUE_SEASON_YEAR", time.Now().Year())
	if err != nil {
		return nil, err
	}
	cfg.SeasonYear = year

	timeoutSec, err := intEnv("JLEAGUE_FETCH_TIMEOUT_SECONDS", 20)
	if err != nil {
		return nil, err
	}
	cfg.FetchTimeout = time.Duration(timeoutSec) * time.Second

	attempts, err := intEnv("JLEAGUE_FETCH_ATTEMPTS", 3)
	if err != nil {
		return nil, err
	}
	cfg.RetryAttempts = attempts

	delaySec, err := intEnv("JLEAGUE_FETCH_RETRY_SECONDS", 2)
	if err != nil {
		return nil, err
	}
	cfg.RetryDelay = time.Duration(delaySec) * time.Second

	ttlMin, err := intEnv("JLEAGUE_CACHE_TTL_MINUTES", 60)
	if err != nil {
		return nil, err
	}
	cfg.CacheTTL = time.Duration(ttlMin) * time.Minute

	return cfg, nil
}

// intEnv returns the named variable as an int, or def when unset.
func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return n, nil
}
