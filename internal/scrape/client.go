// Package scrape fetches standings and schedule pages from the
// J.League data site and extracts their HTML tables into typed rows.
// Network access is guarded by a timeout, a small fixed-backoff retry
// budget, and an hour-scale page cache; everything downstream of the
// raw bytes is pure parsing.
package scrape

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Client fetches pages with retry and caching. The zero value is not
// usable; construct with NewClient.
type Client struct {
	HTTP        *http.Client
	UserAgent   string
	MaxAttempts int
	RetryDelay  time.Duration

	cache *pageCache
}

// NewClient returns a Client with the defaults this service runs with:
// 20s request timeout, 3 attempts with a fixed 2s delay, and cacheTTL
// of page caching (0 disables the cache). The source site does not
// change intra-hour, so an hour-scale TTL is the expected setting.
func NewClient(cacheTTL time.Duration) *Client {
	return &Client{
		HTTP:        &http.Client{Timeout: 20 * time.Second},
		UserAgent:   "jleague-data-mcp/1.0",
		MaxAttempts: 3,
		RetryDelay:  2 * time.Second,
		cache:       newPageCache(cacheTTL),
	}
}

// FetchDocument fetches url (through the cache) and parses it as HTML.
func (c *Client) FetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return doc, nil
}

// fetch returns the page body, retrying transport errors and 5xx
// responses up to MaxAttempts with a fixed delay. 4xx responses are
// permanent and fail immediately.
func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	if body, ok := c.cache.get(url); ok {
		return body, nil
	}

	var lastErr error
	for attempt := 1; attempt <= c.MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.RetryDelay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", c.UserAgent)

		resp, err := c.HTTP.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			continue
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode <= 299:
			c.cache.put(url, body)
			return body, nil
		case resp.StatusCode >= 500:
			lastErr = fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
		default:
			return nil, fmt.Errorf("GET %s failed: status %d", url, resp.StatusCode)
		}
	}
	return nil, fmt.Errorf("GET %s: giving up after %d attempts: %w", url, c.MaxAttempts, lastErr)
}
