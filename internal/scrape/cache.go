package scrape

import (
	"sync"
	"time"
)

// pageCache is a TTL cache of fetched page bodies keyed by URL (season
// and league are part of the URL, so the URL is the whole key). It is
// the only mutable state shared across requests in this service.
type pageCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	pages map[string]cachedPage
}

type cachedPage struct {
	body      []byte
	fetchedAt time.Time
}

func newPageCache(ttl time.Duration) *pageCache {
	return &pageCache{
		ttl:   ttl,
		now:   time.Now,
		pages: make(map[string]cachedPage),
	}
}

func (c *pageCache) get(url string) ([]byte, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.pages[url]
	if !ok {
		return nil, false
	}
	if c.now().Sub(p.fetchedAt) > c.ttl {
		delete(c.pages, url)
		return nil, false
	}
	return p.body, true
}

func (c *pageCache) put(url string, body []byte) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[url] = cachedPage{body: body, fetchedAt: c.now()}
}
