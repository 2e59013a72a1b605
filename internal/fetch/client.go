// Package fetch retrieves source documents over HTTP with an optional
// response cache and a politeness rate limit.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultUserAgent is sent with every request. Some sources refuse
// requests without a browser-like agent.
const DefaultUserAgent = "Mozilla/5.0 (compatible; fti/1.0)"

// HTTPClient is an interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Client.
type Options struct {
	HTTPClient HTTPClient
	Cache      *Cache        // nil disables caching
	CacheTTL   time.Duration // zero keeps entries forever
	UserAgent  string
	RPS        float64 // zero disables rate limiting
	Burst      int
	Logger     *slog.Logger
}

// Client fetches documents.
type Client struct {
	http      HTTPClient
	cache     *Cache
	ttl       time.Duration
	userAgent string
	limiter   *rate.Limiter
	logger    *slog.Logger
}

// New creates a client from options.
func New(opts Options) *Client {
	c := &Client{
		http:      opts.HTTPClient,
		cache:     opts.Cache,
		ttl:       opts.CacheTTL,
		userAgent: opts.UserAgent,
		logger:    opts.Logger,
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 30 * time.Second}
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if opts.RPS > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RPS), burst)
	}
	return c
}

// Get returns the body at url, from the cache when a fresh entry exists.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if c.cache != nil {
		body, ok, err := c.cache.Get(url, c.ttl)
		if err != nil {
			return nil, err
		}
		if ok {
			c.logger.DebugContext(ctx, "cache hit", slog.String("url", url), slog.Int("bytes", len(body)))
			return body, nil
		}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	body, err := c.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	c.logger.DebugContext(ctx, "fetched", slog.String("url", url), slog.Int("bytes", len(body)))

	if c.cache != nil {
		if err := c.cache.Put(url, body); err != nil {
			return nil, err
		}
	}
	return body, nil
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/json;q=0.9,*/*;q=0.8")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status code: %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
