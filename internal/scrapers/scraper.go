// Package scrapers provides the indicator sources: each scraper retrieves
// one family's raw country records, which Apply then resolves and scores
// into the country registry.
package scrapers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/mattsblocklist/fti/internal/indicators"
)

// ErrNoData is returned when a source yields no records.
var ErrNoData = errors.New("no records parsed")

// Scraper is the interface for all indicator sources.
type Scraper interface {
	// Name returns the short identifier of this source.
	Name() string

	// URL returns the source URL.
	URL() string

	// Scorer returns the normalizer for the family this source feeds.
	Scorer() indicators.Scorer

	// Scrape fetches and parses the source's records.
	Scrape(ctx context.Context) (*ScrapeResult, error)
}

// Record is one country label with its raw value, as the source wrote them.
type Record struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ScrapeResult contains the output of a scrape operation.
type ScrapeResult struct {
	Source      string            `json:"source"`
	URL         string            `json:"url"`
	Family      indicators.Family `json:"family"`
	FetchedAt   time.Time         `json:"fetched_at"`
	ContentHash string            `json:"content_hash,omitempty"`
	Records     []Record          `json:"records"`
	Skipped     []string          `json:"skipped,omitempty"`
	ParseStatus string            `json:"parse_status"`
}

// Fetcher retrieves a document body.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// BaseScraper provides common functionality for scrapers.
type BaseScraper struct {
	name    string
	url     string
	scorer  indicators.Scorer
	fetcher Fetcher
}

// NewBaseScraper creates a new base scraper.
func NewBaseScraper(name, url string, scorer indicators.Scorer, fetcher Fetcher) *BaseScraper {
	return &BaseScraper{
		name:    name,
		url:     url,
		scorer:  scorer,
		fetcher: fetcher,
	}
}

// Name returns the scraper name.
func (b *BaseScraper) Name() string {
	return b.name
}

// URL returns the source URL.
func (b *BaseScraper) URL() string {
	return b.url
}

// Scorer returns the family normalizer.
func (b *BaseScraper) Scorer() indicators.Scorer {
	return b.scorer
}

// Fetch retrieves the source document.
func (b *BaseScraper) Fetch(ctx context.Context) ([]byte, error) {
	return b.fetcher.Get(ctx, b.url)
}

// NewResult creates a new ScrapeResult with common fields populated.
func (b *BaseScraper) NewResult() *ScrapeResult {
	return &ScrapeResult{
		Source:    b.name,
		URL:       b.url,
		Family:    b.scorer.Family(),
		FetchedAt: time.Now(),
	}
}

// finish sets the parse status, failing when nothing was parsed.
func (r *ScrapeResult) finish() (*ScrapeResult, error) {
	if len(r.Records) == 0 {
		r.ParseStatus = "no_data"
		return r, ErrNoData
	}
	r.ParseStatus = "success"
	return r, nil
}

// HashContent returns a SHA256 hash of the content.
func HashContent(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
