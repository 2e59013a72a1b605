package scrapers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattsblocklist/fti/internal/indicators"
)

// DefaultCBDCURL is the cbdctracker.org currency feed.
const DefaultCBDCURL = "https://cbdctracker.org/api/currencies"

// CBDCScraper reads central bank digital currency projects from the
// CBDC tracker feed.
type CBDCScraper struct {
	*BaseScraper
}

// NewCBDCScraper creates a new CBDC tracker scraper.
func NewCBDCScraper(url string, fetcher Fetcher) *CBDCScraper {
	if url == "" {
		url = DefaultCBDCURL
	}
	return &CBDCScraper{
		BaseScraper: NewBaseScraper("cbdc", url, mustScorer(indicators.CBDC), fetcher),
	}
}

type cbdcCurrency struct {
	Country string `json:"country"`
	Status  string `json:"status"`
}

// Scrape fetches and parses the tracker feed.
func (s *CBDCScraper) Scrape(ctx context.Context) (*ScrapeResult, error) {
	result := s.NewResult()

	content, err := s.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	result.ContentHash = HashContent(content)

	var data []cbdcCurrency
	if err := json.Unmarshal(content, &data); err != nil {
		result.ParseStatus = "error"
		return result, fmt.Errorf("failed to parse feed: %w", err)
	}

	for _, d := range data {
		result.Records = append(result.Records, Record{
			Label: strings.TrimSpace(d.Country),
			Value: strings.TrimSpace(d.Status),
		})
	}

	return result.finish()
}
