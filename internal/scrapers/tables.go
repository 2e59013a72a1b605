package scrapers

import (
	"bytes"
	"context"
	"fmt"

	"github.com/mattsblocklist/fti/internal/countries"
	"github.com/mattsblocklist/fti/internal/htmltable"
	"github.com/mattsblocklist/fti/internal/indicators"
)

// Default tradingeconomics.com country lists.
const (
	DefaultMoneySupplyURL       = "https://tradingeconomics.com/country-list/money-supply-m2-growth?continent=world"
	DefaultSocialSecurityURL    = "https://tradingeconomics.com/country-list/social-security-rate?continent=world"
	DefaultPersonalIncomeTaxURL = "https://tradingeconomics.com/country-list/personal-income-tax-rate?continent=world"
	DefaultInflationURL         = "https://tradingeconomics.com/country-list/inflation-rate?continent=world"
)

// TableSource configures a table scraper.
type TableSource struct {
	URL  string
	Skip []string // labels ignored on this page
}

// TableScraper reads a country list page whose first column is the
// country and second column the latest value.
type TableScraper struct {
	*BaseScraper
	skip map[string]bool
}

// NewTableScraper creates a table scraper feeding the given scorer.
func NewTableScraper(name string, src TableSource, scorer indicators.Scorer, fetcher Fetcher) *TableScraper {
	skip := make(map[string]bool, len(src.Skip))
	for _, s := range src.Skip {
		skip[countries.Canonicalize(s)] = true
	}
	return &TableScraper{
		BaseScraper: NewBaseScraper(name, src.URL, scorer, fetcher),
		skip:        skip,
	}
}

// Scrape fetches the page and extracts label/value pairs.
func (s *TableScraper) Scrape(ctx context.Context) (*ScrapeResult, error) {
	result := s.NewResult()

	content, err := s.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	result.ContentHash = HashContent(content)

	rows, err := htmltable.Parse(bytes.NewReader(content))
	if err != nil {
		result.ParseStatus = "error"
		return result, err
	}

	for _, p := range htmltable.Pairs(rows) {
		if s.skip[countries.Canonicalize(p.Key)] {
			result.Skipped = append(result.Skipped, p.Key)
			continue
		}
		result.Records = append(result.Records, Record{Label: p.Key, Value: p.Value})
	}

	return result.finish()
}
