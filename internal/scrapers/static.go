package scrapers

import (
	"context"
	"strings"

	"github.com/mattsblocklist/fti/internal/indicators"
)

// StaticScraper serves a hand-maintained table.
type StaticScraper struct {
	*BaseScraper
	records []Record
}

// NewStaticScraper creates a scraper over fixed records. The URL documents
// where the table was transcribed from and is never fetched.
func NewStaticScraper(name, url string, scorer indicators.Scorer, records []Record) *StaticScraper {
	return &StaticScraper{
		BaseScraper: NewBaseScraper(name, url, scorer, nil),
		records:     records,
	}
}

// NewCashLimitScraper serves cash payment limits.
func NewCashLimitScraper() *StaticScraper {
	return NewStaticScraper(
		"cash-limit",
		"https://www.europe-consommateurs.eu/en/shopping-internet/cash-payment-limitations.html",
		mustScorer(indicators.CashLimit),
		cashLimits,
	)
}

// NewCryptoScraper serves the legal status of cryptocurrency.
func NewCryptoScraper() *StaticScraper {
	return NewStaticScraper(
		"crypto",
		"https://en.wikipedia.org/wiki/Legality_of_cryptocurrency_by_country_or_territory",
		mustScorer(indicators.Cryptocurrency),
		cryptoStatus,
	)
}

// Scrape returns the fixed records. The content hash covers the table
// itself, so edits to it show up in run statistics.
func (s *StaticScraper) Scrape(ctx context.Context) (*ScrapeResult, error) {
	result := s.NewResult()
	result.Records = append(result.Records, s.records...)

	var b strings.Builder
	for _, r := range s.records {
		b.WriteString(r.Label)
		b.WriteByte('\t')
		b.WriteString(r.Value)
		b.WriteByte('\n')
	}
	result.ContentHash = HashContent([]byte(b.String()))

	return result.finish()
}

// cashLimits merges three lists: the European Consumer Centres survey,
// the SGS anti-corruption cash payment brochure, and individual reports.
var cashLimits = []Record{
	// European Consumer Centres survey
	{"Austria", "no limit"},
	{"Belgium", "3000 EUR"},
	{"Bulgaria", "5000 EUR"},
	{"Croatia", "15000 EUR"},
	{"Cyprus", "no limit"},
	{"Czechia", "10000 EUR"},
	{"Denmark", "2500 EUR"},
	{"Estonia", "no limit"},
	{"Finland", "no limit"},
	{"France", "1000 EUR"},
	{"Germany", "10000 EUR"},
	{"Greece", "500 EUR"},
	{"Hungary", "4000 EUR"},
	{"Iceland", "no limit"},
	{"Ireland", "no limit"},
	{"Italy", "1000 EUR"},
	{"Latvia", "7000 EUR"},
	{"Lithuania", "3000 EUR"},
	{"Luxembourg", "no limit"},
	{"Malta", "10000 EUR"},
	{"Netherlands", "3000 EUR"},
	{"Norway", "10000 EUR"},
	{"Poland", "3000 EUR"},
	{"Portugal", "3000 EUR"},
	{"Romania", "10000 EUR"},
	{"Slovakia", "5000 EUR"},
	{"Slovenia", "5000 EUR"},
	{"Spain", "1000 EUR"},
	{"Sweden", "no limit"},
	{"United Kingdom", "10000 EUR"},

	// SGS brochure
	{"Australia", "10000 AUD"},
	{"Brazil", "30000 BRL"},
	{"Canada", "10000 CAD"},
	{"China", "50000 RMB"},
	{"Russia", "100000 RUB"},
	{"Singapore", "20000 SGD"},
	{"South Africa", "25000 ZAR"},
	{"Taiwan", "500000 TWD"},
	{"United Arab Emirates", "2000 AED"},
	{"United States of America", "10000 USD"},
	{"India", "10000 INR"},
	{"Mexico", "200000 MXN"},
	{"Switzerland", "100000 CHF"},
	{"Uruguay", "5000 USD"},

	// Individual reports
	{"Israel", "6000 ILS"},
	{"Saudi Arabia", "60000 SAR"},
	{"Turkey", "75000 TRY"},
	{"Argentina", "10000 USD"},
	{"Indonesia", "100000000 IDR"},
	{"Japan", "1000000 JPY"},
	{"South Korea", "10000000 KRW"},
}

var cryptoStatus = []Record{
	{"Algeria", "Hostile"},
	{"Argentina", "Permissive"},
	{"Australia", "Permissive"},
	{"Austria", "Permissive"},
	{"Bangladesh", "Hostile"},
	{"Belgium", "Permissive"},
	{"Bolivia", "Restricted"},
	{"Brazil", "Permissive"},
	{"Bulgaria", "Permissive"},
	{"Canada", "Permissive"},
	{"Chile", "Permissive"},
	{"China", "Hostile"},
	{"Colombia", "Contentious"},
	{"Croatia", "Permissive"},
	{"Cyprus", "Permissive"},
	{"Czechia", "Permissive"},
	{"Denmark", "Permissive"},
	{"Ecuador", "Restricted"},
	{"Egypt", "Hostile"},
	{"El Salvador", "Permissive"},
	{"Estonia", "Permissive"},
	{"Finland", "Permissive"},
	{"France", "Permissive"},
	{"Germany", "Permissive"},
	{"Greece", "Permissive"},
	{"Hong Kong", "Permissive"},
	{"Hungary", "Permissive"},
	{"Iceland", "Permissive"},
	{"India", "Contentious"},
	{"Indonesia", "Restricted"},
	{"Iran", "Restricted"},
	{"Iraq", "Hostile"},
	{"Ireland", "Permissive"},
	{"Israel", "Permissive"},
	{"Italy", "Permissive"},
	{"Japan", "Permissive"},
	{"Jordan", "Restricted"},
	{"Kazakhstan", "Permissive"},
	{"Kenya", "Contentious"},
	{"Kuwait", "Restricted"},
	{"Latvia", "Permissive"},
	{"Lebanon", "Restricted"},
	{"Lithuania", "Permissive"},
	{"Luxembourg", "Permissive"},
	{"Malaysia", "Permissive"},
	{"Malta", "Permissive"},
	{"Mexico", "Contentious"},
	{"Morocco", "Hostile"},
	{"Nepal", "Hostile"},
	{"Netherlands", "Permissive"},
	{"New Zealand", "Permissive"},
	{"Nigeria", "Restricted"},
	{"Norway", "Permissive"},
	{"Oman", "Restricted"},
	{"Pakistan", "Contentious"},
	{"Peru", "Permissive"},
	{"Philippines", "Permissive"},
	{"Poland", "Permissive"},
	{"Portugal", "Permissive"},
	{"Qatar", "Hostile"},
	{"Romania", "Permissive"},
	{"Russia", "Restricted"},
	{"Saudi Arabia", "Restricted"},
	{"Singapore", "Permissive"},
	{"Slovakia", "Permissive"},
	{"Slovenia", "Permissive"},
	{"South Africa", "Permissive"},
	{"South Korea", "Permissive"},
	{"Spain", "Permissive"},
	{"Sweden", "Permissive"},
	{"Switzerland", "Permissive"},
	{"Taiwan", "Permissive"},
	{"Thailand", "Permissive"},
	{"Tunisia", "Hostile"},
	{"Turkey", "Restricted"},
	{"Ukraine", "Permissive"},
	{"United Arab Emirates", "Permissive"},
	{"United Kingdom", "Permissive"},
	{"United States of America", "Permissive"},
	{"Uruguay", "Permissive"},
	{"Vietnam", "Restricted"},
}
