package scrapers

import (
	"fmt"

	"github.com/mattsblocklist/fti/internal/indicators"
)

// Sources holds the URLs of the fetched sources.
type Sources struct {
	CBDC              string
	MoneySupply       TableSource
	SocialSecurity    TableSource
	PersonalIncomeTax TableSource
	Inflation         TableSource
}

// DefaultSources returns the production source URLs. Aggregate rows and
// territories without an ISO 3166-1 code are skipped. Inflation also skips
// Euro Area, which has no single member set on that page.
func DefaultSources() Sources {
	return Sources{
		CBDC:              DefaultCBDCURL,
		MoneySupply:       TableSource{URL: DefaultMoneySupplyURL, Skip: defaultSkip()},
		SocialSecurity:    TableSource{URL: DefaultSocialSecurityURL, Skip: defaultSkip()},
		PersonalIncomeTax: TableSource{URL: DefaultPersonalIncomeTaxURL, Skip: defaultSkip()},
		Inflation:         TableSource{URL: DefaultInflationURL, Skip: append(defaultSkip(), "Euro Area")},
	}
}

func defaultSkip() []string {
	return []string{"European Union", "Kosovo"}
}

// Registry holds scrapers in registration order, which is the order
// they run in.
type Registry struct {
	scrapers []Scraper
	byName   map[string]Scraper
}

// NewRegistry creates a new scraper registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Scraper),
	}
}

// Register adds a scraper to the registry.
func (r *Registry) Register(s Scraper) error {
	if _, ok := r.byName[s.Name()]; ok {
		return fmt.Errorf("scraper %q registered twice", s.Name())
	}
	r.scrapers = append(r.scrapers, s)
	r.byName[s.Name()] = s
	return nil
}

// Get retrieves a scraper by name.
func (r *Registry) Get(name string) (Scraper, bool) {
	s, ok := r.byName[name]
	return s, ok
}

// All returns all registered scrapers in order.
func (r *Registry) All() []Scraper {
	out := make([]Scraper, len(r.scrapers))
	copy(out, r.scrapers)
	return out
}

// Names returns the names of all registered scrapers in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scrapers))
	for _, s := range r.scrapers {
		names = append(names, s.Name())
	}
	return names
}

// Select returns the named scrapers in registry order. An empty list
// selects all of them.
func (r *Registry) Select(names []string) ([]Scraper, error) {
	if len(names) == 0 {
		return r.All(), nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := r.byName[n]; !ok {
			return nil, fmt.Errorf("unknown source %q (have %v)", n, r.Names())
		}
		want[n] = true
	}
	var out []Scraper
	for _, s := range r.scrapers {
		if want[s.Name()] {
			out = append(out, s)
		}
	}
	return out, nil
}

// DefaultRegistry creates a registry with all available scrapers.
func DefaultRegistry(fetcher Fetcher, src Sources) *Registry {
	r := NewRegistry()

	// Monetary control
	r.mustRegister(NewCBDCScraper(src.CBDC, fetcher))
	r.mustRegister(NewCryptoScraper())
	r.mustRegister(NewCashLimitScraper())
	r.mustRegister(NewTableScraper("money-supply", src.MoneySupply,
		mustScorer(indicators.MoneySupplyGrowth), fetcher))

	// Taxation
	r.mustRegister(NewTableScraper("social-security", src.SocialSecurity,
		mustScorer(indicators.SocialSecurity), fetcher))
	r.mustRegister(NewTableScraper("income-tax", src.PersonalIncomeTax,
		mustScorer(indicators.PersonalIncomeTax), fetcher))

	// Informational
	r.mustRegister(NewTableScraper("inflation", src.Inflation,
		mustScorer(indicators.Inflation), fetcher))

	return r
}

func mustScorer(f indicators.Family) indicators.Scorer {
	s, err := indicators.New(f)
	if err != nil {
		panic(err)
	}
	return s
}

func (r *Registry) mustRegister(s Scraper) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}
