// Package index combines indicator scores into the composite financial
// tyranny index.
package index

import (
	"fmt"
	"math"

	"github.com/mattsblocklist/fti/internal/countries"
	"github.com/mattsblocklist/fti/internal/indicators"
)

// Column is the report name of the composite.
const Column = "financial_tyranny_index"

// Term is one weighted family.
type Term struct {
	Family indicators.Family
	Weight float64
}

// Weights is the closed set of families the composite requires.
type Weights []Term

// DefaultWeights returns the standard weighting.
func DefaultWeights() Weights {
	return Weights{
		{indicators.CBDC, 0.2},
		{indicators.Cryptocurrency, 0.2},
		{indicators.CashLimit, 0.2},
		{indicators.MoneySupplyGrowth, 0.2},
		{indicators.SocialSecurity, 0.1},
		{indicators.PersonalIncomeTax, 0.1},
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	var s float64
	for _, t := range w {
		s += t.Weight
	}
	return s
}

// Validate checks that weights sum to 1.0, none is negative and no family
// appears twice.
func (w Weights) Validate() error {
	if len(w) == 0 {
		return fmt.Errorf("no weights")
	}
	seen := make(map[indicators.Family]bool, len(w))
	for _, t := range w {
		if t.Weight < 0 {
			return fmt.Errorf("negative weight for %s: %f", t.Family, t.Weight)
		}
		if seen[t.Family] {
			return fmt.Errorf("family %s weighted twice", t.Family)
		}
		seen[t.Family] = true
	}
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	return nil
}

// Score computes the composite for one country. It reports false when any
// weighted family has no score; partial sums are never used.
func (w Weights) Score(c *countries.Country) (int, bool) {
	var total float64
	for _, t := range w {
		s, ok := c.Slot(t.Family.String())
		if !ok {
			return 0, false
		}
		total += s.Score * t.Weight
	}
	v := math.Round(total)
	return int(math.Min(100, math.Max(0, v))), true
}

// Compute sets or clears the composite on every country in the registry
// and returns how many composites are defined.
func Compute(reg *countries.Registry, w Weights) (int, error) {
	if err := w.Validate(); err != nil {
		return 0, err
	}

	n := 0
	for _, c := range reg.All() {
		v, ok := w.Score(c)
		if !ok {
			c.ClearComposite()
			continue
		}
		c.SetComposite(v)
		n++
	}
	return n, nil
}

// FromMap builds weights from a family-keyed map, in report order. Names
// that are not indicator families are rejected.
func FromMap(m map[string]float64) (Weights, error) {
	known := make(map[string]bool)
	var w Weights
	for _, f := range indicators.Families() {
		known[f.String()] = true
		if v, ok := m[f.String()]; ok {
			w = append(w, Term{Family: f, Weight: v})
		}
	}
	for name := range m {
		if !known[name] {
			return nil, fmt.Errorf("unknown family %q in weights", name)
		}
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}
