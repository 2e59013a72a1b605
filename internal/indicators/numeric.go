package indicators

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Percent is a percentage value, 9.6 meaning 9.6%.
type Percent float64

// ParsePercent parses values such as "9.6", "-15.70", "45%" or "1,234.5".
func ParsePercent(raw string) (Percent, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: percentage %q", ErrMalformedValue, raw)
	}
	return Percent(v), nil
}

// Growth scores a growth rate: negative growth scores 0, positive growth
// scales linearly and is capped at 100. The result is not rounded.
type Growth struct {
	family Family
	factor float64
}

// NewGrowth creates a growth scorer.
func NewGrowth(family Family, factor float64) *Growth {
	return &Growth{family: family, factor: factor}
}

func (g *Growth) Family() Family {
	return g.family
}

// ScorePercent computes min(100, max(0, p) * factor).
func (g *Growth) ScorePercent(p Percent) float64 {
	return math.Min(100, math.Max(0, float64(p))*g.factor)
}

func (g *Growth) Score(raw string) (float64, error) {
	p, err := ParsePercent(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", g.family, err)
	}
	return g.ScorePercent(p), nil
}

// Rate scores a tax or contribution rate: round(min(100, p * factor)).
type Rate struct {
	family Family
	factor float64
}

// NewRate creates a rate scorer.
func NewRate(family Family, factor float64) *Rate {
	return &Rate{family: family, factor: factor}
}

func (r *Rate) Family() Family {
	return r.family
}

// ScorePercent scores a rate. Negative rates are rejected.
func (r *Rate) ScorePercent(p Percent) (float64, error) {
	if p < 0 {
		return 0, fmt.Errorf("%w: %s rate %v", ErrOutOfRange, r.family, float64(p))
	}
	return math.Round(math.Min(100, float64(p)*r.factor)), nil
}

func (r *Rate) Score(raw string) (float64, error) {
	p, err := ParsePercent(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", r.family, err)
	}
	return r.ScorePercent(p)
}
