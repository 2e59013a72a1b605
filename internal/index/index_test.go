package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattsblocklist/fti/internal/countries"
	"github.com/mattsblocklist/fti/internal/indicators"
)

func fill(c *countries.Country, scores map[indicators.Family]float64) {
	for f, s := range scores {
		c.Observe(f.String(), "raw", s)
	}
}

func full(v float64) map[indicators.Family]float64 {
	out := make(map[indicators.Family]float64)
	for _, t := range DefaultWeights() {
		out[t.Family] = v
	}
	return out
}

func TestDefaultWeights_Valid(t *testing.T) {
	w := DefaultWeights()
	require.NoError(t, w.Validate())
	assert.InDelta(t, 1.0, w.Sum(), 1e-9)
}

func TestWeights_ValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		w    Weights
	}{
		{"empty", Weights{}},
		{"sum too low", Weights{{indicators.CBDC, 0.5}}},
		{"negative", Weights{{indicators.CBDC, 1.5}, {indicators.CashLimit, -0.5}}},
		{"duplicate", Weights{{indicators.CBDC, 0.5}, {indicators.CBDC, 0.5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.w.Validate())
		})
	}
}

func TestCompute(t *testing.T) {
	reg := countries.NewRegistry()
	fr, _ := reg.Create("FR", "France")
	de, _ := reg.Create("DE", "Germany")
	us, _ := reg.Create("US", "United States of America")
	jp, _ := reg.Create("JP", "Japan")

	fill(fr, map[indicators.Family]float64{
		indicators.CBDC:              80,
		indicators.Cryptocurrency:    0,
		indicators.CashLimit:         95,
		indicators.MoneySupplyGrowth: 19.2,
		indicators.SocialSecurity:    90,
		indicators.PersonalIncomeTax: 90,
	})
	// 16 + 0 + 19 + 3.84 + 9 + 9 = 56.84

	missing := full(50)
	delete(missing, indicators.PersonalIncomeTax)
	fill(de, missing)

	fill(us, full(100))
	jp.SetComposite(7) // stale value must be cleared

	n, err := Compute(reg, DefaultWeights())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	v, ok := fr.Composite()
	require.True(t, ok)
	assert.Equal(t, 57, v)

	_, ok = de.Composite()
	assert.False(t, ok, "one missing family leaves the composite undefined")

	v, ok = us.Composite()
	require.True(t, ok)
	assert.Equal(t, 100, v)

	_, ok = jp.Composite()
	assert.False(t, ok)
}

func TestScore_RoundsOnlyTheTotal(t *testing.T) {
	reg := countries.NewRegistry()
	c, _ := reg.Create("FR", "France")

	// Each term is 0.2 * 2.4 = 0.48 or 0.1 * 2.4 = 0.24; rounding terms
	// individually would give 0, the total 2.4 rounds to 2.
	fill(c, full(2.4))
	v, ok := DefaultWeights().Score(c)
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestScore_Bounds(t *testing.T) {
	for _, s := range []float64{0, 33.3, 50, 99.9, 100} {
		reg := countries.NewRegistry()
		c, _ := reg.Create("FR", "France")
		fill(c, full(s))

		v, ok := DefaultWeights().Score(c)
		require.True(t, ok)
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 100)
	}
}

func TestCompute_InvalidWeights(t *testing.T) {
	_, err := Compute(countries.NewRegistry(), Weights{{indicators.CBDC, 0.3}})
	assert.Error(t, err)
}

func TestFromMap(t *testing.T) {
	w, err := FromMap(map[string]float64{
		"cash_limit":  0.5,
		"cbdc_status": 0.25,
		"inflation":   0.25,
	})
	require.NoError(t, err)
	assert.Equal(t, Weights{
		{indicators.CBDC, 0.25},
		{indicators.CashLimit, 0.5},
		{indicators.Inflation, 0.25},
	}, w)

	_, err = FromMap(map[string]float64{"gdp": 1})
	assert.Error(t, err)

	_, err = FromMap(map[string]float64{"cbdc_status": 0.4})
	assert.Error(t, err)
}
