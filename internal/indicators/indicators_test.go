package indicators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCBDCLadder(t *testing.T) {
	l := NewCBDCLadder()

	tests := []struct {
		label string
		want  float64
	}{
		{"Cancelled", 0},
		{"Research", 20},
		{"Proof of concept", 50},
		{"Pilot", 80},
		{"Launched", 100},
		{" Pilot ", 80},
		{"", 0},
		{"None", 0},
	}
	for _, tt := range tests {
		got, err := l.Score(tt.label)
		require.NoError(t, err, tt.label)
		assert.Equal(t, tt.want, got, tt.label)
	}
}

func TestLadder_UnknownLabelIsError(t *testing.T) {
	for _, l := range []*Ladder{NewCBDCLadder(), NewLegalStatus()} {
		_, err := l.Score("Rumoured")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownCategory)

		var uce *UnknownCategoryError
		require.True(t, errors.As(err, &uce))
		assert.Equal(t, l.Family(), uce.Family)
		assert.Equal(t, "Rumoured", uce.Label)
	}
}

func TestLegalStatus(t *testing.T) {
	l := NewLegalStatus()

	tests := []struct {
		label string
		want  float64
	}{
		{"Permissive", 0},
		{"Contentious", 30},
		{"Restricted", 70},
		{"Hostile", 100},
		{"Unknown", 0},
		{"", 0},
	}
	for _, tt := range tests {
		got, err := l.Score(tt.label)
		require.NoError(t, err, tt.label)
		assert.Equal(t, tt.want, got, tt.label)
	}
}

func TestCashLimit(t *testing.T) {
	s := NewCashLimitScorer(DefaultRates())

	tests := []struct {
		raw  string
		want float64
	}{
		{"no limit", 0},
		{"No Limit", 0},
		{"1000 EUR", 95},
		{"500 EUR", 98},
		{"10000 EUR", 50},
		{"20000 EUR", 0},
		{"100000 CHF", 0},
		{"0 EUR", 100},
		{"10000 USD", 54}, // 9200 EUR -> 54
	}
	for _, tt := range tests {
		got, err := s.Score(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestCashLimit_NoLimitIgnoresCurrency(t *testing.T) {
	s := NewCashLimitScorer(Rates{})
	got, err := s.ScoreLimit(Limit{Unlimited: true, Currency: "XXX"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestCashLimit_Errors(t *testing.T) {
	s := NewCashLimitScorer(DefaultRates())

	_, err := s.Score("5000 XYZ")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	for _, raw := range []string{"", "EUR", "lots EUR", "-5 EUR", "5000 EUR cash"} {
		_, err := s.Score(raw)
		assert.ErrorIs(t, err, ErrMalformedValue, raw)
	}
}

func TestGrowth(t *testing.T) {
	g := NewGrowth(MoneySupplyGrowth, 2)

	tests := []struct {
		raw  string
		want float64
	}{
		{"-15.7", 0},
		{"9.6", 19.2},
		{"0", 0},
		{"50", 100},
		{"120.5", 100},
		{"3.25%", 6.5},
	}
	for _, tt := range tests {
		got, err := g.Score(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.InDelta(t, tt.want, got, 1e-9, tt.raw)
	}

	_, err := g.Score("n/a")
	assert.ErrorIs(t, err, ErrMalformedValue)
}

func TestRate(t *testing.T) {
	r := NewRate(PersonalIncomeTax, 2)

	tests := []struct {
		raw  string
		want float64
	}{
		{"45", 90},
		{"22.3", 45},
		{"0", 0},
		{"55.95", 100},
		{"60", 100},
	}
	for _, tt := range tests {
		got, err := r.Score(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}

	_, err := r.Score("-1")
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		raw  string
		want Percent
		ok   bool
	}{
		{"9.6", 9.6, true},
		{" -15.70 ", -15.7, true},
		{"45%", 45, true},
		{"1,234.5", 1234.5, true},
		{"", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		got, err := ParsePercent(tt.raw)
		if !tt.ok {
			assert.ErrorIs(t, err, ErrMalformedValue, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.InDelta(t, float64(tt.want), float64(got), 1e-9, tt.raw)
	}
}

func TestNew_AllFamilies(t *testing.T) {
	for _, f := range Families() {
		s, err := New(f)
		require.NoError(t, err, f)
		assert.Equal(t, f, s.Family())
	}

	_, err := New("unknown_family")
	assert.Error(t, err)
}
