package indicators

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// cashLimitCeiling is the EUR amount at or above which a limit scores 0.
	cashLimitCeiling = 20000
	// cashLimitScale converts EUR below the ceiling into score points.
	cashLimitScale = 200
	// NoLimit is the raw value for countries without a cash payment limit.
	NoLimit = "no limit"
)

// Limit is a parsed cash payment limit.
type Limit struct {
	Unlimited bool
	Amount    float64
	Currency  string
}

// ParseLimit parses "3000 EUR", "100000000 IDR" or "no limit".
func ParseLimit(raw string) (Limit, error) {
	s := strings.TrimSpace(raw)
	if strings.EqualFold(s, NoLimit) {
		return Limit{Unlimited: true}, nil
	}

	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Limit{}, fmt.Errorf("%w: cash limit %q", ErrMalformedValue, raw)
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(fields[0], ",", ""), 64)
	if err != nil || amount < 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return Limit{}, fmt.Errorf("%w: cash limit amount %q", ErrMalformedValue, raw)
	}
	return Limit{Amount: amount, Currency: strings.ToUpper(fields[1])}, nil
}

// Rates holds the EUR value of one unit of each currency.
type Rates map[string]float64

// DefaultRates returns the fixed conversion table.
func DefaultRates() Rates {
	return Rates{
		"EUR": 1,
		"USD": 0.92,
		"GBP": 1.17,
		"CHF": 1.04,
		"AUD": 0.61,
		"CAD": 0.68,
		"BRL": 0.18,
		"RMB": 0.13,
		"CNY": 0.13,
		"RUB": 0.010,
		"SGD": 0.68,
		"ZAR": 0.049,
		"TWD": 0.029,
		"AED": 0.25,
		"INR": 0.011,
		"MXN": 0.054,
		"ILS": 0.25,
		"SAR": 0.245,
		"TRY": 0.028,
		"IDR": 0.000058,
		"JPY": 0.0062,
		"KRW": 0.00069,
	}
}

// CashLimitScorer scores cash payment limits. Smaller limits score higher.
type CashLimitScorer struct {
	rates Rates
}

// NewCashLimitScorer creates a scorer using the given rate table.
func NewCashLimitScorer(rates Rates) *CashLimitScorer {
	return &CashLimitScorer{rates: rates}
}

func (s *CashLimitScorer) Family() Family {
	return CashLimit
}

// ToEUR converts an amount into the reference currency.
func (s *CashLimitScorer) ToEUR(amount float64, currency string) (float64, error) {
	rate, ok := s.rates[strings.ToUpper(currency)]
	if !ok {
		return 0, &UnknownCategoryError{Family: CashLimit, Label: currency}
	}
	return amount * rate, nil
}

// ScoreLimit computes round(max(0, ceiling - EUR) / scale); no limit scores 0.
func (s *CashLimitScorer) ScoreLimit(l Limit) (float64, error) {
	if l.Unlimited {
		return 0, nil
	}
	eur, err := s.ToEUR(l.Amount, l.Currency)
	if err != nil {
		return 0, err
	}
	return math.Round(math.Max(0, cashLimitCeiling-eur) / cashLimitScale), nil
}

func (s *CashLimitScorer) Score(raw string) (float64, error) {
	l, err := ParseLimit(raw)
	if err != nil {
		return 0, err
	}
	return s.ScoreLimit(l)
}
