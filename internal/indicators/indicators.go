// Package indicators converts raw indicator values into scores on a common
// 0-100 scale, where higher means more restrictive.
package indicators

import (
	"errors"
	"fmt"
)

// Family names an indicator. It is also the report column for the raw value.
type Family string

const (
	CBDC              Family = "cbdc_status"
	Cryptocurrency    Family = "cryptocurrency_status"
	CashLimit         Family = "cash_limit"
	MoneySupplyGrowth Family = "money_supply_growth"
	SocialSecurity    Family = "social_security"
	PersonalIncomeTax Family = "personal_income_tax"
	Inflation         Family = "inflation"
)

// Families lists every known family in report order.
func Families() []Family {
	return []Family{CBDC, Cryptocurrency, CashLimit, MoneySupplyGrowth, SocialSecurity, PersonalIncomeTax, Inflation}
}

func (f Family) String() string {
	return string(f)
}

// Scorer turns a raw source value into a score for one family.
type Scorer interface {
	Family() Family
	Score(raw string) (float64, error)
}

var (
	// ErrUnknownCategory is returned for labels outside a family's vocabulary.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrMalformedValue is returned for numeric values that cannot be parsed.
	ErrMalformedValue = errors.New("malformed value")
	// ErrOutOfRange is returned for values outside the family's input domain.
	ErrOutOfRange = errors.New("value out of range")
)

// UnknownCategoryError reports a label a family does not know.
type UnknownCategoryError struct {
	Family Family
	Label  string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("%s: unknown category %q", e.Family, e.Label)
}

// Is lets errors.Is match ErrUnknownCategory.
func (e *UnknownCategoryError) Is(target error) bool {
	return target == ErrUnknownCategory
}

// New returns the scorer for a family with its default parameters.
func New(f Family) (Scorer, error) {
	switch f {
	case CBDC:
		return NewCBDCLadder(), nil
	case Cryptocurrency:
		return NewLegalStatus(), nil
	case CashLimit:
		return NewCashLimitScorer(DefaultRates()), nil
	case MoneySupplyGrowth:
		return NewGrowth(MoneySupplyGrowth, 2), nil
	case Inflation:
		return NewGrowth(Inflation, 5), nil
	case SocialSecurity:
		return NewRate(SocialSecurity, 2), nil
	case PersonalIncomeTax:
		return NewRate(PersonalIncomeTax, 2), nil
	}
	return nil, fmt.Errorf("no scorer for family %q", f)
}
