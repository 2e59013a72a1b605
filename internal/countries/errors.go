package countries

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a code is not in the registry.
	ErrNotFound = errors.New("country not found")
	// ErrDuplicateCode is returned when a code is registered twice.
	ErrDuplicateCode = errors.New("duplicate country code")
	// ErrDuplicateName is returned when two countries share a display name.
	ErrDuplicateName = errors.New("duplicate country name")
	// ErrInvalidCode is returned for codes that are not two ASCII letters.
	ErrInvalidCode = errors.New("invalid country code")
	// ErrUnknownCountry is returned when a label matches no country, alias or bloc.
	ErrUnknownCountry = errors.New("unknown country")
	// ErrInvalidAlias is returned when the alias or bloc tables are inconsistent.
	ErrInvalidAlias = errors.New("invalid alias table")
)

// UnknownCountryError carries the label that failed to resolve so the
// alias table can be extended.
type UnknownCountryError struct {
	Label string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("unknown country: %q", e.Label)
}

// Is lets errors.Is match ErrUnknownCountry.
func (e *UnknownCountryError) Is(target error) bool {
	return target == ErrUnknownCountry
}
