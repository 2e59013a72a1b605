package countries

import (
	"fmt"
	"strings"
)

// Registry is the set of canonical countries, iterated in creation order.
type Registry struct {
	byCode map[string]*Country
	byName map[string]*Country
	order  []*Country
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byCode: make(map[string]*Country),
		byName: make(map[string]*Country),
	}
}

// Create inserts a new country. The code must be two ASCII letters and is
// stored upper-cased.
func (r *Registry) Create(code, name string) (*Country, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !validCode(code) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	if _, ok := r.byCode[code]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, code)
	}

	name = Canonicalize(name)
	if prev, ok := r.byName[name]; ok {
		return nil, fmt.Errorf("%w: %q used by %s and %s", ErrDuplicateName, name, prev.code, code)
	}

	c := newCountry(code, name)
	r.byCode[code] = c
	r.byName[name] = c
	r.order = append(r.order, c)
	return c, nil
}

// Get returns the country with the given code.
func (r *Registry) Get(code string) (*Country, error) {
	if c, ok := r.byCode[strings.ToUpper(code)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, code)
}

// Lookup finds a country by its exact canonical name.
func (r *Registry) Lookup(name string) (*Country, bool) {
	c, ok := r.byName[Canonicalize(name)]
	return c, ok
}

// All returns every country in creation order.
func (r *Registry) All() []*Country {
	out := make([]*Country, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered countries.
func (r *Registry) Len() int {
	return len(r.order)
}

// Seed creates a registry holding the given entries in order.
func Seed(entries []Entry) (*Registry, error) {
	r := NewRegistry()
	for _, e := range entries {
		if _, err := r.Create(e.Code, e.Name); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func validCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
