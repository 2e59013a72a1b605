package countries

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Resolver maps source labels onto registry entries. Matching is exact
// after Canonicalize: a canonical name first, then the alias table, then
// the bloc table. Nothing else is tried.
type Resolver struct {
	registry *Registry
	aliases  map[string]*Country
	blocs    map[string][]*Country
}

// NewResolver validates the alias and bloc tables against the registry and
// returns a resolver. Keys must be unique after canonicalization, must not
// shadow a canonical name or each other, and every target code must exist.
func NewResolver(reg *Registry, aliases map[string]string, blocs map[string][]string) (*Resolver, error) {
	r := &Resolver{
		registry: reg,
		aliases:  make(map[string]*Country, len(aliases)),
		blocs:    make(map[string][]*Country, len(blocs)),
	}

	for label, code := range aliases {
		key := Canonicalize(label)
		if err := r.checkKey(key, label); err != nil {
			return nil, err
		}
		c, err := reg.Get(code)
		if err != nil {
			return nil, fmt.Errorf("%w: alias %q: %v", ErrInvalidAlias, label, err)
		}
		r.aliases[key] = c
	}

	for label, codes := range blocs {
		key := Canonicalize(label)
		if err := r.checkKey(key, label); err != nil {
			return nil, err
		}
		if len(codes) == 0 {
			return nil, fmt.Errorf("%w: bloc %q has no members", ErrInvalidAlias, label)
		}
		members := make([]*Country, 0, len(codes))
		seen := make(map[string]bool, len(codes))
		for _, code := range codes {
			c, err := reg.Get(code)
			if err != nil {
				return nil, fmt.Errorf("%w: bloc %q: %v", ErrInvalidAlias, label, err)
			}
			if seen[c.Code()] {
				return nil, fmt.Errorf("%w: bloc %q lists %s twice", ErrInvalidAlias, label, c.Code())
			}
			seen[c.Code()] = true
			members = append(members, c)
		}
		r.blocs[key] = members
	}

	return r, nil
}

func (r *Resolver) checkKey(key, label string) error {
	if key == "" {
		return fmt.Errorf("%w: empty label", ErrInvalidAlias)
	}
	if c, ok := r.registry.Lookup(key); ok {
		return fmt.Errorf("%w: %q shadows canonical name of %s", ErrInvalidAlias, label, c.Code())
	}
	if _, ok := r.aliases[key]; ok {
		return fmt.Errorf("%w: %q defined twice", ErrInvalidAlias, label)
	}
	if _, ok := r.blocs[key]; ok {
		return fmt.Errorf("%w: %q defined twice", ErrInvalidAlias, label)
	}
	return nil
}

// Resolve returns the countries a label refers to: one for a country name
// or alias, every member for a bloc label. Unmatched labels yield an
// *UnknownCountryError.
func (r *Resolver) Resolve(label string) ([]*Country, error) {
	key := Canonicalize(label)

	if c, ok := r.registry.Lookup(key); ok {
		return []*Country{c}, nil
	}
	if c, ok := r.aliases[key]; ok {
		return []*Country{c}, nil
	}
	if members, ok := r.blocs[key]; ok {
		out := make([]*Country, len(members))
		copy(out, members)
		return out, nil
	}

	return nil, &UnknownCountryError{Label: label}
}

// Canonicalize puts a label in Unicode NFC form and collapses whitespace,
// including non-breaking spaces left over from HTML tables. Case and
// spelling are preserved.
func Canonicalize(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}
