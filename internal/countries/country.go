// Package countries holds the canonical country registry and resolves the
// free-text country names used by data sources onto it.
package countries

import "strings"

// flagOffset shifts an ASCII capital letter into the Unicode regional
// indicator block ('A' -> U+1F1E6).
const flagOffset = 0x1F1E6 - 'A'

// Slot is one observed indicator value: the raw value as the source
// reported it and the score derived from it.
type Slot struct {
	Raw   string  `json:"raw"`
	Score float64 `json:"score"`
}

// Country is a single canonical territory with its indicator slots.
type Country struct {
	code  string
	Name  string `json:"name"`
	Flag  string `json:"flag"`
	slots map[string]Slot

	composite int
	scored    bool
}

func newCountry(code, name string) *Country {
	return &Country{
		code:  code,
		Name:  name,
		Flag:  Flag(code),
		slots: make(map[string]Slot),
	}
}

// Code returns the ISO 3166-1 alpha-2 code.
func (c *Country) Code() string {
	return c.code
}

// Observe records a value for the given indicator family. A slot that
// already holds a score greater than or equal to the new one is kept, so
// repeated observations can only raise a country's score. It reports
// whether the slot changed.
func (c *Country) Observe(family, raw string, score float64) bool {
	if cur, ok := c.slots[family]; ok && cur.Score >= score {
		return false
	}
	c.slots[family] = Slot{Raw: raw, Score: score}
	return true
}

// Slot returns the observed value for a family.
func (c *Country) Slot(family string) (Slot, bool) {
	s, ok := c.slots[family]
	return s, ok
}

// SetComposite stores the composite index value.
func (c *Country) SetComposite(v int) {
	c.composite = v
	c.scored = true
}

// ClearComposite marks the composite as undefined.
func (c *Country) ClearComposite() {
	c.composite = 0
	c.scored = false
}

// Composite returns the composite index and whether it is defined.
func (c *Country) Composite() (int, bool) {
	return c.composite, c.scored
}

// Flag returns the emoji flag for a two-letter code.
func Flag(code string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(code) {
		b.WriteRune(r + flagOffset)
	}
	return b.String()
}
