// Package report renders scored countries as a delimited table.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattsblocklist/fti/internal/countries"
	"github.com/mattsblocklist/fti/internal/index"
	"github.com/mattsblocklist/fti/internal/indicators"
)

// DefaultDelimiter separates fields on each line.
const DefaultDelimiter = ';'

// SeqHeader is the name of the leading sequence column.
const SeqHeader = "#"

const scoreSuffix = "_score"

// Field is a named report column. Value reports false when the country has
// nothing for the column.
type Field struct {
	Name  string
	Value func(*countries.Country) (string, bool)
}

// Row is one emitted line: the 1-based sequence number and the field values.
type Row struct {
	Seq     int
	Country *countries.Country
	Values  []string
}

// DefaultFieldNames lists the columns of the standard report.
func DefaultFieldNames() []string {
	return []string{
		"flag",
		"name",
		indicators.CBDC.String(),
		indicators.Cryptocurrency.String(),
		indicators.CashLimit.String(),
		indicators.MoneySupplyGrowth.String(),
		indicators.SocialSecurity.String(),
		indicators.PersonalIncomeTax.String(),
		index.Column,
	}
}

// DefaultFields returns the standard column set.
func DefaultFields() []Field {
	fields, err := FieldsByName(DefaultFieldNames())
	if err != nil {
		panic(err)
	}
	return fields
}

// FieldsByName maps column names to fields. Recognised names are code,
// flag, name, financial_tyranny_index, any family name (raw value) and any
// family name with a _score suffix.
func FieldsByName(names []string) ([]Field, error) {
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		f, err := field(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func field(name string) (Field, error) {
	switch name {
	case "code":
		return Field{name, func(c *countries.Country) (string, bool) { return c.Code(), true }}, nil
	case "flag":
		return Field{name, func(c *countries.Country) (string, bool) { return c.Flag, true }}, nil
	case "name":
		return Field{name, func(c *countries.Country) (string, bool) { return c.Name, true }}, nil
	case index.Column:
		return Field{name, func(c *countries.Country) (string, bool) {
			v, ok := c.Composite()
			if !ok {
				return "", false
			}
			return strconv.Itoa(v), true
		}}, nil
	}

	for _, fam := range indicators.Families() {
		key := fam.String()
		switch name {
		case key:
			return Field{name, func(c *countries.Country) (string, bool) {
				s, ok := c.Slot(key)
				return s.Raw, ok
			}}, nil
		case key + scoreSuffix:
			return Field{name, func(c *countries.Country) (string, bool) {
				s, ok := c.Slot(key)
				if !ok {
					return "", false
				}
				return FormatScore(s.Score), true
			}}, nil
		}
	}

	return Field{}, fmt.Errorf("unknown report field %q", name)
}

// FormatScore renders a score without trailing zeros.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Rows selects the countries with a defined composite and a value for every
// field, numbered contiguously in registry order.
func Rows(reg *countries.Registry, fields []Field) []Row {
	var rows []Row
	for _, c := range reg.All() {
		if _, ok := c.Composite(); !ok {
			continue
		}
		values, ok := collect(c, fields)
		if !ok {
			continue
		}
		rows = append(rows, Row{Seq: len(rows) + 1, Country: c, Values: values})
	}
	return rows
}

func collect(c *countries.Country, fields []Field) ([]string, bool) {
	values := make([]string, len(fields))
	for i, f := range fields {
		v, ok := f.Value(c)
		if !ok {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

// Header returns the header record.
func Header(fields []Field) []string {
	h := make([]string, 0, len(fields)+1)
	h = append(h, SeqHeader)
	for _, f := range fields {
		h = append(h, f.Name)
	}
	return h
}

// WriteDelimited writes the header and rows to w.
func WriteDelimited(w io.Writer, fields []Field, rows []Row, delim rune) error {
	writer := csv.NewWriter(w)
	writer.Comma = delim

	if err := writer.Write(Header(fields)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, row := range rows {
		record := make([]string, 0, len(row.Values)+1)
		record = append(record, strconv.Itoa(row.Seq))
		record = append(record, row.Values...)
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row.Seq, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ParseDelimiter converts a configured delimiter into a rune. The literal
// "\t" or "tab" selects a tab.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return DefaultDelimiter, nil
	case `\t`, "tab":
		return '\t', nil
	}
	r := []rune(s)
	if len(r) != 1 || r[0] == '"' || r[0] == '\r' || r[0] == '\n' {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r[0], nil
}
