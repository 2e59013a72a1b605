// Package htmltable extracts table rows from HTML pages.
package htmltable

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Row is one <tr> with the text of its cells.
type Row struct {
	Cells  []string
	Header bool // every cell is a <th>
}

// Pair is the first two cells of a data row.
type Pair struct {
	Key   string
	Value string
}

// Parse returns every table row in document order.
func Parse(r io.Reader) ([]Row, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	var rows []Row
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
			rows = append(rows, readRow(n))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return rows, nil
}

func readRow(tr *html.Node) Row {
	row := Row{Header: true}
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Td:
			row.Header = false
		case atom.Th:
		default:
			continue
		}
		row.Cells = append(row.Cells, Text(c))
	}
	if len(row.Cells) == 0 {
		row.Header = false
	}
	return row
}

// Text returns the visible text under a node with whitespace collapsed.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			b.WriteByte(' ')
		case html.ElementNode:
			if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// Pairs returns the first two cells of every data row that has at least
// two cells. Header rows are skipped.
func Pairs(rows []Row) []Pair {
	var out []Pair
	for _, r := range rows {
		if r.Header || len(r.Cells) < 2 {
			continue
		}
		out = append(out, Pair{Key: r.Cells[0], Value: r.Cells[1]})
	}
	return out
}
