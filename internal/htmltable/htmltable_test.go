package htmltable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html><body>
<table class="table">
  <thead><tr><th>Country</th><th>Last</th><th>Previous</th></tr></thead>
  <tbody>
    <tr><td><a href="/france/x">France</a></td><td>45</td><td>45</td></tr>
    <tr>
      <td>
        United&nbsp;States
      </td>
      <td> 37 </td>
    </tr>
    <tr><td>Lonely</td></tr>
    <tr><td>Euro Area<script>var x = 1;</script></td><td>-1.20</td></tr>
  </tbody>
</table>
</body></html>`

func TestParse(t *testing.T) {
	rows, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.True(t, rows[0].Header)
	assert.Equal(t, []string{"Country", "Last", "Previous"}, rows[0].Cells)

	assert.False(t, rows[1].Header)
	assert.Equal(t, []string{"France", "45", "45"}, rows[1].Cells)
	assert.Equal(t, []string{"United States", "37"}, rows[2].Cells)
	assert.Equal(t, []string{"Lonely"}, rows[3].Cells)
	assert.Equal(t, []string{"Euro Area", "-1.20"}, rows[4].Cells)
}

func TestPairs(t *testing.T) {
	rows, err := Parse(strings.NewReader(page))
	require.NoError(t, err)

	assert.Equal(t, []Pair{
		{Key: "France", Value: "45"},
		{Key: "United States", Value: "37"},
		{Key: "Euro Area", Value: "-1.20"},
	}, Pairs(rows))
}

func TestParse_NoTables(t *testing.T) {
	rows, err := Parse(strings.NewReader("<p>nothing here</p>"))
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, Pairs(rows))
}
