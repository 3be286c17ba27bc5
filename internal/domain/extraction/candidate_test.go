package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	t.Run("trims and drops empties preserving order", func(t *testing.T) {
		lines := SplitLines("  WOOLWORTHS  \n\n\tTOTAL 49.50\r\n\nEFTPOS 49.50\n")
		assert.Equal(t, []string{"WOOLWORTHS", "TOTAL 49.50", "EFTPOS 49.50"}, lines)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, SplitLines(""))
		assert.Empty(t, SplitLines("  \n \r\n\t"))
	})
}

func TestFindCandidates(t *testing.T) {
	t.Run("token grammar", func(t *testing.T) {
		tests := []struct {
			name  string
			line  string
			cents []int64
		}{
			{"plain", "MILK 3.20", []int64{320}},
			{"dollar sign", "TOTAL $49.50", []int64{4950}},
			{"thousands separator", "LAPTOP $1,299.00", []int64{129900}},
			{"multiple per line", "2 @ 4.50 = 9.00", []int64{450, 900}},
			{"integer is not a total", "QTY 3", nil},
			{"single decimal is not a total", "WEIGHT 1.5", nil},
			{"three decimals rejected", "RATE 3.005", nil},
			{"zero excluded", "CHANGE 0.00", nil},
			{"five figures excluded", "REF 12345.67", nil},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				candidates := FindCandidates([]string{tt.line})
				var got []int64
				for _, c := range candidates {
					got = append(got, c.Cents)
				}
				assert.Equal(t, tt.cents, got)
			})
		}
	})

	t.Run("context window spans adjacent lines", func(t *testing.T) {
		lines := []string{"SUBTOTAL 45.00", "GST 4.50", "TOTAL 49.50"}
		candidates := FindCandidates(lines)
		require.Len(t, candidates, 3)

		// First line: no previous neighbor.
		assert.Equal(t, "subtotal 45.00 gst 4.50", candidates[0].Context)
		// Middle line: both neighbors.
		assert.Equal(t, "subtotal 45.00 gst 4.50 total 49.50", candidates[1].Context)
		// Last line: no next neighbor.
		assert.Equal(t, "gst 4.50 total 49.50", candidates[2].Context)
	})

	t.Run("line index and raw token", func(t *testing.T) {
		candidates := FindCandidates([]string{"A", "TOTAL $12.99", "B"})
		require.Len(t, candidates, 1)
		assert.Equal(t, 1, candidates[0].LineIndex)
		assert.Equal(t, "$12.99", candidates[0].Raw)
		assert.Equal(t, "total $12.99", candidates[0].Line)
	})

	t.Run("no candidates is a valid result", func(t *testing.T) {
		assert.Empty(t, FindCandidates([]string{"THANK YOU", "COME AGAIN"}))
		assert.Empty(t, FindCandidates(nil))
	})
}
