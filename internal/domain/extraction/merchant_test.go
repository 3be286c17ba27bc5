package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/receipt-scan/internal/domain/refdata"
)

func testChains() []refdata.Merchant {
	return []refdata.Merchant{
		{Pattern: `WOOLWORTHS|WOOLIES`, Name: "Woolworths", Category: "Groceries"},
		{Pattern: `MC\s?DONALD'?S?|MACCAS`, Name: "McDonald's", Category: "Dining"},
	}
}

func TestMerchantExtractor(t *testing.T) {
	extractor := NewMerchantExtractor(testChains())

	extract := func(lines ...string) string {
		full := ""
		for _, l := range lines {
			full += l + "\n"
		}
		return extractor.Extract(lines, full)
	}

	t.Run("greeting phrase", func(t *testing.T) {
		tests := []struct {
			name  string
			lines []string
			want  string
		}{
			{
				"trimmed at store marker",
				[]string{"Welcome to Example Cafe Restaurant Number 12"},
				"Example Cafe",
			},
			{
				"trimmed at brand tag",
				[]string{"WELCOME TO HARRYS KITCHEN SYDNEY CBD"},
				"HARRYS",
			},
			{
				"plain greeting",
				[]string{"SLIP 0042", "welcome to The Corner Bakery"},
				"The Corner Bakery",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Equal(t, tt.want, extract(tt.lines...))
			})
		}
	})

	t.Run("greeting outranks header scan", func(t *testing.T) {
		got := extract(
			"Plain Header Shop",
			"Welcome to Example Cafe Restaurant Number 12",
		)
		assert.Equal(t, "Example Cafe", got)
	})

	t.Run("header scan", func(t *testing.T) {
		got := extract(
			"0412 345 678",
			"TAX INVOICE",
			"ABN 51824753556",
			"Corner Bakery & Co",
			"TOTAL 12.50",
		)
		assert.Equal(t, "Corner Bakery & Co", got)
	})

	t.Run("header scan stops after five lines", func(t *testing.T) {
		got := extract(
			"123456",
			"TAX INVOICE",
			"ABN 51824753556",
			"ORDER 42",
			"15/03/2024",
			"Corner Bakery",
		)
		assert.Equal(t, "", got)
	})

	t.Run("known chain dictionary", func(t *testing.T) {
		// Header lines carry digits so the header heuristic passes through
		// and the dictionary resolves the canonical name.
		assert.Equal(t, "Woolworths", extract("WOOLIES 2034", "TOTAL 49.50"))
		assert.Equal(t, "McDonald's", extract("STORE 441", "MC DONALDS 12.80"))
	})

	t.Run("location hint fallback", func(t *testing.T) {
		got := extract(
			"RECEIPT 884121",
			"Westfield Sydney Level 2",
			"TOTAL 18.00",
		)
		assert.Equal(t, "Westfield", got)
	})

	t.Run("full miss is empty not error", func(t *testing.T) {
		assert.Equal(t, "", extract("123 456 789", "TOTAL 5.00 #1"))
		assert.Equal(t, "", extract())
	})

	t.Run("invalid dictionary pattern is skipped", func(t *testing.T) {
		e := NewMerchantExtractor([]refdata.Merchant{
			{Pattern: `(`, Name: "Broken"},
			{Pattern: `ALDI`, Name: "ALDI"},
		})
		assert.Equal(t, "ALDI", e.Extract([]string{"ALDI 004 551"}, "ALDI 004 551"))
	})
}
