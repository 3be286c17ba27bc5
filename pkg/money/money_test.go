package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		cents int64
	}{
		{"plain", "12.99", 1299},
		{"dollar sign", "$12.99", 1299},
		{"dollar sign with space", "$ 49.50", 4950},
		{"thousands separator", "$1,234.56", 123456},
		{"leading whitespace", "  3.00", 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseToken(tt.token, AUD)
			require.NoError(t, err)
			assert.Equal(t, tt.cents, m.Cents())
		})
	}

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ParseToken("twelve dollars", AUD)
		assert.Error(t, err)
	})
}

func TestString(t *testing.T) {
	m := New(4950, AUD)
	assert.Equal(t, "49.50", m.String())

	// Trailing zero cents must not be dropped.
	m = New(4000, AUD)
	assert.Equal(t, "40.00", m.String())
}

func TestEquals(t *testing.T) {
	a, err := ParseToken("39.99", AUD)
	require.NoError(t, err)
	b := NewFromDecimal(decimal.RequireFromString("39.99"), AUD)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(New(3998, AUD)))
}

func TestZeroValues(t *testing.T) {
	var m *Money
	assert.True(t, m.IsZero())
	assert.Equal(t, "0.00", m.String())
	assert.Equal(t, int64(0), m.Cents())
}
