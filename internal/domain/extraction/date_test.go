package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.August, 31, 12, 0, 0, 0, time.UTC)
	}
}

func TestFindDate(t *testing.T) {
	now := fixedClock(2026)

	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("recognized shapes", func(t *testing.T) {
		tests := []struct {
			name string
			line string
			want time.Time
		}{
			{"slash day first", "Date: 15/03/2024", day(2024, time.March, 15)},
			{"dash day first", "15-03-2024 14:22", day(2024, time.March, 15)},
			{"iso", "PRINTED 2024-03-15", day(2024, time.March, 15)},
			{"month name", "15 March 2024", day(2024, time.March, 15)},
			{"abbreviated month", "Issued 3 Mar. 2024", day(2024, time.March, 3)},
			{"single digit fields", "1/7/2024", day(2024, time.July, 1)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got := FindDate([]string{tt.line}, now)
				require.NotNil(t, got)
				assert.Equal(t, tt.want, *got)
			})
		}
	})

	t.Run("rejected matches", func(t *testing.T) {
		tests := []struct {
			name string
			line string
		}{
			{"two digit year reads literally", "05/03/05"},
			{"year before bound", "15/03/1998"},
			{"year past next year", "15/03/2030"},
			{"month out of range", "15/13/2024"},
			{"day overflows month", "31/02/2024"},
			{"no date at all", "TOTAL 49.50"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.Nil(t, FindDate([]string{tt.line}, now))
			})
		}
	})

	t.Run("scanning continues past a rejected line", func(t *testing.T) {
		got := FindDate([]string{
			"RECEIPT 05/03/05",
			"Date: 15/03/2024",
		}, now)
		require.NotNil(t, got)
		assert.Equal(t, day(2024, time.March, 15), *got)
	})

	t.Run("first accepted date wins", func(t *testing.T) {
		got := FindDate([]string{
			"Date: 15/03/2024",
			"Expiry 01/01/2026",
		}, now)
		require.NotNil(t, got)
		assert.Equal(t, day(2024, time.March, 15), *got)
	})

	t.Run("upper bound follows the clock", func(t *testing.T) {
		lines := []string{"15/03/2027"}
		assert.NotNil(t, FindDate(lines, fixedClock(2026)))
		assert.Nil(t, FindDate(lines, fixedClock(2025)))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, FindDate(nil, now))
	})
}
