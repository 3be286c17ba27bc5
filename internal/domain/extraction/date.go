package extraction

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// datePattern is one date shape the extractor recognizes, with a builder that
// turns its submatches into year/month/day.
type datePattern struct {
	name  string
	re    *regexp.Regexp
	build func(m []string) (year, month, day int, ok bool)
}

var monthsByPrefix = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// datePatterns are tried in order per line. Day-first forms come before the
// ISO form, matching how receipts in this region print dates.
var datePatterns = []datePattern{
	{
		name: "d/m/y",
		re:   regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`),
		build: func(m []string) (int, int, int, bool) {
			return atoi(m[3]), atoi(m[2]), atoi(m[1]), true
		},
	},
	{
		name: "d-m-y",
		re:   regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})-(\d{2,4})\b`),
		build: func(m []string) (int, int, int, bool) {
			return atoi(m[3]), atoi(m[2]), atoi(m[1]), true
		},
	},
	{
		name: "y-m-d",
		re:   regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`),
		build: func(m []string) (int, int, int, bool) {
			return atoi(m[1]), atoi(m[2]), atoi(m[3]), true
		},
	},
	{
		name: "d month y",
		re:   regexp.MustCompile(`(?i)\b(\d{1,2})\s+(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+(\d{2,4})\b`),
		build: func(m []string) (int, int, int, bool) {
			month, ok := monthsByPrefix[strings.ToLower(m[2])]
			if !ok {
				return 0, 0, 0, false
			}
			return atoi(m[3]), month, atoi(m[1]), true
		},
	},
}

// FindDate scans lines in order against the date patterns and returns the
// first accepted date. A structural match is accepted only when it builds a
// real calendar date with a year in (2000, now.Year()+1]; two-digit years are
// taken literally, so OCR misreads like "05/03/05" fail the bound and
// scanning continues. Absence is nil, not an error.
func FindDate(lines []string, now func() time.Time) *time.Time {
	maxYear := now().Year() + 1

	for _, line := range lines {
		for _, p := range datePatterns {
			m := p.re.FindStringSubmatch(line)
			if m == nil {
				continue
			}

			year, month, day, ok := p.build(m)
			if !ok {
				continue
			}
			if year <= 2000 || year > maxYear {
				continue
			}
			if month < 1 || month > 12 || day < 1 || day > 31 {
				continue
			}

			// time.Date normalizes overflow (31 Feb becomes 2-3 Mar);
			// a round-trip mismatch means the components were garbage.
			d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
				continue
			}
			return &d
		}
	}
	return nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
