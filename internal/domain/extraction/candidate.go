package extraction

import (
	"regexp"
	"strings"

	"github.com/FACorreiaa/receipt-scan/pkg/money"
)

// Candidate is one money-shaped token found on a receipt line, with the
// context used to score it.
type Candidate struct {
	Raw       string // matched token, e.g. "$12.99"
	Cents     int64  // exact integer cents
	LineIndex int    // 0-based position in the line list
	Line      string // lowercased own line
	Context   string // lowercased previous + own + next line
}

// Candidate values outside (0, $10,000) are excluded: receipts rarely exceed
// four figures, and zero/negative parses are degenerate matches.
const maxCandidateCents = 1_000_000

// moneyTokenRe matches a well-formed two-decimal money token: optional dollar
// sign, optional whitespace, digits with optional comma thousands separators,
// a literal decimal point and exactly two decimals. Integer and single-decimal
// amounts are intentionally not totals - genuine receipt totals are reliably
// printed with cents.
var moneyTokenRe = regexp.MustCompile(`\$?\s?\d{1,3}(?:,\d{3})*\.\d{2}|\$?\s?\d+\.\d{2}`)

// FindCandidates scans every line for money tokens and builds one candidate
// per surviving match. Multiple matches on one line become independent
// candidates sharing the same context window. Zero matches is a valid result.
func FindCandidates(lines []string) []Candidate {
	var candidates []Candidate

	for i, line := range lines {
		locs := moneyTokenRe.FindAllStringIndex(line, -1)
		if locs == nil {
			continue
		}

		for _, loc := range locs {
			// A trailing third decimal digit means this is not a money
			// token (e.g. "3.005 kg").
			if loc[1] < len(line) && line[loc[1]] >= '0' && line[loc[1]] <= '9' {
				continue
			}

			token := line[loc[0]:loc[1]]
			m, err := money.ParseToken(token, money.AUD)
			if err != nil {
				continue
			}
			if !m.IsPositive() || m.Cents() >= maxCandidateCents {
				continue
			}

			candidates = append(candidates, Candidate{
				Raw:       token,
				Cents:     m.Cents(),
				LineIndex: i,
				Line:      strings.ToLower(line),
				Context:   contextWindow(lines, i),
			})
		}
	}

	return candidates
}

// contextWindow concatenates the lowercased previous, current and next line.
// Out-of-range neighbors contribute the empty string.
func contextWindow(lines []string, i int) string {
	var b strings.Builder
	if i > 0 {
		b.WriteString(lines[i-1])
		b.WriteByte(' ')
	}
	b.WriteString(lines[i])
	if i < len(lines)-1 {
		b.WriteByte(' ')
		b.WriteString(lines[i+1])
	}
	return strings.ToLower(b.String())
}
