package extraction

import (
	"regexp"
	"strings"

	"github.com/FACorreiaa/receipt-scan/internal/domain/refdata"
)

// MerchantExtractor resolves the trading name from receipt lines via an
// ordered strategy cascade; each stage short-circuits on its first confident
// hit, and a full miss yields "" (a normal outcome callers must handle).
type MerchantExtractor struct {
	chains     []chainPattern
	strategies []merchantStrategy
}

type chainPattern struct {
	re   *regexp.Regexp
	name string
}

type merchantStrategy struct {
	name string
	fn   func(lines []string, fullText string) string
}

var (
	greetingRe     = regexp.MustCompile(`(?i)welcome\s+to\s+(.+)`)
	greetingStopRe = regexp.MustCompile(`(?i)\b(?:restaurant|store|number)\b`)
	brandTagRe     = regexp.MustCompile(`\s[A-Z]{2,}\s[A-Z]{2,}(?:\s|$)`)

	businessNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z&'.\- ]{2,29}$`)
	skipHeaderRe   = regexp.MustCompile(`(?i)\border\b|\bnumber\b|\bemail\b|@|\babn\b|\btax\b|\binvoice\b`)
	storeLabelRe   = regexp.MustCompile(`(?i)^(?:restaurant|store)\s*(?:number|no\.?|#)`)
	numericLineRe  = regexp.MustCompile(`^[\d\s\-/:.#]+$`)
)

// locationHints maps well-known place names to the chain that anchors them.
// Deliberately narrow; acceptable only as a last resort.
var locationHints = []struct {
	keyword string
	chain   string
}{
	{"westfield", "Westfield"},
	{"broadway", "Broadway Shopping Centre"},
	{"chadstone", "Chadstone Shopping Centre"},
	{"bourke st", "Bourke Street Mall"},
	{"pitt st", "Pitt Street Mall"},
}

// NewMerchantExtractor compiles the known-chain dictionary and fixes the
// cascade order: greeting phrase, header scan, chain dictionary, location
// fallback.
func NewMerchantExtractor(merchants []refdata.Merchant) *MerchantExtractor {
	e := &MerchantExtractor{}

	for _, m := range merchants {
		re, err := regexp.Compile(`(?i)\b(?:` + m.Pattern + `)\b`)
		if err != nil {
			continue
		}
		e.chains = append(e.chains, chainPattern{re: re, name: m.Name})
	}

	e.strategies = []merchantStrategy{
		{"greeting-phrase", e.fromGreeting},
		{"header-scan", e.fromHeader},
		{"known-chain", e.fromChains},
		{"location-hint", e.fromLocation},
	}
	return e
}

// Extract runs the cascade and returns the first hit, or "".
func (e *MerchantExtractor) Extract(lines []string, fullText string) string {
	for _, s := range e.strategies {
		if name := s.fn(lines, fullText); name != "" {
			return name
		}
	}
	return ""
}

// fromGreeting captures X from a "welcome to X" phrase, trimmed at a trailing
// all-caps two-word brand tag, a restaurant/store/number marker, or the end
// of the line.
func (e *MerchantExtractor) fromGreeting(lines []string, _ string) string {
	for _, line := range lines {
		m := greetingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		rest := m[1]

		if loc := greetingStopRe.FindStringIndex(rest); loc != nil {
			rest = rest[:loc[0]]
		}
		if loc := brandTagRe.FindStringIndex(rest); loc != nil {
			rest = rest[:loc[0]]
		}

		if name := strings.TrimSpace(rest); len(name) >= 3 {
			return name
		}
	}
	return ""
}

// fromHeader scans the first 5 lines for something shaped like a short
// business name, skipping purely numeric lines and order/contact/tax noise.
func (e *MerchantExtractor) fromHeader(lines []string, _ string) string {
	limit := min(len(lines), 5)
	for _, line := range lines[:limit] {
		if numericLineRe.MatchString(line) || skipHeaderRe.MatchString(line) {
			continue
		}
		if storeLabelRe.MatchString(line) {
			continue
		}
		if businessNameRe.MatchString(line) {
			return line
		}
	}
	return ""
}

// fromChains tries the dictionary patterns against the whole text in order;
// first match wins.
func (e *MerchantExtractor) fromChains(_ []string, fullText string) string {
	for _, c := range e.chains {
		if c.re.MatchString(fullText) {
			return c.name
		}
	}
	return ""
}

// fromLocation looks for a known place name near the top or bottom of the
// receipt and maps it to its well-known chain.
func (e *MerchantExtractor) fromLocation(lines []string, _ string) string {
	edges := edgeLines(lines, 5)
	for _, line := range edges {
		lower := strings.ToLower(line)
		for _, hint := range locationHints {
			if strings.Contains(lower, hint.keyword) {
				return hint.chain
			}
		}
	}
	return ""
}

// edgeLines returns the first and last n lines without duplicating overlap.
func edgeLines(lines []string, n int) []string {
	if len(lines) <= 2*n {
		return lines
	}
	out := make([]string, 0, 2*n)
	out = append(out, lines[:n]...)
	out = append(out, lines[len(lines)-n:]...)
	return out
}
