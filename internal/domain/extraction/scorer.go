package extraction

import "regexp"

// The scorer classifies every money candidate with a signed integer weight and
// picks the single most total-like one. Receipts are adversarial text: the
// same value legitimately appears as an item price, a tax component, a "was"
// price and the real total, and no layout information survives OCR
// flattening, so the weights encode receipt conventions instead (totals
// cluster near payment words, items near quantity markers).
//
// Priority lives in data, not control flow: penaltyRules is an ordered list
// of mutually-exclusive named rules (first match applies), positive scoring
// and the unconditional adjustments follow. The relative ordering
// comparison-price > discount > item-line > tax-only is the load-bearing
// contract; the magnitudes are empirically tuned.

// ScoreTrace observes each rule application; used for verbose scoring
// diagnostics without making the scorer itself log.
type ScoreTrace func(c Candidate, rule string, delta int)

// ScoredCandidate pairs a candidate with its accumulated score.
type ScoredCandidate struct {
	Candidate
	Score int
}

var (
	// Item-line and fuel-purchase shapes: "2 @ $4.50 ea =", "31.42L @ 1.89".
	quantityAtRe = regexp.MustCompile(`\d(?:\.\d+)?\s*@|@\s*\$?\d`)
	fuelAtRe     = regexp.MustCompile(`\d+(?:\.\d+)?\s?(?:l|ltr|litres?|liters?|gal|gallons?)\s*@`)

	// Comparison/reference prices that were never charged.
	comparisonRe = regexp.MustCompile(`why\s+pay|was\s+\$|\brrp\b|recommended\s+retail`)

	// Discounts: a minus sign adjacent to a money-shaped number, discount
	// vocabulary, or an explicit percentage-off.
	negativeAmountRe  = regexp.MustCompile(`-\s?\$?\d+\.\d{2}|\d+\.\d{2}\s?-`)
	discountWordRe    = regexp.MustCompile(`\bdiscount\b|\bdisc\b|\boff\b|\bsavings?\b|\bpromo\b|\bcoupon\b|\brebate\b`)
	percentDiscountRe = regexp.MustCompile(`\d+(?:\.\d+)?\s?%.*\bdisc`)
	saleLineRe        = regexp.MustCompile(`\b(?:cash|credit)\b.*\b(?:sale|transaction)\b`)

	// Tax-only lines: "GST of $4.50", "TAX AMOUNT 4.50".
	taxOnlyRe = regexp.MustCompile(`\b(?:gst|tax)\s+(?:of|is|amount)\s*:?\s?\$?\d+\.\d{2}`)

	// Positive signals.
	totalWordRe      = regexp.MustCompile(`\btotal\b`)
	totalIncludesRe  = regexp.MustCompile(`\btotal\s+includes\b`)
	paymentKeywordRe = regexp.MustCompile(`\beftpos\b|\bpayment\b|amount\s+due|\bbalance\b|\bdue\b|\bfinal\b|\bcharged\b|\bpaid\b`)
	subtotalRe       = regexp.MustCompile(`\bsub\s?total\b`)
	paymentMethodRe  = regexp.MustCompile(`\bvisa\b|\bmastercard\b|\beft\s?pos\b|\bcard\b|\bmanual\b`)
	amountDueRe      = regexp.MustCompile(`amount\s+due`)
	changeRe         = regexp.MustCompile(`\bchange\b`)
)

// scoreRule is one named scoring rule: a predicate over the candidate and the
// score delta applied when it holds.
type scoreRule struct {
	name  string
	delta int
	match func(c *Candidate) bool
}

// penaltyRules are evaluated in priority order and are mutually exclusive:
// the first matching rule applies and ends the primary phase. The predicates
// read the candidate's own line, not the three-line window - a "why pay" or
// discount line must penalize its own price only, never the genuine total
// printed on an adjacent line.
var penaltyRules = []scoreRule{
	{
		name:  "item-line",
		delta: -50,
		match: func(c *Candidate) bool {
			return quantityAtRe.MatchString(c.Line) || fuelAtRe.MatchString(c.Line)
		},
	},
	{
		name:  "comparison-price",
		delta: -300,
		match: func(c *Candidate) bool {
			return comparisonRe.MatchString(c.Line)
		},
	},
	{
		name:  "discount",
		delta: -200,
		match: func(c *Candidate) bool {
			if negativeAmountRe.MatchString(c.Line) {
				return true
			}
			if percentDiscountRe.MatchString(c.Line) {
				return true
			}
			return discountWordRe.MatchString(c.Line) && !saleLineRe.MatchString(c.Line)
		},
	},
	{
		name:  "tax-only",
		delta: -80,
		match: func(c *Candidate) bool {
			return taxOnlyRe.MatchString(c.Line)
		},
	},
}

// positiveRules accumulate on candidates that matched no penalty rule. They
// read the context window: a value often sits one line below its "TOTAL" or
// "AMOUNT DUE" label.
var positiveRules = []scoreRule{
	{
		name:  "total-or-payment",
		delta: 100,
		match: func(c *Candidate) bool { return isFinalTotalContext(c.Context) },
	},
	{
		name:  "subtotal",
		delta: 40,
		match: func(c *Candidate) bool {
			return !isFinalTotalContext(c.Context) && subtotalRe.MatchString(c.Context)
		},
	},
	{
		name:  "payment-method",
		delta: 120,
		match: func(c *Candidate) bool {
			return paymentMethodRe.MatchString(c.Context) && !changeRe.MatchString(c.Context)
		},
	},
	{
		name:  "amount-due",
		delta: 140,
		match: func(c *Candidate) bool { return amountDueRe.MatchString(c.Context) },
	},
}

// adjustmentRules apply to every candidate regardless of branch.
var adjustmentRules = []scoreRule{
	{
		name:  "change-line",
		delta: -100,
		match: func(c *Candidate) bool {
			return changeRe.MatchString(c.Context) && !paymentMethodRe.MatchString(c.Context)
		},
	},
	{
		name:  "tiny-value",
		delta: -30,
		match: func(c *Candidate) bool { return c.Cents < 100 },
	},
	{
		name:  "small-value",
		delta: -15,
		match: func(c *Candidate) bool { return c.Cents >= 100 && c.Cents < 500 },
	},
	{
		name:  "plausible-total-band",
		delta: 20,
		match: func(c *Candidate) bool { return c.Cents >= 500 && c.Cents <= 100_000 },
	},
}

const (
	duplicateBonus        = 40
	duplicatePaymentBonus = 30
)

// isFinalTotalContext reports a final-total keyword ("total" as its own word,
// not "total includes") or any payment keyword.
func isFinalTotalContext(ctx string) bool {
	if totalWordRe.MatchString(ctx) && !totalIncludesRe.MatchString(ctx) {
		return true
	}
	return paymentKeywordRe.MatchString(ctx)
}

// isPaymentContext reports whether a context independently qualifies as
// payment/total evidence for the duplicate bonus.
func isPaymentContext(ctx string) bool {
	return isFinalTotalContext(ctx) || paymentMethodRe.MatchString(ctx)
}

// ScoreCandidates scores every candidate. The duplicate-value bonus is
// computed over the whole set using exact cents: a total printed as a
// subtotal line and repeated as "amount due" outranks a one-off item price of
// identical value.
func ScoreCandidates(candidates []Candidate, trace ScoreTrace) []ScoredCandidate {
	if len(candidates) == 0 {
		return nil
	}
	if trace == nil {
		trace = func(Candidate, string, int) {}
	}

	valueCount := make(map[int64]int, len(candidates))
	for _, c := range candidates {
		valueCount[c.Cents]++
	}

	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		score := 0

		penalized := false
		for _, rule := range penaltyRules {
			if rule.match(&c) {
				score += rule.delta
				trace(c, rule.name, rule.delta)
				penalized = true
				break
			}
		}

		if !penalized {
			for _, rule := range positiveRules {
				if rule.match(&c) {
					score += rule.delta
					trace(c, rule.name, rule.delta)
				}
			}
		}

		for _, rule := range adjustmentRules {
			if rule.match(&c) {
				score += rule.delta
				trace(c, rule.name, rule.delta)
			}
		}

		if valueCount[c.Cents] >= 2 {
			score += duplicateBonus
			trace(c, "duplicate-value", duplicateBonus)
			if isPaymentContext(c.Context) {
				score += duplicatePaymentBonus
				trace(c, "duplicate-payment-context", duplicatePaymentBonus)
			}
		}

		scored = append(scored, ScoredCandidate{Candidate: c, Score: score})
	}

	return scored
}

// SelectTotal picks the winning candidate: strictly-greater score replaces the
// running best, so ties keep the earliest-occurring candidate. ok is false
// when the list is empty.
func SelectTotal(scored []ScoredCandidate) (ScoredCandidate, bool) {
	if len(scored) == 0 {
		return ScoredCandidate{}, false
	}

	best := scored[0]
	for _, sc := range scored[1:] {
		if sc.Score > best.Score {
			best = sc
		}
	}
	return best, true
}
