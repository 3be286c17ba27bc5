// Package extraction turns raw receipt OCR text into a structured transaction
// record: merchant, total paid, date and spending category. The engine is a
// pure function of its input - no I/O, no globals, no shared mutable state -
// so concurrent calls on different inputs need no coordination.
package extraction

import (
	"errors"
	"strings"
	"time"

	"github.com/FACorreiaa/receipt-scan/pkg/money"
)

// ErrNoText is the engine's single hard failure mode: it was invoked with no
// usable text. Every other miss (no amount, no merchant, no date) is a
// partial result, not an error.
var ErrNoText = errors.New("extraction: no recognizable text")

// CategoryLookup maps receipt text to a spending category. The mapping table
// is owned outside the engine.
type CategoryLookup interface {
	Lookup(text string) (category string, ok bool)
}

// Result is the engine's output. Empty and nil fields mean "undetermined" and
// must stay user-editable downstream; Category is never empty.
type Result struct {
	Merchant string     `json:"merchant"`
	Amount   string     `json:"amount"` // decimal string, no symbol
	Date     *time.Time `json:"date"`
	Items    []string   `json:"items"` // reserved
	Category string     `json:"category"`
}

// Engine runs the extraction pipeline over a transcript.
type Engine struct {
	merchants       *MerchantExtractor
	lookup          CategoryLookup
	defaultCategory string
	now             func() time.Time
	trace           ScoreTrace
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock injects the time source used by date validation.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithScoreTrace installs an observer for amount scoring decisions.
func WithScoreTrace(trace ScoreTrace) Option {
	return func(e *Engine) { e.trace = trace }
}

// WithDefaultCategory overrides the category applied when the lookup misses.
func WithDefaultCategory(category string) Option {
	return func(e *Engine) { e.defaultCategory = category }
}

// New builds an Engine. The category lookup and merchant dictionary are
// explicit dependencies; lookup may be nil, in which case every receipt
// resolves to the default category.
func New(merchants *MerchantExtractor, lookup CategoryLookup, opts ...Option) *Engine {
	e := &Engine{
		merchants:       merchants,
		lookup:          lookup,
		defaultCategory: "Other",
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract runs the full pipeline: normalize lines, find and score amount
// candidates, then merchant, date and category over the same lines. On
// ErrNoText the Result still carries the default category so callers can
// distinguish "no text recognized" from an ordinary all-blank receipt.
func (e *Engine) Extract(raw string) (Result, error) {
	result := Result{
		Items:    []string{},
		Category: e.defaultCategory,
	}

	lines := SplitLines(raw)
	if len(lines) == 0 {
		return result, ErrNoText
	}

	candidates := FindCandidates(lines)
	scored := ScoreCandidates(candidates, e.trace)
	if best, ok := SelectTotal(scored); ok {
		result.Amount = money.New(best.Cents, money.AUD).String()
	}

	result.Merchant = e.merchants.Extract(lines, raw)
	result.Date = FindDate(lines, e.now)

	if e.lookup != nil {
		if category, ok := e.lookup.Lookup(strings.ToLower(raw)); ok {
			result.Category = category
		}
	}

	return result, nil
}
