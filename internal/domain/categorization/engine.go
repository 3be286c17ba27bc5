// Package categorization resolves a spending category for a receipt from the
// merchant dictionary. It is the engine's external business -> category
// collaborator: keyword lookup over the full receipt text, with a fuzzy
// fallback over dictionary merchant names.
package categorization

import (
	"strings"
	"sync"

	"github.com/cloudflare/ahocorasick"

	"github.com/FACorreiaa/receipt-scan/internal/domain/refdata"
)

// DefaultCategory is applied when no dictionary entry matches.
const DefaultCategory = "Other"

// Engine is a keyword matching engine using the Aho-Corasick algorithm.
// All dictionary keywords are matched in a single pass through the text,
// independent of the number of keywords.
type Engine struct {
	matcher  *ahocorasick.Matcher
	keywords []string // unique keywords in matcher order
	category []string // category per keyword index
	mu       sync.RWMutex
}

// NewEngine builds a categorization engine from the merchant dictionary.
func NewEngine(merchants []refdata.Merchant) *Engine {
	e := &Engine{}
	e.Build(merchants)
	return e
}

// Build reconstructs the matcher. It can be called again when the externally
// versioned dictionary is reloaded.
func (e *Engine) Build(merchants []refdata.Merchant) {
	e.mu.Lock()
	defer e.mu.Unlock()

	seen := make(map[string]int)
	var keywords []string
	var category []string

	for _, m := range merchants {
		for _, kw := range m.KeywordList() {
			if _, dup := seen[kw]; dup {
				continue
			}
			seen[kw] = len(keywords)
			keywords = append(keywords, kw)
			category = append(category, m.Category)
		}
	}

	e.keywords = keywords
	e.category = category

	if len(keywords) == 0 {
		e.matcher = nil
		return
	}

	patterns := make([][]byte, len(keywords))
	for i, kw := range keywords {
		patterns[i] = []byte(kw)
	}
	e.matcher = ahocorasick.NewMatcher(patterns)
}

// Lookup finds dictionary keywords in the text and returns the category of the
// most specific (longest) hit. The boolean reports whether anything matched.
func (e *Engine) Lookup(text string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.matcher == nil || text == "" {
		return "", false
	}

	matches := e.matcher.Match([]byte(strings.ToLower(text)))
	if len(matches) == 0 {
		return "", false
	}

	// Longer keywords are stronger evidence than short ones ("dan murphy"
	// should beat "bp" when both fire).
	best := -1
	for _, idx := range matches {
		if idx < 0 || idx >= len(e.keywords) {
			continue
		}
		if best == -1 || len(e.keywords[idx]) > len(e.keywords[best]) {
			best = idx
		}
	}
	if best == -1 {
		return "", false
	}
	return e.category[best], true
}

// Resolve is Lookup with the fixed fallback applied; it never returns "".
func (e *Engine) Resolve(text string) string {
	if category, ok := e.Lookup(text); ok {
		return category
	}
	return DefaultCategory
}

// KeywordCount returns the number of keywords loaded in the engine.
func (e *Engine) KeywordCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.keywords)
}
