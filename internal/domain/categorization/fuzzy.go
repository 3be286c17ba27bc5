package categorization

import (
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/FACorreiaa/receipt-scan/internal/domain/refdata"
)

// FuzzyResolver categorizes an extracted merchant name by similarity to
// dictionary names. It catches OCR variations like "W00LWORTHS METRO" that the
// keyword matcher misses.
type FuzzyResolver struct {
	names    []string // uppercase dictionary names
	category []string
	mu       sync.RWMutex
}

// DefaultFuzzyThreshold is the minimum similarity score (0-100) for a match.
const DefaultFuzzyThreshold = 70

// NewFuzzyResolver builds a fuzzy resolver from the merchant dictionary.
func NewFuzzyResolver(merchants []refdata.Merchant) *FuzzyResolver {
	fr := &FuzzyResolver{}
	fr.Build(merchants)
	return fr
}

// Build reconstructs the resolver from a reloaded dictionary.
func (fr *FuzzyResolver) Build(merchants []refdata.Merchant) {
	fr.mu.Lock()
	defer fr.mu.Unlock()

	fr.names = make([]string, 0, len(merchants))
	fr.category = make([]string, 0, len(merchants))
	for _, m := range merchants {
		name := strings.ToUpper(strings.TrimSpace(m.Name))
		if name == "" {
			continue
		}
		fr.names = append(fr.names, name)
		fr.category = append(fr.category, m.Category)
	}
}

// Categorize returns the category of the dictionary name most similar to the
// merchant, provided the similarity meets the threshold.
func (fr *FuzzyResolver) Categorize(merchant string, threshold int) (string, bool) {
	fr.mu.RLock()
	defer fr.mu.RUnlock()

	normalized := strings.ToUpper(strings.TrimSpace(merchant))
	if normalized == "" || len(fr.names) == 0 {
		return "", false
	}

	bestScore := threshold - 1
	bestIdx := -1
	for i, name := range fr.names {
		score := similarity(normalized, name)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx == -1 {
		return "", false
	}
	return fr.category[bestIdx], true
}

// similarity scores two uppercase strings 0-100 combining containment,
// Levenshtein distance and subsequence ranking.
func similarity(s1, s2 string) int {
	if s1 == s2 {
		return 100
	}

	// Containment is the common case for merchant variations
	// ("WOOLWORTHS METRO 1234" vs "WOOLWORTHS").
	if strings.Contains(s1, s2) {
		return 75 + (25 * len(s2) / len(s1))
	}
	if strings.Contains(s2, s1) {
		return 75 + (25 * len(s1) / len(s2))
	}

	maxLen := max(len(s1), len(s2))
	if maxLen == 0 {
		return 0
	}

	distance := fuzzy.LevenshteinDistance(s1, s2)
	levScore := 100 * (maxLen - distance) / maxLen

	rankScore := 0
	if rank := fuzzy.RankMatchFold(s2, s1); rank >= 0 && rank < len(s1) {
		rankScore = 60 - (rank * 40 / len(s1))
	}

	return max(levScore, rankScore)
}
