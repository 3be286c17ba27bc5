// Package refdata loads the merchant dictionary used by merchant extraction
// and category resolution. The table is externally supplied static data,
// versioned independently of the engine; a default snapshot is embedded so the
// binaries work with no configuration.
package refdata

import (
	"fmt"
	"io"
	"os"
	"strings"

	_ "embed"

	"github.com/gocarina/gocsv"
)

//go:embed merchants.csv
var defaultCSV []byte

// Merchant is one row of the dictionary: a regex fragment for whole-text
// matching, the clean display name, the spending category, and plain lowercase
// keywords for single-pass category lookup.
type Merchant struct {
	Pattern  string `csv:"pattern"`
	Name     string `csv:"name"`
	Category string `csv:"category"`
	Keywords string `csv:"keywords"`
}

// KeywordList splits the semicolon-separated keyword column.
func (m Merchant) KeywordList() []string {
	parts := strings.Split(m.Keywords, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}

// Load reads the dictionary from r.
func Load(r io.Reader) ([]Merchant, error) {
	var merchants []Merchant
	if err := gocsv.Unmarshal(r, &merchants); err != nil {
		return nil, fmt.Errorf("parse merchant dictionary: %w", err)
	}
	return merchants, nil
}

// LoadFile reads the dictionary from an external CSV path.
func LoadFile(path string) ([]Merchant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open merchant dictionary: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Default returns the embedded dictionary snapshot.
func Default() []Merchant {
	merchants, err := Load(strings.NewReader(string(defaultCSV)))
	if err != nil {
		// The embedded snapshot is validated by tests; a parse failure here
		// is a build defect, not a runtime condition.
		panic(err)
	}
	return merchants
}
