package extraction

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

// ReceiptGenerator produces synthetic OCR transcripts for tests and
// benchmarks. Amounts are deterministic for a given seed.
type ReceiptGenerator struct {
	faker *gofakeit.Faker
}

// NewReceiptGenerator creates a generator with a specific seed for
// reproducibility.
func NewReceiptGenerator(seed int64) *ReceiptGenerator {
	return &ReceiptGenerator{faker: gofakeit.New(seed)}
}

// Receipt builds a plausible receipt transcript: header, item lines, GST,
// total and a tender line. The returned total is what the scorer should pick.
func (g *ReceiptGenerator) Receipt(itemCount int) (transcript string, totalCents int64) {
	var b strings.Builder

	b.WriteString(strings.ToUpper(g.faker.Company()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "ABN %s\n", g.faker.DigitN(11))
	fmt.Fprintf(&b, "TAX INVOICE\n")

	var subtotal int64
	for i := 0; i < itemCount; i++ {
		cents := int64(g.faker.Number(150, 4000))
		subtotal += cents
		fmt.Fprintf(&b, "%s  %d.%02d\n", strings.ToUpper(g.faker.NounConcrete()), cents/100, cents%100)
	}

	gst := subtotal / 11
	fmt.Fprintf(&b, "SUBTOTAL %d.%02d\n", subtotal/100, subtotal%100)
	fmt.Fprintf(&b, "GST AMOUNT $%d.%02d\n", gst/100, gst%100)
	fmt.Fprintf(&b, "TOTAL %d.%02d\n", subtotal/100, subtotal%100)
	fmt.Fprintf(&b, "EFTPOS %d.%02d\n", subtotal/100, subtotal%100)

	return b.String(), subtotal
}

// NoisyLine returns a line of OCR noise with no money token.
func (g *ReceiptGenerator) NoisyLine() string {
	return g.faker.HipsterSentence(4)
}
