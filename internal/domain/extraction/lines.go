package extraction

import "strings"

// SplitLines turns a raw OCR transcript into the ordered list of trimmed,
// non-empty lines every extractor operates over. Order encodes the receipt
// layout top to bottom. Empty input yields an empty list; downstream
// components treat that as "no match", never as a fault.
func SplitLines(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
