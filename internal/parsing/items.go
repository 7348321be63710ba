package parsing

import (
	"regexp"
	"strings"
)

// Candidate is one (description, price) pair scanned from receipt text,
// before any classification. The price keeps its raw comma-decimal form.
type Candidate struct {
	Description string
	Price       string
}

var itemPattern = regexp.MustCompile(`\d\s+([A-ZÁÉÍÓÚÑÜ\s]+)\s+(\d+,\d{2})`)

// ExtractItems scans receipt text for product entries. Lines carrying a
// non-product label are discarded first, then the remaining text is scanned
// for quantity-description-price patterns, and candidates whose description
// matches the noise token set are rejected. Output order follows the source
// text.
func ExtractItems(text string) []Candidate {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if !isNoiseLine(line) {
			kept = append(kept, line)
		}
	}

	matches := itemPattern.FindAllStringSubmatch(strings.Join(kept, "\n"), -1)
	candidates := make([]Candidate, 0, len(matches))
	for _, m := range matches {
		description := strings.TrimSpace(m[1])
		if description == "" || IsNoise(description) {
			continue
		}
		candidates = append(candidates, Candidate{Description: description, Price: m[2]})
	}
	return candidates
}
