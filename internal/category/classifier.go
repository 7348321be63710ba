// Package category assigns spending categories to item descriptions using an
// ordered keyword taxonomy.
package category

import (
	"regexp"
	"strings"
)

var nonLetter = regexp.MustCompile(`[^\p{L}\s]`)

// Normalize strips every character that is not a letter or whitespace and
// lowercases the remainder. Keywords in a Taxonomy are expected to already be
// in this form.
func Normalize(description string) string {
	return strings.ToLower(nonLetter.ReplaceAllString(description, ""))
}

// Classify returns the name of the first category whose keywords occur in the
// normalized description. Descriptions matching no category get Fallback.
func (t Taxonomy) Classify(description string) string {
	normalized := Normalize(description)
	for _, c := range t {
		for _, keyword := range c.Keywords {
			if strings.Contains(normalized, keyword) {
				return c.Name
			}
		}
	}
	return Fallback
}
