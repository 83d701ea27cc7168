package tui

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/rshade/slayerdex/internal/character"
)

// fold strips diacritics and case-folds s, so "Kyōjurō" matches "kyojuro".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}

// filterSummaries keeps the items whose name contains query, in their
// original order.
func filterSummaries(items []character.Summary, query string) []character.Summary {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	needle := fold(query)
	out := make([]character.Summary, 0, len(items))
	for _, item := range items {
		if strings.Contains(fold(item.Name), needle) {
			out = append(out, item)
		}
	}
	return out
}
