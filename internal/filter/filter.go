// Package filter implements the recipe filter engine: a pure, stable,
// single-pass selection over the catalog driven by a FilterState.
package filter

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hammamikhairi/panela/internal/domain"
)

// Apply returns the recipes visible under the given state. A recipe passes
// when every dimension passes; within a dimension selections are OR'd and
// an empty selection matches everything. Output preserves catalog order.
func Apply(catalog []domain.Recipe, state domain.FilterState, favorites domain.FavoriteSet) []domain.Recipe {
	query := Normalize(state.Query)

	out := make([]domain.Recipe, 0, len(catalog))
	for _, r := range catalog {
		if !matchesCategory(r, state.Categories) {
			continue
		}
		if !matchesDifficulty(r, state.Difficulties) {
			continue
		}
		if !matchesTime(r, state.TimeRanges) {
			continue
		}
		if state.FavoritesOnly && !favorites.Has(r.Title) {
			continue
		}
		if query != "" && !strings.Contains(Normalize(r.Title), query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesCategory(r domain.Recipe, selected []domain.Category) bool {
	if len(selected) == 0 {
		return true
	}
	for _, c := range selected {
		if r.Category == c {
			return true
		}
	}
	return false
}

func matchesDifficulty(r domain.Recipe, selected []domain.Difficulty) bool {
	if len(selected) == 0 {
		return true
	}
	for _, d := range selected {
		if r.Difficulty == d {
			return true
		}
	}
	return false
}

func matchesTime(r domain.Recipe, selected []domain.TimeRange) bool {
	if len(selected) == 0 {
		return true
	}
	for _, bucket := range selected {
		if bucket.Matches(r.Minutes) {
			return true
		}
	}
	return false
}

// stripMarks decomposes to NFD, drops combining marks and recomposes,
// so "Café" and "cafe" fold to the same string.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases a string and strips diacritics. Search compares
// normalized query against normalized title.
func Normalize(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
