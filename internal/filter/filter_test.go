package filter

import (
	"testing"

	"github.com/hammamikhairi/panela/internal/domain"
)

func minutes(n int) *int { return &n }

// fixtureCatalog is small but covers every category, difficulty and time
// bucket boundary the engine has to discriminate.
func fixtureCatalog() []domain.Recipe {
	return []domain.Recipe{
		{Title: "Tapioca de Coco", Category: domain.CategoryCoffee, Difficulty: domain.DifficultyEasy, Minutes: 5},
		{Title: "Pão de Queijo", Category: domain.CategoryCoffee, Difficulty: domain.DifficultyEasy, Minutes: 10},
		{Title: "Farofa de Manteiga", Category: domain.CategorySide, Difficulty: domain.DifficultyEasy, Minutes: 15},
		{Title: "Strogonoff de Frango", Category: domain.CategoryMain, Difficulty: domain.DifficultyMedium, Minutes: 30},
		{Title: "Café Gelado", Category: domain.CategoryCoffee, Difficulty: domain.DifficultyEasy, Minutes: 31},
		{Title: "Bolo de Chocolate", Category: domain.CategorySweet, Difficulty: domain.DifficultyMedium, Minutes: 40},
		{Title: "Feijoada Completa", Category: domain.CategoryMain, Difficulty: domain.DifficultyHard, Minutes: 120},
	}
}

func titles(recipes []domain.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.Title
	}
	return out
}

func assertTitles(t *testing.T, got []domain.Recipe, want ...string) {
	t.Helper()
	gotTitles := titles(got)
	if len(gotTitles) != len(want) {
		t.Fatalf("expected %v, got %v", want, gotTitles)
	}
	for i := range want {
		if gotTitles[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, gotTitles)
		}
	}
}

func TestEmptyStateReturnsFullCatalogInOrder(t *testing.T) {
	catalog := fixtureCatalog()
	got := Apply(catalog, domain.FilterState{}, nil)
	assertTitles(t, got, titles(catalog)...)
}

func TestCategorySelectionIsDisjunctive(t *testing.T) {
	catalog := fixtureCatalog()
	state := domain.FilterState{
		Categories: []domain.Category{domain.CategorySweet, domain.CategoryMain},
	}
	got := Apply(catalog, state, nil)
	assertTitles(t, got, "Strogonoff de Frango", "Bolo de Chocolate", "Feijoada Completa")
}

func TestDifficultySelection(t *testing.T) {
	catalog := fixtureCatalog()
	state := domain.FilterState{
		Difficulties: []domain.Difficulty{domain.DifficultyHard},
	}
	got := Apply(catalog, state, nil)
	assertTitles(t, got, "Feijoada Completa")
}

func TestTimeBucketBoundaries(t *testing.T) {
	catalog := fixtureCatalog()

	tests := []struct {
		name  string
		state domain.FilterState
		want  []string
	}{
		{
			// Upper bound inclusive: 5 belongs to 0-5, not 5-15.
			name:  "0-5 bucket",
			state: domain.FilterState{TimeRanges: []domain.TimeRange{{Label: "0-5 min", Min: 0, Max: minutes(5)}}},
			want:  []string{"Tapioca de Coco"},
		},
		{
			name:  "5-15 bucket",
			state: domain.FilterState{TimeRanges: []domain.TimeRange{{Label: "5-15 min", Min: 5, Max: minutes(15)}}},
			want:  []string{"Pão de Queijo", "Farofa de Manteiga"},
		},
		{
			// 30 still belongs to 15-30; 31 does not.
			name:  "15-30 bucket",
			state: domain.FilterState{TimeRanges: []domain.TimeRange{{Label: "15-30 min", Min: 15, Max: minutes(30)}}},
			want:  []string{"Strogonoff de Frango"},
		},
		{
			name:  "unbounded bucket",
			state: domain.FilterState{TimeRanges: []domain.TimeRange{{Label: "30+ min", Min: 30, Max: nil}}},
			want:  []string{"Café Gelado", "Bolo de Chocolate", "Feijoada Completa"},
		},
		{
			// Within a dimension selections are OR'd.
			name: "two buckets",
			state: domain.FilterState{TimeRanges: []domain.TimeRange{
				{Label: "0-5 min", Min: 0, Max: minutes(5)},
				{Label: "30+ min", Min: 30, Max: nil},
			}},
			want: []string{"Tapioca de Coco", "Café Gelado", "Bolo de Chocolate", "Feijoada Completa"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(catalog, tt.state, nil)
			assertTitles(t, got, tt.want...)
		})
	}
}

func TestSearchIgnoresCaseAndDiacritics(t *testing.T) {
	catalog := fixtureCatalog()

	tests := []struct {
		query string
		want  []string
	}{
		{"cafe", []string{"Café Gelado"}},
		{"CAFÉ", []string{"Café Gelado"}},
		{"pao", []string{"Pão de Queijo"}},
		{"feijoada", []string{"Feijoada Completa"}},
		{"nada-disso", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := Apply(catalog, domain.FilterState{Query: tt.query}, nil)
			assertTitles(t, got, tt.want...)
		})
	}
}

func TestFavoritesOnly(t *testing.T) {
	catalog := fixtureCatalog()
	favs := domain.NewFavoriteSet("Pão de Queijo", "Feijoada Completa")

	got := Apply(catalog, domain.FilterState{FavoritesOnly: true}, favs)
	assertTitles(t, got, "Pão de Queijo", "Feijoada Completa")

	// Flag off: favorites are irrelevant.
	got = Apply(catalog, domain.FilterState{}, favs)
	assertTitles(t, got, titles(catalog)...)

	// Flag on with no favorites: nothing passes.
	got = Apply(catalog, domain.FilterState{FavoritesOnly: true}, nil)
	assertTitles(t, got)
}

func TestDimensionsCombineConjunctively(t *testing.T) {
	catalog := fixtureCatalog()

	// Category Doce alone.
	state := domain.FilterState{Categories: []domain.Category{domain.CategorySweet}}
	got := Apply(catalog, state, nil)
	assertTitles(t, got, "Bolo de Chocolate")

	// Adding the 30+ bucket still matches (tempo 40).
	state.TimeRanges = []domain.TimeRange{{Label: "30+ min", Min: 30, Max: nil}}
	got = Apply(catalog, state, nil)
	assertTitles(t, got, "Bolo de Chocolate")

	// Switching to 0-5 empties the result.
	state.TimeRanges = []domain.TimeRange{{Label: "0-5 min", Min: 0, Max: minutes(5)}}
	got = Apply(catalog, state, nil)
	assertTitles(t, got)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Café", "cafe"},
		{"PÃO", "pao"},
		{"Açúcar", "acucar"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
