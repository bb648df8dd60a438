// Package domain defines the core types and interfaces for the recipe
// browser. All other packages depend on domain; domain depends on nothing.
package domain

// Recipe is a single catalog entry. Recipes are loaded once at startup and
// never mutated; the title is the identity key everywhere (favoriting, list
// rendering, navigation).
type Recipe struct {
	Title       string
	Image       string
	Category    Category
	Difficulty  Difficulty
	Minutes     int // preparation time
	Servings    int
	Description string
	Ingredients map[string]string // name -> quantity, order irrelevant
	Steps       []string          // ordered preparation steps
	Slider      bool              // appears in the promo slider
	Highlight   bool              // appears in the highlights rail
}

// Category is one of the four fixed recipe categories.
type Category string

const (
	CategoryCoffee Category = "Café"
	CategorySide   Category = "Acompanhamento"
	CategorySweet  Category = "Doce"
	CategoryMain   Category = "Principal"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryCoffee, CategorySide, CategorySweet, CategoryMain}
}

// Difficulty is one of the three fixed difficulty levels.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Fácil"
	DifficultyMedium Difficulty = "Médio"
	DifficultyHard   Difficulty = "Difícil"
)

// Difficulties returns all difficulty levels in display order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// TimeRange is one preparation-time bucket. Buckets are contiguous and
// non-overlapping: a recipe matches when Min < minutes <= Max, or when
// minutes > Min for the unbounded bucket (Max == nil).
type TimeRange struct {
	Label string
	Min   int  // exclusive lower bound
	Max   *int // inclusive upper bound, nil = unbounded
}

// Matches reports whether a preparation time falls inside the bucket.
func (r TimeRange) Matches(minutes int) bool {
	if r.Max == nil {
		return minutes > r.Min
	}
	return minutes > r.Min && minutes <= *r.Max
}

// TimeRanges returns the filterable time buckets in ascending order:
// 0-5, 5-15, 15-30 and 30+.
func TimeRanges() []TimeRange {
	bound := func(n int) *int { return &n }
	return []TimeRange{
		{Label: "0-5 min", Min: 0, Max: bound(5)},
		{Label: "5-15 min", Min: 5, Max: bound(15)},
		{Label: "15-30 min", Min: 15, Max: bound(30)},
		{Label: "30+ min", Min: 30, Max: nil},
	}
}

// FavoriteSet is the set of favorited recipe titles. It is device-global,
// not per-account; referential integrity with the catalog is not enforced.
type FavoriteSet map[string]struct{}

// NewFavoriteSet builds a set from a list of titles.
func NewFavoriteSet(titles ...string) FavoriteSet {
	s := make(FavoriteSet, len(titles))
	for _, t := range titles {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether a title is favorited.
func (s FavoriteSet) Has(title string) bool {
	_, ok := s[title]
	return ok
}
