// Package catalog provides the static recipe catalog.
package catalog

import (
	"github.com/hammamikhairi/panela/internal/domain"
	"github.com/hammamikhairi/panela/internal/logger"
)

// Compile-time interface check.
var _ domain.CatalogSource = (*Source)(nil)

// Source holds the built-in recipes in memory. The catalog is read-only
// after construction; List and the flag views preserve seed order, which
// is the display order everywhere in the app.
type Source struct {
	recipes []domain.Recipe
	byTitle map[string]int
	log     *logger.Logger
}

// New creates the catalog preloaded with the built-in recipes.
func New(log *logger.Logger) *Source {
	src := &Source{
		byTitle: make(map[string]int),
		log:     log,
	}
	src.seed()
	return src
}

// List returns all recipes in catalog order. The returned slice is shared;
// callers must not mutate it.
func (s *Source) List() []domain.Recipe {
	s.log.Debug("catalog: listing %d recipes", len(s.recipes))
	return s.recipes
}

// Get returns a recipe by title.
func (s *Source) Get(title string) (*domain.Recipe, error) {
	i, ok := s.byTitle[title]
	if !ok {
		s.log.Debug("catalog: recipe not found: %s", title)
		return nil, domain.ErrNotFound
	}
	return &s.recipes[i], nil
}

// Highlights returns the recipes flagged for the home highlights rail,
// in catalog order.
func (s *Source) Highlights() []domain.Recipe {
	var out []domain.Recipe
	for _, r := range s.recipes {
		if r.Highlight {
			out = append(out, r)
		}
	}
	return out
}

// SliderItems returns the recipes flagged for the promo slider, in
// catalog order.
func (s *Source) SliderItems() []domain.Recipe {
	var out []domain.Recipe
	for _, r := range s.recipes {
		if r.Slider {
			out = append(out, r)
		}
	}
	return out
}

func (s *Source) add(r domain.Recipe) {
	if _, dup := s.byTitle[r.Title]; dup {
		// Titles are the identity key; a duplicate seed is a bug.
		panic("catalog: duplicate recipe title " + r.Title)
	}
	s.byTitle[r.Title] = len(s.recipes)
	s.recipes = append(s.recipes, r)
}
