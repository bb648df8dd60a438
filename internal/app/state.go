// Package app holds the explicit application state handle. It replaces
// ambient singletons: the handle is built once at the application root
// and threaded down to every screen.
package app

import (
	"time"

	"github.com/hammamikhairi/panela/internal/account"
	"github.com/hammamikhairi/panela/internal/domain"
	"github.com/hammamikhairi/panela/internal/favorites"
	"github.com/hammamikhairi/panela/internal/logger"
	"github.com/hammamikhairi/panela/internal/prefs"
)

// State wires the services together with the cross-screen selections.
// Screens read and write it through accessor functions only.
type State struct {
	Catalog   domain.CatalogSource
	Favorites *favorites.Service
	Accounts  *account.Service
	Prefs     *prefs.Service
	Log       *logger.Logger

	// LoadingDelay is the minimum perceived latency of the recipe list
	// loading transition. Zero means no artificial delay.
	LoadingDelay time.Duration

	category domain.Category // injected by home shortcuts, consumed by the recipe list
}

// New builds the state handle. Call once from main.
func New(
	catalog domain.CatalogSource,
	favs *favorites.Service,
	accounts *account.Service,
	display *prefs.Service,
	delay time.Duration,
	log *logger.Logger,
) *State {
	return &State{
		Catalog:      catalog,
		Favorites:    favs,
		Accounts:     accounts,
		Prefs:        display,
		Log:          log,
		LoadingDelay: delay,
	}
}

// SelectCategory injects a category selection for the recipe list.
// An empty category means "show all".
func (s *State) SelectCategory(c domain.Category) {
	s.category = c
}

// SelectedCategory returns the injected category, if any.
func (s *State) SelectedCategory() domain.Category {
	return s.category
}
