// Package favorites persists the device-global set of favorited recipe
// titles under a single store key.
package favorites

import (
	"context"
	"encoding/json"

	"github.com/hammamikhairi/panela/internal/domain"
	"github.com/hammamikhairi/panela/internal/logger"
)

// Key is the store key owned by this service.
const Key = "favorites"

// Service loads and toggles favorites. Writes go through to the store on
// every mutation; the persisted shape is a JSON list of titles in the
// order they were favorited.
type Service struct {
	store  domain.KeyValueStore
	log    *logger.Logger
	titles []string // insertion order, mirrors the persisted list
	loaded bool
}

// New creates a favorites service over the given store.
func New(store domain.KeyValueStore, log *logger.Logger) *Service {
	return &Service{store: store, log: log}
}

// Load reads the persisted favorites. A missing key or an unparsable
// value yields an empty set; read failures are logged, never surfaced.
func (s *Service) Load(ctx context.Context) domain.FavoriteSet {
	s.titles = nil
	s.loaded = true

	raw, err := s.store.Get(ctx, Key)
	if err != nil {
		if err != domain.ErrNotFound {
			s.log.Warn("favorites: read failed, starting empty: %v", err)
		}
		return domain.FavoriteSet{}
	}

	var titles []string
	if err := json.Unmarshal([]byte(raw), &titles); err != nil {
		s.log.Warn("favorites: unparsable value, starting empty: %v", err)
		return domain.FavoriteSet{}
	}

	s.titles = titles
	return domain.NewFavoriteSet(titles...)
}

// Toggle adds the title if absent, removes it if present, persists the
// full resulting list immediately and returns the updated set. The write
// error, if any, is returned so the screen can show a retry message; the
// in-memory set is updated regardless.
func (s *Service) Toggle(ctx context.Context, title string) (domain.FavoriteSet, error) {
	// A toggle before any Load must not clobber the persisted list.
	if !s.loaded {
		s.Load(ctx)
	}

	removed := false
	for i, t := range s.titles {
		if t == title {
			s.titles = append(s.titles[:i], s.titles[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		s.titles = append(s.titles, title)
	}

	set := domain.NewFavoriteSet(s.titles...)

	raw, err := json.Marshal(s.titles)
	if err != nil {
		return set, err
	}
	if err := s.store.Set(ctx, Key, string(raw)); err != nil {
		s.log.Error("favorites: write failed: %v", err)
		return set, err
	}
	s.log.Debug("favorites: now %d titles", len(s.titles))
	return set, nil
}
