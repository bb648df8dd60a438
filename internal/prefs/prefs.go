// Package prefs persists display preferences. Today that is a single
// boolean: dark mode on or off.
package prefs

import (
	"context"
	"encoding/json"

	"github.com/hammamikhairi/panela/internal/domain"
	"github.com/hammamikhairi/panela/internal/logger"
)

// Key is the store key owned by this service.
const Key = "color_mode"

// Service loads and flips the persisted dark-mode flag. Independent of
// account and session.
type Service struct {
	store domain.KeyValueStore
	log   *logger.Logger
	dark  bool
}

// New creates a prefs service. fallback is the mode used when nothing is
// persisted yet.
func New(store domain.KeyValueStore, fallback bool, log *logger.Logger) *Service {
	return &Service{store: store, log: log, dark: fallback}
}

// Load reads the persisted mode once at startup. Absent or unreadable
// values keep the fallback.
func (s *Service) Load(ctx context.Context) bool {
	raw, err := s.store.Get(ctx, Key)
	if err != nil {
		if err != domain.ErrNotFound {
			s.log.Warn("prefs: read failed, keeping default: %v", err)
		}
		return s.dark
	}
	var dark bool
	if err := json.Unmarshal([]byte(raw), &dark); err != nil {
		s.log.Warn("prefs: unparsable value, keeping default: %v", err)
		return s.dark
	}
	s.dark = dark
	return s.dark
}

// Dark returns the current mode.
func (s *Service) Dark() bool { return s.dark }

// Toggle flips the mode and persists it. The flip happens even when the
// write fails, so the UI stays responsive; the error is returned for the
// screen to report.
func (s *Service) Toggle(ctx context.Context) (bool, error) {
	s.dark = !s.dark
	raw, _ := json.Marshal(s.dark)
	if err := s.store.Set(ctx, Key, string(raw)); err != nil {
		s.log.Error("prefs: write failed: %v", err)
		return s.dark, err
	}
	return s.dark, nil
}
