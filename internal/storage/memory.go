// Package storage provides key-value persistence implementations.
package storage

import (
	"context"
	"sync"

	"github.com/hammamikhairi/panela/internal/domain"
	"github.com/hammamikhairi/panela/internal/logger"
)

// Compile-time interface check.
var _ domain.KeyValueStore = (*Memory)(nil)

// Memory is an in-memory key-value store. Used by tests and by
// -ephemeral runs where nothing should touch the disk. Safe for
// concurrent access.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]string
	log     *logger.Logger
}

// NewMemory creates an empty in-memory store.
func NewMemory(log *logger.Logger) *Memory {
	return &Memory{
		entries: make(map[string]string),
		log:     log,
	}
}

// Get retrieves the value for a key.
func (s *Memory) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[key]
	if !ok {
		s.log.Debug("memory: key not found: %s", key)
		return "", domain.ErrNotFound
	}
	return v, nil
}

// Set stores a value under a key. Overwrites if it already exists.
func (s *Memory) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("memory: set %s (%d bytes)", key, len(value))
	s.entries[key] = value
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Memory) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	s.log.Debug("memory: deleted %s", key)
	return nil
}
