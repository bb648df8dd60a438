package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hammamikhairi/panela/internal/domain"
	"github.com/hammamikhairi/panela/internal/logger"
)

// exerciseStore runs the contract every KeyValueStore must satisfy.
func exerciseStore(t *testing.T, store domain.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	// Absent key.
	if _, err := store.Get(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Set then get.
	if err := store.Set(ctx, "favorites", `["Pão de Queijo"]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, err := store.Get(ctx, "favorites")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v != `["Pão de Queijo"]` {
		t.Fatalf("unexpected value: %s", v)
	}

	// Overwrite.
	if err := store.Set(ctx, "favorites", `[]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, err = store.Get(ctx, "favorites")
	if err != nil {
		t.Fatalf("get after overwrite: %v", err)
	}
	if v != `[]` {
		t.Fatalf("expected [], got %s", v)
	}

	// Delete.
	if err := store.Delete(ctx, "favorites"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "favorites"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting an absent key is fine.
	if err := store.Delete(ctx, "favorites"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestMemoryContract(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	exerciseStore(t, NewMemory(log))
}

func TestSQLiteContract(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store, err := Open(filepath.Join(t.TempDir(), "panela.db"), log)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	exerciseStore(t, store)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	path := filepath.Join(t.TempDir(), "panela.db")
	ctx := context.Background()

	store, err := Open(path, log)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Set(ctx, "color_mode", "true"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path, log)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	v, err := reopened.Get(ctx, "color_mode")
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if v != "true" {
		t.Fatalf("expected true, got %s", v)
	}
}
