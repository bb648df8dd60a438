package prefs

import (
	"context"
	"testing"

	"github.com/hammamikhairi/panela/internal/logger"
	"github.com/hammamikhairi/panela/internal/storage"
)

func TestLoadDefaultsWhenAbsent(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := storage.NewMemory(log)
	ctx := context.Background()

	if New(store, false, log).Load(ctx) {
		t.Fatal("expected light mode default")
	}
	if !New(store, true, log).Load(ctx) {
		t.Fatal("expected dark mode fallback to hold")
	}
}

func TestTogglePersists(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := storage.NewMemory(log)
	ctx := context.Background()

	svc := New(store, false, log)
	svc.Load(ctx)

	dark, err := svc.Toggle(ctx)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !dark {
		t.Fatal("expected dark after toggle")
	}

	// A fresh service sees the persisted value regardless of fallback.
	if !New(store, false, log).Load(ctx) {
		t.Fatal("persisted mode not restored")
	}

	if _, err := svc.Toggle(ctx); err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if New(store, true, log).Load(ctx) {
		t.Fatal("expected light mode after second toggle")
	}
}
