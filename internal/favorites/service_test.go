package favorites

import (
	"context"
	"testing"

	"github.com/hammamikhairi/panela/internal/domain"
	"github.com/hammamikhairi/panela/internal/logger"
	"github.com/hammamikhairi/panela/internal/storage"
)

func setupService(t *testing.T) (*Service, domain.KeyValueStore, context.Context) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	store := storage.NewMemory(log)
	return New(store, log), store, context.Background()
}

func TestToggleWithoutLoadPreservesStoredList(t *testing.T) {
	svc, store, ctx := setupService(t)

	if err := store.Set(ctx, Key, `["Pão de Queijo"]`); err != nil {
		t.Fatalf("seed favorites: %v", err)
	}

	// No Load call first: the toggle must pick up the persisted list.
	set, err := svc.Toggle(ctx, "Feijoada Completa")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !set.Has("Pão de Queijo") || !set.Has("Feijoada Completa") {
		t.Fatalf("expected both titles in the set, got %v", set)
	}

	raw, err := store.Get(ctx, Key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if raw != `["Pão de Queijo","Feijoada Completa"]` {
		t.Fatalf("persisted list clobbered: %s", raw)
	}
}

func TestLoadAbsentKeyIsEmpty(t *testing.T) {
	svc, _, ctx := setupService(t)

	set := svc.Load(ctx)
	if len(set) != 0 {
		t.Fatalf("expected empty set, got %d entries", len(set))
	}
}

func TestLoadUnparsableValueIsEmpty(t *testing.T) {
	svc, store, ctx := setupService(t)

	if err := store.Set(ctx, Key, "{not json"); err != nil {
		t.Fatalf("set: %v", err)
	}

	set := svc.Load(ctx)
	if len(set) != 0 {
		t.Fatalf("expected empty set for unparsable value, got %d entries", len(set))
	}
}

func TestToggleAddsAndPersists(t *testing.T) {
	svc, store, ctx := setupService(t)
	svc.Load(ctx)

	set, err := svc.Toggle(ctx, "Pão de Queijo")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !set.Has("Pão de Queijo") {
		t.Fatal("title not in set after toggle")
	}

	// Write-through: a fresh service over the same store sees it.
	log := logger.New(logger.LevelOff, nil)
	fresh := New(store, log)
	if !fresh.Load(ctx).Has("Pão de Queijo") {
		t.Fatal("toggle was not persisted")
	}
}

func TestToggleIsAnInvolution(t *testing.T) {
	svc, _, ctx := setupService(t)
	svc.Load(ctx)

	if _, err := svc.Toggle(ctx, "Feijoada Completa"); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	set, err := svc.Toggle(ctx, "Feijoada Completa")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if len(set) != 0 {
		t.Fatalf("expected empty set after double toggle, got %d entries", len(set))
	}
}

func TestToggleKeepsInsertionOrder(t *testing.T) {
	svc, store, ctx := setupService(t)
	svc.Load(ctx)

	for _, title := range []string{"A", "B", "C"} {
		if _, err := svc.Toggle(ctx, title); err != nil {
			t.Fatalf("toggle %s: %v", title, err)
		}
	}
	if _, err := svc.Toggle(ctx, "B"); err != nil {
		t.Fatalf("remove B: %v", err)
	}

	raw, err := store.Get(ctx, Key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if raw != `["A","C"]` {
		t.Fatalf("expected [\"A\",\"C\"], got %s", raw)
	}
}
