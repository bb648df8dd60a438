package catalog

import (
	"errors"
	"testing"

	"github.com/hammamikhairi/panela/internal/domain"
	"github.com/hammamikhairi/panela/internal/logger"
)

func TestSourceList(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := New(log)

	recipes := src.List()
	if len(recipes) < 10 {
		t.Fatalf("expected at least 10 recipes, got %d", len(recipes))
	}

	// Titles are the identity key and must be unique.
	seen := make(map[string]bool)
	for _, r := range recipes {
		if seen[r.Title] {
			t.Fatalf("duplicate title: %s", r.Title)
		}
		seen[r.Title] = true
		if r.Minutes < 0 {
			t.Fatalf("%s has negative preparation time", r.Title)
		}
		if len(r.Ingredients) == 0 {
			t.Fatalf("%s has no ingredients", r.Title)
		}
		if len(r.Steps) == 0 {
			t.Fatalf("%s has no steps", r.Title)
		}
	}
}

func TestSourceGet(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := New(log)

	tests := []struct {
		title   string
		wantErr error
	}{
		{"Bolo de Chocolate", nil},
		{"Pão de Queijo", nil},
		{"Receita Inexistente", domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			r, err := src.Get(tt.title)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Title != tt.title {
				t.Fatalf("expected title %s, got %s", tt.title, r.Title)
			}
		})
	}
}

func TestSourceFlagViews(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	src := New(log)

	for _, r := range src.Highlights() {
		if !r.Highlight {
			t.Fatalf("%s returned by Highlights without the flag", r.Title)
		}
	}
	for _, r := range src.SliderItems() {
		if !r.Slider {
			t.Fatalf("%s returned by SliderItems without the flag", r.Title)
		}
	}
	if len(src.SliderItems()) == 0 {
		t.Fatal("slider is empty")
	}
	if len(src.Highlights()) == 0 {
		t.Fatal("highlights rail is empty")
	}
}
