package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/panela/internal/app"
	"github.com/hammamikhairi/panela/internal/domain"
)

// detailModel shows a single recipe: header, ingredients checklist and
// the ordered preparation steps. The checklist is ephemeral cooking aid
// state, never persisted.
type detailModel struct {
	recipe      *domain.Recipe
	fav         bool
	ingredients []string // sorted names, stable display order
	used        map[string]bool
	cursor      int
}

func newDetailModel(recipe *domain.Recipe, fav bool) detailModel {
	names := make([]string, 0, len(recipe.Ingredients))
	for name := range recipe.Ingredients {
		names = append(names, name)
	}
	sort.Strings(names)

	return detailModel{
		recipe:      recipe,
		fav:         fav,
		ingredients: names,
		used:        make(map[string]bool),
	}
}

func (d detailModel) update(msg tea.Msg, state *app.State, favs *domain.FavoriteSet) (detailModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch key.String() {
	case "esc", "backspace", "q":
		return d, func() tea.Msg { return closeDetailMsg{} }
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.ingredients)-1 {
			d.cursor++
		}
	case " ", "x":
		if d.cursor < len(d.ingredients) {
			name := d.ingredients[d.cursor]
			d.used[name] = !d.used[name]
		}
	case "b":
		set, err := state.Favorites.Toggle(context.Background(), d.recipe.Title)
		*favs = set
		d.fav = set.Has(d.recipe.Title)
		if err != nil {
			return d, func() tea.Msg { return storageErrMsg{err: err} }
		}
	}
	return d, nil
}

func (d detailModel) view(t Theme, width int) string {
	r := d.recipe
	var b strings.Builder

	bookmark := ""
	if d.fav {
		bookmark = " " + t.Accent.Render("♥")
	}
	b.WriteString("  " + t.Title.Render(r.Title) + bookmark + "\n")

	servings := "Porções"
	if r.Servings == 1 {
		servings = "Porção"
	}
	b.WriteString("  " + t.Dim.Render(fmt.Sprintf("%d min · %s · %d %s", r.Minutes, r.Difficulty, r.Servings, servings)) + "\n\n")

	if r.Description != "" {
		b.WriteString("  " + t.Text.Render(r.Description) + "\n\n")
	}

	b.WriteString("  " + t.Subtitle.Render("Ingredientes") + "\n")
	for i, name := range d.ingredients {
		marker := "  "
		style := t.Text
		if i == d.cursor {
			marker = "> "
			style = t.Selected
		}
		line := check(d.used[name]) + name + " — " + r.Ingredients[name]
		b.WriteString("  " + marker + style.Render(line) + "\n")
	}

	b.WriteString("\n  " + t.Subtitle.Render("Modo de Preparo") + "\n")
	for i, step := range r.Steps {
		b.WriteString(fmt.Sprintf("  %s %s\n", t.Accent.Render(fmt.Sprintf("%d.", i+1)), t.Text.Render(step)))
	}

	b.WriteString("\n" + t.Dim.Render("  espaço marca ingrediente · b favorita · esc volta") + "\n")
	return b.String()
}
