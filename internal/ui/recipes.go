package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/panela/internal/app"
	"github.com/hammamikhairi/panela/internal/domain"
	"github.com/hammamikhairi/panela/internal/filter"
)

// favoritesLoadedMsg completes the loading transition of the list.
type favoritesLoadedMsg struct{ set domain.FavoriteSet }

// recipesModel is the catalog listing screen: search box, filter panel,
// favorites toggle and the filtered list. The visible subset is
// recomputed from the full catalog on every render, so each keystroke
// and filter change re-evaluates the filter engine.
type recipesModel struct {
	state *app.State

	search    textinput.Model
	spin      spinner.Model
	filters   domain.FilterState
	favs      domain.FavoriteSet
	loading   bool
	panelOpen bool

	cursor      int // list cursor
	panelCursor int // filter panel cursor

	detail *detailModel // non-nil when the detail screen is pushed

	width  int
	height int
}

func newRecipesModel(state *app.State) recipesModel {
	search := textinput.New()
	search.Prompt = "Pesquisar: "
	search.Placeholder = "título da receita"
	search.CharLimit = 100
	search.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return recipesModel{
		state:  state,
		search: search,
		spin:   sp,
		favs:   domain.FavoriteSet{},
	}
}

// focus runs the screen-focus transition: loading indicator shown,
// filter state reset (consuming any injected category), favorites
// reloaded after the configured minimum perceived latency, indicator
// hidden.
func (r *recipesModel) focus() tea.Cmd {
	r.loading = true
	r.filters = domain.NewFilterState(r.state.SelectedCategory())
	r.search.SetValue("")
	r.search.Blur()
	r.panelOpen = false
	r.cursor = 0
	r.panelCursor = 0
	r.detail = nil

	state := r.state
	load := func() tea.Msg {
		return favoritesLoadedMsg{set: state.Favorites.Load(context.Background())}
	}

	var loadCmd tea.Cmd
	if delay := state.LoadingDelay; delay > 0 {
		loadCmd = tea.Tick(delay, func(time.Time) tea.Msg { return load() })
	} else {
		loadCmd = load
	}
	return tea.Batch(r.spin.Tick, loadCmd)
}

func (r *recipesModel) setSize(width, height int) {
	r.width = width
	r.height = height
	if width > 20 {
		r.search.Width = width - 20
	}
}

func (r recipesModel) capturingInput() bool {
	return r.detail == nil && r.search.Focused()
}

// visible applies the filter engine to the catalog under the current
// state.
func (r recipesModel) visible() []domain.Recipe {
	return filter.Apply(r.state.Catalog.List(), r.filters, r.favs)
}

func (r recipesModel) update(msg tea.Msg) (recipesModel, tea.Cmd) {
	// Detail screen swallows everything while open.
	if r.detail != nil {
		return r.updateDetail(msg)
	}

	switch msg := msg.(type) {
	case favoritesLoadedMsg:
		r.favs = msg.set
		r.loading = false
		return r, nil

	case spinner.TickMsg:
		if !r.loading {
			return r, nil
		}
		var cmd tea.Cmd
		r.spin, cmd = r.spin.Update(msg)
		return r, cmd

	case openRecipeMsg:
		return r.openDetail(msg.title)

	case tea.KeyMsg:
		if r.loading {
			return r, nil
		}
		if r.panelOpen {
			return r.updatePanel(msg)
		}
		return r.updateList(msg)
	}

	return r, nil
}

func (r recipesModel) updateList(msg tea.KeyMsg) (recipesModel, tea.Cmd) {
	if r.search.Focused() {
		switch msg.String() {
		case "esc", "enter":
			r.search.Blur()
			return r, nil
		}
		var cmd tea.Cmd
		r.search, cmd = r.search.Update(msg)
		r.filters.Query = r.search.Value()
		r.cursor = 0
		return r, cmd
	}

	switch msg.String() {
	case "/":
		return r, r.search.Focus()
	case "f":
		r.panelOpen = true
		r.panelCursor = 0
		return r, nil
	case "o":
		r.filters.FavoritesOnly = !r.filters.FavoritesOnly
		r.cursor = 0
		return r, nil
	case "up", "k":
		if r.cursor > 0 {
			r.cursor--
		}
		return r, nil
	case "down", "j":
		if r.cursor < len(r.visible())-1 {
			r.cursor++
		}
		return r, nil
	case "b", " ":
		return r.toggleFavorite()
	case "enter":
		visible := r.visible()
		if r.cursor < len(visible) {
			return r.openDetail(visible[r.cursor].Title)
		}
		return r, nil
	}
	return r, nil
}

func (r recipesModel) toggleFavorite() (recipesModel, tea.Cmd) {
	visible := r.visible()
	if r.cursor >= len(visible) {
		return r, nil
	}
	title := visible[r.cursor].Title

	set, err := r.state.Favorites.Toggle(context.Background(), title)
	r.favs = set
	if err != nil {
		return r, func() tea.Msg { return storageErrMsg{err: err} }
	}
	return r, nil
}

// panelEntry is one toggleable row in the filter panel.
type panelEntry struct {
	label  string
	active bool
	toggle func(*domain.FilterState)
}

func (r recipesModel) panelEntries() []panelEntry {
	var entries []panelEntry
	for _, c := range domain.Categories() {
		c := c
		entries = append(entries, panelEntry{
			label:  string(c),
			active: r.filters.HasCategory(c),
			toggle: func(s *domain.FilterState) { s.ToggleCategory(c) },
		})
	}
	for _, d := range domain.Difficulties() {
		d := d
		entries = append(entries, panelEntry{
			label:  string(d),
			active: r.filters.HasDifficulty(d),
			toggle: func(s *domain.FilterState) { s.ToggleDifficulty(d) },
		})
	}
	for _, tr := range domain.TimeRanges() {
		tr := tr
		entries = append(entries, panelEntry{
			label:  tr.Label,
			active: r.filters.HasTimeRange(tr),
			toggle: func(s *domain.FilterState) { s.ToggleTimeRange(tr) },
		})
	}
	return entries
}

func (r recipesModel) updatePanel(msg tea.KeyMsg) (recipesModel, tea.Cmd) {
	entries := r.panelEntries()
	switch msg.String() {
	case "esc", "f", "enter":
		r.panelOpen = false
		r.cursor = 0
		return r, nil
	case "up", "k":
		if r.panelCursor > 0 {
			r.panelCursor--
		}
	case "down", "j":
		if r.panelCursor < len(entries)-1 {
			r.panelCursor++
		}
	case " ", "x":
		if r.panelCursor < len(entries) {
			entries[r.panelCursor].toggle(&r.filters)
		}
	}
	return r, nil
}

func (r recipesModel) openDetail(title string) (recipesModel, tea.Cmd) {
	recipe, err := r.state.Catalog.Get(title)
	if err != nil {
		return r, nil
	}
	d := newDetailModel(recipe, r.favs.Has(title))
	r.detail = &d
	return r, nil
}

func (r recipesModel) updateDetail(msg tea.Msg) (recipesModel, tea.Cmd) {
	switch msg.(type) {
	case closeDetailMsg:
		r.detail = nil
		// Returning from the detail screen counts as regaining focus.
		return r, r.focus()
	}

	var cmd tea.Cmd
	*r.detail, cmd = r.detail.update(msg, r.state, &r.favs)
	return r, cmd
}

func (r recipesModel) view(t Theme, width int) string {
	if r.detail != nil {
		return r.detail.view(t, width)
	}

	var b strings.Builder

	b.WriteString("  " + r.search.View())
	favMarker := "○"
	if r.filters.FavoritesOnly {
		favMarker = "●"
	}
	b.WriteString("   " + t.Accent.Render(favMarker+" favoritas") + "\n\n")

	if r.loading {
		b.WriteString("  " + r.spin.View() + t.Dim.Render(" Carregando...") + "\n")
		return b.String()
	}

	if r.panelOpen {
		b.WriteString(r.viewPanel(t))
		return b.String()
	}

	visible := r.visible()
	if len(visible) == 0 {
		if r.filters.FavoritesOnly && len(r.favs) == 0 {
			b.WriteString("  " + t.Dim.Render("Nenhuma receita foi favoritada ainda.") + "\n")
		} else {
			b.WriteString("  " + t.Dim.Render(fmt.Sprintf("Nenhuma receita encontrada para %q.", r.filters.Query)) + "\n")
		}
		return b.String()
	}

	for i, recipe := range visible {
		marker := "  "
		titleStyle := t.CardTitle
		if i == r.cursor {
			marker = "> "
			titleStyle = t.Selected
		}
		bookmark := " "
		if r.favs.Has(recipe.Title) {
			bookmark = t.Accent.Render("♥")
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", marker,
			titleStyle.Render(recipe.Title),
			bookmark,
			t.Dim.Render(fmt.Sprintf("%d min · %s · %s", recipe.Minutes, recipe.Category, recipe.Difficulty)),
		))
		b.WriteString("    " + t.Text.Render(truncate(recipe.Description, 70)) + "\n")
	}

	b.WriteString("\n" + t.Dim.Render("  / busca · f filtros · o só favoritas · b favoritar · enter abre") + "\n")
	return b.String()
}

func (r recipesModel) viewPanel(t Theme) string {
	var b strings.Builder
	b.WriteString("  " + t.Title.Render("Filtrar Receitas") + "\n\n")

	entries := r.panelEntries()
	headers := map[int]string{
		0:                           "Categorias",
		len(domain.Categories()):    "Dificuldade",
		len(domain.Categories()) + len(domain.Difficulties()): "Tempo",
	}

	for i, e := range entries {
		if h, ok := headers[i]; ok {
			b.WriteString("  " + t.Subtitle.Render(h) + "\n")
		}
		marker := "  "
		style := t.Checkbox
		if i == r.panelCursor {
			marker = "> "
			style = t.Selected
		}
		b.WriteString("  " + marker + style.Render(check(e.active)+e.label) + "\n")
	}

	b.WriteString("\n" + t.Dim.Render("  espaço marca · enter aplica") + "\n")
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
