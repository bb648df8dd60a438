package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/panela/internal/app"
	"github.com/hammamikhairi/panela/internal/domain"
)

// sliderInterval is how long each promo recipe stays on screen.
const sliderInterval = 5 * time.Second

type sliderTickMsg struct{}

// homeModel renders the promo slider, the category shortcuts and the
// highlights rail.
type homeModel struct {
	state *app.State

	sliderIdx int
	section   int // 0 = category row, 1 = highlights rail
	catCursor int
	hlCursor  int
}

func newHomeModel(state *app.State) homeModel {
	return homeModel{state: state}
}

func (h homeModel) init() tea.Cmd {
	return sliderTick()
}

func sliderTick() tea.Cmd {
	return tea.Tick(sliderInterval, func(time.Time) tea.Msg {
		return sliderTickMsg{}
	})
}

// shortcuts returns the category buttons plus the trailing "show all"
// entry (empty category).
func (h homeModel) shortcuts() []domain.Category {
	return append(domain.Categories(), domain.Category(""))
}

func (h homeModel) update(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case sliderTickMsg:
		if n := len(h.state.Catalog.SliderItems()); n > 0 {
			h.sliderIdx = (h.sliderIdx + 1) % n
		}
		return h, sliderTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			h.section = 0
		case "down", "j":
			h.section = 1
		case "left", "h":
			h.moveCursor(-1)
		case "right", "l":
			h.moveCursor(1)
		case "enter":
			return h, h.activate()
		}
	}
	return h, nil
}

func (h *homeModel) moveCursor(delta int) {
	if h.section == 0 {
		n := len(h.shortcuts())
		h.catCursor = (h.catCursor + delta + n) % n
		return
	}
	if n := len(h.state.Catalog.Highlights()); n > 0 {
		h.hlCursor = (h.hlCursor + delta + n) % n
	}
}

func (h homeModel) activate() tea.Cmd {
	if h.section == 0 {
		category := h.shortcuts()[h.catCursor]
		return func() tea.Msg { return selectCategoryMsg{category: category} }
	}
	highlights := h.state.Catalog.Highlights()
	if len(highlights) == 0 {
		return nil
	}
	title := highlights[h.hlCursor].Title
	return func() tea.Msg { return openRecipeMsg{title: title} }
}

func (h homeModel) view(t Theme, width int) string {
	var b strings.Builder

	b.WriteString(h.renderSlider(t, width))
	b.WriteString("\n")
	b.WriteString(h.renderShortcuts(t))
	b.WriteString("\n\n")
	b.WriteString(h.renderHighlights(t))
	b.WriteString("\n")
	b.WriteString(t.Dim.Render("  setas navegam · enter abre"))
	b.WriteString("\n")

	return b.String()
}

func (h homeModel) renderSlider(t Theme, width int) string {
	items := h.state.Catalog.SliderItems()
	if len(items) == 0 {
		return ""
	}
	r := items[h.sliderIdx%len(items)]

	dots := make([]string, len(items))
	for i := range items {
		if i == h.sliderIdx%len(items) {
			dots[i] = "●"
		} else {
			dots[i] = "○"
		}
	}

	card := t.Card.Render(
		t.CardTitle.Render(r.Title) + "\n" +
			t.Text.Render(r.Description) + "\n" +
			t.Dim.Render(fmt.Sprintf("%s · %d min", r.Category, r.Minutes)),
	)
	return card + "\n  " + t.Dim.Render(strings.Join(dots, " "))
}

func (h homeModel) renderShortcuts(t Theme) string {
	var cells []string
	for i, c := range h.shortcuts() {
		label := string(c)
		if label == "" {
			label = "Mostrar Todas"
		}
		style := t.Text
		if h.section == 0 && i == h.catCursor {
			style = t.Selected
		}
		cells = append(cells, style.Render(" "+label+" "))
	}
	return "  " + lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (h homeModel) renderHighlights(t Theme) string {
	highlights := h.state.Catalog.Highlights()
	if len(highlights) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("  " + t.Title.Render("Destaques") + "\n")
	for i, r := range highlights {
		marker := "  "
		style := t.Text
		if h.section == 1 && i == h.hlCursor {
			marker = "> "
			style = t.Selected
		}
		line := fmt.Sprintf("%s%s", marker, style.Render(r.Title))
		meta := t.Dim.Render(fmt.Sprintf("  %d min · %s", r.Minutes, r.Difficulty))
		b.WriteString(line + meta + "\n")
	}
	return b.String()
}
