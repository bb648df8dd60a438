package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/panela/internal/app"
	"github.com/hammamikhairi/panela/internal/domain"
)

// tab identifies the three top-level screens, mirroring the original
// bottom tab bar: Home, Receitas, Opções.
type tab int

const (
	tabHome tab = iota
	tabRecipes
	tabProfile
)

var tabLabels = []string{"Home", "Receitas", "Opções"}

// Messages routed through the root model.
type (
	// selectCategoryMsg is emitted by the home shortcuts; an empty
	// category means "show all".
	selectCategoryMsg struct{ category domain.Category }

	// openRecipeMsg pushes the detail screen for a title.
	openRecipeMsg struct{ title string }

	// closeDetailMsg pops the detail screen.
	closeDetailMsg struct{}

	// storageErrMsg carries a failed write; rendered as a generic
	// retry prompt in the status bar.
	storageErrMsg struct{ err error }
)

// Model is the root Bubble Tea model: tab bar, theme and screen routing.
type Model struct {
	state  *app.State
	theme  Theme
	active tab

	home    homeModel
	recipes recipesModel
	profile profileModel

	width   int
	height  int
	notice  string  // transient status-bar message
	initCmd tea.Cmd // recipe-list load scheduled during construction
}

// New builds the root model. The session and color mode must already be
// loaded on the state handle.
func New(state *app.State) Model {
	m := Model{
		state:   state,
		theme:   NewTheme(state.Prefs.Dark()),
		home:    newHomeModel(state),
		recipes: newRecipesModel(state),
		profile: newProfileModel(state),
	}
	// Run the first focus transition here, where the mutation lands on
	// the model Bubble Tea keeps; Init only returns commands.
	m.initCmd = m.recipes.focus()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.home.init(), m.initCmd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recipes.setSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			// Theme toggle is global, independent of account/session.
			dark, err := m.state.Prefs.Toggle(context.Background())
			m.theme = NewTheme(dark)
			if err != nil {
				m.notice = "Não foi possível salvar a preferência. Tente novamente."
			} else {
				m.notice = ""
			}
			return m, nil
		}

		// Tab switching only when the active screen is not capturing
		// text input.
		if !m.capturingInput() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1", "2", "3":
				return m.switchTab(tab(int(msg.String()[0] - '1')))
			case "tab":
				return m.switchTab((m.active + 1) % 3)
			case "shift+tab":
				return m.switchTab((m.active + 2) % 3)
			}
		}

	case selectCategoryMsg:
		m.state.SelectCategory(msg.category)
		next, cmd := m.switchTab(tabRecipes)
		return next, cmd

	case openRecipeMsg:
		// Opening from the home highlights jumps straight to the
		// detail screen, skipping the list focus transition.
		m.active = tabRecipes
		m.notice = ""
		var cmd tea.Cmd
		m.recipes, cmd = m.recipes.update(msg)
		return m, cmd

	case storageErrMsg:
		m.state.Log.Error("persist: %v", msg.err)
		m.notice = "Não foi possível salvar. Tente novamente."
		return m, nil

	// The slider and the loading transition tick regardless of which
	// tab is in front, so their command chains never go dead.
	case sliderTickMsg:
		var cmd tea.Cmd
		m.home, cmd = m.home.update(msg)
		return m, cmd

	case favoritesLoadedMsg, spinner.TickMsg:
		var cmd tea.Cmd
		m.recipes, cmd = m.recipes.update(msg)
		return m, cmd
	}

	// Route everything else to the active screen.
	var cmd tea.Cmd
	switch m.active {
	case tabHome:
		m.home, cmd = m.home.update(msg)
	case tabRecipes:
		m.recipes, cmd = m.recipes.update(msg)
	case tabProfile:
		m.profile, cmd = m.profile.update(msg)
	}
	return m, cmd
}

// switchTab activates a tab, running its focus transition.
func (m Model) switchTab(t tab) (Model, tea.Cmd) {
	if t < tabHome || t > tabProfile {
		return m, nil
	}
	m.active = t
	m.notice = ""
	switch t {
	case tabRecipes:
		// Regaining focus resets filter state and reloads favorites.
		return m, m.recipes.focus()
	case tabProfile:
		m.profile.resetForms()
	}
	return m, nil
}

// capturingInput reports whether a focused text field should swallow
// plain keystrokes.
func (m Model) capturingInput() bool {
	switch m.active {
	case tabRecipes:
		return m.recipes.capturingInput()
	case tabProfile:
		return m.profile.capturingInput()
	}
	return false
}

func (m Model) View() string {
	t := m.theme

	var body string
	switch m.active {
	case tabHome:
		body = m.home.view(t, m.width)
	case tabRecipes:
		body = m.recipes.view(t, m.width)
	case tabProfile:
		body = m.profile.view(t, m.width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTabs(t),
		body,
		m.renderStatus(t),
	)
}

func (m Model) renderTabs(t Theme) string {
	var cells []string
	for i, label := range tabLabels {
		style := t.TabIdle
		if tab(i) == m.active {
			style = t.TabActive
		}
		cells = append(cells, style.Render(" "+label+" "))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n"
}

func (m Model) renderStatus(t Theme) string {
	hint := " 1/2/3 abas · ctrl+t tema · q sair"
	if m.notice != "" {
		hint = " " + m.notice
	}
	w := m.width
	if w <= 0 {
		w = 80
	}
	return t.StatusBar.Width(w).Render(hint)
}

// Run starts the Bubble Tea event loop. Blocks until quit.
func Run(state *app.State) error {
	p := tea.NewProgram(New(state), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
