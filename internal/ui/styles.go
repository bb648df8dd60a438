// Package ui provides the terminal screens using Bubble Tea.
//
// The root [Model] owns tab navigation and the theme; each screen is a
// small sub-model that receives the shared application state handle and
// the active theme. All styling derives from the single persisted
// dark/light flag.
package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds every style the screens use. Built once per mode switch.
type Theme struct {
	Dark bool

	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Text      lipgloss.Style
	Dim       lipgloss.Style
	Accent    lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Selected  lipgloss.Style
	Card      lipgloss.Style
	CardTitle lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	Badge     lipgloss.Style
	Checkbox  lipgloss.Style
	Input     lipgloss.Style
	Label     lipgloss.Style
	StatusBar lipgloss.Style
}

// NewTheme builds the style set for a mode. The dark palette follows the
// original app's navy cards; the light one keeps the same accents on a
// plain background.
func NewTheme(dark bool) Theme {
	t := Theme{Dark: dark}

	var (
		accent  = lipgloss.Color("#36A9E1")
		danger  = lipgloss.Color("#fca5a5")
		success = lipgloss.Color("#bbf7d0")
	)

	if dark {
		text := lipgloss.Color("#d4d4d8")
		dim := lipgloss.Color("#71717a")

		t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e0efff"))
		t.Subtitle = lipgloss.NewStyle().Foreground(accent)
		t.Text = lipgloss.NewStyle().Foreground(text)
		t.Dim = lipgloss.NewStyle().Foreground(dim)
		t.Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e0efff")).Background(lipgloss.Color("#062E56"))
		t.Card = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#062E56")).
			PaddingLeft(1)
		t.CardTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e0efff"))
		t.TabActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e0efff")).Underline(true)
		t.TabIdle = lipgloss.NewStyle().Foreground(dim)
		t.StatusBar = lipgloss.NewStyle().Background(lipgloss.Color("#27272a")).Foreground(lipgloss.Color("#a1a1aa"))
	} else {
		text := lipgloss.Color("#1f2937")
		dim := lipgloss.Color("#7f8c8d")

		t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#001529"))
		t.Subtitle = lipgloss.NewStyle().Foreground(lipgloss.Color("#062E56"))
		t.Text = lipgloss.NewStyle().Foreground(text)
		t.Dim = lipgloss.NewStyle().Foreground(dim)
		t.Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#36A9E1"))
		t.Card = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(accent).
			PaddingLeft(1)
		t.CardTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#001529"))
		t.TabActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#062E56")).Underline(true)
		t.TabIdle = lipgloss.NewStyle().Foreground(dim)
		t.StatusBar = lipgloss.NewStyle().Background(lipgloss.Color("#e5e7eb")).Foreground(lipgloss.Color("#374151"))
	}

	t.Accent = lipgloss.NewStyle().Foreground(accent)
	t.Error = lipgloss.NewStyle().Foreground(danger)
	t.Success = lipgloss.NewStyle().Foreground(success)
	t.Badge = lipgloss.NewStyle().Foreground(accent)
	t.Checkbox = t.Text
	t.Input = t.Text
	t.Label = t.Subtitle

	return t
}

// check renders a checkbox marker.
func check(selected bool) string {
	if selected {
		return "[x] "
	}
	return "[ ] "
}
