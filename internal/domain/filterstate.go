package domain

// FilterState is the ephemeral combination of search text and selected
// filter predicates driving the visible recipe subset. It lives for one
// screen-visit: regaining focus or injecting an external category resets
// it to defaults.
type FilterState struct {
	Query         string
	Categories    []Category
	Difficulties  []Difficulty
	TimeRanges    []TimeRange
	FavoritesOnly bool
}

// NewFilterState returns the default state. A non-empty category (injected
// from the home screen shortcuts) starts pre-selected.
func NewFilterState(category Category) FilterState {
	var s FilterState
	if category != "" {
		s.Categories = []Category{category}
	}
	return s
}

// ToggleCategory adds or removes a category from the selection.
func (s *FilterState) ToggleCategory(c Category) {
	for i, have := range s.Categories {
		if have == c {
			s.Categories = append(s.Categories[:i], s.Categories[i+1:]...)
			return
		}
	}
	s.Categories = append(s.Categories, c)
}

// ToggleDifficulty adds or removes a difficulty from the selection.
func (s *FilterState) ToggleDifficulty(d Difficulty) {
	for i, have := range s.Difficulties {
		if have == d {
			s.Difficulties = append(s.Difficulties[:i], s.Difficulties[i+1:]...)
			return
		}
	}
	s.Difficulties = append(s.Difficulties, d)
}

// ToggleTimeRange adds or removes a time bucket from the selection.
// Buckets are identified by their label.
func (s *FilterState) ToggleTimeRange(r TimeRange) {
	for i, have := range s.TimeRanges {
		if have.Label == r.Label {
			s.TimeRanges = append(s.TimeRanges[:i], s.TimeRanges[i+1:]...)
			return
		}
	}
	s.TimeRanges = append(s.TimeRanges, r)
}

// HasCategory reports whether a category is currently selected.
func (s *FilterState) HasCategory(c Category) bool {
	for _, have := range s.Categories {
		if have == c {
			return true
		}
	}
	return false
}

// HasDifficulty reports whether a difficulty is currently selected.
func (s *FilterState) HasDifficulty(d Difficulty) bool {
	for _, have := range s.Difficulties {
		if have == d {
			return true
		}
	}
	return false
}

// HasTimeRange reports whether a time bucket is currently selected.
func (s *FilterState) HasTimeRange(r TimeRange) bool {
	for _, have := range s.TimeRanges {
		if have.Label == r.Label {
			return true
		}
	}
	return false
}
