package editor

import (
	"slices"
	"sync"

	"github.com/secmon-lab/orgchart/pkg/domain/types"
)

// Selection tracks at most one selected employee with toggle semantics
type Selection struct {
	mu       sync.Mutex
	selected types.EmployeeID
	focus    []func(types.EmployeeID)
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{}
}

// Select toggles id: selecting the current id clears the selection,
// anything else replaces it
func (s *Selection) Select(id types.EmployeeID) {
	s.mu.Lock()
	if s.selected == id {
		s.selected = ""
		s.mu.Unlock()
		return
	}
	s.selected = id
	focus := slices.Clone(s.focus)
	s.mu.Unlock()

	if id == "" {
		return
	}
	for _, fn := range focus {
		fn(id)
	}
}

// Selected returns the selected id and whether there is one
func (s *Selection) Selected() (types.EmployeeID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected, s.selected != ""
}

// IsHighlighted reports whether id is the selected employee
func (s *Selection) IsHighlighted(id types.EmployeeID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return id != "" && s.selected == id
}

// Clear removes the selection
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = ""
}

// OnFocus registers fn to run whenever a new employee becomes selected
func (s *Selection) OnFocus(fn func(types.EmployeeID)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focus = append(s.focus, fn)
}
