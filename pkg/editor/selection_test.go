package editor_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
	"github.com/secmon-lab/orgchart/pkg/editor"
)

func TestSelection(t *testing.T) {
	t.Run("toggle", func(t *testing.T) {
		s := editor.NewSelection()
		_, ok := s.Selected()
		gt.False(t, ok)

		s.Select("2")
		id, ok := s.Selected()
		gt.True(t, ok)
		gt.Equal(t, id, types.EmployeeID("2"))
		gt.True(t, s.IsHighlighted("2"))
		gt.False(t, s.IsHighlighted("3"))

		s.Select("2")
		_, ok = s.Selected()
		gt.False(t, ok)
		gt.False(t, s.IsHighlighted("2"))
	})

	t.Run("replaces rather than stacks", func(t *testing.T) {
		s := editor.NewSelection()
		s.Select("2")
		s.Select("3")
		id, _ := s.Selected()
		gt.Equal(t, id, types.EmployeeID("3"))

		s.Select("3")
		_, ok := s.Selected()
		gt.False(t, ok)
	})

	t.Run("clear", func(t *testing.T) {
		s := editor.NewSelection()
		s.Select("9")
		s.Clear()
		_, ok := s.Selected()
		gt.False(t, ok)
		gt.False(t, s.IsHighlighted(""))
	})

	t.Run("focus fires only on a new selection", func(t *testing.T) {
		s := editor.NewSelection()
		var focused []types.EmployeeID
		s.OnFocus(func(id types.EmployeeID) { focused = append(focused, id) })

		s.Select("2")
		s.Select("2")
		s.Select("5")
		gt.Equal(t, focused, []types.EmployeeID{"2", "5"})
	})

	t.Run("focus callback can register another callback", func(t *testing.T) {
		s := editor.NewSelection()
		var late []types.EmployeeID
		registered := false
		s.OnFocus(func(id types.EmployeeID) {
			if !registered {
				registered = true
				s.OnFocus(func(id types.EmployeeID) { late = append(late, id) })
			}
		})

		s.Select("2")
		gt.Equal(t, len(late), 0)

		s.Select("5")
		gt.Equal(t, late, []types.EmployeeID{"5"})
	})
}
