package editor

import (
	"fmt"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
)

// RenderOptions marks cards in rendered output
type RenderOptions struct {
	// Selected is highlighted
	Selected types.EmployeeID
	// Moving is the subject of an unfinished two-step move
	Moving types.EmployeeID
}

// RenderTree writes employees as an indented tree from their roots.
// Employees unreachable from a root are not written.
func RenderTree(w io.Writer, employees []*model.Employee, opts RenderOptions) error {
	h := model.BuildHierarchy(employees)
	visited := make(map[types.EmployeeID]struct{}, len(employees))

	var render func(e *model.Employee, prefix string, last, root bool) error
	render = func(e *model.Employee, prefix string, last, root bool) error {
		if _, ok := visited[e.ID]; ok {
			return nil
		}
		visited[e.ID] = struct{}{}

		branch, next := "", ""
		if !root {
			branch, next = "├── ", "│   "
			if last {
				branch, next = "└── ", "    "
			}
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, card(e, opts)); err != nil {
			return goerr.Wrap(err, "failed to write tree")
		}

		children := h.Children(e.ID)
		for i, child := range children {
			if err := render(child, prefix+next, i == len(children)-1, false); err != nil {
				return err
			}
		}
		return nil
	}

	for _, root := range h.Roots() {
		if err := render(root, "", true, true); err != nil {
			return err
		}
	}
	return nil
}

// RenderList writes employees one per line in list order
func RenderList(w io.Writer, employees []*model.Employee, opts RenderOptions) error {
	for _, e := range employees {
		if _, err := fmt.Fprintln(w, card(e, opts)); err != nil {
			return goerr.Wrap(err, "failed to write list")
		}
	}
	return nil
}

func card(e *model.Employee, opts RenderOptions) string {
	parts := []string{e.DisplayName(e.ID.String())}
	if e.Designation != "" {
		parts = append(parts, e.Designation)
	}
	if e.Team != "" {
		parts = append(parts, e.Team)
	}

	line := fmt.Sprintf("%s (%s)", strings.Join(parts, " · "), e.ID)
	if opts.Selected != "" && e.ID == opts.Selected {
		line += " [selected]"
	}
	if opts.Moving != "" && e.ID == opts.Moving {
		line += " [moving]"
	}
	return line
}
