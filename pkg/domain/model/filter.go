package model

import (
	"sort"
	"strings"

	"github.com/secmon-lab/orgchart/pkg/domain/types"
	"golang.org/x/text/cases"
)

// AllTeams is the team filter option that disables team filtering
const AllTeams = "All"

// FilterByTeam keeps the members of team plus every manager above them, so
// the result stays a rooted forest the tree can render. An empty team or
// AllTeams returns the input unchanged. Input order is preserved.
func FilterByTeam(employees []*Employee, team string) []*Employee {
	if team == "" || team == AllTeams {
		return employees
	}

	h := BuildHierarchy(employees)
	include := make(map[types.EmployeeID]struct{})
	for _, e := range employees {
		if e.Team != team {
			continue
		}
		include[e.ID] = struct{}{}
		for _, mid := range h.Ancestors(e.ID) {
			include[mid] = struct{}{}
		}
	}

	out := make([]*Employee, 0, len(include))
	for _, e := range employees {
		if _, ok := include[e.ID]; ok {
			out = append(out, e)
		}
	}
	return out
}

// FilterBySearch keeps employees whose name, designation, team, email or
// employee code contains query, ignoring case. A blank query returns the
// input unchanged.
func FilterBySearch(employees []*Employee, query string) []*Employee {
	query = strings.TrimSpace(query)
	if query == "" {
		return employees
	}

	folder := cases.Fold()
	needle := folder.String(query)

	out := make([]*Employee, 0, len(employees))
	for _, e := range employees {
		if matchesSearch(folder, e, needle) {
			out = append(out, e)
		}
	}
	return out
}

func matchesSearch(folder cases.Caser, e *Employee, needle string) bool {
	for _, field := range []string{e.Name, e.Designation, e.Team, e.Email, e.EmployeeID} {
		if strings.Contains(folder.String(field), needle) {
			return true
		}
	}
	return false
}

// Teams returns the team filter options: AllTeams followed by every distinct
// team in ascending order
func Teams(employees []*Employee) []string {
	seen := make(map[string]struct{})
	var teams []string
	for _, e := range employees {
		if _, ok := seen[e.Team]; ok {
			continue
		}
		seen[e.Team] = struct{}{}
		teams = append(teams, e.Team)
	}
	sort.Strings(teams)

	return append([]string{AllTeams}, teams...)
}
