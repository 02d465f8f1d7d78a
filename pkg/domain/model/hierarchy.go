package model

import (
	"sync"

	"github.com/secmon-lab/orgchart/pkg/domain/types"
)

// Hierarchy is the manager -> direct reports index derived from a flat list.
// It is rebuilt from scratch whenever the list changes and never mutated.
type Hierarchy struct {
	// ByManager maps a manager ID (RootManager for none) to its direct reports in input order
	ByManager map[types.EmployeeID][]*Employee
	// DirectMenteeIDs maps a manager ID to the IDs of its direct reports
	DirectMenteeIDs map[types.EmployeeID][]types.EmployeeID

	byID          map[types.EmployeeID]*Employee
	ancestorsOnce sync.Once
	ancestors     map[types.EmployeeID][]types.EmployeeID
}

// BuildHierarchy indexes employees by manager in a single pass. Acyclicity is
// not checked; orphaned or cyclic subtrees are simply unreachable from Roots.
func BuildHierarchy(employees []*Employee) *Hierarchy {
	h := &Hierarchy{
		ByManager:       make(map[types.EmployeeID][]*Employee),
		DirectMenteeIDs: make(map[types.EmployeeID][]types.EmployeeID),
		byID:            make(map[types.EmployeeID]*Employee, len(employees)),
	}

	for _, e := range employees {
		key := e.Manager()
		h.ByManager[key] = append(h.ByManager[key], e)
		h.DirectMenteeIDs[key] = append(h.DirectMenteeIDs[key], e.ID)
		h.byID[e.ID] = e
	}

	return h
}

// Roots returns the employees without a manager, in input order
func (h *Hierarchy) Roots() []*Employee {
	return h.ByManager[types.RootManager]
}

// Children returns the direct reports of id
func (h *Hierarchy) Children(id types.EmployeeID) []*Employee {
	return h.ByManager[id]
}

// DirectMentees returns the IDs of the direct reports of id
func (h *Hierarchy) DirectMentees(id types.EmployeeID) []types.EmployeeID {
	return h.DirectMenteeIDs[id]
}

// IsDirectMentee reports whether candidate reports directly to manager
func (h *Hierarchy) IsDirectMentee(manager, candidate types.EmployeeID) bool {
	for _, id := range h.DirectMenteeIDs[manager] {
		if id == candidate {
			return true
		}
	}
	return false
}

// Get returns the indexed employee with the given ID
func (h *Hierarchy) Get(id types.EmployeeID) (*Employee, bool) {
	e, ok := h.byID[id]
	return e, ok
}

// Len returns the number of indexed employees
func (h *Hierarchy) Len() int {
	return len(h.byID)
}

// Walk visits the forest depth-first in pre-order starting at the roots.
// Returning false from fn skips the subtree of the visited employee.
func (h *Hierarchy) Walk(fn func(e *Employee, depth int) bool) {
	visited := make(map[types.EmployeeID]struct{}, len(h.byID))

	var walk func(e *Employee, depth int)
	walk = func(e *Employee, depth int) {
		if _, ok := visited[e.ID]; ok {
			return
		}
		visited[e.ID] = struct{}{}

		if !fn(e, depth) {
			return
		}
		for _, child := range h.ByManager[e.ID] {
			walk(child, depth+1)
		}
	}

	for _, root := range h.Roots() {
		walk(root, 0)
	}
}

// Reachable returns the number of employees reachable from the roots
func (h *Hierarchy) Reachable() int {
	n := 0
	h.Walk(func(*Employee, int) bool {
		n++
		return true
	})
	return n
}

// IsForest reports whether every indexed employee is reachable from a root,
// which holds iff the manager graph is an acyclic forest rooted at employees
// without a manager.
func (h *Hierarchy) IsForest() bool {
	return h.Reachable() == len(h.byID)
}

// Descendants returns every transitive report of id, breadth first
func (h *Hierarchy) Descendants(id types.EmployeeID) []types.EmployeeID {
	var out []types.EmployeeID
	seen := map[types.EmployeeID]struct{}{id: {}}
	queue := []types.EmployeeID{id}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range h.DirectMenteeIDs[cur] {
			if _, ok := seen[child]; ok {
				continue
			}
			seen[child] = struct{}{}
			out = append(out, child)
			queue = append(queue, child)
		}
	}

	return out
}

// IsDescendant reports whether candidate is a transitive report of id
func (h *Hierarchy) IsDescendant(id, candidate types.EmployeeID) bool {
	for _, d := range h.Descendants(id) {
		if d == candidate {
			return true
		}
	}
	return false
}

// Ancestors returns the manager chain of id, nearest first. The walk stops
// at an employee without a manager, at an ID missing from the list, or when
// the chain loops back on itself. Chains for the whole list are computed
// once, on first use.
func (h *Hierarchy) Ancestors(id types.EmployeeID) []types.EmployeeID {
	h.ancestorsOnce.Do(func() {
		h.ancestors = make(map[types.EmployeeID][]types.EmployeeID, len(h.byID))
		for eid := range h.byID {
			h.ancestors[eid] = h.managerChain(eid)
		}
	})
	return h.ancestors[id]
}

func (h *Hierarchy) managerChain(id types.EmployeeID) []types.EmployeeID {
	var chain []types.EmployeeID
	seen := map[types.EmployeeID]struct{}{id: {}}

	cur, ok := h.byID[id]
	for ok && cur.ManagerID != nil {
		mid := *cur.ManagerID
		if _, loop := seen[mid]; loop {
			break
		}
		seen[mid] = struct{}{}
		chain = append(chain, mid)
		cur, ok = h.byID[mid]
	}

	return chain
}
