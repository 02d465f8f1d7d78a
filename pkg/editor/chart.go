package editor

import (
	"context"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/domain/interfaces"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
)

// Chart owns the flat employee list shown by the editor and its derived
// hierarchy. The list is only ever replaced, never edited in place.
type Chart struct {
	store interfaces.EmployeeStore

	mu        sync.RWMutex
	employees model.Employees
	hierarchy *model.Hierarchy
	loadErr   error
}

// NewChart creates an empty chart backed by store
func NewChart(store interfaces.EmployeeStore) *Chart {
	return &Chart{
		store:     store,
		employees: model.Employees{},
		hierarchy: model.BuildHierarchy(nil),
	}
}

// Load fetches the employee list once. A failure is kept in LoadError and
// the chart stays empty; there is no retry.
func (c *Chart) Load(ctx context.Context) error {
	employees, err := c.store.ListEmployees(ctx)
	if err != nil {
		err = goerr.Wrap(err, "failed to load employees")
		c.mu.Lock()
		c.loadErr = err
		c.mu.Unlock()
		return err
	}

	c.mu.Lock()
	c.loadErr = nil
	c.mu.Unlock()
	c.replace(employees)

	ctxlog.From(ctx).Debug("Employees loaded", "count", len(employees))
	return nil
}

// LoadError returns the error of the last Load, if any
func (c *Chart) LoadError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadErr
}

// Employees returns the current flat list. Callers must not modify it.
func (c *Chart) Employees() model.Employees {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.employees
}

// Hierarchy returns the index over the current list
func (c *Chart) Hierarchy() *model.Hierarchy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hierarchy
}

// View returns the employees visible under team then query
func (c *Chart) View(team, query string) []*model.Employee {
	return model.FilterBySearch(model.FilterByTeam(c.Employees(), team), query)
}

// Teams returns the team filter options
func (c *Chart) Teams() []string {
	return model.Teams(c.Employees())
}

// snapshot returns the list and its hierarchy as one consistent pair
func (c *Chart) snapshot() (model.Employees, *model.Hierarchy) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.employees, c.hierarchy
}

func (c *Chart) replace(employees model.Employees) {
	h := model.BuildHierarchy(employees)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.employees = employees
	c.hierarchy = h
}
