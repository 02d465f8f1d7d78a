package repository

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/domain/interfaces"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu        sync.RWMutex
	employees map[types.EmployeeID]*model.Employee
	// order keeps insertion order so listings are stable
	order []types.EmployeeID
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		employees: make(map[types.EmployeeID]*model.Employee),
	}
}

// ListEmployees returns copies of all employees in insertion order
func (m *Memory) ListEmployees(ctx context.Context) (model.Employees, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(model.Employees, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.employees[id].Clone())
	}
	return out, nil
}

// GetEmployee retrieves an employee by ID
func (m *Memory) GetEmployee(ctx context.Context, id types.EmployeeID) (*model.Employee, error) {
	if id == "" {
		return nil, goerr.New("employee ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	e, exists := m.employees[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrEmployeeNotFound, "failed to get employee", goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	return e.Clone(), nil
}

// PutEmployee creates or replaces an employee. A replaced employee keeps its position.
func (m *Memory) PutEmployee(ctx context.Context, employee *model.Employee) error {
	if employee == nil {
		return goerr.New("employee is nil")
	}
	if employee.ID == "" {
		return goerr.New("employee ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.employees[employee.ID]; !exists {
		m.order = append(m.order, employee.ID)
	}
	m.employees[employee.ID] = employee.Clone()
	return nil
}

// UpdateManager sets the manager of an existing employee
func (m *Memory) UpdateManager(ctx context.Context, id types.EmployeeID, managerID *types.EmployeeID) error {
	if id == "" {
		return goerr.New("employee ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	e, exists := m.employees[id]
	if !exists {
		return goerr.Wrap(model.ErrEmployeeNotFound, "failed to update manager", goerr.V("id", id))
	}

	m.employees[id] = e.WithManager(managerID)
	return nil
}

// Close does nothing for memory repository
func (m *Memory) Close() error {
	return nil
}

var _ interfaces.Repository = (*Memory)(nil)
