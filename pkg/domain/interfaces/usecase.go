package interfaces

//go:generate moq -out mocks/usecase_mock.go -pkg mocks . Directory

import (
	"context"

	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
)

// Directory defines the store-side employee operations served over HTTP
type Directory interface {
	// ListEmployees returns the full employee list
	ListEmployees(ctx context.Context) (model.Employees, error)
	// MoveEmployee reassigns id to managerID, refusing moves that would break
	// the forest, and returns the full updated list
	MoveEmployee(ctx context.Context, id types.EmployeeID, managerID *types.EmployeeID) (model.Employees, error)
	// CreateEmployee adds a new employee
	CreateEmployee(ctx context.Context, employee *model.Employee) (*model.Employee, error)
}
