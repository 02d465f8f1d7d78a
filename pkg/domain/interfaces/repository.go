package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
)

// Repository defines the interface for employee persistence behind the store server
type Repository interface {
	// ListEmployees returns every employee in a stable order
	ListEmployees(ctx context.Context) (model.Employees, error)
	GetEmployee(ctx context.Context, id types.EmployeeID) (*model.Employee, error)
	PutEmployee(ctx context.Context, employee *model.Employee) error
	// UpdateManager reassigns id to managerID (nil makes it a root)
	UpdateManager(ctx context.Context, id types.EmployeeID, managerID *types.EmployeeID) error

	// Close closes the repository connection
	Close() error
}
