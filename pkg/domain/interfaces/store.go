package interfaces

//go:generate moq -out mocks/store_mock.go -pkg mocks . EmployeeStore

import (
	"context"

	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
)

// EmployeeStore is the remote store the chart editor loads from and commits moves to
type EmployeeStore interface {
	// ListEmployees fetches the full employee list (GET /api/employees)
	ListEmployees(ctx context.Context) (model.Employees, error)
	// MoveEmployee reassigns id to managerID and returns the full updated list
	// (PUT /api/employees/{id}/move)
	MoveEmployee(ctx context.Context, id types.EmployeeID, managerID *types.EmployeeID) (model.Employees, error)
}
