package types

import (
	"github.com/google/uuid"
)

// EmployeeID represents the stable identity of an employee
type EmployeeID string

// RootManager is the manager key under which employees without a manager are indexed
const RootManager EmployeeID = ""

// String returns the string representation
func (id EmployeeID) String() string {
	return string(id)
}

// IsRoot reports whether the ID stands for "no manager"
func (id EmployeeID) IsRoot() bool {
	return id == RootManager
}

// Ptr returns a pointer to a copy of the ID, or nil for RootManager
func (id EmployeeID) Ptr() *EmployeeID {
	if id.IsRoot() {
		return nil
	}
	return &id
}

// ManagerKey converts an optional manager reference into an index key
func ManagerKey(id *EmployeeID) EmployeeID {
	if id == nil {
		return RootManager
	}
	return *id
}

// NewEmployeeID creates a new random EmployeeID
func NewEmployeeID() EmployeeID {
	return EmployeeID(uuid.New().String())
}

// NotificationID represents a notification identifier
type NotificationID string

// String returns the string representation
func (id NotificationID) String() string {
	return string(id)
}

// NewNotificationID creates a new NotificationID using UUID v7
func NewNotificationID() NotificationID {
	id, err := uuid.NewV7()
	if err != nil {
		return NotificationID(uuid.New().String())
	}
	return NotificationID(id.String())
}
