package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
)

// DefaultProfilePic is shown for employees without a picture
const DefaultProfilePic = "https://via.placeholder.com/150"

// Employee represents a node of the organizational hierarchy
type Employee struct {
	ID          types.EmployeeID  `json:"id" yaml:"id" firestore:"id"`
	EmployeeID  string            `json:"employeeId" yaml:"employeeId" firestore:"employee_id"`
	Name        string            `json:"name" yaml:"name" firestore:"name"`
	Email       string            `json:"email" yaml:"email" firestore:"email"`
	Designation string            `json:"designation" yaml:"designation" firestore:"designation"`
	Team        string            `json:"team" yaml:"team" firestore:"team"`
	ProfilePic  string            `json:"profilePic" yaml:"profilePic" firestore:"profile_pic"`
	ManagerID   *types.EmployeeID `json:"managerId" yaml:"managerId" firestore:"manager_id"`
}

// Manager returns the manager index key of the employee (RootManager when none)
func (e *Employee) Manager() types.EmployeeID {
	return types.ManagerKey(e.ManagerID)
}

// IsRoot reports whether the employee has no manager
func (e *Employee) IsRoot() bool {
	return e.ManagerID == nil
}

// Avatar returns the profile picture, falling back to the placeholder
func (e *Employee) Avatar() string {
	if strings.TrimSpace(e.ProfilePic) == "" {
		return DefaultProfilePic
	}
	return e.ProfilePic
}

// DisplayName returns the name, or fallback when it is empty
func (e *Employee) DisplayName(fallback string) string {
	if e == nil || e.Name == "" {
		return fallback
	}
	return e.Name
}

// Clone returns a deep copy of the employee
func (e *Employee) Clone() *Employee {
	c := *e
	if e.ManagerID != nil {
		m := *e.ManagerID
		c.ManagerID = &m
	}
	return &c
}

// WithManager returns a copy of the employee reporting to managerID
func (e *Employee) WithManager(managerID *types.EmployeeID) *Employee {
	c := e.Clone()
	if managerID == nil {
		c.ManagerID = nil
	} else {
		m := *managerID
		c.ManagerID = &m
	}
	return c
}

// Validate checks the fields required by the store
func (e *Employee) Validate() error {
	if e.ID == "" {
		return goerr.New("employee ID is empty")
	}
	if strings.TrimSpace(e.Name) == "" {
		return goerr.New("employee name is empty", goerr.V("id", e.ID))
	}
	if e.ManagerID != nil && *e.ManagerID == e.ID {
		return goerr.Wrap(ErrSelfManaged, "invalid employee", goerr.V("id", e.ID))
	}
	return nil
}

// Employees is an ordered flat list of employees
type Employees []*Employee

// Find returns the employee with the given ID, or nil
func (es Employees) Find(id types.EmployeeID) *Employee {
	for _, e := range es {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Index returns an ID lookup table over the list
func (es Employees) Index() map[types.EmployeeID]*Employee {
	m := make(map[types.EmployeeID]*Employee, len(es))
	for _, e := range es {
		m[e.ID] = e
	}
	return m
}

// Clone returns a deep copy of the list
func (es Employees) Clone() Employees {
	if es == nil {
		return nil
	}
	out := make(Employees, len(es))
	for i, e := range es {
		out[i] = e.Clone()
	}
	return out
}

// Reassign returns a new list in which id reports to managerID. Other
// entries are shared with the receiver, which is left untouched.
func (es Employees) Reassign(id types.EmployeeID, managerID *types.EmployeeID) Employees {
	out := make(Employees, len(es))
	for i, e := range es {
		if e.ID == id {
			out[i] = e.WithManager(managerID)
			continue
		}
		out[i] = e
	}
	return out
}

// IDs returns the employee IDs in list order
func (es Employees) IDs() []types.EmployeeID {
	ids := make([]types.EmployeeID, len(es))
	for i, e := range es {
		ids[i] = e.ID
	}
	return ids
}
