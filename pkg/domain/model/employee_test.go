package model_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
)

func TestEmployeeJSON(t *testing.T) {
	t.Run("null manager is serialized explicitly", func(t *testing.T) {
		raw, err := json.Marshal(newEmployee("1", "", "Executive"))
		gt.NoError(t, err).Required()
		gt.S(t, string(raw)).Contains(`"managerId":null`)
		gt.S(t, string(raw)).Contains(`"employeeId":"EMP1"`)
		gt.S(t, string(raw)).Contains(`"profilePic":""`)
	})

	t.Run("decodes the store payload", func(t *testing.T) {
		var e model.Employee
		err := json.Unmarshal([]byte(`{"id":"12","employeeId":"EMP012","name":"Liam Jackson","designation":"Senior Backend Dev","managerId":"5","email":"liam.jackson@company.com","profilePic":"https://i.pravatar.cc/150?img=18","team":"Engineering"}`), &e)
		gt.NoError(t, err).Required()
		gt.Equal(t, e.ID, types.EmployeeID("12"))
		gt.Equal(t, e.Manager(), types.EmployeeID("5"))
		gt.False(t, e.IsRoot())
	})
}

func TestEmployeeAvatar(t *testing.T) {
	e := newEmployee("1", "", "Executive")
	gt.Equal(t, e.Avatar(), model.DefaultProfilePic)

	e.ProfilePic = "https://i.pravatar.cc/150?img=1"
	gt.Equal(t, e.Avatar(), "https://i.pravatar.cc/150?img=1")
}

func TestEmployeeValidate(t *testing.T) {
	gt.NoError(t, newEmployee("1", "", "A").Validate())
	gt.Error(t, (&model.Employee{Name: "No ID"}).Validate())
	gt.Error(t, (&model.Employee{ID: "1"}).Validate())

	err := newEmployee("1", "1", "A").Validate()
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrSelfManaged))
}

func TestEmployeesReassign(t *testing.T) {
	org := sampleOrg()
	moved := org.Reassign("9", types.EmployeeID("2").Ptr())

	t.Run("returns a new list with the new manager", func(t *testing.T) {
		gt.Equal(t, moved.Find("9").Manager(), types.EmployeeID("2"))
	})

	t.Run("leaves the source untouched", func(t *testing.T) {
		gt.Equal(t, org.Find("9").Manager(), types.EmployeeID("7"))
	})

	t.Run("nil manager makes a root", func(t *testing.T) {
		root := org.Reassign("9", nil)
		gt.True(t, root.Find("9").IsRoot())
	})

	t.Run("unknown subject changes nothing", func(t *testing.T) {
		same := org.Reassign("404", nil)
		gt.Equal(t, same.IDs(), org.IDs())
	})
}

func TestEmployeesClone(t *testing.T) {
	org := sampleOrg()
	c := org.Clone()
	*c.Find("9").ManagerID = "1"
	gt.Equal(t, org.Find("9").Manager(), types.EmployeeID("7"))
	gt.True(t, model.Employees(nil).Clone() == nil)
}
