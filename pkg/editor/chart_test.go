package editor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgchart/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
	"github.com/secmon-lab/orgchart/pkg/editor"
)

func TestChartLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("indexes the fetched list", func(t *testing.T) {
		store := newFakeServer(sampleOrg()).mock()
		c := editor.NewChart(store)
		gt.NoError(t, c.Load(ctx)).Required()

		gt.Equal(t, len(c.Employees()), 8)
		gt.Equal(t, len(c.Hierarchy().Roots()), 2)
		gt.True(t, c.LoadError() == nil)
		gt.A(t, store.ListEmployeesCalls()).Length(1)
	})

	t.Run("failure is kept and the chart stays empty", func(t *testing.T) {
		store := &mocks.EmployeeStoreMock{
			ListEmployeesFunc: func(ctx context.Context) (model.Employees, error) {
				return nil, errors.New("connection refused")
			},
		}
		c := editor.NewChart(store)

		gt.Error(t, c.Load(ctx))
		gt.Error(t, c.LoadError())
		gt.Equal(t, len(c.Employees()), 0)
		gt.Equal(t, c.Hierarchy().Len(), 0)
		gt.A(t, store.ListEmployeesCalls()).Length(1)
	})
}

func TestChartView(t *testing.T) {
	c := editor.NewChart(newFakeServer(sampleOrg()).mock())
	gt.NoError(t, c.Load(context.Background())).Required()

	ids := func(es []*model.Employee) []types.EmployeeID {
		return model.Employees(es).IDs()
	}

	gt.Equal(t, len(c.View("", "")), 8)
	gt.Equal(t, len(c.View(model.AllTeams, "")), 8)
	gt.Equal(t, ids(c.View("Finance", "")), []types.EmployeeID{"1", "3", "18"})
	gt.Equal(t, ids(c.View("Engineering", "ivy")), []types.EmployeeID{"9"})
	gt.Equal(t, ids(c.View("", "executive")), []types.EmployeeID{"1", "2", "3"})
	gt.Equal(t, c.Teams(), []string{model.AllTeams, "Board", "Engineering", "Executive", "Finance"})
}
