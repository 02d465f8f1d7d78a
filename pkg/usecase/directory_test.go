package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/orgchart/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
	"github.com/secmon-lab/orgchart/pkg/repository"
	slackSvc "github.com/secmon-lab/orgchart/pkg/service/slack"
	"github.com/secmon-lab/orgchart/pkg/usecase"
	"github.com/slack-go/slack"
)

func emp(id, managerID, name string) *model.Employee {
	return &model.Employee{
		ID:        types.EmployeeID(id),
		Name:      name,
		Team:      "Engineering",
		ManagerID: types.EmployeeID(managerID).Ptr(),
	}
}

// 1 -> 2 -> 5 -> 7 -> 9, 1 -> 3
func seedOrg() model.Employees {
	return model.Employees{
		emp("1", "", "Alice Johnson"),
		emp("2", "1", "Bob Smith"),
		emp("3", "1", "Carol Williams"),
		emp("5", "2", "Emma Davis"),
		emp("7", "5", "Grace Wilson"),
		emp("9", "7", "Ivy Taylor"),
	}
}

func newSeededDirectory(t *testing.T, opts ...usecase.DirectoryOption) *usecase.Directory {
	t.Helper()
	d := usecase.NewDirectory(repository.NewMemory(), opts...)
	n, err := d.Seed(context.Background(), seedOrg())
	gt.NoError(t, err).Required()
	gt.Equal(t, n, 6)
	return d
}

func TestDirectoryMoveEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("Reassigns and returns the full list", func(t *testing.T) {
		d := newSeededDirectory(t)

		list, err := d.MoveEmployee(ctx, "9", types.EmployeeID("3").Ptr())
		gt.NoError(t, err).Required()
		gt.Equal(t, len(list), 6)
		gt.Equal(t, list.Find("9").Manager(), types.EmployeeID("3"))
		gt.True(t, model.BuildHierarchy(list).IsForest())
	})

	t.Run("Nil manager makes a root", func(t *testing.T) {
		d := newSeededDirectory(t)

		list, err := d.MoveEmployee(ctx, "5", nil)
		gt.NoError(t, err).Required()
		gt.True(t, list.Find("5").IsRoot())
		gt.Equal(t, len(model.BuildHierarchy(list).Roots()), 2)
	})

	t.Run("Unknown employee", func(t *testing.T) {
		d := newSeededDirectory(t)
		_, err := d.MoveEmployee(ctx, "404", nil)
		gt.True(t, errors.Is(err, model.ErrEmployeeNotFound))
	})

	t.Run("Unknown manager", func(t *testing.T) {
		d := newSeededDirectory(t)
		_, err := d.MoveEmployee(ctx, "9", types.EmployeeID("404").Ptr())
		gt.True(t, errors.Is(err, model.ErrManagerNotFound))
	})

	t.Run("Self", func(t *testing.T) {
		d := newSeededDirectory(t)
		_, err := d.MoveEmployee(ctx, "2", types.EmployeeID("2").Ptr())
		gt.True(t, errors.Is(err, model.ErrSelfManaged))
	})

	t.Run("Any descendant is refused", func(t *testing.T) {
		d := newSeededDirectory(t)

		_, err := d.MoveEmployee(ctx, "2", types.EmployeeID("5").Ptr())
		gt.True(t, errors.Is(err, model.ErrCyclicManager))

		_, err = d.MoveEmployee(ctx, "2", types.EmployeeID("9").Ptr())
		gt.True(t, errors.Is(err, model.ErrCyclicManager))

		list, err := d.ListEmployees(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, list.Find("2").Manager(), types.EmployeeID("1"))
	})

	t.Run("Repository failure is wrapped", func(t *testing.T) {
		repo := &mocks.RepositoryMock{
			ListEmployeesFunc: func(ctx context.Context) (model.Employees, error) {
				return seedOrg(), nil
			},
			UpdateManagerFunc: func(ctx context.Context, id types.EmployeeID, managerID *types.EmployeeID) error {
				return errors.New("unavailable")
			},
		}
		d := usecase.NewDirectory(repo)

		_, err := d.MoveEmployee(ctx, "9", types.EmployeeID("3").Ptr())
		gt.Error(t, err)
		gt.A(t, repo.UpdateManagerCalls()).Length(1)
	})

	t.Run("Committed move is announced", func(t *testing.T) {
		posted := make(chan string, 1)
		client := &mocks.SlackClientMock{
			PostMessageFunc: func(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
				posted <- channelID
				return channelID, "1.0", nil
			},
		}
		d := newSeededDirectory(t, usecase.WithAnnouncer(slackSvc.NewAnnouncer(client, "C-ORG")))

		_, err := d.MoveEmployee(ctx, "9", types.EmployeeID("3").Ptr())
		gt.NoError(t, err).Required()

		select {
		case ch := <-posted:
			gt.Equal(t, ch, "C-ORG")
		case <-time.After(time.Second):
			t.Fatal("announcement was not posted")
		}
	})

	t.Run("No-op move is not announced", func(t *testing.T) {
		client := &mocks.SlackClientMock{}
		d := newSeededDirectory(t, usecase.WithAnnouncer(slackSvc.NewAnnouncer(client, "C-ORG")))

		_, err := d.MoveEmployee(ctx, "9", types.EmployeeID("7").Ptr())
		gt.NoError(t, err).Required()
		time.Sleep(50 * time.Millisecond)
		gt.A(t, client.PostMessageCalls()).Length(0)
	})
}

func TestDirectoryCreateEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("Generates an ID", func(t *testing.T) {
		d := newSeededDirectory(t)

		created, err := d.CreateEmployee(ctx, &model.Employee{Name: "New Hire", ManagerID: types.EmployeeID("3").Ptr()})
		gt.NoError(t, err).Required()
		gt.NotEqual(t, created.ID, types.EmployeeID(""))

		list, err := d.ListEmployees(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(list), 7)
		gt.Equal(t, list[6].ID, created.ID)
	})

	t.Run("Duplicate ID", func(t *testing.T) {
		d := newSeededDirectory(t)
		_, err := d.CreateEmployee(ctx, emp("2", "1", "Bob Again"))
		gt.True(t, errors.Is(err, model.ErrEmployeeExists))
	})

	t.Run("Unknown manager", func(t *testing.T) {
		d := newSeededDirectory(t)
		_, err := d.CreateEmployee(ctx, emp("100", "404", "Orphan"))
		gt.True(t, errors.Is(err, model.ErrManagerNotFound))
	})

	t.Run("Invalid employee", func(t *testing.T) {
		d := newSeededDirectory(t)
		_, err := d.CreateEmployee(ctx, &model.Employee{ID: "100"})
		gt.Error(t, err)
		_, err = d.CreateEmployee(ctx, nil)
		gt.Error(t, err)
	})
}

func TestDirectorySeed(t *testing.T) {
	ctx := context.Background()

	t.Run("Skips a populated repository", func(t *testing.T) {
		d := newSeededDirectory(t)
		n, err := d.Seed(ctx, model.Employees{emp("100", "", "Someone")})
		gt.NoError(t, err)
		gt.Equal(t, n, 0)
	})

	t.Run("Refuses a cyclic seed", func(t *testing.T) {
		d := usecase.NewDirectory(repository.NewMemory())
		_, err := d.Seed(ctx, model.Employees{emp("a", "b", "A"), emp("b", "a", "B")})
		gt.True(t, errors.Is(err, model.ErrCyclicManager))
	})

	t.Run("Invalid employee stores nothing", func(t *testing.T) {
		d := usecase.NewDirectory(repository.NewMemory())
		_, err := d.Seed(ctx, model.Employees{
			emp("1", "", "Alice Johnson"),
			emp("2", "1", "Bob Smith"),
			emp("3", "1", ""),
		})
		gt.Error(t, err)

		list, err := d.ListEmployees(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(list), 0)

		n, err := d.Seed(ctx, model.Employees{
			emp("1", "", "Alice Johnson"),
			emp("2", "1", "Bob Smith"),
			emp("3", "1", "Carol Williams"),
		})
		gt.NoError(t, err).Required()
		gt.Equal(t, n, 3)
	})
}
