package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/domain/interfaces"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
	slackSvc "github.com/secmon-lab/orgchart/pkg/service/slack"
	"github.com/secmon-lab/orgchart/pkg/utils/async"
)

// DirectoryOption is a functional option for configuring Directory
type DirectoryOption func(*Directory)

// WithAnnouncer posts every committed move through the given announcer
func WithAnnouncer(announcer *slackSvc.Announcer) DirectoryOption {
	return func(d *Directory) {
		d.announcer = announcer
	}
}

// Directory implements interfaces.Directory on top of a Repository. Moves
// are checked against the whole reporting chain so the stored hierarchy
// always stays an acyclic forest.
type Directory struct {
	repo      interfaces.Repository
	announcer *slackSvc.Announcer

	// moveMu serializes check-then-update of the manager graph
	moveMu sync.Mutex
}

// NewDirectory creates a new Directory use case
func NewDirectory(repo interfaces.Repository, opts ...DirectoryOption) *Directory {
	d := &Directory{repo: repo}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ListEmployees returns every employee in stored order
func (d *Directory) ListEmployees(ctx context.Context) (model.Employees, error) {
	employees, err := d.repo.ListEmployees(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list employees")
	}
	directoryEmployees.Set(float64(len(employees)))
	return employees, nil
}

// MoveEmployee reassigns id to managerID (nil makes it a root) and returns
// the full updated list
func (d *Directory) MoveEmployee(ctx context.Context, id types.EmployeeID, managerID *types.EmployeeID) (model.Employees, error) {
	d.moveMu.Lock()
	defer d.moveMu.Unlock()

	employees, err := d.repo.ListEmployees(ctx)
	if err != nil {
		recordMove(moveResultError)
		return nil, goerr.Wrap(err, "failed to list employees")
	}
	h := model.BuildHierarchy(employees)

	subject, ok := h.Get(id)
	if !ok {
		recordMove(moveResultNotFound)
		return nil, goerr.Wrap(model.ErrEmployeeNotFound, "cannot move employee", goerr.V("id", id))
	}

	var manager *model.Employee
	if managerID != nil {
		switch {
		case *managerID == id:
			recordMove(moveResultSelf)
			return nil, goerr.Wrap(model.ErrSelfManaged, "cannot move employee", goerr.V("id", id))
		case h.IsDescendant(id, *managerID):
			recordMove(moveResultCycle)
			return nil, goerr.Wrap(model.ErrCyclicManager, "cannot move employee",
				goerr.V("id", id),
				goerr.V("managerID", *managerID))
		}

		m, ok := h.Get(*managerID)
		if !ok {
			recordMove(moveResultManagerNotFound)
			return nil, goerr.Wrap(model.ErrManagerNotFound, "cannot move employee",
				goerr.V("id", id),
				goerr.V("managerID", *managerID))
		}
		manager = m
	}

	if err := d.repo.UpdateManager(ctx, id, managerID); err != nil {
		recordMove(moveResultError)
		return nil, goerr.Wrap(err, "failed to update manager", goerr.V("id", id))
	}

	updated, err := d.repo.ListEmployees(ctx)
	if err != nil {
		recordMove(moveResultError)
		return nil, goerr.Wrap(err, "failed to list employees after move")
	}
	recordMove(moveResultCommitted)
	directoryEmployees.Set(float64(len(updated)))

	var previous *model.Employee
	if !subject.IsRoot() {
		previous, _ = h.Get(subject.Manager())
	}

	ctxlog.From(ctx).Info("Employee moved",
		"id", id,
		"from", subject.Manager(),
		"to", types.ManagerKey(managerID),
	)

	if d.announcer != nil && subject.Manager() != types.ManagerKey(managerID) {
		moved := subject.WithManager(managerID)
		async.Dispatch(ctx, func(ctx context.Context) error {
			return d.announcer.AnnounceMove(ctx, moved, previous, manager)
		})
	}

	return updated, nil
}

// CreateEmployee stores a new employee. A missing ID is generated.
func (d *Directory) CreateEmployee(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	if employee == nil {
		return nil, goerr.New("employee is nil")
	}

	e := employee.Clone()
	if e.ID == "" {
		e.ID = types.NewEmployeeID()
	}
	if err := e.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid employee")
	}

	d.moveMu.Lock()
	defer d.moveMu.Unlock()

	if _, err := d.repo.GetEmployee(ctx, e.ID); err == nil {
		return nil, goerr.Wrap(model.ErrEmployeeExists, "cannot create employee", goerr.V("id", e.ID))
	} else if !errors.Is(err, model.ErrEmployeeNotFound) {
		return nil, goerr.Wrap(err, "failed to look up employee", goerr.V("id", e.ID))
	}

	if e.ManagerID != nil {
		if _, err := d.repo.GetEmployee(ctx, *e.ManagerID); err != nil {
			if errors.Is(err, model.ErrEmployeeNotFound) {
				return nil, goerr.Wrap(model.ErrManagerNotFound, "cannot create employee",
					goerr.V("id", e.ID),
					goerr.V("managerID", *e.ManagerID))
			}
			return nil, goerr.Wrap(err, "failed to look up manager", goerr.V("managerID", *e.ManagerID))
		}
	}

	if err := d.repo.PutEmployee(ctx, e); err != nil {
		return nil, goerr.Wrap(err, "failed to create employee", goerr.V("id", e.ID))
	}

	ctxlog.From(ctx).Info("Employee created", "id", e.ID, "name", e.Name)
	return e, nil
}

// Seed stores employees when the repository is empty and returns how many
// were written. A non-empty repository is left untouched.
func (d *Directory) Seed(ctx context.Context, employees model.Employees) (int, error) {
	current, err := d.repo.ListEmployees(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list employees")
	}
	if len(current) > 0 {
		ctxlog.From(ctx).Debug("Skip seeding, repository is not empty", "count", len(current))
		return 0, nil
	}

	if !model.BuildHierarchy(employees).IsForest() {
		return 0, goerr.Wrap(model.ErrCyclicManager, "seed is not an acyclic forest")
	}

	for _, e := range employees {
		if err := e.Validate(); err != nil {
			return 0, goerr.Wrap(err, "invalid seed employee", goerr.V("id", e.ID))
		}
	}
	for _, e := range employees {
		if err := d.repo.PutEmployee(ctx, e); err != nil {
			return 0, goerr.Wrap(err, "failed to seed employee", goerr.V("id", e.ID))
		}
	}

	ctxlog.From(ctx).Info("Seeded employees", "count", len(employees))
	return len(employees), nil
}

var _ interfaces.Directory = (*Directory)(nil)
