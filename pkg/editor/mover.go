package editor

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/domain/interfaces"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
	"golang.org/x/sync/semaphore"
)

const (
	// SuccessDuration is how long a committed move stays announced with its undo action
	SuccessDuration = 8 * time.Second

	// UndoLabel is the action label offered after a committed move
	UndoLabel = "Undo"

	msgMoveFailed = "Failed to move employee. Changes have been reverted."
	msgUndoFailed = "Failed to undo move. Please try again."
)

// MoverOption configures a Mover
type MoverOption func(*Mover)

// WithStrictDescendantCheck refuses moves under any transitive report, not
// only direct ones
func WithStrictDescendantCheck() MoverOption {
	return func(m *Mover) {
		m.strict = true
	}
}

// WithSingleFlight runs one move at a time. Later moves wait for the
// previous one to settle and are validated against its result.
func WithSingleFlight() MoverOption {
	return func(m *Mover) {
		m.sem = semaphore.NewWeighted(1)
	}
}

// WithMoveObserver registers fn to receive every state a move passes through
func WithMoveObserver(fn func(ctx context.Context, state model.MoveState)) MoverOption {
	return func(m *Mover) {
		m.observer = fn
	}
}

// Mover validates reassignments, applies them optimistically to the chart,
// commits them to the store and rolls back or offers undo depending on the
// outcome. Overlapping moves are not queued unless WithSingleFlight is set.
type Mover struct {
	chart    *Chart
	store    interfaces.EmployeeStore
	notes    *Notifications
	strict   bool
	sem      *semaphore.Weighted
	observer func(ctx context.Context, state model.MoveState)
	inFlight atomic.Int64

	mu     sync.Mutex
	mobile types.EmployeeID
}

// NewMover creates a Mover operating on chart
func NewMover(chart *Chart, store interfaces.EmployeeStore, notes *Notifications, opts ...MoverOption) *Mover {
	m := &Mover{
		chart: chart,
		store: store,
		notes: notes,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Moving reports whether any move is waiting for the store
func (m *Mover) Moving() bool {
	return m.inFlight.Load() > 0
}

// CanDrop reports whether subjectID may be dropped onto targetID
func (m *Mover) CanDrop(subjectID, targetID types.EmployeeID) bool {
	return Validate(m.chart.Hierarchy(), subjectID, targetID.Ptr(), m.strict) == nil
}

// Drop moves subjectID under targetID. An empty target makes it a root.
func (m *Mover) Drop(ctx context.Context, subjectID, targetID types.EmployeeID) (model.MoveState, error) {
	return m.Move(ctx, subjectID, targetID.Ptr())
}

// Move reassigns subjectID to targetID (nil makes it a root) and returns the
// terminal state. The returned error is the *model.MoveRejection of an
// illegal move; store failures are handled by rolling back and notifying.
func (m *Mover) Move(ctx context.Context, subjectID types.EmployeeID, targetID *types.EmployeeID) (model.MoveState, error) {
	intent := &model.MoveIntent{
		SubjectID: subjectID,
		TargetID:  copyID(targetID),
	}
	return m.execute(ctx, intent)
}

// StartMobileMove enters the two-step move mode for subjectID
func (m *Mover) StartMobileMove(subjectID types.EmployeeID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mobile = subjectID
}

// CancelMobileMove leaves the two-step move mode
func (m *Mover) CancelMobileMove() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mobile = ""
}

// MobileMoving returns the employee waiting for a "move here" target
func (m *Mover) MobileMoving() (types.EmployeeID, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mobile, m.mobile != ""
}

// MoveHere completes a two-step move onto targetID. A target that cannot
// accept the subject is ignored and the mode stays active.
func (m *Mover) MoveHere(ctx context.Context, targetID types.EmployeeID) (model.MoveState, error) {
	m.mu.Lock()
	subjectID := m.mobile
	if subjectID == "" || !m.CanDrop(subjectID, targetID) {
		m.mu.Unlock()
		return model.MoveIdle{}, nil
	}
	m.mobile = ""
	m.mu.Unlock()

	return m.Drop(ctx, subjectID, targetID)
}

func (m *Mover) execute(ctx context.Context, intent *model.MoveIntent) (model.MoveState, error) {
	m.report(ctx, model.MoveProposed{Intent: intent})

	if intent.TargetID != nil && *intent.TargetID == intent.SubjectID {
		return m.reject(ctx, intent, &model.MoveRejection{
			SubjectID: intent.SubjectID,
			TargetID:  intent.Target(),
			Reason:    types.RejectSelf,
		})
	}

	if m.sem != nil {
		if err := m.sem.Acquire(ctx, 1); err != nil {
			state := model.MoveRolledBack{
				Intent: intent,
				Err:    goerr.Wrap(err, "move cancelled before it started", goerr.V("id", intent.SubjectID)),
			}
			m.report(ctx, state)
			return state, nil
		}
		defer m.sem.Release(1)
	}

	m.report(ctx, model.MoveValidating{Intent: intent})
	prior, h := m.chart.snapshot()
	if rej := Validate(h, intent.SubjectID, intent.TargetID, m.strict); rej != nil {
		return m.reject(ctx, intent, rej)
	}

	subject, _ := h.Get(intent.SubjectID)
	intent.Prior = prior
	intent.PreviousManagerID = copyID(subject.ManagerID)

	m.inFlight.Add(1)
	m.chart.replace(prior.Reassign(intent.SubjectID, intent.TargetID))
	m.report(ctx, model.MoveOptimistic{Intent: intent})

	employees, err := m.store.MoveEmployee(ctx, intent.SubjectID, intent.TargetID)
	if err != nil {
		m.chart.replace(prior)
		m.inFlight.Add(-1)
		return m.rollback(ctx, intent, err), nil
	}
	m.chart.replace(employees)
	m.inFlight.Add(-1)

	return m.commit(ctx, intent, subject, employees), nil
}

func (m *Mover) reject(ctx context.Context, intent *model.MoveIntent, rej *model.MoveRejection) (model.MoveState, error) {
	ctxlog.From(ctx).Debug("Move rejected",
		"id", intent.SubjectID,
		"target", intent.Target(),
		"reason", rej.Reason,
	)
	state := model.MoveRejected{Intent: intent, Rejection: rej}
	m.report(ctx, state)
	return state, rej
}

func (m *Mover) rollback(ctx context.Context, intent *model.MoveIntent, err error) model.MoveState {
	ctxlog.From(ctx).Warn("Move failed, reverted",
		"id", intent.SubjectID,
		"target", intent.Target(),
		"undo", intent.Undo,
		"error", err,
	)

	switch {
	case intent.Undo:
		m.notes.Error(msgUndoFailed)
	case model.StoreMessage(err) != "":
		m.notes.Error(model.StoreMessage(err))
	default:
		m.notes.Error(msgMoveFailed)
	}

	state := model.MoveRolledBack{Intent: intent, Err: err}
	m.report(ctx, state)
	return state
}

func (m *Mover) commit(ctx context.Context, intent *model.MoveIntent, subject *model.Employee, employees model.Employees) model.MoveState {
	name := subject.DisplayName(subject.ID.String())

	ctxlog.From(ctx).Info("Move committed",
		"id", intent.SubjectID,
		"from", types.ManagerKey(intent.PreviousManagerID),
		"to", intent.Target(),
		"undo", intent.Undo,
	)

	if intent.Undo {
		m.notes.Info(fmt.Sprintf("Move undone: %s restored to %s's team",
			name, managerName(employees, intent.TargetID, "previous manager")))

		state := model.MoveUndone{Intent: intent, Employees: employees}
		m.report(ctx, state)
		return state
	}

	var message string
	if intent.TargetID == nil {
		message = fmt.Sprintf("%s successfully moved to the top level", name)
	} else {
		message = fmt.Sprintf("%s successfully moved to %s's team",
			name, managerName(employees, intent.TargetID, intent.Target().String()))
	}
	m.notes.Success(message,
		WithDuration(SuccessDuration),
		WithAction(UndoLabel, func(ctx context.Context) {
			_, _ = m.execute(ctx, intent.Reverse())
		}),
	)

	state := model.MoveCommitted{Intent: intent, Employees: employees}
	m.report(ctx, state)
	return state
}

func (m *Mover) report(ctx context.Context, state model.MoveState) {
	if m.observer != nil {
		m.observer(ctx, state)
	}
}

func managerName(employees model.Employees, id *types.EmployeeID, fallback string) string {
	if id == nil {
		return fallback
	}
	return employees.Find(*id).DisplayName(fallback)
}

func copyID(id *types.EmployeeID) *types.EmployeeID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
