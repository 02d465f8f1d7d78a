package model

import (
	"fmt"

	"github.com/secmon-lab/orgchart/pkg/domain/types"
)

// MoveIntent describes one proposed reassignment together with everything
// needed to roll it back or undo it
type MoveIntent struct {
	SubjectID types.EmployeeID
	// TargetID is the new manager; nil makes the subject a root
	TargetID *types.EmployeeID
	// PreviousManagerID is the subject's manager right before the move
	PreviousManagerID *types.EmployeeID
	// Prior is the full visible list before the optimistic update
	Prior Employees
	// Undo marks the follow-up move issued by an undo action
	Undo bool
}

// Target returns the index key of the new manager
func (i *MoveIntent) Target() types.EmployeeID {
	return types.ManagerKey(i.TargetID)
}

// Reverse returns the intent that restores the previous manager
func (i *MoveIntent) Reverse() *MoveIntent {
	var target *types.EmployeeID
	if i.PreviousManagerID != nil {
		t := *i.PreviousManagerID
		target = &t
	}
	return &MoveIntent{
		SubjectID: i.SubjectID,
		TargetID:  target,
		Undo:      true,
	}
}

// MoveRejection is returned when a proposed move is illegal
type MoveRejection struct {
	SubjectID types.EmployeeID
	TargetID  types.EmployeeID
	Reason    types.RejectReason
}

func (r *MoveRejection) Error() string {
	return fmt.Sprintf("move of %q onto %q rejected: %s", r.SubjectID, r.TargetID, r.Reason)
}

// MoveState is the state of a single move. The concrete types below form a
// closed set; consumers switch over them exhaustively.
type MoveState interface {
	moveState()
	// Name returns a stable label used in logs and metrics
	Name() string
}

// MoveIdle means no move has been proposed
type MoveIdle struct{}

// MoveProposed holds a move that was requested but not yet validated
type MoveProposed struct{ Intent *MoveIntent }

// MoveValidating holds a move whose legality is being checked
type MoveValidating struct{ Intent *MoveIntent }

// MoveRejected is terminal: the move was illegal and nothing changed
type MoveRejected struct {
	Intent    *MoveIntent
	Rejection *MoveRejection
}

// MoveOptimistic holds a move applied locally and awaiting the store
type MoveOptimistic struct{ Intent *MoveIntent }

// MoveCommitted is terminal: the store accepted the move and returned the authoritative list
type MoveCommitted struct {
	Intent    *MoveIntent
	Employees Employees
}

// MoveRolledBack is terminal: the store call failed and the prior list was restored
type MoveRolledBack struct {
	Intent *MoveIntent
	Err    error
}

// MoveUndone is terminal: a committed move was reverted by its undo action
type MoveUndone struct {
	Intent    *MoveIntent
	Employees Employees
}

func (MoveIdle) moveState()       {}
func (MoveProposed) moveState()   {}
func (MoveValidating) moveState() {}
func (MoveRejected) moveState()   {}
func (MoveOptimistic) moveState() {}
func (MoveCommitted) moveState()  {}
func (MoveRolledBack) moveState() {}
func (MoveUndone) moveState()     {}

func (MoveIdle) Name() string       { return "idle" }
func (MoveProposed) Name() string   { return "proposed" }
func (MoveValidating) Name() string { return "validating" }
func (MoveRejected) Name() string   { return "rejected" }
func (MoveOptimistic) Name() string { return "optimistic" }
func (MoveCommitted) Name() string  { return "committed" }
func (MoveRolledBack) Name() string { return "rolled_back" }
func (MoveUndone) Name() string     { return "undone" }

// IsTerminal reports whether s is a settled state
func IsTerminal(s MoveState) bool {
	switch s.(type) {
	case MoveRejected, MoveCommitted, MoveRolledBack, MoveUndone:
		return true
	case MoveIdle, MoveProposed, MoveValidating, MoveOptimistic:
		return false
	default:
		panic(fmt.Sprintf("unknown move state %T", s))
	}
}
