package editor

import (
	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
)

// Validate checks whether subjectID may be placed under targetID (nil makes
// it a root). Only self and direct mentees are refused unless strict is
// set, in which case every transitive report is refused as well.
func Validate(h *model.Hierarchy, subjectID types.EmployeeID, targetID *types.EmployeeID, strict bool) *model.MoveRejection {
	reject := func(reason types.RejectReason) *model.MoveRejection {
		return &model.MoveRejection{
			SubjectID: subjectID,
			TargetID:  types.ManagerKey(targetID),
			Reason:    reason,
		}
	}

	if targetID != nil && *targetID == subjectID {
		return reject(types.RejectSelf)
	}
	if _, ok := h.Get(subjectID); !ok {
		return reject(types.RejectUnknownSubject)
	}
	if targetID == nil {
		return nil
	}
	if _, ok := h.Get(*targetID); !ok {
		return reject(types.RejectUnknownTarget)
	}
	if h.IsDirectMentee(subjectID, *targetID) {
		return reject(types.RejectDirectMentee)
	}
	if strict && h.IsDescendant(subjectID, *targetID) {
		return reject(types.RejectDescendant)
	}
	return nil
}
