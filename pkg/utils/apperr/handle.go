package apperr

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
)

// refusals are expected outcomes of user input, not failures
var refusals = []error{
	model.ErrEmployeeNotFound,
	model.ErrManagerNotFound,
	model.ErrSelfManaged,
	model.ErrCyclicManager,
	model.ErrEmployeeExists,
}

// IsRefusal reports whether err is a domain refusal
func IsRefusal(err error) bool {
	for _, r := range refusals {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}

// Handle logs err. Refusals are logged as warnings.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if IsRefusal(err) {
		logger.Warn("request refused", "error", err)
		return
	}
	logger.Error("application error", "error", err)
}
