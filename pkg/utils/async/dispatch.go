package async

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/utils/apperr"
)

var inflight sync.WaitGroup

// Dispatch runs handler in the background, detached from the caller's
// cancellation. The logger and request ID of ctx are carried over and
// panics are recovered.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	newCtx := newBackgroundContext(ctx)

	inflight.Add(1)
	go func() {
		defer inflight.Done()
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("Panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			apperr.Handle(newCtx, goerr.Wrap(err, "async handler failed"))
		}
	}()
}

// Wait blocks until every dispatched handler returned or ctx is done
func Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "async handlers still running")
	}
}

func newBackgroundContext(ctx context.Context) context.Context {
	newCtx := context.Background()

	if logger := ctxlog.From(ctx); logger != nil {
		newCtx = ctxlog.With(newCtx, logger)
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		newCtx = context.WithValue(newCtx, middleware.RequestIDKey, reqID)
	}

	return newCtx
}
