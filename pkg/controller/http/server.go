package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/secmon-lab/orgchart/pkg/domain/interfaces"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/utils/apperr"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router    chi.Router
	employees *EmployeeHandler
}

// NewServer creates the employee store server
func NewServer(ctx context.Context, addr string, directory interfaces.Directory) (*Server, error) {
	router := chi.NewRouter()
	employees := NewEmployeeHandler(directory)

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	router.Use(CORS)

	router.Get("/health", handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employees.HandleList)
			r.Post("/", employees.HandleCreate)
			r.Put("/{id}/move", employees.HandleMove)
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(r.Context(), w, "not found", http.StatusNotFound)
	})

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:    router,
		employees: employees,
	}

	return server, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "orgchart",
	})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

// writeMessage writes the store's error body, {"message": "..."}
func writeMessage(ctx context.Context, w http.ResponseWriter, message string, status int) {
	writeJSON(ctx, w, status, map[string]string{"message": message})
}

// errorResponses maps domain errors to a status and a message safe to show users
var errorResponses = []struct {
	err     error
	status  int
	message string
}{
	{model.ErrEmployeeNotFound, http.StatusNotFound, "Employee not found"},
	{model.ErrManagerNotFound, http.StatusNotFound, "Manager not found"},
	{model.ErrSelfManaged, http.StatusConflict, "An employee cannot report to themselves"},
	{model.ErrCyclicManager, http.StatusConflict, "Cannot move an employee under one of their own reports"},
	{model.ErrEmployeeExists, http.StatusConflict, "Employee already exists"},
}

// writeError logs err and answers with the matching status and message
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.err) {
			ctxlog.From(ctx).Debug("Request refused", "error", err, "status", resp.status)
			writeMessage(ctx, w, resp.message, resp.status)
			return
		}
	}

	apperr.Handle(ctx, err)
	writeMessage(ctx, w, "Internal server error", http.StatusInternalServerError)
}
