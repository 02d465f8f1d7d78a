package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/orgchart/pkg/domain/interfaces"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
)

const maxBodySize = 1 << 20

// EmployeeHandler serves the employee store API
type EmployeeHandler struct {
	directory interfaces.Directory
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(directory interfaces.Directory) *EmployeeHandler {
	return &EmployeeHandler{directory: directory}
}

// moveRequest is the body of PUT /api/employees/{id}/move. A null or
// missing managerId makes the employee a root.
type moveRequest struct {
	ManagerID *types.EmployeeID `json:"managerId"`
}

// HandleList handles GET /api/employees
func (h *EmployeeHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	employees, err := h.directory.ListEmployees(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, nonNil(employees))
}

// HandleMove handles PUT /api/employees/{id}/move
func (h *EmployeeHandler) HandleMove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.EmployeeID(chi.URLParam(r, "id"))

	var req moveRequest
	if err := decodeBody(r, &req); err != nil {
		writeMessage(ctx, w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ManagerID != nil && req.ManagerID.IsRoot() {
		req.ManagerID = nil
	}

	employees, err := h.directory.MoveEmployee(ctx, id, req.ManagerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, nonNil(employees))
}

// HandleCreate handles POST /api/employees
func (h *EmployeeHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.Employee
	if err := decodeBody(r, &req); err != nil {
		writeMessage(ctx, w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		writeMessage(ctx, w, "Name is required", http.StatusBadRequest)
		return
	}

	created, err := h.directory.CreateEmployee(ctx, &req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusCreated, created)
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	return dec.Decode(v)
}

func nonNil(employees model.Employees) model.Employees {
	if employees == nil {
		return model.Employees{}
	}
	return employees
}
