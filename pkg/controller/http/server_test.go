package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	controller "github.com/secmon-lab/orgchart/pkg/controller/http"
	"github.com/secmon-lab/orgchart/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
	"github.com/secmon-lab/orgchart/pkg/repository"
	"github.com/secmon-lab/orgchart/pkg/service/store"
	"github.com/secmon-lab/orgchart/pkg/usecase"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return ctxlog.With(context.Background(), logger)
}

func emp(id, managerID, name, team string) *model.Employee {
	return &model.Employee{
		ID:        types.EmployeeID(id),
		Name:      name,
		Team:      team,
		ManagerID: types.EmployeeID(managerID).Ptr(),
	}
}

// 1 -> 2 -> 5 -> 7, 1 -> 3
func newTestServer(t *testing.T) *controller.Server {
	t.Helper()
	ctx := testContext()

	directory := usecase.NewDirectory(repository.NewMemory())
	_, err := directory.Seed(ctx, model.Employees{
		emp("1", "", "Alice Johnson", "Executive"),
		emp("2", "1", "Bob Smith", "Executive"),
		emp("3", "1", "Carol Williams", "Finance"),
		emp("5", "2", "Emma Davis", "Engineering"),
		emp("7", "5", "Grace Wilson", "Engineering"),
	})
	gt.NoError(t, err).Required()

	server, err := controller.NewServer(ctx, ":0", directory)
	gt.NoError(t, err).Required()
	return server
}

func serve(server *controller.Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	server.Server.Handler.ServeHTTP(w, req)
	return w
}

func decodeEmployees(t *testing.T, w *httptest.ResponseRecorder) model.Employees {
	t.Helper()
	var employees model.Employees
	gt.NoError(t, json.NewDecoder(w.Body).Decode(&employees)).Required()
	return employees
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	gt.NoError(t, json.NewDecoder(w.Body).Decode(&body)).Required()
	return body.Message
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t)
	w := serve(server, http.MethodGet, "/health", "")

	gt.Equal(t, w.Code, http.StatusOK)
	gt.S(t, w.Body.String()).Contains(`"status":"healthy"`)
}

func TestListEmployees(t *testing.T) {
	server := newTestServer(t)
	w := serve(server, http.MethodGet, "/api/employees", "")

	gt.Equal(t, w.Code, http.StatusOK)
	gt.Equal(t, w.Header().Get("Content-Type"), "application/json")
	employees := decodeEmployees(t, w)
	gt.Equal(t, employees.IDs(), []types.EmployeeID{"1", "2", "3", "5", "7"})
	gt.True(t, employees.Find("1").IsRoot())
}

func TestListEmployeesEmpty(t *testing.T) {
	server, err := controller.NewServer(testContext(), ":0", usecase.NewDirectory(repository.NewMemory()))
	gt.NoError(t, err).Required()

	w := serve(server, http.MethodGet, "/api/employees", "")
	gt.Equal(t, w.Code, http.StatusOK)
	gt.Equal(t, strings.TrimSpace(w.Body.String()), "[]")
}

func TestMoveEmployee(t *testing.T) {
	t.Run("reassigns and returns the full list", func(t *testing.T) {
		server := newTestServer(t)
		w := serve(server, http.MethodPut, "/api/employees/7/move", `{"managerId":"3"}`)

		gt.Equal(t, w.Code, http.StatusOK)
		employees := decodeEmployees(t, w)
		gt.Equal(t, len(employees), 5)
		gt.Equal(t, employees.Find("7").Manager(), types.EmployeeID("3"))
	})

	t.Run("null manager makes a root", func(t *testing.T) {
		server := newTestServer(t)
		w := serve(server, http.MethodPut, "/api/employees/5/move", `{"managerId":null}`)

		gt.Equal(t, w.Code, http.StatusOK)
		gt.True(t, decodeEmployees(t, w).Find("5").IsRoot())
	})

	t.Run("empty manager is treated as null", func(t *testing.T) {
		server := newTestServer(t)
		w := serve(server, http.MethodPut, "/api/employees/5/move", `{"managerId":""}`)

		gt.Equal(t, w.Code, http.StatusOK)
		gt.True(t, decodeEmployees(t, w).Find("5").IsRoot())
	})

	tests := []struct {
		name    string
		path    string
		body    string
		status  int
		message string
	}{
		{"unknown employee", "/api/employees/404/move", `{"managerId":"1"}`, http.StatusNotFound, "Employee not found"},
		{"unknown manager", "/api/employees/7/move", `{"managerId":"404"}`, http.StatusNotFound, "Manager not found"},
		{"self manager", "/api/employees/7/move", `{"managerId":"7"}`, http.StatusConflict, "An employee cannot report to themselves"},
		{"under own report", "/api/employees/2/move", `{"managerId":"7"}`, http.StatusConflict, "Cannot move an employee under one of their own reports"},
		{"broken body", "/api/employees/7/move", `{"managerId":`, http.StatusBadRequest, "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t)
			w := serve(server, http.MethodPut, tt.path, tt.body)

			gt.Equal(t, w.Code, tt.status)
			gt.Equal(t, decodeMessage(t, w), tt.message)

			// a refused move leaves the store untouched
			list := decodeEmployees(t, serve(server, http.MethodGet, "/api/employees", ""))
			gt.Equal(t, list.Find("7").Manager(), types.EmployeeID("5"))
			gt.Equal(t, list.Find("2").Manager(), types.EmployeeID("1"))
		})
	}
}

func TestMoveEmployeeInternalError(t *testing.T) {
	directory := &mocks.DirectoryMock{
		MoveEmployeeFunc: func(ctx context.Context, id types.EmployeeID, managerID *types.EmployeeID) (model.Employees, error) {
			return nil, errors.New("firestore unavailable")
		},
	}
	server, err := controller.NewServer(testContext(), ":0", directory)
	gt.NoError(t, err).Required()

	w := serve(server, http.MethodPut, "/api/employees/7/move", `{"managerId":"3"}`)
	gt.Equal(t, w.Code, http.StatusInternalServerError)
	gt.Equal(t, decodeMessage(t, w), "Internal server error")

	calls := directory.MoveEmployeeCalls()
	gt.A(t, calls).Length(1)
	gt.Equal(t, calls[0].ID, types.EmployeeID("7"))
	gt.Equal(t, types.ManagerKey(calls[0].ManagerID), types.EmployeeID("3"))
}

func TestCreateEmployee(t *testing.T) {
	t.Run("creates under an existing manager", func(t *testing.T) {
		server := newTestServer(t)
		body, err := json.Marshal(map[string]any{
			"name":        "Henry Brown",
			"designation": "Backend Dev",
			"team":        "Engineering",
			"managerId":   "5",
		})
		gt.NoError(t, err).Required()

		w := serve(server, http.MethodPost, "/api/employees", string(body))
		gt.Equal(t, w.Code, http.StatusCreated)

		var created model.Employee
		gt.NoError(t, json.NewDecoder(w.Body).Decode(&created)).Required()
		gt.NotEqual(t, created.ID, types.EmployeeID(""))
		gt.Equal(t, created.Manager(), types.EmployeeID("5"))

		list := decodeEmployees(t, serve(server, http.MethodGet, "/api/employees", ""))
		gt.Equal(t, len(list), 6)
	})

	t.Run("name is required", func(t *testing.T) {
		server := newTestServer(t)
		w := serve(server, http.MethodPost, "/api/employees", `{"team":"Engineering"}`)
		gt.Equal(t, w.Code, http.StatusBadRequest)
		gt.Equal(t, decodeMessage(t, w), "Name is required")
	})

	t.Run("unknown manager", func(t *testing.T) {
		server := newTestServer(t)
		w := serve(server, http.MethodPost, "/api/employees", `{"name":"Nobody","managerId":"404"}`)
		gt.Equal(t, w.Code, http.StatusNotFound)
	})
}

func TestUnknownRoute(t *testing.T) {
	server := newTestServer(t)
	w := serve(server, http.MethodGet, "/api/unknown", "")
	gt.Equal(t, w.Code, http.StatusNotFound)
	gt.Equal(t, decodeMessage(t, w), "not found")
}

func TestMetricsEndpoint(t *testing.T) {
	server := newTestServer(t)
	serve(server, http.MethodPut, "/api/employees/7/move", `{"managerId":"3"}`)

	w := serve(server, http.MethodGet, "/metrics", "")
	gt.Equal(t, w.Code, http.StatusOK)
	gt.S(t, w.Body.String()).Contains("orgchart_directory_moves_total")
}

// The editor's store client against the real server
func TestStoreClientRoundTrip(t *testing.T) {
	server := newTestServer(t)
	ts := httptest.NewServer(server.Server.Handler)
	defer ts.Close()

	ctx := context.Background()
	client, err := store.New(ts.URL)
	gt.NoError(t, err).Required()

	employees, err := client.ListEmployees(ctx)
	gt.NoError(t, err).Required()
	gt.Equal(t, len(employees), 5)

	employees, err = client.MoveEmployee(ctx, "7", types.EmployeeID("3").Ptr())
	gt.NoError(t, err).Required()
	gt.Equal(t, employees.Find("7").Manager(), types.EmployeeID("3"))

	_, err = client.MoveEmployee(ctx, "2", types.EmployeeID("7").Ptr())
	gt.Error(t, err)
	gt.Equal(t, store.Status(err), http.StatusConflict)
	gt.Equal(t, store.Message(err), "Cannot move an employee under one of their own reports")

	employees, err = client.MoveEmployee(ctx, "7", nil)
	gt.NoError(t, err).Required()
	gt.True(t, employees.Find("7").IsRoot())
}
