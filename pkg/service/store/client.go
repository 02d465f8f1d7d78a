package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/domain/interfaces"
	"github.com/secmon-lab/orgchart/pkg/domain/model"
	"github.com/secmon-lab/orgchart/pkg/domain/types"
)

var (
	// ErrTagRejected marks a non-2xx store response
	ErrTagRejected = goerr.NewTag("store_rejected")
	// ErrTagTransport marks a failure to reach the store or read its reply
	ErrTagTransport = goerr.NewTag("store_transport")
)

const (
	// DefaultTimeout bounds every store round trip
	DefaultTimeout = 30 * time.Second

	requestIDHeader = "X-Request-Id"
	maxErrorBody    = 64 << 10
)

// Message returns the human readable message attached by the store to a
// rejected request, or "" when there is none
func Message(err error) string {
	return model.StoreMessage(err)
}

// Status returns the HTTP status of a rejected request, or 0
func Status(err error) int {
	var se *model.StoreError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the timeout of the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		if d > 0 {
			client.httpClient.Timeout = d
		}
	}
}

// Client talks to the employee store over HTTP
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New creates a store client rooted at baseURL, e.g. http://localhost:8080
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, goerr.New("invalid store URL", goerr.V("url", baseURL))
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type moveRequest struct {
	ManagerID *types.EmployeeID `json:"managerId"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// ListEmployees fetches the full employee list
func (c *Client) ListEmployees(ctx context.Context) (model.Employees, error) {
	var out model.Employees
	if err := c.doJSON(ctx, http.MethodGet, "/api/employees", nil, &out); err != nil {
		return nil, goerr.Wrap(err, "failed to list employees")
	}
	if out == nil {
		out = model.Employees{}
	}
	return out, nil
}

// MoveEmployee asks the store to reassign id to managerID (nil for no
// manager) and returns the authoritative list
func (c *Client) MoveEmployee(ctx context.Context, id types.EmployeeID, managerID *types.EmployeeID) (model.Employees, error) {
	path := "/api/employees/" + url.PathEscape(id.String()) + "/move"

	var out model.Employees
	if err := c.doJSON(ctx, http.MethodPut, path, &moveRequest{ManagerID: managerID}, &out); err != nil {
		return nil, goerr.Wrap(err, "failed to move employee",
			goerr.V("id", id),
			goerr.V("managerID", types.ManagerKey(managerID)))
	}
	if out == nil {
		out = model.Employees{}
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, reqBody, out any) error {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path

	var body io.Reader
	if reqBody != nil {
		b, err := json.Marshal(reqBody)
		if err != nil {
			return goerr.Wrap(err, "failed to marshal request")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return goerr.Wrap(err, "failed to build request", goerr.T(ErrTagTransport))
	}
	req.Header.Set("Accept", "application/json")
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)

	logger := ctxlog.From(ctx)
	logger.Debug("Store request", "method", method, "url", u.String(), "requestID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to reach store",
			goerr.T(ErrTagTransport),
			goerr.V("method", method),
			goerr.V("url", u.String()))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var apiErr errorResponse
		_ = json.Unmarshal(raw, &apiErr)

		logger.Debug("Store rejected request",
			"method", method,
			"url", u.String(),
			"status", resp.StatusCode,
			"message", apiErr.Message,
		)
		return goerr.Wrap(&model.StoreError{Status: resp.StatusCode, Message: apiErr.Message},
			"store rejected request",
			goerr.T(ErrTagRejected),
			goerr.V("status", resp.StatusCode),
			goerr.V("requestID", requestID))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode store response",
			goerr.T(ErrTagTransport),
			goerr.V("status", resp.StatusCode))
	}
	return nil
}

var _ interfaces.EmployeeStore = (*Client)(nil)
