package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/riordanpawley/taskboard/internal/domain"
)

// HTTPClient talks to the REST API. Task calls carry the bearer token taken
// from the token source on every request.
type HTTPClient struct {
	baseURL string
	public  *http.Client
	authed  *http.Client
	logger  *slog.Logger
}

var _ Transport = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the API rooted at baseURL
func NewHTTPClient(baseURL string, tokens oauth2.TokenSource, timeout time.Duration, logger *slog.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		public:  &http.Client{Timeout: timeout},
		authed: &http.Client{
			Timeout: timeout,
			Transport: &oauth2.Transport{
				Source: tokens,
				Base:   http.DefaultTransport,
			},
		},
		logger: logger,
	}
}

// Login exchanges credentials for a token using `POST /auth/login`
func (c *HTTPClient) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResponse, error) {
	c.logger.Debug("logging in", "username", creds.Username)

	var resp domain.LoginResponse
	if err := c.do(ctx, c.public, "login", http.MethodPost, "/auth/login", creds, &resp); err != nil {
		return domain.LoginResponse{}, err
	}

	c.logger.Debug("logged in", "user_id", resp.UserID)
	return resp, nil
}

// Register creates an account using `POST /auth/register`
func (c *HTTPClient) Register(ctx context.Context, reg domain.Registration) error {
	c.logger.Debug("registering", "username", reg.Username)
	return c.do(ctx, c.public, "register", http.MethodPost, "/auth/register", reg, nil)
}

// ListTasks fetches all tasks using `GET /tasks`
func (c *HTTPClient) ListTasks(ctx context.Context) ([]domain.Task, error) {
	c.logger.Debug("fetching tasks")

	var tasks []domain.Task
	if err := c.do(ctx, c.authed, "list", http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	c.logger.Debug("fetched tasks", "count", len(tasks))
	return tasks, nil
}

// CreateTask creates a task using `POST /tasks`
func (c *HTTPClient) CreateTask(ctx context.Context, draft domain.Draft) (domain.Task, error) {
	c.logger.Debug("creating task", "title", draft.Title)

	var task domain.Task
	if err := c.do(ctx, c.authed, "create", http.MethodPost, "/tasks", draft, &task); err != nil {
		return domain.Task{}, err
	}

	c.logger.Debug("task created", "id", task.ID)
	return task, nil
}

// UpdateTaskStatus changes a task's status using `PUT /tasks/{id}/status`
func (c *HTTPClient) UpdateTaskStatus(ctx context.Context, id string, status domain.Status) (domain.Task, error) {
	c.logger.Debug("updating task status", "id", id, "status", status)

	body := struct {
		Status domain.Status `json:"status"`
	}{Status: status}

	var task domain.Task
	path := "/tasks/" + url.PathEscape(id) + "/status"
	if err := c.do(ctx, c.authed, "update", http.MethodPut, path, body, &task); err != nil {
		return domain.Task{}, err
	}

	c.logger.Debug("task updated", "id", task.ID)
	return task, nil
}

// DeleteTask removes a task using `DELETE /tasks/{id}`
func (c *HTTPClient) DeleteTask(ctx context.Context, id string) error {
	c.logger.Debug("deleting task", "id", id)

	if err := c.do(ctx, c.authed, "delete", http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil); err != nil {
		return err
	}

	c.logger.Debug("task deleted", "id", id)
	return nil
}

// do performs one JSON round trip. Non-2xx replies become *domain.APIError;
// anything that prevents a reply becomes *domain.TransportError.
func (c *HTTPClient) do(ctx context.Context, client *http.Client, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return &domain.TransportError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &domain.TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			c.logger.Warn("request without session", "op", op)
		}
		return &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := decodeAPIError(resp, path)
		if resp.StatusCode == http.StatusUnauthorized {
			c.logger.Warn("session rejected by server", "op", op, "path", path)
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// decodeAPIError reads the error body, tolerating empty or non-JSON bodies
func decodeAPIError(resp *http.Response, path string) *domain.APIError {
	apiErr := &domain.APIError{}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if len(data) > 0 {
		_ = json.Unmarshal(data, apiErr)
	}
	apiErr.Status = resp.StatusCode
	if apiErr.Err == "" {
		apiErr.Err = http.StatusText(resp.StatusCode)
	}
	if apiErr.Path == "" {
		apiErr.Path = path
	}
	return apiErr
}
