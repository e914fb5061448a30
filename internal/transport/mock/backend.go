// Package mock provides an in-memory task API: a backend with simulated
// latency and JWT sessions, an in-process transport over it, and a gin
// server exposing it over HTTP.
package mock

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/riordanpawley/taskboard/internal/domain"
)

const issuer = "taskboard-mock"

// Options tunes the backend
type Options struct {
	MinLatency time.Duration
	MaxLatency time.Duration
	TokenTTL   time.Duration
	Secret     []byte
	// Now overrides the clock; nil uses time.Now
	Now func() time.Time
}

// DefaultOptions mirrors a slow-ish network and one hour sessions
func DefaultOptions() Options {
	return Options{
		MinLatency: 300 * time.Millisecond,
		MaxLatency: 500 * time.Millisecond,
		TokenTTL:   time.Hour,
		Secret:     []byte("taskboard-mock-secret"),
	}
}

type account struct {
	user     domain.User
	password string
}

type claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Backend is an in-memory task API. It is safe for concurrent use.
type Backend struct {
	opts   Options
	logger *slog.Logger

	mu       sync.Mutex
	tasks    []domain.Task
	accounts map[string]account
}

// NewBackend creates a backend seeded with the fixture tasks
func NewBackend(opts Options, logger *slog.Logger) *Backend {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = time.Hour
	}
	if len(opts.Secret) == 0 {
		opts.Secret = DefaultOptions().Secret
	}
	if opts.MaxLatency < opts.MinLatency {
		opts.MaxLatency = opts.MinLatency
	}
	return &Backend{
		opts:     opts,
		logger:   logger,
		tasks:    FixtureTasks(),
		accounts: make(map[string]account),
	}
}

// Login accepts any non-empty username with a password of six or more
// characters. Registered usernames must match their stored password.
func (b *Backend) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResponse, error) {
	if err := b.wait(ctx, "login"); err != nil {
		return domain.LoginResponse{}, err
	}

	username := strings.TrimSpace(creds.Username)
	if username == "" || len(creds.Password) < domain.PasswordMinLen {
		return domain.LoginResponse{}, badCredentials()
	}

	b.mu.Lock()
	acct, registered := b.accounts[username]
	b.mu.Unlock()

	user := domain.User{UserID: FixtureUser.UserID, Username: username, Email: FixtureUser.Email}
	if registered {
		if acct.password != creds.Password {
			return domain.LoginResponse{}, badCredentials()
		}
		user = acct.user
	}

	token, err := b.issue(user)
	if err != nil {
		return domain.LoginResponse{}, domain.NewAPIError(http.StatusInternalServerError, "could not issue token", "/api/auth/login")
	}

	b.logger.Debug("mock login", "username", username)
	return domain.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		UserID:    user.UserID,
		Username:  user.Username,
		Email:     user.Email,
	}, nil
}

// Register creates an account; duplicate usernames or emails are rejected
func (b *Backend) Register(ctx context.Context, reg domain.Registration) error {
	if err := b.wait(ctx, "register"); err != nil {
		return err
	}
	if err := reg.Validate(); err != nil {
		return validationFailed(err, "/api/auth/register")
	}

	username := strings.TrimSpace(reg.Username)
	email := strings.TrimSpace(reg.Email)

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.accounts[username]; ok {
		return conflict("Username is already taken", "/api/auth/register")
	}
	for _, a := range b.accounts {
		if strings.EqualFold(a.user.Email, email) {
			return conflict("Email is already registered", "/api/auth/register")
		}
	}

	b.accounts[username] = account{
		user:     domain.User{UserID: uuid.NewString(), Username: username, Email: email},
		password: reg.Password,
	}
	b.logger.Debug("mock register", "username", username)
	return nil
}

// Authenticate validates a bearer token and returns its identity
func (b *Backend) Authenticate(token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, domain.NewAPIError(http.StatusUnauthorized, "Authentication required", "")
	}

	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return b.opts.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(b.opts.Now),
	)
	if err != nil {
		msg := "Invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "Token expired"
		}
		return domain.User{}, domain.NewAPIError(http.StatusUnauthorized, msg, "")
	}
	return domain.User{UserID: c.Subject, Username: c.Username, Email: c.Email}, nil
}

// ListTasks returns a copy of every task in insertion order
func (b *Backend) ListTasks(ctx context.Context, token string) ([]domain.Task, error) {
	const path = "/api/tasks"
	if err := b.authorize(ctx, "list", token, path); err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Task, len(b.tasks))
	copy(out, b.tasks)
	return out, nil
}

// CreateTask validates the draft and appends a new task
func (b *Backend) CreateTask(ctx context.Context, token string, draft domain.Draft) (domain.Task, error) {
	const path = "/api/tasks"
	if err := b.authorize(ctx, "create", token, path); err != nil {
		return domain.Task{}, err
	}
	if err := draft.Validate(); err != nil {
		return domain.Task{}, validationFailed(err, path)
	}

	draft = draft.Normalize()
	now := b.opts.Now().UTC()
	task := domain.Task{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Description: draft.Description,
		Status:      draft.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	b.mu.Lock()
	b.tasks = append(b.tasks, task)
	b.mu.Unlock()

	b.logger.Debug("mock task created", "id", task.ID)
	return task, nil
}

// UpdateTaskStatus sets the status of an existing task
func (b *Backend) UpdateTaskStatus(ctx context.Context, token, id string, status domain.Status) (domain.Task, error) {
	path := "/api/tasks/" + id + "/status"
	if err := b.authorize(ctx, "update", token, path); err != nil {
		return domain.Task{}, err
	}
	if !status.Valid() {
		return domain.Task{}, validationFailed(domain.ValidationErrors{"status": "status is invalid"}, path)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	i := domain.IndexOf(b.tasks, id)
	if i < 0 {
		return domain.Task{}, notFound(path)
	}
	b.tasks[i].Status = status
	b.tasks[i].UpdatedAt = b.opts.Now().UTC()
	return b.tasks[i], nil
}

// DeleteTask removes a task
func (b *Backend) DeleteTask(ctx context.Context, token, id string) error {
	path := "/api/tasks/" + id
	if err := b.authorize(ctx, "delete", token, path); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	i := domain.IndexOf(b.tasks, id)
	if i < 0 {
		return notFound(path)
	}
	b.tasks = append(b.tasks[:i], b.tasks[i+1:]...)
	return nil
}

func (b *Backend) authorize(ctx context.Context, op, token, path string) error {
	if err := b.wait(ctx, op); err != nil {
		return err
	}
	if _, err := b.Authenticate(token); err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) {
			apiErr.Path = path
		}
		b.logger.Debug("mock rejected token", "op", op)
		return err
	}
	return nil
}

func (b *Backend) issue(user domain.User) (string, error) {
	now := b.opts.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.UserID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(b.opts.TokenTTL)),
		},
	})
	return tok.SignedString(b.opts.Secret)
}

// wait simulates network latency, honouring cancellation
func (b *Backend) wait(ctx context.Context, op string) error {
	d := b.opts.MinLatency
	if spread := b.opts.MaxLatency - b.opts.MinLatency; spread > 0 {
		d += rand.N(spread)
	}
	if d <= 0 {
		if err := ctx.Err(); err != nil {
			return &domain.TransportError{Op: op, Err: err}
		}
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return &domain.TransportError{Op: op, Err: ctx.Err()}
	}
}

func badCredentials() error {
	return &domain.APIError{
		Status:  http.StatusUnauthorized,
		Err:     "Bad Credentials",
		Message: "Invalid username or password",
		Path:    "/api/auth/login",
	}
}

func conflict(message, path string) error {
	return &domain.APIError{
		Status:  http.StatusUnprocessableEntity,
		Err:     "Resource Already Exists",
		Message: message,
		Path:    path,
	}
}

func notFound(path string) error {
	return &domain.APIError{
		Status:  http.StatusNotFound,
		Err:     "Not Found",
		Message: "Task not found",
		Path:    path,
	}
}

func validationFailed(err error, path string) error {
	return &domain.APIError{
		Status:  http.StatusBadRequest,
		Err:     "Validation Failed",
		Message: "Invalid request data: " + strings.TrimPrefix(err.Error(), "validation failed: "),
		Path:    path,
	}
}
