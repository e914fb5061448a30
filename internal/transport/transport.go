// Package transport defines the capabilities the stores use to reach the
// task API, and the HTTP implementation of them.
package transport

import (
	"context"

	"github.com/riordanpawley/taskboard/internal/domain"
)

// AuthTransport issues the unauthenticated account calls
type AuthTransport interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.LoginResponse, error)
	Register(ctx context.Context, reg domain.Registration) error
}

// TaskTransport issues the authenticated task calls. Implementations report
// a rejected or missing session with an error matching domain.ErrUnauthorized.
type TaskTransport interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, draft domain.Draft) (domain.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status domain.Status) (domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// Transport is both capabilities, as provided by the HTTP client and the mock
type Transport interface {
	AuthTransport
	TaskTransport
}
