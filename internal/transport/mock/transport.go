package mock

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/transport"
)

// Transport calls a Backend in-process, presenting the current session
// token the way the HTTP client would.
type Transport struct {
	backend *Backend
	tokens  oauth2.TokenSource
}

var _ transport.Transport = (*Transport)(nil)

// NewTransport creates an in-process transport over backend
func NewTransport(backend *Backend, tokens oauth2.TokenSource) *Transport {
	return &Transport{backend: backend, tokens: tokens}
}

func (t *Transport) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResponse, error) {
	return t.backend.Login(ctx, creds)
}

func (t *Transport) Register(ctx context.Context, reg domain.Registration) error {
	return t.backend.Register(ctx, reg)
}

func (t *Transport) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return t.backend.ListTasks(ctx, t.token())
}

func (t *Transport) CreateTask(ctx context.Context, draft domain.Draft) (domain.Task, error) {
	return t.backend.CreateTask(ctx, t.token(), draft)
}

func (t *Transport) UpdateTaskStatus(ctx context.Context, id string, status domain.Status) (domain.Task, error) {
	return t.backend.UpdateTaskStatus(ctx, t.token(), id, status)
}

func (t *Transport) DeleteTask(ctx context.Context, id string) error {
	return t.backend.DeleteTask(ctx, t.token(), id)
}

// token returns "" when there is no session; the backend answers 401
func (t *Transport) token() string {
	if t.tokens == nil {
		return ""
	}
	tok, err := t.tokens.Token()
	if err != nil || tok == nil {
		return ""
	}
	return tok.AccessToken
}
