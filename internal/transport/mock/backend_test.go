package mock

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/taskboard/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	return NewBackend(Options{Secret: []byte("test-secret")}, testLogger())
}

func login(t *testing.T, b *Backend) string {
	t.Helper()
	resp, err := b.Login(context.Background(), domain.Credentials{Username: "ana", Password: "secret1"})
	require.NoError(t, err)
	return resp.Token
}

func TestBackend_Login(t *testing.T) {
	b := newTestBackend(t)

	tests := []struct {
		name    string
		creds   domain.Credentials
		wantErr bool
	}{
		{"any username with long password", domain.Credentials{Username: "ana", Password: "123456"}, false},
		{"empty username", domain.Credentials{Username: " ", Password: "123456"}, true},
		{"short password", domain.Credentials{Username: "ana", Password: "12345"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := b.Login(context.Background(), tt.creds)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrUnauthorized)
				assert.Equal(t, "Invalid username or password", domain.Message(err, ""))
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, resp.Token)
			assert.Equal(t, "Bearer", resp.TokenType)
			assert.Equal(t, tt.creds.Username, resp.Username)
			assert.Equal(t, FixtureUser.UserID, resp.UserID)
		})
	}
}

func TestBackend_RegisterThenLogin(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	reg := domain.Registration{Username: "maria", Email: "maria@example.com", Password: "hunter22"}
	require.NoError(t, b.Register(ctx, reg))

	err := b.Register(ctx, reg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "Username is already taken", domain.Message(err, ""))

	err = b.Register(ctx, domain.Registration{Username: "other", Email: "MARIA@example.com", Password: "hunter22"})
	assert.Equal(t, "Email is already registered", domain.Message(err, ""))

	_, err = b.Login(ctx, domain.Credentials{Username: "maria", Password: "wrongpass"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	resp, err := b.Login(ctx, reg.Credentials())
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", resp.Email)
	assert.NotEqual(t, FixtureUser.UserID, resp.UserID)

	user, err := b.Authenticate(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User(), user)
}

func TestBackend_RegisterValidates(t *testing.T) {
	b := newTestBackend(t)
	err := b.Register(context.Background(), domain.Registration{Username: "x", Email: "nope", Password: "1"})
	require.Error(t, err)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.Contains(t, apiErr.Message, "email")
}

func TestBackend_TaskCallsRequireToken(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	_, err := b.ListTasks(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = b.ListTasks(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	forged := NewBackend(Options{Secret: []byte("other-secret")}, testLogger())
	_, err = b.ListTasks(ctx, login(t, forged))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "/api/tasks", apiErr.Path)
}

func TestBackend_ExpiredToken(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	b := NewBackend(Options{
		Secret:   []byte("test-secret"),
		TokenTTL: time.Minute,
		Now:      func() time.Time { return now },
	}, testLogger())
	token := login(t, b)

	_, err := b.ListTasks(context.Background(), token)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = b.ListTasks(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, "Token expired", domain.Message(err, ""))
}

func TestBackend_TaskLifecycle(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()
	token := login(t, b)

	tasks, err := b.ListTasks(ctx, token)
	require.NoError(t, err)
	assert.Len(t, tasks, 8)

	created, err := b.CreateTask(ctx, token, domain.Draft{Title: "  Write docs ", Description: "Describe every command"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Write docs", created.Title)
	assert.Equal(t, domain.StatusTodo, created.Status)

	tasks, _ = b.ListTasks(ctx, token)
	require.Len(t, tasks, 9)
	assert.Equal(t, created.ID, tasks[8].ID, "created tasks are appended")

	updated, err := b.UpdateTaskStatus(ctx, token, created.ID, domain.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	require.NoError(t, b.DeleteTask(ctx, token, created.ID))
	tasks, _ = b.ListTasks(ctx, token)
	assert.Len(t, tasks, 8)

	err = b.DeleteTask(ctx, token, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Task not found", domain.Message(err, ""))

	_, err = b.UpdateTaskStatus(ctx, token, "missing", domain.StatusTodo)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBackend_CreateRejectsInvalidDraft(t *testing.T) {
	b := newTestBackend(t)
	token := login(t, b)

	_, err := b.CreateTask(context.Background(), token, domain.Draft{Title: "ab", Description: "short"})
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.Contains(t, apiErr.Message, "title")
	assert.Contains(t, apiErr.Message, "description")
}

func TestBackend_ListReturnsCopy(t *testing.T) {
	b := newTestBackend(t)
	token := login(t, b)

	tasks, _ := b.ListTasks(context.Background(), token)
	tasks[0].Title = "mutated"

	again, _ := b.ListTasks(context.Background(), token)
	assert.NotEqual(t, "mutated", again[0].Title)
}

func TestBackend_LatencyHonoursCancel(t *testing.T) {
	b := NewBackend(Options{
		MinLatency: time.Second,
		MaxLatency: time.Second,
		Secret:     []byte("test-secret"),
	}, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Login(ctx, domain.Credentials{Username: "ana", Password: "123456"})
	var tErr *domain.TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, "login", tErr.Op)
	assert.ErrorIs(t, err, context.Canceled)
}
