package mock

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/riordanpawley/taskboard/internal/domain"
)

type noSession struct{}

func (noSession) Token() (*oauth2.Token, error) {
	return nil, errors.New("no session")
}

func TestTransport_UsesTokenSource(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	anon := NewTransport(b, noSession{})
	resp, err := anon.Login(ctx, domain.Credentials{Username: "ana", Password: "secret1"})
	require.NoError(t, err)

	_, err = anon.ListTasks(ctx)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	authed := NewTransport(b, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: resp.Token}))
	tasks, err := authed.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 8)

	task, err := authed.UpdateTaskStatus(ctx, "4", domain.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, task.Status)

	assert.ErrorIs(t, authed.DeleteTask(ctx, "missing"), domain.ErrNotFound)
}

func TestTransport_NilTokenSource(t *testing.T) {
	tr := NewTransport(newTestBackend(t), nil)
	_, err := tr.CreateTask(context.Background(), domain.Draft{Title: "Title", Description: "Long enough text"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
