package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"

	"github.com/riordanpawley/taskboard/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeAuth answers logins from a fixed table
type fakeAuth struct {
	mu          sync.Mutex
	loginErr    error
	registerErr error
	logins      []domain.Credentials
	registered  []domain.Registration
}

func (f *fakeAuth) Login(_ context.Context, creds domain.Credentials) (domain.LoginResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins = append(f.logins, creds)
	if f.loginErr != nil {
		return domain.LoginResponse{}, f.loginErr
	}
	return domain.LoginResponse{
		Token:     "token-" + creds.Username,
		TokenType: "Bearer",
		UserID:    "id-" + creds.Username,
		Username:  creds.Username,
		Email:     creds.Username + "@example.com",
	}, nil
}

func (f *fakeAuth) Register(_ context.Context, reg domain.Registration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registered = append(f.registered, reg)
	return f.registerErr
}

// fakeTasks is an in-memory server with per-call error injection
type fakeTasks struct {
	mu     sync.Mutex
	tasks  []domain.Task
	nextID int
	err    error
	calls  map[string]int
}

func newFakeTasks(tasks ...domain.Task) *fakeTasks {
	return &fakeTasks{tasks: tasks, nextID: 100, calls: make(map[string]int)}
}

func (f *fakeTasks) record(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[op]++
	return f.err
}

func (f *fakeTasks) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeTasks) ListTasks(context.Context) ([]domain.Task, error) {
	if err := f.record("list"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

func (f *fakeTasks) CreateTask(_ context.Context, d domain.Draft) (domain.Task, error) {
	if err := f.record("create"); err != nil {
		return domain.Task{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	t := domain.Task{ID: strconv.Itoa(f.nextID), Title: d.Title, Description: d.Description, Status: d.Status}
	f.tasks = append(f.tasks, t)
	return t, nil
}

func (f *fakeTasks) UpdateTaskStatus(_ context.Context, id string, status domain.Status) (domain.Task, error) {
	if err := f.record("update"); err != nil {
		return domain.Task{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i := domain.IndexOf(f.tasks, id)
	if i < 0 {
		return domain.Task{}, domain.NewAPIError(404, "Task not found", "/tasks/"+id+"/status")
	}
	f.tasks[i].Status = status
	return f.tasks[i], nil
}

func (f *fakeTasks) DeleteTask(_ context.Context, id string) error {
	if err := f.record("delete"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i := domain.IndexOf(f.tasks, id)
	if i < 0 {
		return domain.NewAPIError(404, "Task not found", "/tasks/"+id)
	}
	f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
	return nil
}

func task(id string, status domain.Status) domain.Task {
	return domain.Task{ID: id, Title: fmt.Sprintf("Task %s", id), Description: "fixture description", Status: status}
}
