package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/transport"
)

// Fallback messages when the server gives none
const (
	MsgFetchFailed  = "Failed to load tasks"
	MsgCreateFailed = "Failed to create task"
	MsgUpdateFailed = "Failed to update task"
	MsgDeleteFailed = "Failed to delete task"
)

// FetchFulfilled replaces the task list
type FetchFulfilled struct {
	Seq   uint64
	Tasks []domain.Task
}

// FetchRejected reports a failed fetch
type FetchRejected struct {
	Seq uint64
	Err error
}

// CreateFulfilled appends the server's new task
type CreateFulfilled struct {
	Seq  uint64
	Task domain.Task
}

// CreateRejected reports a failed create
type CreateRejected struct {
	Seq uint64
	Err error
}

// UpdateFulfilled replaces the task with the server's copy
type UpdateFulfilled struct {
	Seq  uint64
	ID   string
	Task domain.Task
}

// UpdateRejected reports a failed status change
type UpdateRejected struct {
	Seq uint64
	ID  string
	Err error
}

// DeleteFulfilled removes the task
type DeleteFulfilled struct {
	Seq uint64
	ID  string
}

// DeleteRejected reports a failed delete
type DeleteRejected struct {
	Seq uint64
	ID  string
	Err error
}

func (FetchFulfilled) action()  {}
func (FetchRejected) action()   {}
func (CreateFulfilled) action() {}
func (CreateRejected) action()  {}
func (UpdateFulfilled) action() {}
func (UpdateRejected) action()  {}
func (DeleteFulfilled) action() {}
func (DeleteRejected) action()  {}

// TaskStore owns the task list for the current session. Operations are
// independent: any number may be in flight, and results are applied in
// completion order. A fetch result is dropped when a newer fetch has been
// issued, and a status result is dropped when a newer status change for the
// same task has been issued.
//
// TaskStore is not safe for concurrent use; it belongs to the UI loop.
// Request.Run may be called from any goroutine.
type TaskStore struct {
	transport transport.TaskTransport
	logger    *slog.Logger

	tasks      []domain.Task
	err        string
	seq        uint64
	resetAt    uint64
	pending    map[uint64]Op
	lastFetch  uint64
	lastUpdate map[string]uint64
}

// NewTaskStore creates an empty task store
func NewTaskStore(t transport.TaskTransport, logger *slog.Logger) *TaskStore {
	return &TaskStore{
		transport:  t,
		logger:     logger,
		tasks:      []domain.Task{},
		pending:    make(map[uint64]Op),
		lastUpdate: make(map[string]uint64),
	}
}

func (s *TaskStore) issue(op Op) uint64 {
	s.seq++
	s.pending[s.seq] = op
	s.err = ""
	s.logger.Debug("task request issued", "op", op, "seq", s.seq)
	return s.seq
}

// FetchTasks starts a reload of the whole list
func (s *TaskStore) FetchTasks() Request {
	seq := s.issue(OpFetch)
	s.lastFetch = seq
	t := s.transport

	return Request{Op: OpFetch, Seq: seq, run: func(ctx context.Context) Action {
		tasks, err := t.ListTasks(ctx)
		if err != nil {
			return FetchRejected{Seq: seq, Err: err}
		}
		return FetchFulfilled{Seq: seq, Tasks: tasks}
	}}
}

// CreateTask starts creating a task. Status defaults to TODO.
func (s *TaskStore) CreateTask(draft domain.Draft) Request {
	draft = draft.Normalize()
	seq := s.issue(OpCreate)
	t := s.transport

	return Request{Op: OpCreate, Seq: seq, run: func(ctx context.Context) Action {
		task, err := t.CreateTask(ctx, draft)
		if err != nil {
			return CreateRejected{Seq: seq, Err: err}
		}
		return CreateFulfilled{Seq: seq, Task: task}
	}}
}

// UpdateTaskStatus starts a status change. An unknown status is rejected
// without issuing a request.
func (s *TaskStore) UpdateTaskStatus(id string, status domain.Status) (Request, error) {
	if !status.Valid() {
		return Request{}, domain.ValidationErrors{"status": fmt.Sprintf("unknown status %q", status)}
	}

	seq := s.issue(OpUpdateStatus)
	s.lastUpdate[id] = seq
	t := s.transport

	return Request{Op: OpUpdateStatus, Seq: seq, run: func(ctx context.Context) Action {
		task, err := t.UpdateTaskStatus(ctx, id, status)
		if err != nil {
			return UpdateRejected{Seq: seq, ID: id, Err: err}
		}
		return UpdateFulfilled{Seq: seq, ID: id, Task: task}
	}}, nil
}

// DeleteTask starts deleting a task
func (s *TaskStore) DeleteTask(id string) Request {
	seq := s.issue(OpDelete)
	t := s.transport

	return Request{Op: OpDelete, Seq: seq, run: func(ctx context.Context) Action {
		if err := t.DeleteTask(ctx, id); err != nil {
			return DeleteRejected{Seq: seq, ID: id, Err: err}
		}
		return DeleteFulfilled{Seq: seq, ID: id}
	}}
}

// Do runs a request and dispatches its result synchronously
func (s *TaskStore) Do(ctx context.Context, req Request) error {
	if req.Empty() {
		return nil
	}
	return s.Dispatch(req.Run(ctx))
}

// Dispatch applies a terminal action and returns the error it carried.
// The error is returned even when the result itself was stale so callers
// can react to a rejected session.
func (s *TaskStore) Dispatch(a Action) error {
	switch a := a.(type) {
	case FetchFulfilled:
		if s.settle(a.Seq) && a.Seq == s.lastFetch {
			s.tasks = dedupe(a.Tasks)
			s.logger.Debug("tasks loaded", "count", len(s.tasks))
		}
		return nil

	case FetchRejected:
		if s.settle(a.Seq) && a.Seq == s.lastFetch {
			s.reject(OpFetch, a.Err, MsgFetchFailed)
		}
		return a.Err

	case CreateFulfilled:
		if s.settle(a.Seq) {
			if domain.IndexOf(s.tasks, a.Task.ID) >= 0 {
				s.replace(a.Task.ID, a.Task)
			} else {
				s.tasks = append(s.tasks, a.Task)
			}
		}
		return nil

	case CreateRejected:
		if s.settle(a.Seq) {
			s.reject(OpCreate, a.Err, MsgCreateFailed)
		}
		return a.Err

	case UpdateFulfilled:
		if s.settle(a.Seq) && s.currentUpdate(a.ID, a.Seq) {
			if !s.replace(a.ID, a.Task) {
				s.logger.Debug("updated task no longer in list", "id", a.ID)
			}
		}
		return nil

	case UpdateRejected:
		if s.settle(a.Seq) && s.currentUpdate(a.ID, a.Seq) {
			s.reject(OpUpdateStatus, a.Err, MsgUpdateFailed)
		}
		return a.Err

	case DeleteFulfilled:
		if s.settle(a.Seq) {
			if i := domain.IndexOf(s.tasks, a.ID); i >= 0 {
				s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
			}
		}
		return nil

	case DeleteRejected:
		if s.settle(a.Seq) {
			s.reject(OpDelete, a.Err, MsgDeleteFailed)
		}
		return a.Err
	}
	return nil
}

// settle clears the pending entry for seq and reports whether the result
// belongs to the current session
func (s *TaskStore) settle(seq uint64) bool {
	delete(s.pending, seq)
	return seq > s.resetAt
}

func (s *TaskStore) currentUpdate(id string, seq uint64) bool {
	if s.lastUpdate[id] != seq {
		s.logger.Debug("stale status result discarded", "id", id, "seq", seq)
		return false
	}
	delete(s.lastUpdate, id)
	return true
}

func (s *TaskStore) reject(op Op, err error, fallback string) {
	s.err = domain.Message(err, fallback)
	s.logger.Warn("task request failed", "op", op, "error", err)
}

func (s *TaskStore) replace(id string, task domain.Task) bool {
	i := domain.IndexOf(s.tasks, id)
	if i < 0 {
		return false
	}
	s.tasks[i] = task
	return true
}

// dedupe keeps the first occurrence of each id
func dedupe(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	seen := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Reset drops all tasks and outstanding state. Results of requests issued
// before the reset are ignored when they arrive.
func (s *TaskStore) Reset() {
	s.tasks = []domain.Task{}
	s.err = ""
	s.resetAt = s.seq
	s.pending = make(map[uint64]Op)
	s.lastFetch = 0
	s.lastUpdate = make(map[string]uint64)
}

// Tasks returns a copy of the list in store order
func (s *TaskStore) Tasks() []domain.Task {
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Task looks up one task by id
func (s *TaskStore) Task(id string) (domain.Task, bool) {
	return domain.FindTask(s.tasks, id)
}

// Loading is true while any operation is pending
func (s *TaskStore) Loading() bool {
	return len(s.pending) > 0
}

// Pending reports whether an operation of the given kind is in flight
func (s *TaskStore) Pending(op Op) bool {
	for _, p := range s.pending {
		if p == op {
			return true
		}
	}
	return false
}

func (s *TaskStore) Error() string {
	return s.err
}

func (s *TaskStore) ClearError() {
	s.err = ""
}
