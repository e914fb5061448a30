// Package domain contains core business types for the taskboard client.
package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Task represents a task as returned by the API
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Status represents task status
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// Statuses lists every status in board column order
var Statuses = []Status{StatusTodo, StatusInProgress, StatusCompleted}

// ParseStatus accepts the wire form or a loose alias ("todo", "in-progress", "done")
func ParseStatus(s string) (Status, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", "_")
	norm = strings.ReplaceAll(norm, " ", "_")
	switch norm {
	case "TODO":
		return StatusTodo, nil
	case "IN_PROGRESS", "PROGRESS", "DOING":
		return StatusInProgress, nil
	case "COMPLETED", "DONE":
		return StatusCompleted, nil
	}
	return "", fmt.Errorf("invalid status %q", s)
}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Column returns the kanban column index for this status
func (s Status) Column() int {
	switch s {
	case StatusInProgress:
		return 1
	case StatusCompleted:
		return 2
	default:
		return 0
	}
}

// Label returns the human-readable column title
func (s Status) Label() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// String returns the display string
func (s Status) String() string {
	return string(s)
}

// Field length limits enforced by the task form
const (
	TitleMinLen       = 3
	TitleMaxLen       = 100
	DescriptionMinLen = 10
	DescriptionMaxLen = 500
)

// Draft is the payload for creating a task. Status is optional and
// defaults to TODO.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status,omitempty"`
}

// Normalize trims whitespace and fills the default status
func (d Draft) Normalize() Draft {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	if d.Status == "" {
		d.Status = StatusTodo
	}
	return d
}

// Validate checks the draft against the form rules. It returns nil or a
// ValidationErrors keyed by field name.
func (d Draft) Validate() error {
	errs := ValidationErrors{}

	title := strings.TrimSpace(d.Title)
	switch n := utf8.RuneCountInString(title); {
	case n == 0:
		errs["title"] = "title is required"
	case n < TitleMinLen:
		errs["title"] = fmt.Sprintf("title must be at least %d characters", TitleMinLen)
	case n > TitleMaxLen:
		errs["title"] = fmt.Sprintf("title cannot exceed %d characters", TitleMaxLen)
	}

	desc := strings.TrimSpace(d.Description)
	switch n := utf8.RuneCountInString(desc); {
	case n == 0:
		errs["description"] = "description is required"
	case n < DescriptionMinLen:
		errs["description"] = fmt.Sprintf("description must be at least %d characters", DescriptionMinLen)
	case n > DescriptionMaxLen:
		errs["description"] = fmt.Sprintf("description cannot exceed %d characters", DescriptionMaxLen)
	}

	if d.Status != "" && !d.Status.Valid() {
		errs["status"] = "status must be TODO, IN_PROGRESS or COMPLETED"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// IndexOf returns the position of the task with the given id, or -1
func IndexOf(tasks []Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// FindTask returns the task with the given id
func FindTask(tasks []Task, id string) (Task, bool) {
	if i := IndexOf(tasks, id); i >= 0 {
		return tasks[i], true
	}
	return Task{}, false
}
