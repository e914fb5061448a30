package board

import "github.com/riordanpawley/taskboard/internal/domain"

// Column represents a kanban column with tasks
type Column struct {
	Status domain.Status
	Title  string
	Tasks  []domain.Task
}

// Cursor represents the current cursor position
type Cursor struct {
	Column int // Column index (0-2)
	Task   int // Task index within column
}

// Drag describes an in-progress drag for rendering
type Drag struct {
	TaskID string
	// Over is the column index under the pointer, or -1
	Over int
}

// NoDrag is the zero drag state
var NoDrag = Drag{Over: -1}

// Active reports whether a task is being dragged
func (d Drag) Active() bool {
	return d.TaskID != ""
}

// BuildColumns partitions tasks into the three status columns, keeping
// store order within each column
func BuildColumns(tasks []domain.Task) []Column {
	byStatus := domain.ByStatus(tasks)
	columns := make([]Column, 0, len(domain.Statuses))
	for _, s := range domain.Statuses {
		columns = append(columns, Column{Status: s, Title: s.Label(), Tasks: byStatus[s]})
	}
	return columns
}
