// Package navigation tracks the board cursor by task id, so the selection
// follows a task across reloads, filter changes and status moves.
package navigation

import (
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/ui/board"
)

// Position represents a computed position in the board
type Position struct {
	Column int  // 0=To Do, 1=In Progress, 2=Completed
	Task   int  // Index within the column
	Valid  bool // Whether a task is under the cursor
}

// Board converts the position into the cursor the board renderer takes
func (p Position) Board() board.Cursor {
	return board.Cursor{Column: p.Column, Task: p.Task}
}

// Cursor tracks the selected task by ID
type Cursor struct {
	TaskID         string // Primary state: selected task ID
	FallbackColumn int    // Column to use when TaskID not found
}

// FindPosition computes the position of the cursor's task in the given columns
func (c *Cursor) FindPosition(columns []board.Column) Position {
	if c.TaskID != "" {
		for colIdx, col := range columns {
			if i := domain.IndexOf(col.Tasks, c.TaskID); i >= 0 {
				return Position{Column: colIdx, Task: i, Valid: true}
			}
		}
	}

	// No selection, or the task went away: first task of the fallback column
	col := c.FallbackColumn
	if col < 0 || col >= len(columns) {
		col = 0
	}
	valid := col < len(columns) && len(columns[col].Tasks) > 0
	return Position{Column: col, Task: 0, Valid: valid}
}

// SetTask updates the cursor to point to a specific task
func (c *Cursor) SetTask(taskID string, column int) {
	c.TaskID = taskID
	c.FallbackColumn = column
}

// MoveVertical moves up or down within a column, returns new task ID
func (c *Cursor) MoveVertical(columns []board.Column, delta int) string {
	pos := c.FindPosition(columns)
	if !pos.Valid {
		return c.TaskID
	}

	tasks := columns[pos.Column].Tasks
	newIdx := clamp(pos.Task+delta, 0, len(tasks)-1)
	c.TaskID = tasks[newIdx].ID
	c.FallbackColumn = pos.Column
	return c.TaskID
}

// MoveHorizontal moves left or right to adjacent column
func (c *Cursor) MoveHorizontal(columns []board.Column, delta int) string {
	pos := c.FindPosition(columns)
	return c.enterColumn(columns, pos.Column+delta, pos.Task)
}

// JumpToColumn moves to a specific column, keeping relative row position
func (c *Cursor) JumpToColumn(columns []board.Column, colIdx int) string {
	pos := c.FindPosition(columns)
	return c.enterColumn(columns, colIdx, pos.Task)
}

// enterColumn selects the task at row in column colIdx, or the last task
// if the column is shorter
func (c *Cursor) enterColumn(columns []board.Column, colIdx, row int) string {
	if len(columns) == 0 {
		return c.TaskID
	}
	colIdx = clamp(colIdx, 0, len(columns)-1)
	c.FallbackColumn = colIdx

	tasks := columns[colIdx].Tasks
	if len(tasks) == 0 {
		c.TaskID = "" // No task in target column
		return c.TaskID
	}
	c.TaskID = tasks[clamp(row, 0, len(tasks)-1)].ID
	return c.TaskID
}

// JumpToStart moves to first task in current column
func (c *Cursor) JumpToStart(columns []board.Column) string {
	pos := c.FindPosition(columns)
	if pos.Valid {
		c.TaskID = columns[pos.Column].Tasks[0].ID
	}
	return c.TaskID
}

// JumpToEnd moves to last task in current column
func (c *Cursor) JumpToEnd(columns []board.Column) string {
	pos := c.FindPosition(columns)
	if pos.Valid {
		tasks := columns[pos.Column].Tasks
		c.TaskID = tasks[len(tasks)-1].ID
	}
	return c.TaskID
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Service manages navigation state
type Service struct {
	cursor Cursor
}

// NewService creates a new navigation service
func NewService() *Service {
	return &Service{}
}

// GetCursor returns the current cursor (for read access)
func (s *Service) GetCursor() *Cursor {
	return &s.cursor
}

// GetPosition returns the computed position of the cursor in the given columns
func (s *Service) GetPosition(columns []board.Column) Position {
	return s.cursor.FindPosition(columns)
}

// GetCurrentTask returns the currently selected task
func (s *Service) GetCurrentTask(columns []board.Column) (domain.Task, bool) {
	pos := s.cursor.FindPosition(columns)
	if !pos.Valid {
		return domain.Task{}, false
	}
	return columns[pos.Column].Tasks[pos.Task], true
}

// GetCurrentStatus returns the status of the column under the cursor
func (s *Service) GetCurrentStatus(columns []board.Column) domain.Status {
	pos := s.cursor.FindPosition(columns)
	if pos.Column >= len(columns) {
		return domain.StatusTodo
	}
	return columns[pos.Column].Status
}

// MoveDown moves cursor down in current column
func (s *Service) MoveDown(columns []board.Column) {
	s.cursor.MoveVertical(columns, 1)
}

// MoveUp moves cursor up in current column
func (s *Service) MoveUp(columns []board.Column) {
	s.cursor.MoveVertical(columns, -1)
}

// MoveLeft moves cursor to left column
func (s *Service) MoveLeft(columns []board.Column) {
	s.cursor.MoveHorizontal(columns, -1)
}

// MoveRight moves cursor to right column
func (s *Service) MoveRight(columns []board.Column) {
	s.cursor.MoveHorizontal(columns, 1)
}

// HalfPageDown moves cursor half a page down
func (s *Service) HalfPageDown(columns []board.Column, halfPage int) {
	s.cursor.MoveVertical(columns, halfPage)
}

// HalfPageUp moves cursor half a page up
func (s *Service) HalfPageUp(columns []board.Column, halfPage int) {
	s.cursor.MoveVertical(columns, -halfPage)
}

// GotoTop moves cursor to first task in column
func (s *Service) GotoTop(columns []board.Column) {
	s.cursor.JumpToStart(columns)
}

// GotoBottom moves cursor to last task in column
func (s *Service) GotoBottom(columns []board.Column) {
	s.cursor.JumpToEnd(columns)
}

// GotoColumn moves cursor to column i
func (s *Service) GotoColumn(columns []board.Column, i int) {
	s.cursor.JumpToColumn(columns, i)
}

// SelectTask directly sets the cursor to a specific task
func (s *Service) SelectTask(taskID string, column int) {
	s.cursor.SetTask(taskID, column)
}

// JumpToTaskByID finds and selects a task by ID
func (s *Service) JumpToTaskByID(columns []board.Column, taskID string) bool {
	for colIdx, col := range columns {
		if domain.IndexOf(col.Tasks, taskID) >= 0 {
			s.cursor.SetTask(taskID, colIdx)
			return true
		}
	}
	return false
}

// Reset clears the selection
func (s *Service) Reset() {
	s.cursor = Cursor{}
}
