// Package list renders tasks as a flat table, one row per task.
package list

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/taskboard/internal/domain"
)

// Fixed column widths. The title takes what is left.
const (
	numberWidth  = 5
	idWidth      = 10
	statusWidth  = 13
	updatedWidth = 8
	fixedWidth   = numberWidth + idWidth + statusWidth + updatedWidth

	// HeaderRows is the header line plus the separator
	HeaderRows = 2
)

// ListView represents a table-based list view for tasks
type ListView struct {
	tasks  []domain.Task
	cursor int
	styles *Styles
	width  int
	height int
	empty  string
}

// NewListView creates a new ListView with the given tasks and dimensions
func NewListView(tasks []domain.Task, width, height int) *ListView {
	return &ListView{
		tasks:  tasks,
		styles: NewStyles(),
		width:  width,
		height: height,
		empty:  "No tasks to display",
	}
}

// SetEmptyMessage overrides the text shown when there are no rows
func (lv *ListView) SetEmptyMessage(msg string) {
	lv.empty = msg
}

// SetCursor sets the cursor position, clamped to the rows
func (lv *ListView) SetCursor(index int) {
	lv.cursor = max(0, min(index, len(lv.tasks)-1))
}

// Cursor returns the cursor row
func (lv *ListView) Cursor() int {
	return lv.cursor
}

// visibleRows is how many task rows fit below the header
func (lv *ListView) visibleRows() int {
	return max(lv.height-HeaderRows, 1)
}

// offset is the first rendered row, keeping the cursor in view
func (lv *ListView) offset() int {
	visible := lv.visibleRows()
	if len(lv.tasks) <= visible || lv.cursor < visible {
		return 0
	}
	return min(lv.cursor-visible+1, len(lv.tasks)-visible)
}

// RowAt maps a screen row, relative to the top of the view, to a task
// index. It returns -1 for the header and for empty space.
func (lv *ListView) RowAt(y int) int {
	row := y - HeaderRows
	if row < 0 || row >= lv.visibleRows() {
		return -1
	}
	i := lv.offset() + row
	if i >= len(lv.tasks) {
		return -1
	}
	return i
}

// Render renders the full table
func (lv *ListView) Render() string {
	if len(lv.tasks) == 0 {
		return lv.styles.Empty.Render(lv.empty)
	}

	var b strings.Builder
	b.WriteString(lv.renderHeader())
	b.WriteString("\n")
	b.WriteString(lv.styles.Separator.Render(strings.Repeat("─", max(lv.width, 1))))

	start := lv.offset()
	end := min(start+lv.visibleRows(), len(lv.tasks))
	for i := start; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(lv.renderRow(i, lv.tasks[i]))
	}

	return b.String()
}

func (lv *ListView) titleWidth() int {
	return max(10, lv.width-fixedWidth)
}

// renderHeader renders the table header
func (lv *ListView) renderHeader() string {
	h := lv.styles.HeaderCell
	cells := []string{
		h.Width(numberWidth).Render("#"),
		h.Width(idWidth).Render("ID"),
		h.Width(lv.titleWidth()).Render("Title"),
		h.Width(statusWidth).Render("Status"),
		h.Width(updatedWidth).Render("Updated"),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderRow renders a single task row
func (lv *ListView) renderRow(index int, task domain.Task) string {
	isActive := index == lv.cursor

	indicator := "  "
	if isActive {
		indicator = lv.styles.Cursor.Render("▶ ")
	}

	updated := ""
	if !task.UpdatedAt.IsZero() {
		updated = task.UpdatedAt.Local().Format("Jan 2")
	}

	width := lv.titleWidth()
	cells := []string{
		lv.cell(lv.styles.ColNumber, isActive, numberWidth).Render(indicator + fmt.Sprintf("%2d", index+1)),
		lv.cell(lv.styles.ColID, isActive, idWidth).Render(shortID(task.ID)),
		lv.cell(lv.styles.Row, isActive, width).Render(ansi.Truncate(task.Title, width-1, "…")),
		lv.cell(lv.styles.Status(task.Status), isActive, statusWidth).Render(task.Status.Label()),
		lv.cell(lv.styles.ColUpdated, isActive, updatedWidth).Render(updated),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// cell sizes a column style and applies the active row background
func (lv *ListView) cell(base lipgloss.Style, active bool, width int) lipgloss.Style {
	s := base.Width(width)
	if active {
		s = s.Background(lv.styles.RowActive.GetBackground())
	}
	return s
}

func shortID(id string) string {
	return ansi.Truncate(id, idWidth-2, "")
}
