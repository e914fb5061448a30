package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// HeaderRows is the header line plus its bottom margin
const HeaderRows = 2

// visibleCards returns how many cards fit in a column of the given board
// height
func visibleCards(height int) int {
	body := height - HeaderRows - 2
	if body < CardRows {
		return 0
	}
	return body / CardRows
}

// scrollOffset keeps the cursor row inside the visible window
func scrollOffset(total, cursor, visible int) int {
	if visible <= 0 || total <= visible {
		return 0
	}
	offset := 0
	if cursor >= visible {
		offset = cursor - visible + 1
	}
	return min(offset, total-visible)
}

// renderColumn renders a kanban column with header and the visible window
// of task cards. width and height are outer dimensions.
func renderColumn(
	col Column,
	cursorTask int,
	isActive bool,
	drag Drag,
	isDropTarget bool,
	offset int,
	visible int,
	width int,
	height int,
	s *styles.Styles,
) string {
	headerStyle := s.ColumnAccent(col.Status, isActive)

	// Render header with title and count (e.g., "─ To Do (3) ─────")
	count := fmt.Sprintf("(%d)", len(col.Tasks))
	if len(col.Tasks) > visible && visible > 0 {
		count = fmt.Sprintf("(%d-%d/%d)", offset+1, min(offset+visible, len(col.Tasks)), len(col.Tasks))
	}
	headerText := "─ " + col.Title + " " + count + " "
	remainingWidth := width - lipgloss.Width(headerText) - 2 // Account for padding
	if remainingWidth > 0 {
		headerText += strings.Repeat("─", remainingWidth)
	}
	header := headerStyle.Render(ansi.Truncate(headerText, max(width-2, 1), ""))

	end := min(offset+visible, len(col.Tasks))
	cardStrings := make([]string, 0, max(end-offset, 0))
	cardWidth := width - 4 // Column border and padding
	for i := offset; i < end; i++ {
		task := col.Tasks[i]
		isCursor := isActive && i == cursorTask && !drag.Active()
		isDragging := drag.TaskID == task.ID
		cardStrings = append(cardStrings, renderCard(task, isCursor, isDragging, cardWidth, s))
	}

	content := strings.Join(cardStrings, "\n")
	if len(col.Tasks) == 0 {
		content = s.TaskMeta.Render("No tasks")
	}

	columnStyle := s.Column
	if isDropTarget {
		columnStyle = s.ColumnDropTarget
	}
	columnContent := columnStyle.
		Width(max(width-2, 1)).
		Height(max(height-HeaderRows-2, 1)).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, columnContent)
}
