package board

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// Render renders the kanban board and returns the geometry needed to map
// pointer positions back onto columns and cards. top is the screen row the
// board will be drawn at.
func Render(
	columns []Column,
	cursor Cursor,
	drag Drag,
	s *styles.Styles,
	top int,
	width int,
	height int,
) (string, Layout) {
	layout := Layout{Top: top, Height: height}
	if len(columns) == 0 || width <= 0 {
		return "", layout
	}

	columnWidth := width / len(columns)
	layout.ColumnWidth = columnWidth
	visible := visibleCards(height)

	columnStrings := make([]string, 0, len(columns))
	for i, col := range columns {
		isActive := i == cursor.Column
		cursorTask := 0
		if isActive {
			cursorTask = cursor.Task
		}

		offset := 0
		if isActive {
			offset = scrollOffset(len(col.Tasks), cursorTask, visible)
		}

		cl := ColumnLayout{Status: col.Status}
		for j := offset; j < min(offset+visible, len(col.Tasks)); j++ {
			cl.Cards = append(cl.Cards, CardLayout{TaskID: col.Tasks[j].ID, Status: col.Tasks[j].Status})
		}
		layout.Columns = append(layout.Columns, cl)

		columnStr := renderColumn(
			col,
			cursorTask,
			isActive,
			drag,
			drag.Active() && drag.Over == i,
			offset,
			visible,
			columnWidth,
			height,
			s,
		)

		// Force consistent width using lipgloss Width
		sized := lipgloss.NewStyle().Width(columnWidth).MaxHeight(height).Render(columnStr)
		columnStrings = append(columnStrings, sized)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columnStrings...), layout
}
