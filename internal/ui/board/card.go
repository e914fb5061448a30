package board

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// CardRows is the rendered height of a card: border, title, meta, border
const CardRows = 4

// renderCard renders a task card. width is the outer width including the
// border.
func renderCard(task domain.Task, isCursor bool, isDragging bool, width int, s *styles.Styles) string {
	// Choose card style based on state
	cardStyle := s.Card
	if isDragging {
		cardStyle = s.CardDragging
	} else if isCursor {
		cardStyle = s.CardActive
	}

	// Border takes one cell each side, padding one more
	inner := max(width-4, 1)
	cardStyle = cardStyle.Width(max(width-2, 1))

	// Cursor indicator (▶ symbol when cursor is on this card)
	cursor := ""
	if isCursor {
		cursor = "▶ "
	}
	title := ansi.Truncate(cursor+task.Title, inner, "…")
	meta := ansi.Truncate(cardMeta(task), inner, "…")

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.TaskTitle.Render(title),
		s.TaskMeta.Render(meta),
	)

	return cardStyle.Render(content)
}

// cardMeta is the second card line: short id and last update date
func cardMeta(task domain.Task) string {
	meta := "#" + ShortID(task.ID)
	if !task.UpdatedAt.IsZero() {
		meta += " · " + task.UpdatedAt.Local().Format("Jan 2")
	}
	return meta
}

// ShortID trims long server ids to eight characters for display
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// RenderCard is the exported version for testing
func RenderCard(task domain.Task, isCursor bool, isDragging bool, width int, s *styles.Styles) string {
	return renderCard(task, isCursor, isDragging, width, s)
}
