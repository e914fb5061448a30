package board

import (
	"github.com/riordanpawley/taskboard/internal/dnd"
	"github.com/riordanpawley/taskboard/internal/domain"
)

// CardLayout is one visible card, top to bottom
type CardLayout struct {
	TaskID string
	Status domain.Status
}

// ColumnLayout is one column's status and its visible cards
type ColumnLayout struct {
	Status domain.Status
	Cards  []CardLayout
}

// Layout is the on-screen geometry of the last rendered board
type Layout struct {
	Top         int
	Height      int
	ColumnWidth int
	Columns     []ColumnLayout
}

// ColumnAt returns the column index under x, or -1
func (l Layout) ColumnAt(x int) int {
	if l.ColumnWidth <= 0 || x < 0 {
		return -1
	}
	i := x / l.ColumnWidth
	if i >= len(l.Columns) {
		return -1
	}
	return i
}

// HitTest maps a terminal cell to a drop target: a card if the cell lies
// on one, otherwise the column body or header, otherwise nothing.
func (l Layout) HitTest(x, y int) dnd.Target {
	row := y - l.Top
	if row < 0 || row >= l.Height {
		return dnd.Target{}
	}
	col := l.ColumnAt(x)
	if col < 0 {
		return dnd.Target{}
	}

	cl := l.Columns[col]
	// Cards start below the header and the column's top border
	if cardRow := row - HeaderRows - 1; cardRow >= 0 {
		if i := cardRow / CardRows; i < len(cl.Cards) {
			card := cl.Cards[i]
			return dnd.Target{Kind: dnd.CardTarget, Status: card.Status, TaskID: card.TaskID}
		}
	}
	return dnd.Target{Kind: dnd.ColumnTarget, Status: cl.Status}
}
