package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/taskboard/internal/dnd"
	"github.com/riordanpawley/taskboard/internal/types"
)

// handleMouse routes pointer events to the active task view
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case types.ViewBoard:
		return m.handleBoardMouse(msg)
	case types.ViewList:
		return m.handleListMouse(msg)
	}
	return m, nil
}

// handleBoardMouse drives the drag machine from pointer events. The layout
// is recomputed from the same inputs View uses, so hit-testing always
// matches what is on screen.
func (m Model) handleBoardMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	columns := m.columns()
	_, layout := m.renderBoard(m.mainHeight())
	at := dnd.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.nav.MoveUp(columns)
		case tea.MouseButtonWheelDown:
			m.nav.MoveDown(columns)
		case tea.MouseButtonLeft:
			if m.editor.IsDrag() {
				return m, nil
			}
			// A press without a matching release leaves the gesture open
			if m.drag.Phase() != dnd.Idle {
				m.drag.Cancel()
				m.pointer = false
			}
			target := layout.HitTest(msg.X, msg.Y)
			if target.Kind == dnd.CardTarget {
				m.pointer = m.drag.Press(target.TaskID, target.Status, at)
			}
		}

	case tea.MouseActionMotion:
		if !m.pointer {
			return m, nil
		}
		m.drag.Move(at)
		if m.drag.Dragging() {
			m.editor.EnterDrag()
			m.dragOver = layout.ColumnAt(msg.X)
		}

	case tea.MouseActionRelease:
		if !m.pointer {
			return m, nil
		}
		m.pointer = false
		return m, m.drop(m.drag.Release(layout.HitTest(msg.X, msg.Y)))
	}
	return m, nil
}

// handleListMouse selects rows on click and scrolls with the wheel
func (m Model) handleListMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	visible := m.visibleTasks()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.selectListRow(visible, m.listIndex(visible)-1)
	case tea.MouseButtonWheelDown:
		m.selectListRow(visible, m.listIndex(visible)+1)
	case tea.MouseButtonLeft:
		if row := m.listView(visible, m.mainHeight()).RowAt(msg.Y); row >= 0 {
			m.selectListRow(visible, row)
		}
	}
	return m, nil
}
