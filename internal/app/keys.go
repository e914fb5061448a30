package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/taskboard/internal/dnd"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/types"
	"github.com/riordanpawley/taskboard/internal/ui/overlay"
)

// deleteTitle titles the delete confirmation
const deleteTitle = "Delete task"

// handleKey processes keyboard input based on current mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editor.IsDrag() {
		return m.handleDragMode(msg)
	}

	// Keys shared by every task view
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "ctrl+l":
		return m, tea.ClearScreen
	case "?":
		return m, m.overlayStack.Push(overlay.NewHelpOverlay())
	case "ctrl+o":
		return m, m.logout()
	case "r":
		return m, m.run(m.tasks.FetchTasks())
	case "D":
		if m.view == types.ViewDashboard {
			m.view = m.taskView
		} else {
			m.view = types.ViewDashboard
		}
		return m, nil
	case "tab":
		return m.toggleTaskView()
	}

	switch m.view {
	case types.ViewBoard:
		return m.handleBoardKey(msg)
	case types.ViewList:
		return m.handleListKey(msg)
	}
	return m, nil
}

// toggleTaskView switches board and list, carrying the selection across
func (m Model) toggleTaskView() (tea.Model, tea.Cmd) {
	switch m.view {
	case types.ViewBoard:
		if task, ok := m.nav.GetCurrentTask(m.columns()); ok {
			m.listSel = task.ID
		}
		m.view, m.taskView = types.ViewList, types.ViewList
	case types.ViewList:
		visible := m.visibleTasks()
		if task, ok := m.listTask(visible); ok {
			m.nav.SelectTask(task.ID, task.Status.Column())
		}
		m.view, m.taskView = types.ViewBoard, types.ViewBoard
	default:
		m.view = m.taskView
	}
	return m, nil
}

// handleTaskKey covers the intents both task views share. It reports
// whether the key was one of them.
func (m *Model) handleTaskKey(key string, current domain.Task, hasCurrent bool, defaultStatus domain.Status) (tea.Cmd, bool) {
	switch key {
	case "c":
		return m.overlayStack.Push(overlay.NewCreateTaskOverlay(defaultStatus)), true

	case "d":
		if !hasCurrent {
			return nil, true
		}
		dialog := overlay.NewConfirmDialog(
			deleteTitle,
			fmt.Sprintf("Delete %q? This cannot be undone.", current.Title),
			current.ID,
		)
		return m.overlayStack.Push(dialog), true

	case "H", "L":
		if !hasCurrent {
			return nil, true
		}
		delta := 1
		if key == "H" {
			delta = -1
		}
		col := max(0, min(current.Status.Column()+delta, len(domain.Statuses)-1))
		return m.updateStatus(current.ID, current.Status, domain.Statuses[col]), true

	case "/":
		m.editor.EnterSearch()
		search := overlay.NewSearchOverlay(m.editor.GetFilter().Search, m.config.SearchDebounce())
		cmd := m.overlayStack.Push(search)
		m.updateMatchCount()
		return cmd, true

	case "f":
		status := m.editor.CycleStatusFilter()
		m.addToast(ToastInfo, fmt.Sprintf("Filter: %s", status.Label()))
		return nil, true

	case "esc":
		if m.editor.IsFilterActive() {
			m.editor.ClearFilters()
			m.addToast(ToastInfo, "Filter cleared")
		}
		return nil, true
	}
	return nil, false
}

// handleBoardKey processes keyboard input on the board
func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := m.columns()
	current, hasCurrent := m.nav.GetCurrentTask(columns)

	if cmd, ok := m.handleTaskKey(msg.String(), current, hasCurrent, m.nav.GetCurrentStatus(columns)); ok {
		return m, cmd
	}

	switch msg.String() {
	// Vertical navigation
	case "j", "down":
		m.nav.MoveDown(columns)
	case "k", "up":
		m.nav.MoveUp(columns)

	// Horizontal navigation
	case "h", "left":
		m.nav.MoveLeft(columns)
	case "l", "right":
		m.nav.MoveRight(columns)

	// Scrolling
	case "ctrl+d":
		m.nav.HalfPageDown(columns, m.halfPage())
	case "ctrl+u":
		m.nav.HalfPageUp(columns, m.halfPage())
	case "g":
		m.nav.GotoTop(columns)
	case "G":
		m.nav.GotoBottom(columns)

	case "1", "2", "3":
		m.nav.GotoColumn(columns, int(msg.String()[0]-'1'))

	case "m", " ":
		if m.drag.Phase() == dnd.Pressed {
			m.drag.Cancel()
			m.pointer = false
		}
		if hasCurrent && m.drag.Pickup(current.ID, current.Status) {
			m.editor.EnterDrag()
			m.dragOver = current.Status.Column()
		}
	}
	return m, nil
}

// handleDragMode carries a picked-up card between columns
func (m Model) handleDragMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	columns := m.columns()

	switch msg.String() {
	case "h", "left":
		m.dragOver = max(0, m.dragOver-1)
	case "l", "right":
		m.dragOver = min(len(columns)-1, m.dragOver+1)
	case "1", "2", "3":
		m.dragOver = int(msg.String()[0] - '1')
	case "enter", "m", " ":
		target := dnd.Target{}
		if m.dragOver >= 0 && m.dragOver < len(columns) {
			target = dnd.Target{Kind: dnd.ColumnTarget, Status: columns[m.dragOver].Status}
		}
		return m, m.drop(m.drag.Release(target))
	case "esc":
		m.drag.Cancel()
		m.dragOver = -1
		m.pointer = false
		m.editor.EnterNormal()
	}
	return m, nil
}

// drop ends a drag and issues the status change it resolved to, if any
func (m *Model) drop(drop dnd.Drop) tea.Cmd {
	m.dragOver = -1
	m.pointer = false
	m.editor.EnterNormal()

	if drop.TaskID == "" {
		return nil
	}
	if drop.Click {
		m.nav.SelectTask(drop.TaskID, drop.From.Column())
		return nil
	}
	return m.updateStatus(drop.TaskID, drop.From, drop.To)
}

// updateStatus issues one status change when the status actually differs
func (m *Model) updateStatus(id string, from, to domain.Status) tea.Cmd {
	if from == to {
		return nil
	}
	req, err := m.tasks.UpdateTaskStatus(id, to)
	if err != nil {
		m.addToast(ToastError, err.Error())
		return nil
	}
	m.nav.SelectTask(id, to.Column())
	return m.run(req)
}

// handleListKey processes keyboard input in the list view
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleTasks()
	current, hasCurrent := m.listTask(visible)

	defaultStatus := domain.StatusTodo
	if f := m.editor.GetFilter().Status; f != domain.StatusAll && f != "" {
		defaultStatus = domain.Status(f)
	}
	if cmd, ok := m.handleTaskKey(msg.String(), current, hasCurrent, defaultStatus); ok {
		return m, cmd
	}

	index := m.listIndex(visible)
	switch msg.String() {
	case "j", "down":
		index++
	case "k", "up":
		index--
	case "ctrl+d":
		index += m.listHalfPage()
	case "ctrl+u":
		index -= m.listHalfPage()
	case "g":
		index = 0
	case "G":
		index = len(visible) - 1
	default:
		return m, nil
	}
	m.selectListRow(visible, index)
	return m, nil
}

// listIndex is the row of the selected task among visible, or 0
func (m Model) listIndex(visible []domain.Task) int {
	if i := domain.IndexOf(visible, m.listSel); i >= 0 {
		return i
	}
	return 0
}

func (m Model) listTask(visible []domain.Task) (domain.Task, bool) {
	if len(visible) == 0 {
		return domain.Task{}, false
	}
	return visible[m.listIndex(visible)], true
}

func (m *Model) selectListRow(visible []domain.Task, index int) {
	if len(visible) == 0 {
		return
	}
	m.listSel = visible[max(0, min(index, len(visible)-1))].ID
}

// handleOverlayKey routes keys to the open overlay
func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := m.overlayStack.Update(msg)
	return m, cmd
}

// handleSelection reacts to dialog answers
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	result, ok := msg.Value.(overlay.ConfirmResult)
	if !ok || !result.Confirmed || result.Subject == "" {
		return m, nil
	}
	return m, m.run(m.tasks.DeleteTask(result.Subject))
}

// halfPage calculates half-page scroll distance from the board height
func (m Model) halfPage() int {
	cardsPerColumn := (m.mainHeight() - 4) / 4
	return max(1, cardsPerColumn/2)
}

func (m Model) listHalfPage() int {
	return max(1, (m.mainHeight()-2)/2)
}
