package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/store"
	"github.com/riordanpawley/taskboard/internal/types"
	"github.com/riordanpawley/taskboard/internal/ui/board"
	"github.com/riordanpawley/taskboard/internal/ui/dashboard"
	"github.com/riordanpawley/taskboard/internal/ui/list"
	"github.com/riordanpawley/taskboard/internal/ui/overlay"
	"github.com/riordanpawley/taskboard/internal/ui/statusbar"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
	"github.com/riordanpawley/taskboard/internal/ui/toast"
)

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	height := m.mainHeight()

	var main string
	switch m.view {
	case types.ViewLogin, types.ViewRegister:
		main = m.renderAuth(height)
	case types.ViewBoard:
		main = m.renderBoardView(height)
	case types.ViewList:
		main = m.renderListView(height)
	case types.ViewDashboard:
		main = dashboard.Render(m.tasks.Tasks(), m.styles, m.width)
	}
	main = lipgloss.NewStyle().Width(m.width).Height(height).MaxHeight(height).Render(main)

	parts := []string{main}

	// Modal overlays replace the view underneath; bars sit below it
	if current := m.overlayStack.Current(); current != nil {
		if w, _ := current.Size(); w == 0 {
			parts = append(parts, current.View())
		} else {
			parts[0] = lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
				overlay.Frame(current, m.overlayStyles))
		}
	}

	if toasts := m.renderToasts(); toasts != "" {
		parts = append(parts, toasts)
	}

	parts = append(parts, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// mainHeight is the height left for the active view once the status bar,
// toasts and any bar overlay are placed
func (m Model) mainHeight() int {
	height := m.height - 1
	if toasts := m.renderToasts(); toasts != "" {
		height -= lipgloss.Height(toasts)
	}
	if current := m.overlayStack.Current(); current != nil {
		if w, _ := current.Size(); w == 0 {
			height -= lipgloss.Height(current.View())
		}
	}
	return max(height, 1)
}

func (m Model) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	view := toast.New(m.styles).Render(m.toasts, m.width)
	if view == "" {
		return ""
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, view)
}

func (m Model) renderStatusBar() string {
	info := statusbar.Info{
		View:    m.view,
		Mode:    m.editor.GetMode(),
		Filter:  m.editor.GetFilter(),
		Offline: m.offline,
	}
	if user, ok := m.session.User(); ok {
		info.User = user.Username
	}
	if m.view.Authenticated() {
		info.Total = len(m.tasks.Tasks())
		info.Visible = len(m.visibleTasks())
	}
	if m.busy() {
		info.Busy = m.spinner.View()
	}
	return statusbar.New(info, m.width, m.styles).Render()
}

// renderAuth centers the login or register form
func (m Model) renderAuth(height int) string {
	if m.authForm == nil {
		return ""
	}
	heading := lipgloss.NewStyle().Foreground(styles.Mauve).Bold(true).MarginBottom(1).Render("taskboard")
	content := lipgloss.JoinVertical(lipgloss.Center, heading, overlay.Frame(m.authForm, m.overlayStyles))
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderLoading renders a centered loading spinner with message
func (m Model) renderLoading(height int) string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.spinner.View(),
		"Loading tasks...",
	)
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, content)
}

// loadingEmpty reports whether there is nothing to show yet but a fetch
// is running
func (m Model) loadingEmpty() bool {
	return m.tasks.Pending(store.OpFetch) && len(m.tasks.Tasks()) == 0
}

// renderBoard renders the board and its hit-test geometry
func (m Model) renderBoard(height int) (string, board.Layout) {
	columns := m.columns()
	cursor := m.nav.GetPosition(columns).Board()

	drag := board.NoDrag
	if id, ok := m.drag.Active(); ok && m.drag.Dragging() {
		drag = board.Drag{TaskID: id, Over: m.dragOver}
	}

	return board.Render(columns, cursor, drag, m.styles, 0, m.width, height)
}

func (m Model) renderBoardView(height int) string {
	if m.loadingEmpty() {
		return m.renderLoading(height)
	}
	view, _ := m.renderBoard(height)
	return view
}

func (m Model) listView(visible []domain.Task, height int) *list.ListView {
	lv := list.NewListView(visible, m.width, height)
	lv.SetCursor(m.listIndex(visible))
	if m.editor.IsFilterActive() {
		lv.SetEmptyMessage("No tasks match the current filter. Esc clears it.")
	}
	return lv
}

func (m Model) renderListView(height int) string {
	if m.loadingEmpty() {
		return m.renderLoading(height)
	}
	return m.listView(m.visibleTasks(), height).Render()
}
