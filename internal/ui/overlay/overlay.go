// Package overlay holds the modal components drawn over the main views:
// task creation, delete confirmation, search, help, and the login and
// register forms.
package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	// Size is the content size. A width of zero means a full-width bar.
	Size() (width, height int)
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}

// SelectionMsg is sent when a dialog choice is made
type SelectionMsg struct {
	Key   string
	Value any
}

func closeCmd() tea.Msg {
	return CloseOverlayMsg{}
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Frame draws a modal overlay inside its border with the title on top.
// Bars (zero width) are returned as is.
func Frame(o Overlay, s *Styles) string {
	view := o.View()
	width, height := o.Size()
	if width == 0 {
		return view
	}
	if title := o.Title(); title != "" {
		view = lipgloss.JoinVertical(lipgloss.Left, s.Title.Render(title), view)
	}
	return s.Overlay.Width(width).Height(height).Render(view)
}
