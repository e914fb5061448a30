package overlay

import tea "github.com/charmbracelet/bubbletea"

// Stack holds the dialogs open over the task views. Only the top one
// receives input.
type Stack struct {
	overlays []Overlay
}

// NewStack returns a stack with nothing open
func NewStack() *Stack {
	return &Stack{}
}

// Push opens o above whatever is showing and returns its Init command
func (s *Stack) Push(o Overlay) tea.Cmd {
	s.overlays = append(s.overlays, o)
	return o.Init()
}

// Pop closes the top dialog and returns it, or nil when none is open
func (s *Stack) Pop() Overlay {
	top := s.Current()
	if top != nil {
		s.overlays = s.overlays[:len(s.overlays)-1]
	}
	return top
}

// Current is the dialog receiving input, or nil
func (s *Stack) Current() Overlay {
	if n := len(s.overlays); n > 0 {
		return s.overlays[n-1]
	}
	return nil
}

// IsEmpty reports whether the task view has focus
func (s *Stack) IsEmpty() bool {
	return len(s.overlays) == 0
}

// Len is the number of open overlays
func (s *Stack) Len() int {
	return len(s.overlays)
}

// Clear drops every open dialog, as on sign out
func (s *Stack) Clear() {
	s.overlays = nil
}

// Update routes msg to the top dialog. CloseOverlayMsg pops it instead.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	if s.IsEmpty() {
		return nil
	}
	if _, ok := msg.(CloseOverlayMsg); ok {
		s.Pop()
		return nil
	}

	next, cmd := s.Current().Update(msg)

	// The dialog may have closed itself synchronously through the stack
	if o, ok := next.(Overlay); ok && len(s.overlays) > 0 {
		s.overlays[len(s.overlays)-1] = o
	}
	return cmd
}
