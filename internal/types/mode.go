// Package types contains shared types used across the application.
package types

// View is the top-level screen being shown
type View int

const (
	ViewLogin View = iota
	ViewRegister
	ViewBoard
	ViewList
	ViewDashboard
)

// String returns the string representation of the view
func (v View) String() string {
	switch v {
	case ViewLogin:
		return "LOGIN"
	case ViewRegister:
		return "REGISTER"
	case ViewBoard:
		return "BOARD"
	case ViewList:
		return "LIST"
	case ViewDashboard:
		return "DASHBOARD"
	default:
		return "UNKNOWN"
	}
}

// Authenticated reports whether the view requires a session
func (v View) Authenticated() bool {
	return v == ViewBoard || v == ViewList || v == ViewDashboard
}

// ParseView maps a config value onto a task view, defaulting to the board
func ParseView(s string) View {
	switch s {
	case "list":
		return ViewList
	case "dashboard":
		return ViewDashboard
	default:
		return ViewBoard
	}
}

// Mode represents what keys currently drive
type Mode int

const (
	ModeNormal Mode = iota
	ModeDrag
	ModeSearch
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeDrag:
		return "DRAG"
	case ModeSearch:
		return "SEARCH"
	default:
		return "UNKNOWN"
	}
}
