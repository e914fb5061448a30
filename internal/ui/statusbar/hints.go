package statusbar

import "github.com/riordanpawley/taskboard/internal/types"

// GetHints returns the keybinding hints for the given view and mode
func GetHints(view types.View, mode types.Mode) string {
	switch mode {
	case types.ModeDrag:
		return "h/l: carry  Enter: drop  Esc: cancel"
	case types.ModeSearch:
		return "Type to search  Enter: confirm  Esc: clear"
	}

	switch view {
	case types.ViewBoard:
		return "h/l/j/k: move  m: drag  c: new  d: delete  /: search  f: filter  ?: help"
	case types.ViewList:
		return "j/k: move  H/L: status  c: new  d: delete  /: search  f: filter  ?: help"
	case types.ViewDashboard:
		return "D/Tab: back  r: refresh  ?: help  q: quit"
	case types.ViewLogin:
		return "Enter: sign in  Ctrl+R: register  Ctrl+C: quit"
	case types.ViewRegister:
		return "Enter: register  Esc: back  Ctrl+C: quit"
	}
	return ""
}
