// Package statusbar renders the bottom line of the TUI: mode and view on
// the left with key hints, session and filter details on the right.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/types"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// Info is what the status bar shows
type Info struct {
	View types.View
	Mode types.Mode
	// User is the signed-in username, empty when signed out
	User   string
	Filter domain.Filter
	// Visible and Total count tasks after and before filtering
	Visible int
	Total   int
	// Busy is a spinner frame while requests are in flight
	Busy string
	// Offline is set when the API did not answer the last probe
	Offline bool
}

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	info   Info
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar with the given info, width, and styles
func New(info Info, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		info:   info,
		width:  width,
		styles: styles,
	}
}

func (sb StatusBar) right() string {
	var parts []string
	if sb.info.Busy != "" {
		parts = append(parts, sb.info.Busy)
	}
	if sb.info.Offline {
		parts = append(parts, sb.styles.FieldError.Render("offline"))
	}
	if sb.info.View.Authenticated() {
		f := sb.info.Filter
		if f.IsActive() {
			label := "filter: " + f.Status.Label()
			if f.Search != "" {
				label += fmt.Sprintf(" %q", f.Search)
			}
			parts = append(parts, label)
			parts = append(parts, fmt.Sprintf("%d/%d", sb.info.Visible, sb.info.Total))
		} else {
			parts = append(parts, fmt.Sprintf("%d tasks", sb.info.Total))
		}
	}
	if sb.info.User != "" {
		parts = append(parts, "@"+sb.info.User)
	}
	return sb.styles.StatusInfo.Render(strings.Join(parts, "  "))
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(sb.info.Mode.String())
	view := sb.styles.StatusInfo.Render(" " + strings.ToLower(sb.info.View.String()))
	right := sb.right()

	// Status bar padding takes one cell each side
	inner := max(sb.width-2, 0)
	used := lipgloss.Width(modeBadge) + lipgloss.Width(view) + lipgloss.Width(right)

	content := modeBadge + view
	if hints := GetHints(sb.info.View, sb.info.Mode); hints != "" {
		separator := " │ "
		room := inner - used - len(separator) - 1
		if room > 3 {
			content += sb.styles.StatusHint.Render(separator + ansi.Truncate(hints, room, "…"))
		}
	}

	gap := inner - lipgloss.Width(content) - lipgloss.Width(right)
	if gap > 0 {
		content += strings.Repeat(" ", gap) + right
	}

	return sb.styles.StatusBar.Width(sb.width).MaxHeight(1).Render(ansi.Truncate(content, inner, ""))
}
