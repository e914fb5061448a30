package list

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// Styles holds the styling for the list view
type Styles struct {
	// Table structure
	HeaderCell lipgloss.Style
	Separator  lipgloss.Style
	Empty      lipgloss.Style

	// Row styles
	Row       lipgloss.Style
	RowActive lipgloss.Style

	// Column styles
	ColNumber  lipgloss.Style
	ColID      lipgloss.Style
	ColUpdated lipgloss.Style

	// Indicators
	Cursor lipgloss.Style
}

// NewStyles creates a new Styles instance with Catppuccin Macchiato theme
func NewStyles() *Styles {
	return &Styles{
		HeaderCell: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Empty: lipgloss.NewStyle().
			Foreground(styles.Overlay1).
			Italic(true),

		Row: lipgloss.NewStyle().
			Foreground(styles.Text),

		RowActive: lipgloss.NewStyle().
			Foreground(styles.Text).
			Background(styles.Surface0),

		ColNumber: lipgloss.NewStyle().
			Foreground(styles.Overlay1),

		ColID: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			Bold(true),

		ColUpdated: lipgloss.NewStyle().
			Foreground(styles.Overlay1),

		Cursor: lipgloss.NewStyle().
			Foreground(styles.Lavender).
			Bold(true),
	}
}

// Status returns the colored style for a status cell
func (s *Styles) Status(status domain.Status) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.StatusColor(status)).Bold(true)
}
