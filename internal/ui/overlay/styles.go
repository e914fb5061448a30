package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Overlay is the base overlay container style
	Overlay lipgloss.Style
	// Title is the overlay title style
	Title lipgloss.Style
	// MenuItem is the default menu item style
	MenuItem lipgloss.Style
	// MenuItemActive is the highlighted/selected menu item style
	MenuItemActive lipgloss.Style
	// MenuKey is the style for keybinding hints
	MenuKey lipgloss.Style
	// Separator is the style for divider lines
	Separator lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
	// Category headers in the help overlay
	Category lipgloss.Style

	// Form fields
	FieldLabel lipgloss.Style
	FieldFocus lipgloss.Style
	FieldError lipgloss.Style
	FormError  lipgloss.Style

	// Search bar
	Bar      lipgloss.Style
	BarCount lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(styles.Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		MenuKey: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0),

		Category: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		FieldLabel: lipgloss.NewStyle().
			Foreground(styles.Teal),

		FieldFocus: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		FieldError: lipgloss.NewStyle().
			Foreground(styles.Red),

		FormError: lipgloss.NewStyle().
			Foreground(styles.Red).
			Bold(true),

		Bar: lipgloss.NewStyle().
			Foreground(styles.Text).
			Background(styles.Surface0),

		BarCount: lipgloss.NewStyle().
			Foreground(styles.Overlay1).
			Background(styles.Surface0),
	}
}
