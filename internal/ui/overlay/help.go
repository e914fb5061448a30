package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory represents a category of keybindings
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

// Keymap is the reference shown by the help overlay
var Keymap = []KeyCategory{
	{
		Name: "Navigation",
		Bindings: []KeyBinding{
			{Key: "h/l", Description: "Move between columns"},
			{Key: "j/k", Description: "Move up/down"},
			{Key: "g/G", Description: "Top/bottom of column"},
			{Key: "1-3", Description: "Jump to column"},
			{Key: "Tab", Description: "Toggle board/list"},
			{Key: "D", Description: "Dashboard"},
		},
	},
	{
		Name: "Tasks",
		Bindings: []KeyBinding{
			{Key: "c", Description: "Create task"},
			{Key: "d", Description: "Delete task"},
			{Key: "H/L", Description: "Move task left/right"},
			{Key: "r", Description: "Refresh"},
		},
	},
	{
		Name: "Drag and drop",
		Bindings: []KeyBinding{
			{Key: "m", Description: "Pick up task"},
			{Key: "h/l", Description: "Carry to column"},
			{Key: "Enter", Description: "Drop"},
			{Key: "Esc", Description: "Cancel drag"},
			{Key: "Mouse", Description: "Drag a card onto a column"},
		},
	},
	{
		Name: "Filter",
		Bindings: []KeyBinding{
			{Key: "/", Description: "Search titles"},
			{Key: "f", Description: "Cycle status filter"},
			{Key: "Esc", Description: "Clear filter"},
		},
	},
	{
		Name: "Other",
		Bindings: []KeyBinding{
			{Key: "Ctrl+O", Description: "Sign out"},
			{Key: "?", Description: "Help (this screen)"},
			{Key: "q", Description: "Quit"},
		},
	},
}

// HelpOverlay displays keybinding reference
type HelpOverlay struct {
	styles     *Styles
	scroll     int
	viewHeight int
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		styles:     New(),
		viewHeight: 20,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

func (h *HelpOverlay) maxScroll() int {
	return max(0, len(h.lines())-h.viewHeight)
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch key.String() {
	case "esc", "q", "?":
		return h, closeCmd
	case "j", "down":
		h.scroll = min(h.scroll+1, h.maxScroll())
	case "k", "up":
		h.scroll = max(h.scroll-1, 0)
	case "g":
		h.scroll = 0
	case "G":
		h.scroll = h.maxScroll()
	}
	return h, nil
}

// lines is the full, unscrolled content
func (h *HelpOverlay) lines() []string {
	var lines []string
	for i, cat := range Keymap {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, h.styles.Category.Render(cat.Name+":"))
		for _, binding := range cat.Bindings {
			key := h.styles.MenuKey.Width(8).Render(binding.Key)
			lines = append(lines, "  "+key+h.styles.MenuItem.Render(binding.Description))
		}
	}
	return lines
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	lines := h.lines()
	end := min(h.scroll+h.viewHeight, len(lines))
	result := strings.Join(lines[h.scroll:end], "\n")

	if h.maxScroll() > 0 {
		hint := lipgloss.JoinHorizontal(lipgloss.Left,
			"[",
			h.styles.MenuKey.Render("j/k"),
			" to scroll, ",
			h.styles.MenuKey.Render("g/G"),
			" to jump]",
		)
		result += "\n\n" + h.styles.Footer.Render(hint)
	}

	return result
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 50, h.viewHeight + 4
}
