package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// ConfirmDialog is a confirmation dialog overlay with Yes/No options
type ConfirmDialog struct {
	title    string
	message  string
	subject  string
	styles   *Styles
	selected bool // true = Yes, false = No
}

// ConfirmResult represents the result of a confirmation dialog. Subject
// identifies what was being confirmed, such as a task id.
type ConfirmResult struct {
	Confirmed bool
	Subject   string
}

const confirmWidth = 50

// NewConfirmDialog creates a new confirmation dialog with the given title and message
func NewConfirmDialog(title, message, subject string) *ConfirmDialog {
	return &ConfirmDialog{
		title:   title,
		message: message,
		subject: subject,
		styles:  New(),
	}
}

// Init initializes the dialog
func (c *ConfirmDialog) Init() tea.Cmd {
	return nil
}

func (c *ConfirmDialog) answer(yes bool) tea.Cmd {
	key := "no"
	if yes {
		key = "yes"
	}
	return tea.Batch(
		emit(SelectionMsg{Key: key, Value: ConfirmResult{Confirmed: yes, Subject: c.subject}}),
		closeCmd,
	)
}

// Update handles messages
func (c *ConfirmDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key.String() {
	case "y", "Y":
		return c, c.answer(true)
	case "n", "N", "esc":
		return c, c.answer(false)
	case "enter":
		return c, c.answer(c.selected)
	case "left", "h":
		c.selected = false
	case "right", "l", "tab":
		c.selected = true
	}
	return c, nil
}

// View renders the dialog
func (c *ConfirmDialog) View() string {
	var b strings.Builder

	if c.message != "" {
		b.WriteString(c.styles.MenuItem.Render(ansi.Wordwrap(c.message, confirmWidth-4, "")))
		b.WriteString("\n\n")
	}

	yesStyle, noStyle := c.styles.MenuItem, c.styles.MenuItemActive
	if c.selected {
		yesStyle, noStyle = c.styles.MenuItemActive, c.styles.MenuItem
	}
	b.WriteString(yesStyle.Render("[Y] Yes") + "    " + noStyle.Render("[N] No"))
	b.WriteString("\n\n")
	b.WriteString(c.styles.Footer.Render("← → Switch • Enter Confirm • Esc Cancel"))

	return b.String()
}

// Title returns the dialog title
func (c *ConfirmDialog) Title() string {
	return c.title
}

// Size returns the dialog dimensions
func (c *ConfirmDialog) Size() (width, height int) {
	lines := strings.Count(ansi.Wordwrap(c.message, confirmWidth-4, ""), "\n") + 1
	return confirmWidth, lines + 8
}

// Selected reports whether Yes is highlighted
func (c *ConfirmDialog) Selected() bool {
	return c.selected
}
