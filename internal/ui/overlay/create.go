package overlay

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/taskboard/internal/domain"
)

// TaskDraftMsg is emitted when the create form passes validation
type TaskDraftMsg struct {
	Draft domain.Draft
}

// CreateTaskOverlay provides a form to create a new task
type CreateTaskOverlay struct {
	title       textinput.Model
	description textarea.Model
	status      domain.Status
	focusIndex  int
	errs        domain.ValidationErrors
	attempted   bool
	styles      *Styles
}

const (
	focusTitle = iota
	focusDescription
	focusStatus
	focusSubmit
	focusCount
)

const formWidth = 60

// NewCreateTaskOverlay creates a new task creation overlay. The status
// selector starts on status, which is normally the column under the
// cursor.
func NewCreateTaskOverlay(status domain.Status) *CreateTaskOverlay {
	if !status.Valid() {
		status = domain.StatusTodo
	}

	ti := textinput.New()
	ti.Placeholder = "Task title..."
	ti.Focus()
	ti.CharLimit = domain.TitleMaxLen + 20
	ti.Width = formWidth

	ta := textarea.New()
	ta.Placeholder = "What needs doing..."
	ta.CharLimit = domain.DescriptionMaxLen + 50
	ta.ShowLineNumbers = false
	ta.SetWidth(formWidth)
	ta.SetHeight(4)

	return &CreateTaskOverlay{
		title:       ti,
		description: ta,
		status:      status,
		styles:      New(),
	}
}

// Init initializes the overlay
func (c *CreateTaskOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (c *CreateTaskOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return c, closeCmd

		case "ctrl+s":
			return c, c.submit()

		case "tab":
			c.setFocus((c.focusIndex + 1) % focusCount)
			return c, nil

		case "shift+tab":
			c.setFocus((c.focusIndex - 1 + focusCount) % focusCount)
			return c, nil

		case "enter":
			switch c.focusIndex {
			case focusTitle, focusStatus:
				c.setFocus(c.focusIndex + 1)
				return c, nil
			case focusSubmit:
				return c, c.submit()
			}
			// The description takes enter as a newline
		}

		if c.focusIndex == focusStatus {
			switch key.String() {
			case "left", "h":
				c.status = cycleStatus(c.status, -1)
			case "right", "l", " ":
				c.status = cycleStatus(c.status, 1)
			}
			return c, nil
		}
	}

	var cmd tea.Cmd
	switch c.focusIndex {
	case focusTitle:
		c.title, cmd = c.title.Update(msg)
	case focusDescription:
		c.description, cmd = c.description.Update(msg)
	}

	// Once a submit has failed, errors track the input live
	if c.attempted {
		c.validate()
	}
	return c, cmd
}

func (c *CreateTaskOverlay) setFocus(i int) {
	c.focusIndex = i
	c.title.Blur()
	c.description.Blur()
	switch i {
	case focusTitle:
		c.title.Focus()
	case focusDescription:
		c.description.Focus()
	}
}

func cycleStatus(s domain.Status, delta int) domain.Status {
	n := len(domain.Statuses)
	return domain.Statuses[(s.Column()+delta+n)%n]
}

// Draft returns the form contents as a draft
func (c *CreateTaskOverlay) Draft() domain.Draft {
	return domain.Draft{
		Title:       c.title.Value(),
		Description: c.description.Value(),
		Status:      c.status,
	}.Normalize()
}

// validate refreshes the inline errors and reports whether the form is valid
func (c *CreateTaskOverlay) validate() bool {
	c.errs = nil
	err := c.Draft().Validate()
	if err == nil {
		return true
	}
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		c.errs = verrs
	}
	return false
}

// submit emits the draft and closes the overlay, or shows the errors
func (c *CreateTaskOverlay) submit() tea.Cmd {
	c.attempted = true
	if !c.validate() {
		switch {
		case c.errs.Field("title") != "":
			c.setFocus(focusTitle)
		case c.errs.Field("description") != "":
			c.setFocus(focusDescription)
		}
		return nil
	}
	return tea.Batch(emit(TaskDraftMsg{Draft: c.Draft()}), closeCmd)
}

// Errors returns the inline validation errors currently shown
func (c *CreateTaskOverlay) Errors() domain.ValidationErrors {
	return c.errs
}

func (c *CreateTaskOverlay) label(text string, index int) string {
	if c.focusIndex == index {
		return c.styles.FieldFocus.Render(text)
	}
	return c.styles.FieldLabel.Render(text)
}

func (c *CreateTaskOverlay) fieldError(name string) string {
	if msg := c.errs.Field(name); msg != "" {
		return c.styles.FieldError.Render("  " + msg)
	}
	return ""
}

// View renders the form
func (c *CreateTaskOverlay) View() string {
	var b strings.Builder

	b.WriteString(c.label("Title", focusTitle))
	b.WriteString("\n")
	b.WriteString(c.title.View())
	b.WriteString("\n")
	b.WriteString(c.fieldError("title"))
	b.WriteString("\n")

	b.WriteString(c.label("Description", focusDescription))
	b.WriteString("\n")
	b.WriteString(c.description.View())
	b.WriteString("\n")
	b.WriteString(c.fieldError("description"))
	b.WriteString("\n")

	b.WriteString(c.label("Status", focusStatus))
	b.WriteString("  ")
	b.WriteString(c.renderStatusSelector())
	b.WriteString("\n\n")

	b.WriteString(c.styles.Separator.Render(strings.Repeat("─", formWidth)))
	b.WriteString("\n")

	submitStyle := c.styles.MenuItem
	if c.focusIndex == focusSubmit {
		submitStyle = c.styles.MenuItemActive
	}
	b.WriteString(submitStyle.Render("[ Create Task ]"))
	b.WriteString("\n\n")

	hints := []string{
		c.styles.MenuKey.Render("Tab") + " " + c.styles.Footer.Render("Next field"),
		c.styles.MenuKey.Render("Ctrl+S") + " " + c.styles.Footer.Render("Submit"),
		c.styles.MenuKey.Render("Esc") + " " + c.styles.Footer.Render("Cancel"),
	}
	b.WriteString(strings.Join(hints, c.styles.Footer.Render(" • ")))

	return b.String()
}

// renderStatusSelector renders the status choices with the current one marked
func (c *CreateTaskOverlay) renderStatusSelector() string {
	parts := make([]string, 0, len(domain.Statuses))
	for _, s := range domain.Statuses {
		style := c.styles.MenuItem
		indicator := " "
		if s == c.status {
			style = c.styles.MenuItemActive
			indicator = "●"
		}
		parts = append(parts, style.Render("["+indicator+" "+s.Label()+"]"))
	}
	return strings.Join(parts, " ")
}

// Title returns the overlay title
func (c *CreateTaskOverlay) Title() string {
	return "New Task"
}

// Size returns the overlay dimensions
func (c *CreateTaskOverlay) Size() (width, height int) {
	return formWidth + 4, 20
}
