package overlay

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/taskboard/internal/domain"
)

// LoginSubmitMsg is emitted by a valid login form
type LoginSubmitMsg struct {
	Credentials domain.Credentials
}

// RegisterSubmitMsg is emitted by a valid register form
type RegisterSubmitMsg struct {
	Registration domain.Registration
}

// SwitchFormMsg asks the app to swap between the login and register views
type SwitchFormMsg struct{}

// FormKind distinguishes the two auth forms
type FormKind int

const (
	LoginForm FormKind = iota
	RegisterForm
)

type formField struct {
	key   string
	label string
	input textinput.Model
}

// AuthForm is the login or register form. Validation runs on submit and
// then live on every edit; the app supplies busy state and server errors.
type AuthForm struct {
	kind      FormKind
	fields    []formField
	focus     int
	errs      domain.ValidationErrors
	attempted bool
	busy      bool
	serverErr string
	styles    *Styles
}

const authWidth = 44

func newField(key, label, placeholder string, secret bool) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 128
	ti.Width = authWidth - 4
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return formField{key: key, label: label, input: ti}
}

// NewLoginForm creates the sign-in form
func NewLoginForm(username string) *AuthForm {
	f := &AuthForm{
		kind: LoginForm,
		fields: []formField{
			newField("username", "Username", "username", false),
			newField("password", "Password", "at least 6 characters", true),
		},
		styles: New(),
	}
	f.fields[0].input.SetValue(username)
	if username != "" {
		f.focus = 1
	}
	f.fields[f.focus].input.Focus()
	return f
}

// NewRegisterForm creates the account creation form
func NewRegisterForm() *AuthForm {
	f := &AuthForm{
		kind: RegisterForm,
		fields: []formField{
			newField("username", "Username", "username", false),
			newField("email", "Email", "you@example.com", false),
			newField("password", "Password", "at least 6 characters", true),
		},
		styles: New(),
	}
	f.fields[0].input.Focus()
	return f
}

// Kind returns which form this is
func (f *AuthForm) Kind() FormKind {
	return f.kind
}

// SetBusy marks a request in flight; submits are ignored meanwhile
func (f *AuthForm) SetBusy(busy bool) {
	f.busy = busy
}

// SetError shows a server-side failure under the form
func (f *AuthForm) SetError(msg string) {
	f.serverErr = msg
}

// Errors returns the inline validation errors currently shown
func (f *AuthForm) Errors() domain.ValidationErrors {
	return f.errs
}

func (f *AuthForm) value(key string) string {
	for _, field := range f.fields {
		if field.key == key {
			return field.input.Value()
		}
	}
	return ""
}

func (f *AuthForm) credentials() domain.Credentials {
	return domain.Credentials{
		Username: strings.TrimSpace(f.value("username")),
		Password: f.value("password"),
	}
}

func (f *AuthForm) registration() domain.Registration {
	return domain.Registration{
		Username: strings.TrimSpace(f.value("username")),
		Email:    strings.TrimSpace(f.value("email")),
		Password: f.value("password"),
	}
}

// validate refreshes the inline errors and reports whether the form is valid
func (f *AuthForm) validate() bool {
	var err error
	if f.kind == RegisterForm {
		err = f.registration().Validate()
	} else {
		err = f.credentials().Validate()
	}
	f.errs = nil
	if err == nil {
		return true
	}
	var verrs domain.ValidationErrors
	if errors.As(err, &verrs) {
		f.errs = verrs
	}
	return false
}

func (f *AuthForm) setFocus(i int) {
	f.fields[f.focus].input.Blur()
	f.focus = (i + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

func (f *AuthForm) submit() tea.Cmd {
	if f.busy {
		return nil
	}
	f.attempted = true
	if !f.validate() {
		for i, field := range f.fields {
			if f.errs.Field(field.key) != "" {
				f.setFocus(i)
				break
			}
		}
		return nil
	}

	f.serverErr = ""
	if f.kind == RegisterForm {
		return emit(RegisterSubmitMsg{Registration: f.registration()})
	}
	return emit(LoginSubmitMsg{Credentials: f.credentials()})
}

// Init starts the cursor blinking
func (f *AuthForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *AuthForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.setFocus(f.focus + 1)
			return f, nil
		case "shift+tab", "up":
			f.setFocus(f.focus - 1)
			return f, nil
		case "enter":
			if f.focus < len(f.fields)-1 && f.value(f.fields[f.focus+1].key) == "" {
				f.setFocus(f.focus + 1)
				return f, nil
			}
			return f, f.submit()
		case "ctrl+r":
			return f, emit(SwitchFormMsg{})
		case "esc":
			if f.kind == RegisterForm {
				return f, emit(SwitchFormMsg{})
			}
			return f, nil
		}
	}

	var cmd tea.Cmd
	field := &f.fields[f.focus]
	prev := field.input.Value()
	field.input, cmd = field.input.Update(msg)
	if field.input.Value() != prev {
		f.serverErr = ""
		if f.attempted {
			f.validate()
		}
	}
	return f, cmd
}

// View renders the form
func (f *AuthForm) View() string {
	var b strings.Builder

	for i, field := range f.fields {
		label := f.styles.FieldLabel
		if i == f.focus {
			label = f.styles.FieldFocus
		}
		b.WriteString(label.Render(field.label))
		b.WriteString("\n")
		b.WriteString(field.input.View())
		b.WriteString("\n")
		if msg := f.errs.Field(field.key); msg != "" {
			b.WriteString(f.styles.FieldError.Render("  " + msg))
		}
		b.WriteString("\n")
	}

	switch {
	case f.busy && f.kind == RegisterForm:
		b.WriteString(f.styles.Footer.Render("Creating account..."))
	case f.busy:
		b.WriteString(f.styles.Footer.Render("Signing in..."))
	case f.serverErr != "":
		b.WriteString(f.styles.FormError.Render(f.serverErr))
	}
	b.WriteString("\n\n")

	action, other := "Sign in", "Create account"
	if f.kind == RegisterForm {
		action, other = "Register", "Back to sign in"
	}
	hints := []string{
		f.styles.MenuKey.Render("Enter") + " " + f.styles.Footer.Render(action),
		f.styles.MenuKey.Render("Ctrl+R") + " " + f.styles.Footer.Render(other),
	}
	b.WriteString(strings.Join(hints, f.styles.Footer.Render(" • ")))

	return b.String()
}

// Title returns the form heading
func (f *AuthForm) Title() string {
	if f.kind == RegisterForm {
		return "Create account"
	}
	return "Sign in to taskboard"
}

// Size returns the form dimensions
func (f *AuthForm) Size() (width, height int) {
	return authWidth, len(f.fields)*3 + 6
}
