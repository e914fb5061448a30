package overlay

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riordanpawley/taskboard/internal/domain"
)

func TestLoginForm_Submit(t *testing.T) {
	f := NewLoginForm("")
	typeText(f, " alice ")
	press(f, "enter") // password is empty, so enter moves on
	assert.Equal(t, 1, f.focus)
	typeText(f, "secret1")

	msgs := collect(press(f, "enter"))
	got, ok := find[LoginSubmitMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, domain.Credentials{Username: "alice", Password: "secret1"}, got.Credentials)
}

func TestLoginForm_InlineValidation(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		password  string
		wantField string
		wantMsg   string
	}{
		{"empty username", "", "secret1", "username", "username is required"},
		{"short password", "alice", "12345", "password", "password must be at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewLoginForm("")
			typeText(f, tt.username)
			press(f, "tab")
			typeText(f, tt.password)

			assert.Nil(t, press(f, "enter"), "invalid form does not submit")
			assert.Equal(t, tt.wantMsg, f.Errors().Field(tt.wantField))
			assert.Contains(t, ansi.Strip(f.View()), tt.wantMsg)
		})
	}
}

func TestLoginForm_ErrorsClearAsYouType(t *testing.T) {
	f := NewLoginForm("alice")
	assert.Equal(t, 1, f.focus, "prefilled username focuses the password")
	typeText(f, "123")
	press(f, "enter")
	require.NotEmpty(t, f.Errors().Field("password"))

	typeText(f, "456")
	assert.Empty(t, f.Errors())
}

func TestLoginForm_BusyIgnoresSubmit(t *testing.T) {
	f := NewLoginForm("alice")
	typeText(f, "secret1")
	f.SetBusy(true)

	assert.Nil(t, press(f, "enter"))
	assert.Contains(t, ansi.Strip(f.View()), "Signing in...")
}

func TestLoginForm_ServerError(t *testing.T) {
	f := NewLoginForm("alice")
	f.SetError("Invalid username or password")
	assert.Contains(t, ansi.Strip(f.View()), "Invalid username or password")

	typeText(f, "x")
	assert.NotContains(t, ansi.Strip(f.View()), "Invalid username or password", "editing clears it")
}

func TestLoginForm_Switch(t *testing.T) {
	f := NewLoginForm("")
	_, ok := find[SwitchFormMsg](collect(press(f, "ctrl+r")))
	assert.True(t, ok)

	assert.Nil(t, press(f, "esc"), "esc does nothing on the login form")
}

func TestRegisterForm_Submit(t *testing.T) {
	f := NewRegisterForm()
	assert.Equal(t, RegisterForm, f.Kind())

	typeText(f, "bob")
	press(f, "tab")
	typeText(f, "bob@example.com")
	press(f, "tab")
	typeText(f, "hunter22")

	msgs := collect(press(f, "enter"))
	got, ok := find[RegisterSubmitMsg](msgs)
	require.True(t, ok)
	assert.Equal(t, domain.Registration{Username: "bob", Email: "bob@example.com", Password: "hunter22"}, got.Registration)
}

func TestRegisterForm_InvalidEmail(t *testing.T) {
	f := NewRegisterForm()
	typeText(f, "bob")
	press(f, "tab")
	typeText(f, "not-an-email")
	press(f, "tab")
	typeText(f, "hunter22")

	assert.Nil(t, press(f, "enter"))
	assert.Equal(t, "email is invalid", f.Errors().Field("email"))
	assert.Equal(t, 1, f.focus, "focus moves to the bad field")
}

func TestRegisterForm_EscGoesBack(t *testing.T) {
	f := NewRegisterForm()
	_, ok := find[SwitchFormMsg](collect(press(f, "esc")))
	assert.True(t, ok)
	assert.Equal(t, "Create account", f.Title())
}

func TestAuthForm_FocusWraps(t *testing.T) {
	f := NewRegisterForm()
	press(f, "shift+tab")
	assert.Equal(t, 2, f.focus)
	press(f, "down")
	assert.Equal(t, 0, f.focus)
}
