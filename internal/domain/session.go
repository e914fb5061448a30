package domain

import "strings"

// User is the identity stored alongside the token
type User struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Credentials are submitted by the login form
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// PasswordMinLen is enforced by the login and register forms
const PasswordMinLen = 6

// Validate applies the form-layer rules. The session store itself does not
// call this.
func (c Credentials) Validate() error {
	errs := ValidationErrors{}
	if strings.TrimSpace(c.Username) == "" {
		errs["username"] = "username is required"
	}
	if len(c.Password) < PasswordMinLen {
		errs["password"] = "password must be at least 6 characters"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Registration is the payload for creating an account
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate applies the register form rules
func (r Registration) Validate() error {
	errs := ValidationErrors{}
	if strings.TrimSpace(r.Username) == "" {
		errs["username"] = "username is required"
	}
	if email := strings.TrimSpace(r.Email); email == "" {
		errs["email"] = "email is required"
	} else if at := strings.Index(email, "@"); at <= 0 || at == len(email)-1 {
		errs["email"] = "email is invalid"
	}
	if len(r.Password) < PasswordMinLen {
		errs["password"] = "password must be at least 6 characters"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Credentials returns the login pair for auto-login after registering
func (r Registration) Credentials() Credentials {
	return Credentials{Username: r.Username, Password: r.Password}
}

// LoginResponse is the body of a successful login
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

// User extracts the identity part of the response
func (r LoginResponse) User() User {
	return User{UserID: r.UserID, Username: r.Username, Email: r.Email}
}
