package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/store"
)

// ErrNotSignedIn is returned by task commands without a stored session
var ErrNotSignedIn = errors.New("not signed in (run 'taskboard login')")

// failure pairs the message a user should read with the underlying error
func failure(err error, fallback string) error {
	return fmt.Errorf("%s: %w", domain.Message(err, fallback), err)
}

// requireSession restores the persisted session or fails
func requireSession(deps *Dependencies) error {
	if !deps.Session.CheckAuth() {
		return ErrNotSignedIn
	}
	return nil
}

// LoginCommand signs in and persists the session
func LoginCommand(ctx context.Context, deps *Dependencies, creds domain.Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}
	deps.Logger.Info("logging in", "username", creds.Username)

	if err := deps.Session.Do(ctx, deps.Session.Login(creds)); err != nil {
		return failure(err, store.MsgLoginFailed)
	}
	user, _ := deps.Session.User()
	fmt.Fprintf(deps.Out, "✓ Signed in as %s\n", user.Username)
	return nil
}

// RegisterCommand creates an account and signs in with it
func RegisterCommand(ctx context.Context, deps *Dependencies, reg domain.Registration) error {
	if err := reg.Validate(); err != nil {
		return err
	}
	deps.Logger.Info("registering", "username", reg.Username)

	if err := deps.Session.Do(ctx, deps.Session.Register(reg)); err != nil {
		return failure(err, store.MsgRegistrationFailed)
	}
	fmt.Fprintf(deps.Out, "✓ Account created, signed in as %s\n", reg.Username)
	return nil
}

// LogoutCommand forgets the stored session. It never contacts the server.
func LogoutCommand(deps *Dependencies) error {
	if !deps.Session.CheckAuth() {
		fmt.Fprintln(deps.Out, "Not signed in")
		return nil
	}
	if err := deps.Session.Logout(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	fmt.Fprintln(deps.Out, "✓ Signed out")
	return nil
}

// WhoamiCommand prints the stored identity and when its token lapses
func WhoamiCommand(deps *Dependencies, now time.Time) error {
	if err := requireSession(deps); err != nil {
		return err
	}
	user, _ := deps.Session.User()

	w := tabwriter.NewWriter(deps.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Username:\t%s\n", user.Username)
	fmt.Fprintf(w, "Email:\t%s\n", user.Email)
	fmt.Fprintf(w, "User ID:\t%s\n", user.UserID)
	if exp, ok := TokenExpiry(deps.Session.RawToken()); ok {
		if exp.After(now) {
			fmt.Fprintf(w, "Token:\texpires in %s\n", exp.Sub(now).Round(time.Second))
		} else {
			fmt.Fprintf(w, "Token:\texpired %s ago\n", now.Sub(exp).Round(time.Second))
		}
	}
	return w.Flush()
}

// TokenExpiry reads the exp claim without verifying the signature. The
// server remains the authority; this only informs the user.
func TokenExpiry(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// fetch loads the task list for the current session
func fetch(ctx context.Context, deps *Dependencies) ([]domain.Task, error) {
	if err := requireSession(deps); err != nil {
		return nil, err
	}
	if err := deps.Tasks.Do(ctx, deps.Tasks.FetchTasks()); err != nil {
		return nil, sessionFailure(deps, err, store.MsgFetchFailed)
	}
	return deps.Tasks.Tasks(), nil
}

// sessionFailure clears the stored session when the server rejected it
func sessionFailure(deps *Dependencies, err error, fallback string) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		deps.Session.Invalidate()
		return fmt.Errorf("session expired, sign in again: %w", err)
	}
	return failure(err, fallback)
}

// ListCommand prints the tasks passing filter
func ListCommand(ctx context.Context, deps *Dependencies, filter domain.Filter) error {
	tasks, err := fetch(ctx, deps)
	if err != nil {
		return err
	}

	visible := filter.Apply(tasks)
	if len(visible) == 0 {
		if filter.IsActive() {
			fmt.Fprintln(deps.Out, "No tasks match the filter")
		} else {
			fmt.Fprintln(deps.Out, "No tasks")
		}
		return nil
	}

	w := tabwriter.NewWriter(deps.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTITLE")
	fmt.Fprintln(w, "--\t------\t-----")
	for _, task := range visible {
		title := task.Title
		if len(title) > 60 {
			title = title[:57] + "..."
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", task.ID, task.Status, title)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if filter.IsActive() {
		fmt.Fprintf(deps.Out, "\n%d of %d tasks\n", len(visible), len(tasks))
	}
	return nil
}

// AddCommand creates a task
func AddCommand(ctx context.Context, deps *Dependencies, draft domain.Draft) error {
	if err := requireSession(deps); err != nil {
		return err
	}
	draft = draft.Normalize()
	if err := draft.Validate(); err != nil {
		return err
	}

	if err := deps.Tasks.Do(ctx, deps.Tasks.CreateTask(draft)); err != nil {
		return sessionFailure(deps, err, store.MsgCreateFailed)
	}
	tasks := deps.Tasks.Tasks()
	created := tasks[len(tasks)-1]
	fmt.Fprintf(deps.Out, "✓ Created %s: %s [%s]\n", created.ID, created.Title, created.Status.Label())
	return nil
}

// MoveCommand changes a task's status
func MoveCommand(ctx context.Context, deps *Dependencies, id string, status domain.Status) error {
	if err := requireSession(deps); err != nil {
		return err
	}
	req, err := deps.Tasks.UpdateTaskStatus(id, status)
	if err != nil {
		return err
	}
	if err := deps.Tasks.Do(ctx, req); err != nil {
		return sessionFailure(deps, err, store.MsgUpdateFailed)
	}
	fmt.Fprintf(deps.Out, "✓ Moved %s to %s\n", id, status.Label())
	return nil
}

// RemoveCommand deletes a task
func RemoveCommand(ctx context.Context, deps *Dependencies, id string) error {
	if err := requireSession(deps); err != nil {
		return err
	}
	if err := deps.Tasks.Do(ctx, deps.Tasks.DeleteTask(id)); err != nil {
		return sessionFailure(deps, err, store.MsgDeleteFailed)
	}
	fmt.Fprintf(deps.Out, "✓ Deleted %s\n", id)
	return nil
}

// StatsCommand prints the per-status counts and completion ratio
func StatsCommand(ctx context.Context, deps *Dependencies) error {
	tasks, err := fetch(ctx, deps)
	if err != nil {
		return err
	}
	stats := domain.ComputeStats(tasks)

	w := tabwriter.NewWriter(deps.Out, 0, 0, 2, ' ', 0)
	for _, status := range domain.Statuses {
		fmt.Fprintf(w, "%s\t%d\n", status.Label(), stats.Count(status))
	}
	fmt.Fprintf(w, "Total\t%d\n", stats.Total)
	fmt.Fprintf(w, "Completion\t%.0f%%\n", stats.CompletionRatio()*100)
	return w.Flush()
}
