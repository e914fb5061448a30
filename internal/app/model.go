// Package app is the root bubbletea model. It owns no task or session data
// itself: intents go to the stores, their requests run as commands, and the
// resulting actions come back through Update to be dispatched.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/taskboard/internal/config"
	"github.com/riordanpawley/taskboard/internal/dnd"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/services/editor"
	"github.com/riordanpawley/taskboard/internal/services/navigation"
	"github.com/riordanpawley/taskboard/internal/services/network"
	"github.com/riordanpawley/taskboard/internal/store"
	"github.com/riordanpawley/taskboard/internal/types"
	"github.com/riordanpawley/taskboard/internal/ui/board"
	"github.com/riordanpawley/taskboard/internal/ui/overlay"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// Type aliases for convenience
type Mode = types.Mode

type Toast = types.Toast
type ToastLevel = types.ToastLevel

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

// toastTick is how often expired toasts are pruned
const toastTick = 500 * time.Millisecond

// Model is the application state
type Model struct {
	// Stores
	session *store.SessionStore
	tasks   *store.TaskStore

	// Navigation (using NavigationService)
	nav *navigation.Service

	// Editor state (mode, filter)
	editor *editor.Service

	// Drag gesture, shared by mouse and keyboard
	drag     *dnd.Machine
	dragOver int
	pointer  bool // the gesture started with a mouse press

	// UI state
	overlayStack *overlay.Stack
	authForm     *overlay.AuthForm
	view         types.View
	taskView     types.View // board or list, restored when leaving the dashboard
	listSel      string     // task id under the list cursor

	// epoch advances whenever the session ends, so results of requests
	// issued under an earlier session cannot end the current one
	epoch uint64

	// API reachability, nil with the in-process mock
	probe   *network.StatusChecker
	offline bool

	// Toasts
	toasts []Toast

	// Terminal size
	width  int
	height int

	// Styles
	styles        *styles.Styles
	overlayStyles *overlay.Styles

	// Configuration
	config *config.Config

	spinner spinner.Model
	logger  *slog.Logger
	now     func() time.Time
}

// New creates the application model and restores a persisted session.
// Authenticated sessions start on the configured task view, all others on
// the login form.
func New(cfg *config.Config, session *store.SessionStore, tasks *store.TaskStore, logger *slog.Logger) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	m := Model{
		session:       session,
		tasks:         tasks,
		nav:           navigation.NewService(),
		editor:        editor.NewService(),
		drag:          dnd.New(cfg.UI.DragThreshold),
		dragOver:      -1,
		overlayStack:  overlay.NewStack(),
		taskView:      types.ParseView(cfg.UI.DefaultView),
		toasts:        []Toast{},
		styles:        styles.New(),
		overlayStyles: overlay.New(),
		config:        cfg,
		spinner:       s,
		logger:        logger,
		now:           time.Now,
	}
	if m.taskView == types.ViewDashboard {
		m.taskView = types.ViewBoard
	}
	if !cfg.API.UseMock {
		m.probe = network.NewStatusChecker(cfg.API.URL, cfg.Timeout())
	}

	if session.CheckAuth() {
		m.view = m.taskView
	} else {
		m.showAuth(types.ViewLogin, "")
	}
	return m
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, tickEvery(toastTick)}
	if m.probe != nil {
		cmds = append(cmds, m.probe.CheckCmd())
	}
	if m.view.Authenticated() {
		cmds = append(cmds, m.run(m.tasks.FetchTasks()))
	} else if m.authForm != nil {
		cmds = append(cmds, m.authForm.Init())
	}
	return tea.Batch(cmds...)
}

// actionMsg carries a finished store request back into the update loop
type actionMsg struct {
	op     store.Op
	epoch  uint64
	action store.Action
}

type tickMsg time.Time

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// run turns an issued request into a command performing its transport call
// under the configured deadline
func (m Model) run(req store.Request) tea.Cmd {
	if req.Empty() {
		return nil
	}
	timeout := m.config.Timeout()
	epoch := m.epoch
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return actionMsg{op: req.Op, epoch: epoch, action: req.Run(ctx)}
	}
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		m.expireToasts()
		return m, tickEvery(toastTick)

	case actionMsg:
		return m.handleAction(msg)

	case network.StatusMsg:
		if m.offline == msg.Online {
			m.logger.Info("api reachability changed", "online", msg.Online)
		}
		m.offline = !msg.Online
		if m.probe == nil {
			return m, nil
		}
		return m, m.probe.PollCmd(network.DefaultInterval)

	case network.PollMsg:
		if m.probe == nil {
			return m, nil
		}
		return m, m.probe.CheckCmd()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.view.Authenticated() {
			return m.updateAuthForm(msg)
		}
		if !m.overlayStack.IsEmpty() {
			return m.handleOverlayKey(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.view.Authenticated() && m.overlayStack.IsEmpty() {
			return m.handleMouse(msg)
		}
		return m, nil

	// Auth form messages
	case overlay.LoginSubmitMsg:
		if m.authForm == nil {
			return m, nil
		}
		m.authForm.SetBusy(true)
		return m, m.run(m.session.Login(msg.Credentials))

	case overlay.RegisterSubmitMsg:
		if m.authForm == nil {
			return m, nil
		}
		m.authForm.SetBusy(true)
		return m, m.run(m.session.Register(msg.Registration))

	case overlay.SwitchFormMsg:
		if m.view.Authenticated() {
			return m, nil
		}
		if m.view == types.ViewLogin {
			return m, m.showAuth(types.ViewRegister, "")
		}
		return m, m.showAuth(types.ViewLogin, "")

	// Overlay messages
	case overlay.CloseOverlayMsg:
		m.closeOverlay()
		return m, nil

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case overlay.SearchMsg:
		m.editor.SetSearchQuery(msg.Query)
		m.updateMatchCount()
		return m, nil

	case overlay.TaskDraftMsg:
		return m, m.run(m.tasks.CreateTask(msg.Draft))
	}

	// Everything else (cursor blinks, debounce timers) belongs to whatever
	// has focus
	if !m.view.Authenticated() {
		return m.updateAuthForm(msg)
	}
	return m, m.overlayStack.Update(msg)
}

func (m Model) updateAuthForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.authForm == nil {
		return m, nil
	}
	_, cmd := m.authForm.Update(msg)
	return m, cmd
}

// showAuth switches to the login or register form
func (m *Model) showAuth(view types.View, username string) tea.Cmd {
	m.view = view
	if view == types.ViewRegister {
		m.authForm = overlay.NewRegisterForm()
	} else {
		m.authForm = overlay.NewLoginForm(username)
	}
	return m.authForm.Init()
}

// enterTasks shows the task views for a fresh session and loads its tasks
func (m *Model) enterTasks() tea.Cmd {
	m.view = m.taskView
	m.authForm = nil
	m.nav.Reset()
	m.listSel = ""
	return m.run(m.tasks.FetchTasks())
}

// handleAction dispatches a finished request to the store that issued it
func (m Model) handleAction(msg actionMsg) (tea.Model, tea.Cmd) {
	switch msg.op {
	case store.OpLogin, store.OpRegister:
		return m.handleSessionAction(msg)
	}

	err := m.tasks.Dispatch(msg.action)
	if errors.Is(err, domain.ErrUnauthorized) && msg.epoch == m.epoch {
		return m, m.expireSession()
	}

	if text := m.tasks.Error(); text != "" {
		m.addToast(ToastError, text)
		m.tasks.ClearError()
		return m, nil
	}
	if err != nil {
		return m, nil
	}

	switch msg.op {
	case store.OpCreate:
		if a, ok := msg.action.(store.CreateFulfilled); ok {
			m.nav.SelectTask(a.Task.ID, a.Task.Status.Column())
			m.listSel = a.Task.ID
		}
		m.addToast(ToastSuccess, "Task created")
	case store.OpDelete:
		m.addToast(ToastSuccess, "Task deleted")
	case store.OpUpdateStatus:
		if a, ok := msg.action.(store.UpdateFulfilled); ok {
			m.addToast(ToastSuccess, fmt.Sprintf("Moved to %s", a.Task.Status.Label()))
		}
	}
	m.updateMatchCount()
	return m, nil
}

func (m Model) handleSessionAction(msg actionMsg) (tea.Model, tea.Cmd) {
	wasAuthenticated := m.view.Authenticated()
	err := m.session.Dispatch(msg.action)

	if m.authForm != nil && !m.session.Loading() {
		m.authForm.SetBusy(false)
	}

	if err != nil {
		if text := m.session.Error(); text != "" {
			if m.authForm != nil {
				m.authForm.SetError(text)
			}
			m.session.ClearError()
		}
		return m, nil
	}

	if m.session.IsAuthenticated() && !wasAuthenticated {
		if user, ok := m.session.User(); ok {
			m.addToast(ToastSuccess, fmt.Sprintf("Signed in as %s", user.Username))
		}
		return m, m.enterTasks()
	}
	return m, nil
}

// expireSession is the unauthorized path: the session and every trace of
// its tasks go, and the login form comes back whatever view was showing
func (m *Model) expireSession() tea.Cmd {
	username := ""
	if user, ok := m.session.User(); ok {
		username = user.Username
	}
	m.logger.Warn("session rejected by server", "username", username)

	m.session.Invalidate()
	m.endSession()
	m.addToast(ToastWarning, "Session expired, please sign in again")
	return m.showAuth(types.ViewLogin, username)
}

// logout ends the session at the user's request
func (m *Model) logout() tea.Cmd {
	if err := m.session.Logout(); err != nil {
		m.logger.Warn("logout did not clear storage", "error", err)
	}
	m.endSession()
	m.addToast(ToastInfo, "Signed out")
	return m.showAuth(types.ViewLogin, "")
}

func (m *Model) endSession() {
	m.epoch++
	m.tasks.Reset()
	m.drag.Cancel()
	m.dragOver = -1
	m.pointer = false
	m.overlayStack.Clear()
	m.editor.EnterNormal()
	m.editor.ClearFilters()
	m.nav.Reset()
	m.listSel = ""
}

func (m *Model) closeOverlay() {
	m.overlayStack.Pop()
	if m.overlayStack.IsEmpty() && m.editor.IsSearch() {
		m.editor.EnterNormal()
	}
}

func (m *Model) updateMatchCount() {
	if search, ok := m.overlayStack.Current().(*overlay.SearchOverlay); ok {
		search.SetMatchCount(len(m.visibleTasks()))
	}
}

// visibleTasks is the filtered subset in store order
func (m Model) visibleTasks() []domain.Task {
	return m.editor.ApplyFilter(m.tasks.Tasks())
}

// columns builds the board columns from the visible tasks
func (m Model) columns() []board.Column {
	return board.BuildColumns(m.visibleTasks())
}

// busy reports whether any request is in flight
func (m Model) busy() bool {
	return m.tasks.Loading() || m.session.Loading()
}

// addToast adds a toast notification to the list
func (m *Model) addToast(level ToastLevel, message string) {
	ttl := time.Duration(m.config.UI.InfoToastSeconds) * time.Second
	if level == ToastError {
		ttl = time.Duration(m.config.UI.ErrorToastSeconds) * time.Second
	}
	m.toasts = append(m.toasts, types.NewToast(level, message, m.now(), ttl))
}

// expireToasts removes expired toasts from the list
func (m *Model) expireToasts() {
	m.toasts = types.PruneToasts(m.toasts, m.now())
}
