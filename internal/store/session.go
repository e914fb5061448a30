package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/oauth2"

	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/storage"
	"github.com/riordanpawley/taskboard/internal/transport"
)

// Fallback messages when the server gives none
const (
	MsgLoginFailed        = "Login failed"
	MsgRegistrationFailed = "Registration failed"
)

// LoginFulfilled carries a successful login
type LoginFulfilled struct {
	Seq      uint64
	Response domain.LoginResponse
}

// LoginRejected carries a failed login
type LoginRejected struct {
	Seq uint64
	Err error
}

// RegisterRejected carries a failed registration. A registration that
// succeeds logs in straight away and resolves as LoginFulfilled or
// LoginRejected.
type RegisterRejected struct {
	Seq uint64
	Err error
}

func (LoginFulfilled) action()   {}
func (LoginRejected) action()    {}
func (RegisterRejected) action() {}

// SessionStore holds the signed-in identity and its token, persisted in a
// KV store between runs. It is safe for concurrent use: the transport reads
// the token from other goroutines through Token.
type SessionStore struct {
	auth   transport.AuthTransport
	kv     storage.KV
	logger *slog.Logger

	mu      sync.RWMutex
	token   string
	user    *domain.User
	err     string
	seq     uint64
	pending uint64 // seq of the in-flight login, 0 when idle
}

var _ oauth2.TokenSource = (*SessionStore)(nil)

// NewSessionStore creates an unauthenticated session store
func NewSessionStore(auth transport.AuthTransport, kv storage.KV, logger *slog.Logger) *SessionStore {
	return &SessionStore{auth: auth, kv: kv, logger: logger}
}

// SetAuth replaces the auth transport. Used at startup when the transport
// itself needs the store as its token source.
func (s *SessionStore) SetAuth(auth transport.AuthTransport) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = auth
}

// Login starts a login. Only the most recent login or registration can
// change the session when it resolves.
func (s *SessionStore) Login(creds domain.Credentials) Request {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.pending = seq
	s.err = ""
	auth := s.auth
	s.mu.Unlock()

	s.logger.Debug("login issued", "seq", seq, "username", creds.Username)

	return Request{Op: OpLogin, Seq: seq, run: func(ctx context.Context) Action {
		resp, err := auth.Login(ctx, creds)
		if err != nil {
			return LoginRejected{Seq: seq, Err: err}
		}
		return LoginFulfilled{Seq: seq, Response: resp}
	}}
}

// Register creates an account and then logs in with the same credentials
func (s *SessionStore) Register(reg domain.Registration) Request {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.pending = seq
	s.err = ""
	auth := s.auth
	s.mu.Unlock()

	s.logger.Debug("registration issued", "seq", seq, "username", reg.Username)

	return Request{Op: OpRegister, Seq: seq, run: func(ctx context.Context) Action {
		if err := auth.Register(ctx, reg); err != nil {
			return RegisterRejected{Seq: seq, Err: err}
		}
		resp, err := auth.Login(ctx, reg.Credentials())
		if err != nil {
			return LoginRejected{Seq: seq, Err: err}
		}
		return LoginFulfilled{Seq: seq, Response: resp}
	}}
}

// Dispatch applies a session action and returns the error it carried, if
// any. Superseded results are dropped without changing state.
func (s *SessionStore) Dispatch(a Action) error {
	switch a := a.(type) {
	case LoginFulfilled:
		if !s.settle(a.Seq) {
			s.logger.Debug("stale login result discarded", "seq", a.Seq)
			return nil
		}
		s.establish(a.Response)
		return nil

	case LoginRejected:
		if !s.settle(a.Seq) {
			return a.Err
		}
		s.fail(domain.Message(a.Err, MsgLoginFailed))
		s.logger.Warn("login failed", "error", a.Err)
		return a.Err

	case RegisterRejected:
		if !s.settle(a.Seq) {
			return a.Err
		}
		s.fail(domain.Message(a.Err, MsgRegistrationFailed))
		s.logger.Warn("registration failed", "error", a.Err)
		return a.Err
	}
	return nil
}

// Do runs a request and dispatches its result synchronously
func (s *SessionStore) Do(ctx context.Context, req Request) error {
	if req.Empty() {
		return nil
	}
	return s.Dispatch(req.Run(ctx))
}

// settle reports whether seq is still the current login and, if so,
// marks it resolved
func (s *SessionStore) settle(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return false
	}
	s.pending = 0
	return true
}

func (s *SessionStore) fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.err = msg
}

func (s *SessionStore) establish(resp domain.LoginResponse) {
	user := resp.User()

	s.mu.Lock()
	s.token = resp.Token
	s.user = &user
	s.err = ""
	s.mu.Unlock()

	if err := s.persist(resp.Token, user); err != nil {
		s.logger.Warn("session not persisted", "error", err)
	}
	s.logger.Info("logged in", "user_id", user.UserID, "username", user.Username)
}

func (s *SessionStore) persist(token string, user domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := s.kv.Set(storage.KeyToken, token); err != nil {
		return err
	}
	return s.kv.Set(storage.KeyUser, string(data))
}

// CheckAuth restores a persisted session. Incomplete or unreadable data is
// cleared and the store stays signed out.
func (s *SessionStore) CheckAuth() bool {
	token, user, err := s.load()
	if err != nil {
		s.logger.Debug("no session restored", "reason", err)
		s.clear()
		return false
	}

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()

	s.logger.Debug("session restored", "user_id", user.UserID)
	return true
}

var errNoSession = errors.New("no persisted session")

func (s *SessionStore) load() (string, domain.User, error) {
	token, ok, err := s.kv.Get(storage.KeyToken)
	if err != nil {
		return "", domain.User{}, err
	}
	raw, userOK, err := s.kv.Get(storage.KeyUser)
	if err != nil {
		return "", domain.User{}, err
	}
	if !ok || !userOK || token == "" {
		return "", domain.User{}, errNoSession
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return "", domain.User{}, fmt.Errorf("decode user: %w", err)
	}
	return token, user, nil
}

// Logout ends the session locally. It never contacts the server.
func (s *SessionStore) Logout() error {
	s.logger.Info("logging out")
	return s.clear()
}

// Invalidate ends the session after the server rejected its token
func (s *SessionStore) Invalidate() {
	s.logger.Warn("session invalidated by server")
	_ = s.clear()
}

// clear drops the session in memory and on disk. In-flight logins are
// superseded so they cannot resurrect it.
func (s *SessionStore) clear() error {
	s.mu.Lock()
	s.seq++
	s.pending = 0
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.kv.Delete(storage.KeyToken, storage.KeyUser); err != nil {
		s.logger.Warn("failed to clear persisted session", "error", err)
		return err
	}
	return nil
}

// Token implements oauth2.TokenSource. It fails with an error matching
// domain.ErrUnauthorized when signed out.
func (s *SessionStore) Token() (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return nil, fmt.Errorf("no session token: %w", domain.ErrUnauthorized)
	}
	return &oauth2.Token{AccessToken: s.token, TokenType: "Bearer"}, nil
}

// IsAuthenticated is true iff both a token and a user are held
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// User returns the signed-in identity
func (s *SessionStore) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// RawToken returns the bearer token, or ""
func (s *SessionStore) RawToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Loading reports whether a login or registration is in flight
func (s *SessionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending != 0
}

func (s *SessionStore) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *SessionStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}
