package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/riordanpawley/taskboard/internal/config"
	"github.com/riordanpawley/taskboard/internal/storage"
	"github.com/riordanpawley/taskboard/internal/store"
	"github.com/riordanpawley/taskboard/internal/transport"
	"github.com/riordanpawley/taskboard/internal/transport/mock"
)

// Dependencies holds everything a command needs
type Dependencies struct {
	Config  *config.Config
	Session *store.SessionStore
	Tasks   *store.TaskStore
	Logger  *slog.Logger
	Out     io.Writer

	closers []io.Closer
}

// NewDependencies opens the session database and wires the stores to the
// configured transport
func NewDependencies(cfg *config.Config, logger *slog.Logger, out io.Writer) (*Dependencies, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Session.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}
	db, err := storage.OpenSQLite(cfg.Session.DBPath)
	if err != nil {
		return nil, err
	}

	deps := Wire(cfg, db, logger, out)
	deps.closers = append(deps.closers, db)
	return deps, nil
}

// Wire builds the stores over kv. The session store is the token source of
// the transport it authenticates through, so the transport is attached
// after both exist.
func Wire(cfg *config.Config, kv storage.KV, logger *slog.Logger, out io.Writer) *Dependencies {
	session := store.NewSessionStore(nil, kv, logger)
	t := newTransport(cfg, session, logger)
	session.SetAuth(t)

	return &Dependencies{
		Config:  cfg,
		Session: session,
		Tasks:   store.NewTaskStore(t, logger),
		Logger:  logger,
		Out:     out,
	}
}

// newTransport picks the in-process mock or the HTTP client, once
func newTransport(cfg *config.Config, session *store.SessionStore, logger *slog.Logger) transport.Transport {
	if cfg.API.UseMock {
		logger.Debug("using mock api")
		return mock.NewTransport(mock.NewBackend(MockOptions(cfg), logger), session)
	}
	logger.Debug("using http api", "url", cfg.API.URL)
	return transport.NewHTTPClient(cfg.API.URL, session, cfg.Timeout(), logger)
}

// MockOptions maps the mock section of the config onto backend options
func MockOptions(cfg *config.Config) mock.Options {
	minLatency, maxLatency := cfg.LatencyRange()
	return mock.Options{
		MinLatency: minLatency,
		MaxLatency: maxLatency,
		TokenTTL:   cfg.TokenTTL(),
		Secret:     []byte(cfg.Mock.Secret),
	}
}

// Close releases the session database
func (d *Dependencies) Close() error {
	var first error
	for _, c := range d.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
