// Package cli wires configuration, storage and transports into the cobra
// command tree. Every command, the TUI included, drives the same stores.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riordanpawley/taskboard/internal/config"
)

// options are the persistent flags shared by every command
type options struct {
	debug  bool
	mock   bool
	apiURL string
}

// NewRootCmd builds the command tree. Running it without a subcommand
// starts the TUI.
func NewRootCmd(version string) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "taskboard",
		Short: "Terminal task board",
		Long: `taskboard is a terminal client for a task API.

Run without arguments for the interactive board, or use the subcommands
for scripting. Set TASKBOARD_USE_MOCK_API=true (or pass --mock) to work
against the built-in mock API.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&opts.mock, "mock", false, "Use the in-process mock API")
	root.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "Task API base URL")

	root.AddCommand(
		newTUICmd(opts),
		newLoginCmd(opts),
		newRegisterCmd(opts),
		newLogoutCmd(opts),
		newWhoamiCmd(opts),
		newTasksCmd(opts),
		newStatsCmd(opts),
		newMockServerCmd(opts),
	)
	return root
}

// Execute runs the root command
func Execute(version string) error {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

// loadConfig reads config and applies flag overrides
func (o *options) loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if o.mock {
		cfg.API.UseMock = true
	}
	if o.apiURL != "" {
		cfg.API.URL = o.apiURL
	}
	return cfg, nil
}

// stderrLogger is the logger for one-shot commands
func (o *options) stderrLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// fileLogger sends logs to the configured file, since the TUI owns the
// terminal
func (o *options) fileLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	level := cfg.LogLevel()
	if o.debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}

// withDeps loads config, opens storage and runs fn with the result
func (o *options) withDeps(cmd *cobra.Command, fn func(ctx context.Context, deps *Dependencies) error) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	deps, err := NewDependencies(cfg, o.stderrLogger(cmd.ErrOrStderr()), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer deps.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout())
	defer cancel()
	return fn(ctx, deps)
}

// prompter asks for values missing from flags
type prompter struct {
	cmd *cobra.Command
	in  *bufio.Reader
}

func newPrompter(cmd *cobra.Command) *prompter {
	return &prompter{cmd: cmd, in: bufio.NewReader(cmd.InOrStdin())}
}

// value returns current when set, otherwise prompts on stderr and reads one
// trimmed line
func (p *prompter) value(current, label string) (string, error) {
	if current != "" {
		return current, nil
	}
	fmt.Fprintf(p.cmd.ErrOrStderr(), "%s: ", label)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimSpace(line), nil
}
