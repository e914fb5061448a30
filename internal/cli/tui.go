package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/riordanpawley/taskboard/internal/app"
	"github.com/riordanpawley/taskboard/internal/transport/mock"
)

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive board (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *options) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	logger, logFile, err := opts.fileLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	deps, err := NewDependencies(cfg, logger, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer deps.Close()

	logger.Info("starting tui", "mock", cfg.API.UseMock, "api", cfg.API.URL)

	model := app.New(cfg, deps.Session, deps.Tasks, logger)
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, drag motion and release
		tea.WithContext(cmd.Context()),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func newMockServerCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "mock-server",
		Short: "Serve the mock task API over HTTP",
		Long: `Serve the built-in mock API under /api so the HTTP transport (or any
other client) can be exercised without a real backend. State lives in
memory and is lost on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Mock.Addr
			}
			logger := opts.stderrLogger(cmd.ErrOrStderr())
			backend := mock.NewBackend(MockOptions(cfg), logger)

			fmt.Fprintf(cmd.OutOrStdout(), "Mock API listening on %s (base path /api)\n", addr)
			return mock.NewServer(backend, logger).Run(addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}
