package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/riordanpawley/taskboard/internal/domain"
)

func newTasksCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tasks",
		Aliases: []string{"t"},
		Short:   "List and change tasks",
	}
	cmd.AddCommand(
		newTasksListCmd(opts),
		newTasksAddCmd(opts),
		newTasksMoveCmd(opts),
		newTasksRemoveCmd(opts),
	)
	return cmd
}

func newTasksListCmd(opts *options) *cobra.Command {
	var status, search string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := domain.NewFilter()
			sf, err := domain.ParseStatusFilter(status)
			if err != nil {
				return err
			}
			filter.Status = sf
			filter.Search = strings.TrimSpace(search)

			return opts.withDeps(cmd, func(ctx context.Context, deps *Dependencies) error {
				return ListCommand(ctx, deps, filter)
			})
		},
	}
	cmd.Flags().StringVarP(&status, "status", "s", "all", "Only tasks with this status (todo, in-progress, done, all)")
	cmd.Flags().StringVarP(&search, "search", "q", "", "Only tasks whose title contains this text")
	return cmd
}

func newTasksAddCmd(opts *options) *cobra.Command {
	var description, status string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := domain.Draft{
				Title:       strings.Join(args, " "),
				Description: description,
			}
			if status != "" {
				s, err := domain.ParseStatus(status)
				if err != nil {
					return err
				}
				draft.Status = s
			}
			return opts.withDeps(cmd, func(ctx context.Context, deps *Dependencies) error {
				return AddCommand(ctx, deps, draft)
			})
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Initial status (default todo)")
	return cmd
}

func newTasksMoveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <status>",
		Short: "Change a task's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseStatus(args[1])
			if err != nil {
				return err
			}
			return opts.withDeps(cmd, func(ctx context.Context, deps *Dependencies) error {
				return MoveCommand(ctx, deps, args[0], status)
			})
		},
	}
}

func newTasksRemoveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withDeps(cmd, func(ctx context.Context, deps *Dependencies) error {
				return RemoveCommand(ctx, deps, args[0])
			})
		},
	}
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task counts per status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withDeps(cmd, StatsCommand)
		},
	}
}
