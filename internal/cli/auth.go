package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/riordanpawley/taskboard/internal/domain"
)

func newLoginCmd(opts *options) *cobra.Command {
	var creds domain.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd)
			var err error
			if creds.Username, err = p.value(creds.Username, "Username"); err != nil {
				return err
			}
			if creds.Password, err = p.value(creds.Password, "Password"); err != nil {
				return err
			}
			return opts.withDeps(cmd, func(ctx context.Context, deps *Dependencies) error {
				return LoginCommand(ctx, deps, creds)
			})
		},
	}
	cmd.Flags().StringVarP(&creds.Username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&creds.Password, "password", "p", "", "Password (prompted when omitted)")
	return cmd
}

func newRegisterCmd(opts *options) *cobra.Command {
	var reg domain.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newPrompter(cmd)
			var err error
			if reg.Username, err = p.value(reg.Username, "Username"); err != nil {
				return err
			}
			if reg.Email, err = p.value(reg.Email, "Email"); err != nil {
				return err
			}
			if reg.Password, err = p.value(reg.Password, "Password"); err != nil {
				return err
			}
			return opts.withDeps(cmd, func(ctx context.Context, deps *Dependencies) error {
				return RegisterCommand(ctx, deps, reg)
			})
		},
	}
	cmd.Flags().StringVarP(&reg.Username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&reg.Email, "email", "e", "", "Email address")
	cmd.Flags().StringVarP(&reg.Password, "password", "p", "", "Password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withDeps(cmd, func(_ context.Context, deps *Dependencies) error {
				return LogoutCommand(deps)
			})
		},
	}
}

func newWhoamiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withDeps(cmd, func(_ context.Context, deps *Dependencies) error {
				return WhoamiCommand(deps, time.Now())
			})
		},
	}
}
