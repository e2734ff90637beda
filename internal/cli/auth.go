package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hostel-be-svc/internal/normalize"
	"hostel-be-svc/internal/service"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and cache the user locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			auth := service.NewAuthService(a.client, a.cache, a.notifier, a.logger)
			user, err := auth.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			return a.print(cmd, user, func(w io.Writer) {
				fmt.Fprintf(w, "Logged in as %s (%s)\n", normalize.Name(user), normalize.Email(user))
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")

	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the cached user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			auth := service.NewAuthService(a.client, a.cache, a.notifier, a.logger)
			if err := auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the cached user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			auth := service.NewAuthService(a.client, a.cache, a.notifier, a.logger)
			user, err := auth.Current(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cmd, user, func(w io.Writer) {
				tw := newTable(w)
				row(tw, "ID", normalize.UserID(user))
				row(tw, "Name", normalize.Name(user))
				row(tw, "Email", normalize.Email(user))
				row(tw, "Phone", normalize.Phone(user))
				row(tw, "Room", normalize.RoomNumber(user))
				tw.Flush()
			})
		},
	}
}
