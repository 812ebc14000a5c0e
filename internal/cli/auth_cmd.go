package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/astroplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "login USERNAME",
		Short: "Log in, creating the account on first use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Users.Login(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", u.Username)
			if !u.HasBirthData() {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Add your birth data with `astroplan profile set` to unlock readings."))
			}
			return nil
		},
	}
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of the current account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Users.Logout(context.Background()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := currentUser(context.Background(), app)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), u.Username)
			return nil
		},
	}
}
