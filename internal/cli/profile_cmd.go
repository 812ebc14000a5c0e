package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/astroplan/internal/astro"
	"github.com/alexanderramin/astroplan/internal/cli/formatter"
	"github.com/alexanderramin/astroplan/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your birth data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			var sign *domain.ZodiacSign
			if u.HasBirthData() {
				s := astro.ResolveSign(u.BirthData.DateOfBirth)
				sign = &s
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(u, sign))
			return nil
		},
	}

	cmd.AddCommand(newProfileSetCmd(app))
	return cmd
}

func newProfileSetCmd(app *App) *cobra.Command {
	var name, born, bornTime, place string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Replace your birth data",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			parsed, err := time.Parse("2006-01-02", born)
			if err != nil {
				return fmt.Errorf("invalid birth date %q, expected YYYY-MM-DD", born)
			}

			updated, err := app.Users.SetBirthData(ctx, u.ID, domain.BirthData{
				Name:         name,
				DateOfBirth:  parsed,
				TimeOfBirth:  bornTime,
				PlaceOfBirth: place,
			})
			if err != nil {
				return err
			}

			sign := astro.ResolveSign(updated.BirthData.DateOfBirth)
			fmt.Fprintf(cmd.OutOrStdout(), "Saved. Your sign is %s\n", formatter.FormatZodiac(sign))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name used in readings")
	cmd.Flags().StringVar(&born, "born", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().StringVar(&bornTime, "time", "", "Time of birth (HH:MM)")
	cmd.Flags().StringVar(&place, "place", "", "Place of birth")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("born")

	return cmd
}
