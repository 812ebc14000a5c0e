package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/astroplan/internal/astro"
	"github.com/alexanderramin/astroplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newZodiacCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "zodiac [BIRTH_DATE]",
		Short: "Show the zodiac sign for a birth date",
		Long:  "Show the zodiac sign for a birth date, or for your own birth date when none is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var birthDate time.Time

			if len(args) == 1 {
				parsed, err := time.Parse("2006-01-02", args[0])
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[0])
				}
				birthDate = parsed
			} else {
				u, err := currentUser(context.Background(), app)
				if err != nil {
					return err
				}
				if !u.HasBirthData() {
					return fmt.Errorf("no birth data yet; run `astroplan profile set` or pass a date")
				}
				birthDate = u.BirthData.DateOfBirth
			}

			sign := astro.ResolveSign(birthDate)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatZodiac(sign))
			return nil
		},
	}
}
