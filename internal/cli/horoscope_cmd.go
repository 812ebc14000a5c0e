package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/astroplan/internal/astro"
	"github.com/alexanderramin/astroplan/internal/cli/formatter"
	"github.com/alexanderramin/astroplan/internal/horoscope"
	"github.com/spf13/cobra"
)

func newHoroscopeCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "horoscope",
		Short: "Read today's horoscope",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := currentUser(ctx, app)
			if err != nil {
				return err
			}
			if !u.HasBirthData() {
				return fmt.Errorf("no birth data yet; run `astroplan profile set` first")
			}

			date := time.Now()
			if dateFlag != "" {
				date, err = time.Parse("2006-01-02", dateFlag)
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateFlag)
				}
			}

			sign := astro.ResolveSign(u.BirthData.DateOfBirth)
			reading := app.Horoscopes.Daily(ctx, horoscope.Request{
				Sign: sign.Name,
				Name: u.BirthData.Name,
				Date: date,
			})

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHoroscope(reading.Text, string(reading.Source)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Reading date (YYYY-MM-DD), defaults to today")

	return cmd
}
