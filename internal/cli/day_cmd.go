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

func newDayCmd(app *App) *cobra.Command {
	var month bool

	cmd := &cobra.Command{
		Use:   "day [DATE]",
		Short: "Show the energy reading for a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArg(args)
			if err != nil {
				return err
			}

			if month {
				days := app.Recommend.Month(date.Year(), date.Month())
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMonth(days))
				return nil
			}

			ctx := context.Background()
			u, err := currentUser(ctx, app)
			if err != nil {
				// Anonymous readings skip the task list.
				detail := app.Recommend.Day(date)
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDayDetail(&detail))
				return nil
			}

			detail, err := app.Recommend.DayWithTasks(ctx, u.ID, date)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDayDetail(detail))
			return nil
		},
	}

	cmd.Flags().BoolVar(&month, "month", false, "Show the whole month instead of one day")

	return cmd
}

func newRecommendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend [CATEGORY]",
		Short: "Recommend days for your open tasks, or show one category's outlook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if !domain.ValidCategories[args[0]] {
					return fmt.Errorf("unknown category %q", args[0])
				}
				category := domain.Category(args[0])
				days := astro.Lookahead(time.Now(), category)
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatLookahead(category, days))
				return nil
			}

			ctx := context.Background()
			u, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			recs, err := app.Recommend.ForOpenTasks(ctx, u.ID, time.Now())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRecommendations(recs))
			return nil
		},
	}
}

func newPredictCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "predict TEXT",
		Short: "Predict a category for task text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := app.Tasks.Suggest(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPrediction(p, false))
			return nil
		},
	}
}
