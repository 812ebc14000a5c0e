package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/astroplan/internal/astro"
	"github.com/alexanderramin/astroplan/internal/cli/formatter"
	"github.com/alexanderramin/astroplan/internal/domain"
	"github.com/alexanderramin/astroplan/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskEditCmd(app),
		newTaskRemoveCmd(app),
		newTaskDaysCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var category, priority, date string
	var suggest bool

	cmd := &cobra.Command{
		Use:   "add TEXT",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			t := &domain.Task{
				UserID:   u.ID,
				Text:     args[0],
				Date:     date,
				Category: domain.Category(category),
				Priority: domain.Priority(priority),
			}

			// Without an explicit category, a confident prediction is applied
			// automatically; a weak one is only shown as a hint.
			var prediction *domain.CategoryPrediction
			if category == "" && suggest {
				p := app.Tasks.Suggest(args[0])
				prediction = &p
				if p.Confidence > astro.AutoAssignThreshold {
					t.Category = p.Category
				}
			}

			if err := app.Tasks.Add(ctx, t); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s\n", formatter.TruncID(t.ID))
			if prediction != nil {
				applied := t.Category == prediction.Category
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPrediction(*prediction, applied))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Category (work|personal|health|creativity|relationships|finance)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high)")
	cmd.Flags().StringVar(&date, "date", "", "Scheduled date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&suggest, "suggest", true, "Predict a category from the task text")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var all bool
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			var tasks []*domain.Task
			switch {
			case date != "":
				parsed, err := time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
				}
				tasks, err = app.Tasks.ListForDate(ctx, u.ID, parsed)
				if err != nil {
					return err
				}
			case all:
				tasks, err = app.Tasks.List(ctx, u.ID)
				if err != nil {
					return err
				}
			default:
				tasks, err = app.Tasks.ListOpen(ctx, u.ID)
				if err != nil {
					return err
				}
			}

			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No tasks found.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskList(tasks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks")
	cmd.Flags().StringVar(&date, "date", "", "Only tasks scheduled on this date (YYYY-MM-DD)")

	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			id, err := resolveTaskID(ctx, app, u.ID, args[0])
			if err != nil {
				return err
			}

			t, err := app.Tasks.Toggle(ctx, id)
			if err != nil {
				return err
			}

			if t.Completed {
				fmt.Fprintf(cmd.OutOrStdout(), "Completed: %s\n", t.Text)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Reopened: %s\n", t.Text)
			}
			return nil
		},
	}
}

func newTaskEditCmd(app *App) *cobra.Command {
	var text, category, priority, date string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			id, err := resolveTaskID(ctx, app, u.ID, args[0])
			if err != nil {
				return err
			}

			upd := taskUpdateFromFlags(cmd.Flags(), &text, &category, &priority, &date)

			t, err := app.Tasks.Edit(ctx, id, upd)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated: %s\n", t.Text)
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "New task text")
	cmd.Flags().StringVar(&category, "category", "", "New category")
	cmd.Flags().StringVar(&priority, "priority", "", "New priority")
	cmd.Flags().StringVar(&date, "date", "", "New scheduled date (YYYY-MM-DD, empty to unschedule)")

	return cmd
}

// taskUpdateFromFlags builds a partial update from the flags the caller
// actually set, so omitted flags leave their fields untouched.
func taskUpdateFromFlags(flags *pflag.FlagSet, text, category, priority, date *string) service.TaskUpdate {
	var upd service.TaskUpdate
	if flags.Changed("text") {
		upd.Text = text
	}
	if flags.Changed("category") {
		c := domain.Category(*category)
		upd.Category = &c
	}
	if flags.Changed("priority") {
		p := domain.Priority(*priority)
		upd.Priority = &p
	}
	if flags.Changed("date") {
		upd.Date = date
	}
	return upd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			id, err := resolveTaskID(ctx, app, u.ID, args[0])
			if err != nil {
				return err
			}

			if err := app.Tasks.Delete(ctx, id); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}
}

func newTaskDaysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "days ID",
		Short: "Show the best and worst upcoming days for a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			u, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			id, err := resolveTaskID(ctx, app, u.ID, args[0])
			if err != nil {
				return err
			}

			t, err := app.Tasks.GetByID(ctx, id)
			if err != nil {
				return err
			}

			days := app.Recommend.TaskDays(time.Now(), t.Category)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskDays(t, days))
			return nil
		},
	}
}
