package cli

import (
	"github.com/alexanderramin/astroplan/internal/horoscope"
	"github.com/alexanderramin/astroplan/internal/server"
	"github.com/alexanderramin/astroplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Users      service.UserService
	Tasks      service.TaskService
	Recommend  service.RecommendService
	Horoscopes horoscope.Service

	// Server is the HTTP API started by `astroplan serve`.
	Server     *server.Server
	ListenAddr string

	// IsInteractive reports whether stdin is a terminal. Running the bare
	// command on a terminal starts the TUI instead of printing help.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "astroplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "astroplan",
		Short: "Astrology-guided task planner",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newProfileCmd(app),
		newTaskCmd(app),
		newDayCmd(app),
		newRecommendCmd(app),
		newPredictCmd(app),
		newZodiacCmd(app),
		newHoroscopeCmd(app),
		newServeCmd(app),
	)

	return root
}
