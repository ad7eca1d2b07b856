package cli

import (
	"github.com/alexanderramin/studytrack/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans    service.PlanService
	Sessions service.SessionService
	Stats    service.StatsService
	Transfer service.TransferService

	// IsInteractive reports whether stdin is a terminal; wizard forms and
	// confirmation prompts are only shown when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "studytrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "studytrack",
		Short: "Track study plans, sessions, and progress",
	}

	root.AddCommand(
		newPlanCmd(app),
		newSessionCmd(app),
		newTimerCmd(app),
		newDashboardCmd(app),
		newStatsCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
