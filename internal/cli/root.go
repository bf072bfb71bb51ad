package cli

import (
	"github.com/lmarsden/mentorlog/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Days     service.DayService
	Sessions service.SessionService
	Export   service.ExportService
	Seeder   service.SeedService
	Stats    service.StatsService

	// Categories is the configured allow-list, used by interactive forms.
	Categories []string

	// Interactive enables huh forms when flags are omitted. It is set from
	// a TTY check at startup and forced off in tests.
	Interactive bool
}

// NewRootCmd creates the top-level "mentorlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "mentorlog",
		Short: "Mentoring activity log and weekly report exporter",
	}

	root.AddCommand(
		newDayCmd(app),
		newSessionCmd(app),
		newExportCmd(app),
		newSeedCmd(app),
		newVerifyCmd(app),
	)

	return root
}
