package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmarsden/mentorlog/internal/cli/formatter"
)

func newSeedCmd(app *App) *cobra.Command {
	var from, to, group string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace a date range with generated sample sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDateArg(from)
			if err != nil {
				return err
			}
			end, err := parseDateArg(to)
			if err != nil {
				return err
			}

			res, err := app.Seeder.Populate(context.Background(), start, end, group)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.OK(fmt.Sprintf(
				"Seeded %d weekdays with %d sessions", res.DaysCreated, res.SessionsCreated,
			)))
			if res.DaysCleared > 0 {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("Replaced %d existing days in range", res.DaysCleared)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&group, "group", "", "Group name for seeded sessions")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
