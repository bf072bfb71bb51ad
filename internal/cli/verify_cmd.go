package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lmarsden/mentorlog/internal/cli/formatter"
)

func newVerifyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Show stored data counts and per-group totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Stats.Collect(context.Background())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Data Check"))
			fmt.Fprintf(out, "Days logged:    %s\n", formatter.Bold(strconv.Itoa(stats.DayCount)))
			fmt.Fprintf(out, "Sessions:       %s\n", formatter.Bold(strconv.Itoa(stats.SessionCount)))
			fmt.Fprintf(out, "Avg per day:    %s\n", formatter.Bold(formatter.FormatMinutes(int(stats.AvgDailyMinutes))))

			if len(stats.Groups) == 0 {
				return nil
			}

			rows := make([][]string, 0, len(stats.Groups))
			for _, g := range stats.Groups {
				rows = append(rows, []string{
					g.GroupName,
					strconv.Itoa(g.SessionCount),
					formatter.FormatMinutes(g.TotalMinutes),
				})
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.RenderTable([]string{"Group", "Sessions", "Total Time"}, rows))
			return nil
		},
	}
}
