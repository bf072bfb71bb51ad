package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmarsden/mentorlog/internal/cli/formatter"
	"github.com/lmarsden/mentorlog/internal/service"
)

func newExportCmd(app *App) *cobra.Command {
	var from, to, output, format string
	var singleSheet bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export sessions grouped by week",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDateFlag(from)
			if err != nil {
				return err
			}
			end, err := parseDateFlag(to)
			if err != nil {
				return err
			}

			res := app.Export.Run(context.Background(), service.ExportOptions{
				Start:          start,
				End:            end,
				Filename:       output,
				Format:         format,
				SeparateSheets: !singleSheet,
			})
			if !res.Success {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Warn(res.Message))
				return errors.New("export failed")
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK(res.Message))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&to, "to", "", "End date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&output, "output", "", "Output filename (default: generated)")
	cmd.Flags().StringVar(&format, "format", "xlsx", "Export format: xlsx, csv or yaml")
	cmd.Flags().BoolVar(&singleSheet, "single-sheet", false, "Write all sessions into one sheet")

	return cmd
}
