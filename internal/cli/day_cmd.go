package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lmarsden/mentorlog/internal/cli/formatter"
)

func newDayCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Manage day logs",
	}

	cmd.AddCommand(
		newDayShowCmd(app),
		newDayNotesCmd(app),
		newDayRemoveCmd(app),
	)

	return cmd
}

func newDayShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show DATE",
		Short: "Show a day log and its sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date, err := parseDateArg(args[0])
			if err != nil {
				return err
			}

			day, err := app.Days.GetDay(ctx, date)
			if err != nil {
				return err
			}
			if day == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No log for %s.\n", args[0])
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(formatter.HumanDate(day.Date)))
			if day.Notes != "" {
				fmt.Fprintln(out, formatter.Dim("Notes: ")+day.Notes)
			}

			sessions, err := app.Sessions.ListSessionsForDay(ctx, date)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Fprintln(out, "No sessions logged.")
				return nil
			}

			fmt.Fprint(out, formatter.RenderTable(formatter.SessionTableHeaders, formatter.SessionRows(sessions)))
			return nil
		},
	}
}

func newDayNotesCmd(app *App) *cobra.Command {
	var notes string

	cmd := &cobra.Command{
		Use:   "notes DATE",
		Short: "Set the notes for a day, creating the day if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date, err := parseDateArg(args[0])
			if err != nil {
				return err
			}

			if _, err := app.Days.GetOrCreateDay(ctx, date); err != nil {
				return err
			}
			day, err := app.Days.UpdateNotes(ctx, date, notes)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK(fmt.Sprintf("Updated notes for %s", day.Date.Format(dateLayout))))
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Notes text for the day")
	_ = cmd.MarkFlagRequired("notes")

	return cmd
}

func newDayRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove DATE",
		Short: "Remove a day log and all its sessions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArg(args[0])
			if err != nil {
				return err
			}

			removed, err := app.Days.DeleteDay(context.Background(), date)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintf(cmd.OutOrStdout(), "No log for %s.\n", args[0])
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK(fmt.Sprintf("Removed day %s", args[0])))
			return nil
		},
	}
}
