package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lmarsden/mentorlog/internal/cli/formatter"
	"github.com/lmarsden/mentorlog/internal/service"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage mentorship sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
		newSessionEditCmd(app),
		newSessionRemoveCmd(app),
	)

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var group, category, activity string
	var hours, minutes int

	cmd := &cobra.Command{
		Use:   "log DATE",
		Short: "Log a mentorship session on a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			date, err := parseDateArg(args[0])
			if err != nil {
				return err
			}

			in := service.SessionInput{
				GroupName:           group,
				Category:            category,
				ActivityDescription: activity,
				Hours:               hours,
				Minutes:             minutes,
			}

			// Drop into the form when running on a TTY without the
			// details flags.
			if app.Interactive && group == "" && activity == "" {
				v := &sessionFormValues{
					Group:    group,
					Category: category,
					Activity: activity,
				}
				if err := sessionForm(app.Categories, v).Run(); err != nil {
					return err
				}
				in = v.toInput()
			}

			s, err := app.Sessions.LogSession(ctx, date, in)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK(fmt.Sprintf(
				"Logged %s session for %s on %s (%s)",
				s.Category, s.GroupName, args[0], s.DurationLabel(),
			)))
			return nil
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Mentee group name")
	cmd.Flags().StringVar(&category, "category", "", "Session category")
	cmd.Flags().StringVar(&activity, "activity", "", "Activity description")
	cmd.Flags().IntVar(&hours, "hours", 0, "Duration hours")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Duration minutes")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list DATE",
		Short: "List sessions logged on a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArg(args[0])
			if err != nil {
				return err
			}

			sessions, err := app.Sessions.ListSessionsForDay(context.Background(), date)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions found.")
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(formatter.SessionTableHeaders, formatter.SessionRows(sessions)))
			return nil
		},
	}
}

func newSessionEditCmd(app *App) *cobra.Command {
	var group, category, activity string
	var hours, minutes int

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Replace all fields of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[0])
			}

			in := service.SessionInput{
				GroupName:           group,
				Category:            category,
				ActivityDescription: activity,
				Hours:               hours,
				Minutes:             minutes,
			}

			s, err := app.Sessions.UpdateSession(context.Background(), id, in)
			if err != nil {
				return err
			}
			if s == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "No session with id %d.\n", id)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK(fmt.Sprintf("Updated session %d", s.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&group, "group", "", "Mentee group name")
	cmd.Flags().StringVar(&category, "category", "", "Session category")
	cmd.Flags().StringVar(&activity, "activity", "", "Activity description")
	cmd.Flags().IntVar(&hours, "hours", 0, "Duration hours")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Duration minutes")
	_ = cmd.MarkFlagRequired("group")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("activity")

	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid session id %q", args[0])
			}

			removed, err := app.Sessions.DeleteSession(context.Background(), id)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintf(cmd.OutOrStdout(), "No session with id %d.\n", id)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.OK(fmt.Sprintf("Removed session %d", id)))
			return nil
		},
	}
}
