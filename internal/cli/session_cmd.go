package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/studytrack/internal/app"
	"github.com/alexanderramin/studytrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSessionCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Record and inspect study sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(a),
		newSessionListCmd(a),
	)

	return cmd
}

func newSessionLogCmd(a *App) *cobra.Command {
	var subject, notes string
	var minutes int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a finished study session",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.RecordSessionRequest{
				Subject: subject,
				Notes:   notes,
			}
			// The default length only applies when --minutes is absent.
			if flagChanged(cmd.Flags(), "minutes") {
				req.Minutes = &minutes
			}

			result, err := a.Sessions.RecordSession(context.Background(), req)
			if err != nil {
				return err
			}

			printSessionResult(subject, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject studied")
	cmd.Flags().StringVar(&notes, "notes", "", "Optional notes")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Session length in minutes")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

func printSessionResult(subject string, result *app.RecordSessionResult) {
	fmt.Printf("Logged %s of %s\n", formatter.FormatMinutes(result.DurationMin), subject)
	switch n := len(result.MatchedPlanIDs); n {
	case 0:
		fmt.Println(formatter.Dim("No matching plan; session recorded on its own."))
	case 1:
		fmt.Printf("Credited %s to 1 plan\n", formatter.FormatHours(result.CreditedHours))
	default:
		fmt.Printf("Credited %s to %d plans\n", formatter.FormatHours(result.CreditedHours), n)
	}
}

func newSessionListCmd(a *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List study sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if flagChanged(cmd.Flags(), "days") {
				sessions, err := a.Sessions.ListRecent(ctx, days)
				if err != nil {
					return err
				}
				fmt.Println(formatter.FormatSessionList(sessions))
				return nil
			}

			sessions, err := a.Sessions.List(ctx)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatSessionList(sessions))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Only show sessions from the last N days")

	return cmd
}
