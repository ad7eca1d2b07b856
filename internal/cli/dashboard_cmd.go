package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/studytrack/internal/app"
	"github.com/alexanderramin/studytrack/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDashboardCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show today's progress, streak, plans, and recent sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Stats.GetDashboard(context.Background(), app.DashboardRequest{})
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatDashboard(resp))
			return nil
		},
	}
}

func newStatsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show rolling study statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Stats.GetAnalytics(context.Background(), app.AnalyticsRequest{})
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatAnalytics(resp))
			return nil
		},
	}
}
