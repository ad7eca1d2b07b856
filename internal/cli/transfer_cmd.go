package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd(a *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export plans and sessions to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.Transfer.Export(context.Background(), out)
			if err != nil {
				return err
			}

			fmt.Printf("Exported %d plans and %d sessions to %s\n",
				result.PlanCount, result.SessionCount, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "studytrack-export.json", "Output file path")

	return cmd
}

func newImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import plans and sessions from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.Transfer.Import(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d plans and %d sessions", result.PlanCount, result.SessionCount)
			if result.SkippedCount > 0 {
				fmt.Printf(" (%d already present, skipped)", result.SkippedCount)
			}
			fmt.Println()
			return nil
		},
	}
}
