package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/studytrack/internal/app"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newTimerCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "timer",
		Short: "Run the study countdown timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return fmt.Errorf("the timer needs an interactive terminal")
			}

			model, err := runTimerView(a)
			if err != nil {
				return err
			}
			if !model.save {
				return nil
			}

			return runSaveSessionForm(a, model)
		},
	}
}

// runSaveSessionForm collects subject and notes after the timer view exits,
// then records the session using the timer's start instant for the duration.
func runSaveSessionForm(a *App, model *timerModel) error {
	var subject, notes string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Placeholder("Math").
				Value(&subject).
				Validate(validateRequired),
			huh.NewInput().
				Title("Notes (optional)").
				Value(&notes),
		),
	).WithTheme(studytrackHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	result, err := a.Sessions.RecordSession(context.Background(), app.RecordSessionRequest{
		Subject:      subject,
		Notes:        notes,
		SessionStart: model.countdown.SessionStart,
	})
	if err != nil {
		return err
	}
	model.countdown.ClearSession()

	printSessionResult(subject, result)
	return nil
}
