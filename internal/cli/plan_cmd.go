package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/studytrack/internal/app"
	"github.com/alexanderramin/studytrack/internal/cli/formatter"
	"github.com/alexanderramin/studytrack/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newPlanCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage study plans",
	}

	cmd.AddCommand(
		newPlanAddCmd(a),
		newPlanListCmd(a),
		newPlanRemoveCmd(a),
	)

	return cmd
}

func newPlanAddCmd(a *App) *cobra.Command {
	var title, subject, goal, deadline, priority string
	var hours float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new study plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			// No flags on an interactive terminal opens the wizard.
			if title == "" && a.interactive() {
				return runPlanWizard(a)
			}

			var deadlineDate time.Time
			if deadline != "" {
				var err error
				deadlineDate, err = time.Parse("2006-01-02", deadline)
				if err != nil {
					return fmt.Errorf("invalid deadline %q: %w", deadline, err)
				}
			}

			p := &domain.StudyPlan{
				Title:          title,
				Subject:        subject,
				Goal:           goal,
				Deadline:       deadlineDate,
				EstimatedHours: hours,
				Priority:       domain.Priority(priority),
			}
			if err := a.Plans.Create(context.Background(), p); err != nil {
				return err
			}

			fmt.Printf("Created plan %s (%s)\n", p.Title, p.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Plan title")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject the plan covers")
	cmd.Flags().StringVar(&goal, "goal", "", "Optional goal description")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Estimated hours of study")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityMedium), "Priority (low, medium, high)")

	return cmd
}

func runPlanWizard(a *App) error {
	var title, subject, goal, deadline, hours string
	priority := string(domain.PriorityMedium)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Linear Algebra Midterm").
				Value(&title).
				Validate(validateRequired),
			huh.NewInput().
				Title("Subject").
				Placeholder("Math").
				Value(&subject).
				Validate(validateRequired),
			huh.NewInput().
				Title("Goal (optional)").
				Value(&goal),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD)").
				Value(&deadline).
				Validate(func(s string) error {
					if err := validateRequired(s); err != nil {
						return err
					}
					return validateDate(s)
				}),
			huh.NewInput().
				Title("Estimated hours").
				Placeholder("10").
				Value(&hours).
				Validate(func(s string) error {
					if err := validateRequired(s); err != nil {
						return err
					}
					return validatePositiveFloat(s)
				}),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", string(domain.PriorityLow)),
					huh.NewOption("Medium", string(domain.PriorityMedium)),
					huh.NewOption("High", string(domain.PriorityHigh)),
				).
				Value(&priority),
		),
	).WithTheme(studytrackHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	deadlineDate, _ := time.Parse("2006-01-02", deadline)
	estimated, _ := strconv.ParseFloat(hours, 64)

	p := &domain.StudyPlan{
		Title:          title,
		Subject:        subject,
		Goal:           goal,
		Deadline:       deadlineDate,
		EstimatedHours: estimated,
		Priority:       domain.Priority(priority),
	}
	if err := a.Plans.Create(context.Background(), p); err != nil {
		return err
	}

	fmt.Printf("Created plan %s (%s)\n", p.Title, p.ID[:8])
	return nil
}

func newPlanListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List study plans with progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Stats.GetDashboard(context.Background(), app.DashboardRequest{})
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatPlanList(resp.Plans))
			return nil
		},
	}
}

func newPlanRemoveCmd(a *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a study plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolvePlanID(ctx, a, args[0])
			if err != nil {
				return err
			}

			plan, err := a.Plans.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if !yes && a.interactive() {
				confirmed := false
				form := huh.NewForm(
					huh.NewGroup(
						huh.NewConfirm().
							Title(fmt.Sprintf("Remove plan %q?", plan.Title)).
							Description("Recorded sessions are kept.").
							Value(&confirmed),
					),
				).WithTheme(studytrackHuhTheme()).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := a.Plans.Delete(ctx, id); err != nil {
				return err
			}

			fmt.Printf("Removed plan %s\n", plan.Title)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
