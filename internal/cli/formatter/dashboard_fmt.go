package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studytrack/internal/app"
)

const dashboardProgressBarWidth = 10

// FormatDashboard formats a DashboardResponse into a styled CLI dashboard.
func FormatDashboard(resp *app.DashboardResponse) string {
	var b strings.Builder

	today := fmt.Sprintf("%s of %s",
		Bold(FormatMinutes(resp.TodayMinutes)),
		Dim(FormatMinutes(app.DailyGoalMin)))
	b.WriteString(fmt.Sprintf("Today      %s  %s\n", today, RenderProgress(resp.TodayGoalPct, dashboardProgressBarWidth)))
	b.WriteString(fmt.Sprintf("Streak     %s\n", streakLabel(resp.StreakDays)))
	b.WriteString(fmt.Sprintf("All time   %s across %d active plans\n",
		Bold(FormatMinutes(resp.TotalMinutes)), resp.ActivePlans))

	if len(resp.Plans) > 0 {
		b.WriteString("\n" + Header("Plans") + "\n")
		b.WriteString(planTable(resp.Plans))
	}

	if len(resp.RecentSessions) > 0 {
		b.WriteString("\n" + Header("Recent sessions") + "\n")
		for _, s := range resp.RecentSessions {
			line := fmt.Sprintf("%s  %s  %s",
				Dim(HumanTimestamp(s.CreatedAt)),
				Bold(s.Subject),
				FormatMinutes(s.DurationMin))
			if s.Notes != "" {
				line += "  " + Dim(s.Notes)
			}
			b.WriteString(line + "\n")
		}
	}

	return RenderBox("Dashboard", strings.TrimRight(b.String(), "\n"))
}

func streakLabel(days int) string {
	if days == 0 {
		return Dim("no streak — study today to start one")
	}
	label := fmt.Sprintf("%d day", days)
	if days > 1 {
		label += "s"
	}
	return StyleGreen.Render("🔥 " + label)
}

func planTable(plans []app.PlanView) string {
	headers := []string{"TITLE", "SUBJECT", "PRIORITY", "PROGRESS", "DEADLINE"}
	rows := make([][]string, 0, len(plans))
	for _, v := range plans {
		deadline := DeadlineLabel(v.DaysLeft)
		if v.Overdue {
			deadline = StyleRed.Render("OVERDUE")
		}
		rows = append(rows, []string{
			Bold(v.Plan.Title),
			StylePurple.Render(v.Plan.Subject),
			PriorityBadge(v.Plan.Priority),
			RenderProgress(v.ProgressPct, dashboardProgressBarWidth),
			deadline,
		})
	}
	return RenderTable(headers, rows)
}
