package formatter

import (
	"github.com/alexanderramin/studytrack/internal/app"
)

// FormatPlanList formats plan views as a table, creation order preserved.
func FormatPlanList(plans []app.PlanView) string {
	if len(plans) == 0 {
		return Dim("No study plans yet. Create one with: studytrack plan add")
	}

	headers := []string{"ID", "TITLE", "SUBJECT", "PRIORITY", "PROGRESS", "DONE/EST", "DEADLINE"}
	rows := make([][]string, 0, len(plans))
	for _, v := range plans {
		deadline := DeadlineLabel(v.DaysLeft)
		if v.Overdue {
			deadline = StyleRed.Render("OVERDUE")
		}
		rows = append(rows, []string{
			TruncID(v.Plan.ID),
			Bold(v.Plan.Title),
			StylePurple.Render(v.Plan.Subject),
			PriorityBadge(v.Plan.Priority),
			RenderProgress(v.ProgressPct, 10),
			Dim(FormatHours(v.Plan.CompletedHours) + " / " + FormatHours(v.Plan.EstimatedHours)),
			deadline,
		})
	}
	return RenderTable(headers, rows)
}
