package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studytrack/internal/app"
)

// FormatAnalytics formats an AnalyticsResponse into a styled summary.
func FormatAnalytics(resp *app.AnalyticsResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Last 7 days    %s\n", Bold(FormatMinutes(resp.WeekMinutes))))
	b.WriteString(fmt.Sprintf("Last 30 days   %s\n", Bold(FormatMinutes(resp.MonthMinutes))))
	b.WriteString(fmt.Sprintf("Daily average  %s\n", Bold(FormatMinutes(int(resp.AvgPerActiveDay)))))
	b.WriteString(fmt.Sprintf("Best day       %s\n", StyleGreen.Render(resp.BestDay)))

	if len(resp.SubjectBreakdown) > 0 {
		b.WriteString("\n" + Header("By subject") + "\n")
		max := resp.SubjectBreakdown[0].Minutes
		rows := make([][]string, 0, len(resp.SubjectBreakdown))
		for _, st := range resp.SubjectBreakdown {
			pct := 0.0
			if max > 0 {
				pct = float64(st.Minutes) / float64(max) * 100
			}
			rows = append(rows, []string{
				StylePurple.Render(st.Subject),
				RenderProgress(pct, 12),
				Dim(FormatMinutes(st.Minutes)),
			})
		}
		b.WriteString(RenderTable([]string{"SUBJECT", "SHARE", "TIME"}, rows))
	}

	return RenderBox("Statistics", strings.TrimRight(b.String(), "\n"))
}
