package formatter

import (
	"github.com/alexanderramin/studytrack/internal/domain"
)

// FormatSessionList formats sessions as a table.
func FormatSessionList(sessions []*domain.StudySession) string {
	if len(sessions) == 0 {
		return Dim("No study sessions recorded yet.")
	}

	headers := []string{"WHEN", "SUBJECT", "DURATION", "NOTES"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		notes := Dim("--")
		if s.Notes != "" {
			notes = StyleFg.Render(s.Notes)
		}
		rows = append(rows, []string{
			Dim(HumanTimestamp(s.CreatedAt)),
			StylePurple.Render(s.Subject),
			Bold(FormatMinutes(s.DurationMin)),
			notes,
		})
	}
	return RenderTable(headers, rows)
}
