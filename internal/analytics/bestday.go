package analytics

import (
	"time"

	"github.com/alexanderramin/studytrack/internal/domain"
)

// NoBestDay is returned when there are no sessions to rank.
const NoBestDay = "-"

// BestDay returns the weekday (long English name) with the highest total
// study minutes, grouped on each session's creation instant. Ties resolve
// to the earliest weekday in Sunday..Saturday order so the result is
// deterministic.
func BestDay(sessions []*domain.StudySession) string {
	if len(sessions) == 0 {
		return NoBestDay
	}

	var totals [7]int
	for _, s := range sessions {
		totals[s.CreatedAt.Weekday()] += s.DurationMin
	}

	best := 0
	for day := 1; day < 7; day++ {
		if totals[day] > totals[best] {
			best = day
		}
	}
	return time.Weekday(best).String()
}
