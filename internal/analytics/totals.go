package analytics

import (
	"time"

	"github.com/alexanderramin/studytrack/internal/domain"
)

// TotalMinutes sums duration across all sessions.
func TotalMinutes(sessions []*domain.StudySession) int {
	total := 0
	for _, s := range sessions {
		total += s.DurationMin
	}
	return total
}

// TodayTotal sums duration over sessions dated on today's calendar date.
func TodayTotal(sessions []*domain.StudySession, today time.Time) int {
	key := today.Format(dateLayout)
	total := 0
	for _, s := range sessions {
		if s.Date.Format(dateLayout) == key {
			total += s.DurationMin
		}
	}
	return total
}

// WindowTotal sums duration over sessions created within the last N days —
// a rolling window measured back from now, not a calendar-aligned range.
func WindowTotal(sessions []*domain.StudySession, now time.Time, days int) int {
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
	total := 0
	for _, s := range sessions {
		if !s.CreatedAt.Before(cutoff) {
			total += s.DurationMin
		}
	}
	return total
}

// AveragePerActiveDay divides total minutes by the count of distinct dates
// with at least one session. Returns 0 when there are no sessions.
func AveragePerActiveDay(sessions []*domain.StudySession) float64 {
	if len(sessions) == 0 {
		return 0
	}
	days := make(map[string]bool)
	total := 0
	for _, s := range sessions {
		days[s.Date.Format(dateLayout)] = true
		total += s.DurationMin
	}
	if len(days) == 0 {
		return 0
	}
	return float64(total) / float64(len(days))
}
