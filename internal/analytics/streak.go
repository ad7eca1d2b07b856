// Package analytics computes derived study statistics as pure functions over
// the plan and session collections. Every function takes an explicit
// reference time so callers and tests control "now".
package analytics

import (
	"sort"
	"time"

	"github.com/alexanderramin/studytrack/internal/domain"
)

const dateLayout = "2006-01-02"

// Streak counts consecutive calendar days with at least one session, ending
// today. A day without a session breaks the streak; a session today is
// required for any streak at all.
func Streak(sessions []*domain.StudySession, today time.Time) int {
	seen := make(map[string]bool)
	var dates []string
	for _, s := range sessions {
		key := s.Date.Format(dateLayout)
		if !seen[key] {
			seen[key] = true
			dates = append(dates, key)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	streak := 0
	for i, d := range dates {
		expected := today.AddDate(0, 0, -i).Format(dateLayout)
		if d != expected {
			break
		}
		streak++
	}
	return streak
}
