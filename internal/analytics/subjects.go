package analytics

import (
	"sort"

	"github.com/alexanderramin/studytrack/internal/domain"
)

// SubjectTotal is one entry of the per-subject ranking.
type SubjectTotal struct {
	Subject string
	Minutes int
}

// SubjectTotals groups total minutes by exact subject string
// (case-sensitive) and ranks subjects by minutes descending. Equal totals
// order by subject ascending so ties render stably.
func SubjectTotals(sessions []*domain.StudySession) []SubjectTotal {
	bySubject := make(map[string]int)
	for _, s := range sessions {
		bySubject[s.Subject] += s.DurationMin
	}

	totals := make([]SubjectTotal, 0, len(bySubject))
	for subject, minutes := range bySubject {
		totals = append(totals, SubjectTotal{Subject: subject, Minutes: minutes})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Minutes != totals[j].Minutes {
			return totals[i].Minutes > totals[j].Minutes
		}
		return totals[i].Subject < totals[j].Subject
	})
	return totals
}
