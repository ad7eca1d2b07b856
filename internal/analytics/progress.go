package analytics

import (
	"math"
	"time"

	"github.com/alexanderramin/studytrack/internal/domain"
)

// PlanProgressPct returns completed/estimated as a percentage clamped to
// [0, 100]. A non-positive estimate yields 0% rather than dividing by zero.
func PlanProgressPct(p *domain.StudyPlan) float64 {
	if p.EstimatedHours <= 0 {
		return 0
	}
	pct := p.CompletedHours / p.EstimatedHours * 100
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// DaysLeft returns the number of days until the deadline, rounded up.
// Zero or negative means the plan is overdue.
func DaysLeft(deadline, today time.Time) int {
	return int(math.Ceil(deadline.Sub(today).Hours() / 24))
}
