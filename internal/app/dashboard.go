// Package app defines the request/response contracts exchanged between the
// service layer and its callers (the CLI and the timer view).
package app

import (
	"time"

	"github.com/alexanderramin/studytrack/internal/analytics"
	"github.com/alexanderramin/studytrack/internal/domain"
)

// DailyGoalMin is the fixed daily study goal the dashboard measures
// today's progress against.
const DailyGoalMin = 240

// RecentSessionLimit is how many sessions the dashboard shows.
const RecentSessionLimit = 5

type DashboardRequest struct {
	// Now overrides the reference instant; nil means time.Now().
	Now *time.Time
}

// PlanView is a plan decorated with display-ready progress figures.
type PlanView struct {
	Plan        *domain.StudyPlan
	ProgressPct float64
	DaysLeft    int
	Overdue     bool
}

type DashboardResponse struct {
	GeneratedAt    time.Time
	TodayMinutes   int
	TodayGoalPct   float64 // today vs. the fixed daily goal, clamped to 100
	StreakDays     int
	TotalMinutes   int
	ActivePlans    int
	RecentSessions []*domain.StudySession // newest first, at most RecentSessionLimit
	Plans          []PlanView             // creation order
}

type AnalyticsRequest struct {
	Now *time.Time
}

type AnalyticsResponse struct {
	GeneratedAt      time.Time
	WeekMinutes      int // rolling 7 days
	MonthMinutes     int // rolling 30 days
	AvgPerActiveDay  float64
	BestDay          string
	SubjectBreakdown []analytics.SubjectTotal
}
