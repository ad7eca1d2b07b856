package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/studytrack/internal/analytics"
	"github.com/alexanderramin/studytrack/internal/app"
	"github.com/alexanderramin/studytrack/internal/domain"
	"github.com/stretchr/testify/assert"
)

func samplePlanView() app.PlanView {
	return app.PlanView{
		Plan: &domain.StudyPlan{
			ID:             "11112222-3333-4444-5555-666677778888",
			Title:          "Algebra",
			Subject:        "Math",
			EstimatedHours: 10,
			CompletedHours: 5,
			Priority:       domain.PriorityHigh,
			Deadline:       time.Now().AddDate(0, 0, 10),
		},
		ProgressPct: 50,
		DaysLeft:    10,
	}
}

func TestFormatDashboard(t *testing.T) {
	resp := &app.DashboardResponse{
		TodayMinutes: 120,
		TodayGoalPct: 50,
		StreakDays:   3,
		TotalMinutes: 600,
		ActivePlans:  1,
		RecentSessions: []*domain.StudySession{
			{Subject: "Math", DurationMin: 25, Notes: "limits", CreatedAt: time.Now()},
		},
		Plans: []app.PlanView{samplePlanView()},
	}

	out := FormatDashboard(resp)
	assert.Contains(t, out, "DASHBOARD")
	assert.Contains(t, out, "2h")
	assert.Contains(t, out, "3 days")
	assert.Contains(t, out, "Algebra")
	assert.Contains(t, out, "limits")
}

func TestFormatDashboard_NoStreak(t *testing.T) {
	out := FormatDashboard(&app.DashboardResponse{})
	assert.Contains(t, out, "no streak")
}

func TestFormatPlanList(t *testing.T) {
	out := FormatPlanList([]app.PlanView{samplePlanView()})
	assert.Contains(t, out, "Algebra")
	assert.Contains(t, out, "HIGH")
	assert.Contains(t, out, "11112222")

	empty := FormatPlanList(nil)
	assert.Contains(t, empty, "No study plans")
}

func TestFormatPlanList_Overdue(t *testing.T) {
	v := samplePlanView()
	v.Overdue = true
	v.DaysLeft = -2

	out := FormatPlanList([]app.PlanView{v})
	assert.Contains(t, out, "OVERDUE")
}

func TestFormatSessionList(t *testing.T) {
	sessions := []*domain.StudySession{
		{Subject: "Physics", DurationMin: 90, CreatedAt: time.Now()},
	}
	out := FormatSessionList(sessions)
	assert.Contains(t, out, "Physics")
	assert.Contains(t, out, "1h 30m")

	assert.Contains(t, FormatSessionList(nil), "No study sessions")
}

func TestFormatAnalytics(t *testing.T) {
	resp := &app.AnalyticsResponse{
		WeekMinutes:      150,
		MonthMinutes:     600,
		AvgPerActiveDay:  45,
		BestDay:          "Tuesday",
		SubjectBreakdown: []analytics.SubjectTotal{{Subject: "Math", Minutes: 300}},
	}

	out := FormatAnalytics(resp)
	assert.Contains(t, out, "Tuesday")
	assert.Contains(t, out, "Math")
	assert.Contains(t, out, "5h")
}
