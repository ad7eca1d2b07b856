package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/studytrack/internal/app"
	"github.com/alexanderramin/studytrack/internal/repository"
	"github.com/alexanderramin/studytrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsFixture(t *testing.T) (StatsService, repository.PlanRepo, repository.SessionRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	plans := repository.NewSQLitePlanRepo(database)
	sessions := repository.NewSQLiteSessionRepo(database)
	return NewStatsService(plans, sessions), plans, sessions
}

func TestGetDashboard_EmptyState(t *testing.T) {
	svc, _, _ := newStatsFixture(t)

	resp, err := svc.GetDashboard(context.Background(), app.DashboardRequest{})
	require.NoError(t, err)
	assert.Zero(t, resp.TodayMinutes)
	assert.Zero(t, resp.StreakDays)
	assert.Zero(t, resp.ActivePlans)
	assert.Empty(t, resp.RecentSessions)
	assert.Empty(t, resp.Plans)
}

func TestGetDashboard_Aggregates(t *testing.T) {
	svc, plans, sessions := newStatsFixture(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

	require.NoError(t, plans.Create(ctx, testutil.NewTestPlan("Math",
		testutil.WithCompletedHours(5),
		testutil.WithEstimatedHours(10),
		testutil.WithDeadline(now.AddDate(0, 0, 10)),
	)))
	require.NoError(t, plans.Create(ctx, testutil.NewTestPlan("History",
		testutil.WithDeadline(now.AddDate(0, 0, -1)),
	)))

	require.NoError(t, sessions.Create(ctx, testutil.NewTestSession("Math", 60,
		testutil.WithCreatedAt(now.Add(-2*time.Hour)))))
	require.NoError(t, sessions.Create(ctx, testutil.NewTestSession("Physics", 60,
		testutil.WithCreatedAt(now.Add(-1*time.Hour)))))
	require.NoError(t, sessions.Create(ctx, testutil.NewTestSession("Math", 45,
		testutil.WithCreatedAt(now.AddDate(0, 0, -1)))))

	resp, err := svc.GetDashboard(ctx, app.DashboardRequest{Now: &now})
	require.NoError(t, err)

	assert.Equal(t, 120, resp.TodayMinutes)
	assert.InDelta(t, 50.0, resp.TodayGoalPct, 1e-9) // 120 of the 240-minute goal
	assert.Equal(t, 2, resp.StreakDays)
	assert.Equal(t, 165, resp.TotalMinutes)
	assert.Equal(t, 2, resp.ActivePlans)

	// Most recent first.
	require.Len(t, resp.RecentSessions, 3)
	assert.Equal(t, "Physics", resp.RecentSessions[0].Subject)

	require.Len(t, resp.Plans, 2)
	assert.InDelta(t, 50.0, resp.Plans[0].ProgressPct, 1e-9)
	assert.False(t, resp.Plans[0].Overdue)
	assert.True(t, resp.Plans[1].Overdue)
}

func TestGetDashboard_RecentSessionsCappedAtFive(t *testing.T) {
	svc, _, sessions := newStatsFixture(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		require.NoError(t, sessions.Create(ctx, testutil.NewTestSession("Math", 10,
			testutil.WithCreatedAt(now.Add(-time.Duration(i)*time.Hour)))))
	}

	resp, err := svc.GetDashboard(ctx, app.DashboardRequest{Now: &now})
	require.NoError(t, err)
	assert.Len(t, resp.RecentSessions, 5)
}

func TestGetAnalytics(t *testing.T) {
	svc, _, sessions := newStatsFixture(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	require.NoError(t, sessions.Create(ctx, testutil.NewTestSession("Math", 30,
		testutil.WithCreatedAt(now.Add(-24*time.Hour)))))
	require.NoError(t, sessions.Create(ctx, testutil.NewTestSession("Physics", 45,
		testutil.WithCreatedAt(now.Add(-10*24*time.Hour)))))

	resp, err := svc.GetAnalytics(ctx, app.AnalyticsRequest{Now: &now})
	require.NoError(t, err)

	assert.Equal(t, 30, resp.WeekMinutes)
	assert.Equal(t, 75, resp.MonthMinutes)
	assert.NotEqual(t, "-", resp.BestDay)
	require.Len(t, resp.SubjectBreakdown, 2)
	assert.Equal(t, "Physics", resp.SubjectBreakdown[0].Subject)
	assert.Equal(t, 45, resp.SubjectBreakdown[0].Minutes)
}
