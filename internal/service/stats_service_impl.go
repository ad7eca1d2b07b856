package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/studytrack/internal/analytics"
	"github.com/alexanderramin/studytrack/internal/app"
	"github.com/alexanderramin/studytrack/internal/repository"
)

type statsService struct {
	plans    repository.PlanRepo
	sessions repository.SessionRepo
}

func NewStatsService(plans repository.PlanRepo, sessions repository.SessionRepo) StatsService {
	return &statsService{plans: plans, sessions: sessions}
}

func (s *statsService) GetDashboard(ctx context.Context, req app.DashboardRequest) (*app.DashboardResponse, error) {
	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}
	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading plans: %w", err)
	}

	todayMin := analytics.TodayTotal(sessions, now)
	goalPct := float64(todayMin) / app.DailyGoalMin * 100
	if goalPct > 100 {
		goalPct = 100
	}

	resp := &app.DashboardResponse{
		GeneratedAt:  now,
		TodayMinutes: todayMin,
		TodayGoalPct: goalPct,
		StreakDays:   analytics.Streak(sessions, now),
		TotalMinutes: analytics.TotalMinutes(sessions),
		ActivePlans:  len(plans),
	}

	for i := len(sessions) - 1; i >= 0 && len(resp.RecentSessions) < app.RecentSessionLimit; i-- {
		resp.RecentSessions = append(resp.RecentSessions, sessions[i])
	}

	for _, p := range plans {
		left := analytics.DaysLeft(p.Deadline, now)
		resp.Plans = append(resp.Plans, app.PlanView{
			Plan:        p,
			ProgressPct: analytics.PlanProgressPct(p),
			DaysLeft:    left,
			Overdue:     left <= 0,
		})
	}

	return resp, nil
}

func (s *statsService) GetAnalytics(ctx context.Context, req app.AnalyticsRequest) (*app.AnalyticsResponse, error) {
	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}

	return &app.AnalyticsResponse{
		GeneratedAt:      now,
		WeekMinutes:      analytics.WindowTotal(sessions, now, 7),
		MonthMinutes:     analytics.WindowTotal(sessions, now, 30),
		AvgPerActiveDay:  analytics.AveragePerActiveDay(sessions),
		BestDay:          analytics.BestDay(sessions),
		SubjectBreakdown: analytics.SubjectTotals(sessions),
	}, nil
}
