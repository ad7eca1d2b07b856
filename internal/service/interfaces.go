package service

import (
	"context"

	"github.com/alexanderramin/studytrack/internal/app"
	"github.com/alexanderramin/studytrack/internal/domain"
)

type PlanService interface {
	Create(ctx context.Context, p *domain.StudyPlan) error
	GetByID(ctx context.Context, id string) (*domain.StudyPlan, error)
	List(ctx context.Context) ([]*domain.StudyPlan, error)
	Delete(ctx context.Context, id string) error
}

type SessionService interface {
	RecordSession(ctx context.Context, req app.RecordSessionRequest) (*app.RecordSessionResult, error)
	List(ctx context.Context) ([]*domain.StudySession, error)
	ListRecent(ctx context.Context, days int) ([]*domain.StudySession, error)
}

type StatsService interface {
	GetDashboard(ctx context.Context, req app.DashboardRequest) (*app.DashboardResponse, error)
	GetAnalytics(ctx context.Context, req app.AnalyticsRequest) (*app.AnalyticsResponse, error)
}

// TransferResult summarizes an export or import run.
type TransferResult struct {
	PlanCount    int
	SessionCount int
	SkippedCount int
}

type TransferService interface {
	Export(ctx context.Context, filePath string) (*TransferResult, error)
	Import(ctx context.Context, filePath string) (*TransferResult, error)
}
