package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/studytrack/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type PlanRepo interface {
	Create(ctx context.Context, p *domain.StudyPlan) error
	GetByID(ctx context.Context, id string) (*domain.StudyPlan, error)
	List(ctx context.Context) ([]*domain.StudyPlan, error)
	Update(ctx context.Context, p *domain.StudyPlan) error
	Delete(ctx context.Context, id string) error
}

// SessionRepo deliberately has no Update or Delete: study sessions are
// immutable once recorded.
type SessionRepo interface {
	Create(ctx context.Context, s *domain.StudySession) error
	GetByID(ctx context.Context, id string) (*domain.StudySession, error)
	List(ctx context.Context) ([]*domain.StudySession, error)
	ListRecent(ctx context.Context, days int) ([]*domain.StudySession, error)
}
