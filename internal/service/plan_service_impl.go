package service

import (
	"context"
	"time"

	"github.com/alexanderramin/studytrack/internal/domain"
	"github.com/alexanderramin/studytrack/internal/repository"
	"github.com/google/uuid"
)

type planService struct {
	plans repository.PlanRepo
}

func NewPlanService(plans repository.PlanRepo) PlanService {
	return &planService{plans: plans}
}

func (s *planService) Create(ctx context.Context, p *domain.StudyPlan) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Priority == "" {
		p.Priority = domain.PriorityMedium
	}
	p.CompletedHours = 0
	p.CreatedAt = time.Now().UTC()

	if err := p.Validate(); err != nil {
		return err
	}
	return s.plans.Create(ctx, p)
}

func (s *planService) GetByID(ctx context.Context, id string) (*domain.StudyPlan, error) {
	return s.plans.GetByID(ctx, id)
}

func (s *planService) List(ctx context.Context) ([]*domain.StudyPlan, error) {
	return s.plans.List(ctx)
}

// Delete removes a plan by id. Unknown ids are a no-op; confirmation is the
// caller's responsibility.
func (s *planService) Delete(ctx context.Context, id string) error {
	return s.plans.Delete(ctx, id)
}
