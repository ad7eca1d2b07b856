package testutil

import (
	"time"

	"github.com/alexanderramin/studytrack/internal/domain"
	"github.com/google/uuid"
)

// Plan options
type PlanOption func(*domain.StudyPlan)

func WithTitle(title string) PlanOption {
	return func(p *domain.StudyPlan) {
		p.Title = title
	}
}

func WithDeadline(d time.Time) PlanOption {
	return func(p *domain.StudyPlan) {
		p.Deadline = d
	}
}

func WithEstimatedHours(h float64) PlanOption {
	return func(p *domain.StudyPlan) {
		p.EstimatedHours = h
	}
}

func WithCompletedHours(h float64) PlanOption {
	return func(p *domain.StudyPlan) {
		p.CompletedHours = h
	}
}

func WithPriority(pr domain.Priority) PlanOption {
	return func(p *domain.StudyPlan) {
		p.Priority = pr
	}
}

func NewTestPlan(subject string, opts ...PlanOption) *domain.StudyPlan {
	now := time.Now().UTC()
	p := &domain.StudyPlan{
		ID:             uuid.New().String(),
		Title:          subject + " Plan",
		Subject:        subject,
		Deadline:       now.AddDate(0, 1, 0),
		EstimatedHours: 10,
		Priority:       domain.PriorityMedium,
		CreatedAt:      now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Session options
type SessionOption func(*domain.StudySession)

func WithNotes(notes string) SessionOption {
	return func(s *domain.StudySession) {
		s.Notes = notes
	}
}

func WithCreatedAt(ts time.Time) SessionOption {
	return func(s *domain.StudySession) {
		s.CreatedAt = ts
		s.Date = ts.Truncate(24 * time.Hour)
	}
}

// WithDate sets only the calendar date, keeping CreatedAt.
func WithDate(d time.Time) SessionOption {
	return func(s *domain.StudySession) {
		s.Date = d
	}
}

func NewTestSession(subject string, minutes int, opts ...SessionOption) *domain.StudySession {
	now := time.Now().UTC()
	s := &domain.StudySession{
		ID:          uuid.New().String(),
		Subject:     subject,
		DurationMin: minutes,
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		CreatedAt:   now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
