package service

import (
	"context"
	"math"
	"time"

	"github.com/alexanderramin/studytrack/internal/app"
	"github.com/alexanderramin/studytrack/internal/db"
	"github.com/alexanderramin/studytrack/internal/domain"
	"github.com/alexanderramin/studytrack/internal/repository"
	"github.com/alexanderramin/studytrack/internal/timer"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions repository.SessionRepo
	plans    repository.PlanRepo
	uow      db.UnitOfWork
}

func NewSessionService(sessions repository.SessionRepo, plans repository.PlanRepo, uow db.UnitOfWork) SessionService {
	return &sessionService{sessions: sessions, plans: plans, uow: uow}
}

// RecordSession creates an immutable session record and, in the same
// transaction, credits the session's hours to EVERY matching plan — not just
// the first match. Matching is the fuzzy subject/title predicate on the
// domain type.
func (s *sessionService) RecordSession(ctx context.Context, req app.RecordSessionRequest) (*app.RecordSessionResult, error) {
	now := time.Now()
	if req.Now != nil {
		now = *req.Now
	}

	minutes := deriveDuration(req, now)

	session := &domain.StudySession{
		ID:          uuid.New().String(),
		Subject:     req.Subject,
		Notes:       req.Notes,
		DurationMin: minutes,
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		CreatedAt:   now.UTC(),
	}
	if err := session.Validate(); err != nil {
		return nil, err
	}

	credited := math.Round(float64(minutes)/60*10) / 10
	result := &app.RecordSessionResult{
		SessionID:     session.ID,
		DurationMin:   minutes,
		CreditedHours: credited,
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		txPlans := repository.NewSQLitePlanRepo(tx)

		if err := txSessions.Create(ctx, session); err != nil {
			return err
		}

		plans, err := txPlans.List(ctx)
		if err != nil {
			return err
		}
		for _, p := range domain.MatchingPlans(plans, session.Subject) {
			p.ApplySession(minutes)
			if err := txPlans.Update(ctx, p); err != nil {
				return err
			}
			result.MatchedPlanIDs = append(result.MatchedPlanIDs, p.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// deriveDuration picks the session length: an explicit override wins, then
// the elapsed time since the timer's session start, then the default timer
// length as a fallback.
func deriveDuration(req app.RecordSessionRequest, now time.Time) int {
	if req.Minutes != nil {
		return *req.Minutes
	}
	if req.SessionStart != nil {
		return int(now.Sub(*req.SessionStart).Round(time.Minute) / time.Minute)
	}
	return timer.DefaultMinutes
}

func (s *sessionService) List(ctx context.Context) ([]*domain.StudySession, error) {
	return s.sessions.List(ctx)
}

func (s *sessionService) ListRecent(ctx context.Context, days int) ([]*domain.StudySession, error) {
	return s.sessions.ListRecent(ctx, days)
}
