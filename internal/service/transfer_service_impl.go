package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/studytrack/internal/db"
	"github.com/alexanderramin/studytrack/internal/importer"
	"github.com/alexanderramin/studytrack/internal/repository"
)

type transferService struct {
	plans    repository.PlanRepo
	sessions repository.SessionRepo
	uow      db.UnitOfWork
}

func NewTransferService(plans repository.PlanRepo, sessions repository.SessionRepo, uow db.UnitOfWork) TransferService {
	return &transferService{plans: plans, sessions: sessions, uow: uow}
}

// Export writes the full database contents to a JSON transfer file.
func (s *transferService) Export(ctx context.Context, filePath string) (*TransferResult, error) {
	plans, err := s.plans.List(ctx)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, err
	}

	schema := importer.Export(plans, sessions)
	if err := importer.WriteExportSchema(schema, filePath); err != nil {
		return nil, err
	}

	return &TransferResult{PlanCount: len(plans), SessionCount: len(sessions)}, nil
}

// Import validates a transfer file and loads its records in one transaction.
// Records whose IDs already exist are skipped rather than overwritten.
func (s *transferService) Import(ctx context.Context, filePath string) (*TransferResult, error) {
	schema, err := importer.LoadExportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading transfer file: %w", err)
	}

	if errs := importer.ValidateExportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	plans, sessions, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting transfer file: %w", err)
	}

	result := &TransferResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		txSessions := repository.NewSQLiteSessionRepo(tx)

		for _, p := range plans {
			_, err := txPlans.GetByID(ctx, p.ID)
			if err == nil {
				result.SkippedCount++
				continue
			}
			if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			if err := txPlans.Create(ctx, p); err != nil {
				return fmt.Errorf("creating plan %q: %w", p.Title, err)
			}
			result.PlanCount++
		}

		for _, sess := range sessions {
			_, err := txSessions.GetByID(ctx, sess.ID)
			if err == nil {
				result.SkippedCount++
				continue
			}
			if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			if err := txSessions.Create(ctx, sess); err != nil {
				return fmt.Errorf("creating session %q: %w", sess.Subject, err)
			}
			result.SessionCount++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
