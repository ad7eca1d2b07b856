package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/studytrack/internal/domain"
)

// Convert transforms a validated transfer document into domain objects ready
// for persistence. Call ValidateExportSchema first; Convert assumes the
// schema is valid.
func Convert(schema *ExportSchema) ([]*domain.StudyPlan, []*domain.StudySession, error) {
	now := time.Now().UTC()

	plans := make([]*domain.StudyPlan, 0, len(schema.Plans))
	for _, p := range schema.Plans {
		deadline, err := time.Parse("2006-01-02", p.Deadline)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing plan %s deadline: %w", p.ID, err)
		}

		priority := domain.Priority(p.Priority)
		if p.Priority == "" {
			priority = domain.PriorityMedium
		}

		createdAt := now
		if p.CreatedAt != "" {
			createdAt, err = time.Parse(time.RFC3339, p.CreatedAt)
			if err != nil {
				return nil, nil, fmt.Errorf("parsing plan %s created_at: %w", p.ID, err)
			}
		}

		plans = append(plans, &domain.StudyPlan{
			ID:             p.ID,
			Title:          p.Title,
			Subject:        p.Subject,
			Goal:           p.Goal,
			Deadline:       deadline,
			EstimatedHours: p.EstimatedHours,
			CompletedHours: p.CompletedHours,
			Priority:       priority,
			CreatedAt:      createdAt,
		})
	}

	sessions := make([]*domain.StudySession, 0, len(schema.Sessions))
	for _, s := range schema.Sessions {
		date, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing session %s date: %w", s.ID, err)
		}

		createdAt := now
		if s.CreatedAt != "" {
			createdAt, err = time.Parse(time.RFC3339, s.CreatedAt)
			if err != nil {
				return nil, nil, fmt.Errorf("parsing session %s created_at: %w", s.ID, err)
			}
		}

		sessions = append(sessions, &domain.StudySession{
			ID:          s.ID,
			Subject:     s.Subject,
			Notes:       s.Notes,
			DurationMin: s.DurationMin,
			Date:        date,
			CreatedAt:   createdAt,
		})
	}

	return plans, sessions, nil
}

// Export builds a transfer document from domain objects. The inverse of
// Convert; round-tripping preserves every field.
func Export(plans []*domain.StudyPlan, sessions []*domain.StudySession) *ExportSchema {
	schema := &ExportSchema{
		Plans:    make([]PlanExport, 0, len(plans)),
		Sessions: make([]SessionExport, 0, len(sessions)),
	}

	for _, p := range plans {
		schema.Plans = append(schema.Plans, PlanExport{
			ID:             p.ID,
			Title:          p.Title,
			Subject:        p.Subject,
			Goal:           p.Goal,
			Deadline:       p.Deadline.Format("2006-01-02"),
			EstimatedHours: p.EstimatedHours,
			CompletedHours: p.CompletedHours,
			Priority:       string(p.Priority),
			CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		})
	}

	for _, s := range sessions {
		schema.Sessions = append(schema.Sessions, SessionExport{
			ID:          s.ID,
			Subject:     s.Subject,
			Notes:       s.Notes,
			DurationMin: s.DurationMin,
			Date:        s.Date.Format("2006-01-02"),
			CreatedAt:   s.CreatedAt.Format(time.RFC3339),
		})
	}

	return schema
}
