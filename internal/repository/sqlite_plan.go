package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/studytrack/internal/db"
	"github.com/alexanderramin/studytrack/internal/domain"
)

const planColumns = `id, title, subject, goal, deadline, estimated_hours, completed_hours, priority, created_at`

// SQLitePlanRepo implements PlanRepo using a SQLite database.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(db db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.StudyPlan) error {
	query := `INSERT INTO study_plans (` + planColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Title,
		p.Subject,
		p.Goal,
		p.Deadline.Format(dateLayout),
		p.EstimatedHours,
		p.CompletedHours,
		string(p.Priority),
		p.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting study plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.StudyPlan, error) {
	query := `SELECT ` + planColumns + ` FROM study_plans WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanPlan(row)
}

// List returns all plans in creation order, which the display layer relies
// on for stable listing.
func (r *SQLitePlanRepo) List(ctx context.Context) ([]*domain.StudyPlan, error) {
	query := `SELECT ` + planColumns + ` FROM study_plans ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing study plans: %w", err)
	}
	defer rows.Close()
	return r.scanPlans(rows)
}

func (r *SQLitePlanRepo) Update(ctx context.Context, p *domain.StudyPlan) error {
	query := `UPDATE study_plans
		SET title = ?, subject = ?, goal = ?, deadline = ?,
		    estimated_hours = ?, completed_hours = ?, priority = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.Title,
		p.Subject,
		p.Goal,
		p.Deadline.Format(dateLayout),
		p.EstimatedHours,
		p.CompletedHours,
		string(p.Priority),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating study plan: %w", err)
	}
	return nil
}

// Delete removes a plan. Deleting an unknown id is a no-op.
func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM study_plans WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting study plan: %w", err)
	}
	return nil
}

// scanPlan scans a single plan from a *sql.Row.
func (r *SQLitePlanRepo) scanPlan(row *sql.Row) (*domain.StudyPlan, error) {
	var p domain.StudyPlan
	var priority, deadlineStr, createdAtStr string

	err := row.Scan(
		&p.ID, &p.Title, &p.Subject, &p.Goal, &deadlineStr,
		&p.EstimatedHours, &p.CompletedHours, &priority, &createdAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("study plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning study plan: %w", err)
	}

	return r.populatePlan(&p, priority, deadlineStr, createdAtStr)
}

// scanPlans scans multiple plans from *sql.Rows.
func (r *SQLitePlanRepo) scanPlans(rows *sql.Rows) ([]*domain.StudyPlan, error) {
	var plans []*domain.StudyPlan
	for rows.Next() {
		var p domain.StudyPlan
		var priority, deadlineStr, createdAtStr string

		err := rows.Scan(
			&p.ID, &p.Title, &p.Subject, &p.Goal, &deadlineStr,
			&p.EstimatedHours, &p.CompletedHours, &priority, &createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning study plan row: %w", err)
		}

		plan, parseErr := r.populatePlan(&p, priority, deadlineStr, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}

		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating study plans: %w", err)
	}
	return plans, nil
}

// populatePlan fills in parsed fields on a StudyPlan after scanning raw strings.
func (r *SQLitePlanRepo) populatePlan(p *domain.StudyPlan, priority, deadlineStr, createdAtStr string) (*domain.StudyPlan, error) {
	p.Priority = domain.Priority(priority)

	var parseErr error
	p.Deadline, parseErr = parseDate(deadlineStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing deadline: %w", parseErr)
	}
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}

	return p, nil
}
