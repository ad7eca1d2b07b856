package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/studytrack/internal/db"
	"github.com/alexanderramin/studytrack/internal/domain"
)

const sessionColumns = `id, subject, notes, duration_min, session_date, created_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.StudySession) error {
	query := `INSERT INTO study_sessions (` + sessionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Subject,
		s.Notes,
		s.DurationMin,
		s.Date.Format(dateLayout),
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting study session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

// List returns all sessions ordered by creation instant, oldest first.
func (r *SQLiteSessionRepo) List(ctx context.Context) ([]*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing study sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

// ListRecent returns sessions created within the last N days, newest first.
func (r *SQLiteSessionRepo) ListRecent(ctx context.Context, days int) ([]*domain.StudySession, error) {
	query := `SELECT ` + sessionColumns + ` FROM study_sessions
		WHERE created_at >= datetime('now', ? || ' days')
		ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, fmt.Sprintf("-%d", days))
	if err != nil {
		return nil, fmt.Errorf("listing recent study sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.StudySession, error) {
	var s domain.StudySession
	var dateStr, createdAtStr string

	err := row.Scan(&s.ID, &s.Subject, &s.Notes, &s.DurationMin, &dateStr, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("study session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning study session: %w", err)
	}

	return r.populateSession(&s, dateStr, createdAtStr)
}

// scanSessions scans multiple sessions from *sql.Rows.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.StudySession, error) {
	var sessions []*domain.StudySession
	for rows.Next() {
		var s domain.StudySession
		var dateStr, createdAtStr string

		err := rows.Scan(&s.ID, &s.Subject, &s.Notes, &s.DurationMin, &dateStr, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning study session row: %w", err)
		}

		session, parseErr := r.populateSession(&s, dateStr, createdAtStr)
		if parseErr != nil {
			return nil, parseErr
		}

		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating study sessions: %w", err)
	}
	return sessions, nil
}

// populateSession fills in parsed fields on a StudySession after scanning raw strings.
func (r *SQLiteSessionRepo) populateSession(s *domain.StudySession, dateStr, createdAtStr string) (*domain.StudySession, error) {
	var parseErr error
	s.Date, parseErr = parseDate(dateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing session_date: %w", parseErr)
	}
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}

	return s, nil
}
