package domain

import "time"

// StudySession is an immutable record of one completed study interval.
// Sessions are never updated or deleted once created.
type StudySession struct {
	ID          string
	Subject     string
	Notes       string
	DurationMin int
	Date        time.Time // calendar date, derived from CreatedAt
	CreatedAt   time.Time
}

// Validate checks the required creation fields.
func (s *StudySession) Validate() error {
	if s.Subject == "" {
		return &ValidationError{Field: "subject", Reason: "is required"}
	}
	if s.DurationMin < 0 {
		return &ValidationError{Field: "duration", Reason: "must not be negative"}
	}
	return nil
}
