package domain

import (
	"math"
	"time"
)

type StudyPlan struct {
	ID             string
	Title          string
	Subject        string
	Goal           string
	Deadline       time.Time
	EstimatedHours float64
	CompletedHours float64
	Priority       Priority
	CreatedAt      time.Time
}

// Validate checks the required creation fields. CompletedHours is not
// validated against EstimatedHours; progress is clamped only for display.
func (p *StudyPlan) Validate() error {
	if p.Title == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if p.Subject == "" {
		return &ValidationError{Field: "subject", Reason: "is required"}
	}
	if p.Deadline.IsZero() {
		return &ValidationError{Field: "deadline", Reason: "is required"}
	}
	if p.EstimatedHours <= 0 {
		return &ValidationError{Field: "estimated_hours", Reason: "must be positive"}
	}
	if !ValidPriorities[string(p.Priority)] {
		return &ValidationError{Field: "priority", Reason: "must be low, medium, or high"}
	}
	return nil
}

// ApplySession credits a session's minutes against this plan, rounded to one
// decimal hour (30 min -> 0.5h).
func (p *StudyPlan) ApplySession(minutes int) {
	p.CompletedHours += math.Round(float64(minutes)/60*10) / 10
}
