package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/studytrack/internal/domain"
)

// ValidateExportSchema checks the transfer document for errors before
// conversion. Returns a slice of all validation errors found.
func ValidateExportSchema(schema *ExportSchema) []error {
	var errs []error

	seenPlans := make(map[string]bool)
	for i, p := range schema.Plans {
		errs = append(errs, validatePlan(i, &p, seenPlans)...)
	}

	seenSessions := make(map[string]bool)
	for i, s := range schema.Sessions {
		errs = append(errs, validateSession(i, &s, seenSessions)...)
	}

	return errs
}

func validatePlan(i int, p *PlanExport, seen map[string]bool) []error {
	var errs []error

	if p.ID == "" {
		errs = append(errs, fmt.Errorf("plans[%d].id is required", i))
	} else if seen[p.ID] {
		errs = append(errs, fmt.Errorf("plans[%d].id %q is duplicated", i, p.ID))
	} else {
		seen[p.ID] = true
	}
	if p.Title == "" {
		errs = append(errs, fmt.Errorf("plans[%d].title is required", i))
	}
	if p.Subject == "" {
		errs = append(errs, fmt.Errorf("plans[%d].subject is required", i))
	}
	if p.Deadline == "" {
		errs = append(errs, fmt.Errorf("plans[%d].deadline is required", i))
	} else if _, err := time.Parse("2006-01-02", p.Deadline); err != nil {
		errs = append(errs, fmt.Errorf("plans[%d].deadline: invalid date format %q (expected YYYY-MM-DD)", i, p.Deadline))
	}
	if p.EstimatedHours <= 0 {
		errs = append(errs, fmt.Errorf("plans[%d].estimated_hours must be positive", i))
	}
	if p.CompletedHours < 0 {
		errs = append(errs, fmt.Errorf("plans[%d].completed_hours must not be negative", i))
	}
	if p.Priority != "" && !domain.ValidPriorities[p.Priority] {
		errs = append(errs, fmt.Errorf("plans[%d].priority: invalid value %q", i, p.Priority))
	}
	if p.CreatedAt != "" {
		if _, err := time.Parse(time.RFC3339, p.CreatedAt); err != nil {
			errs = append(errs, fmt.Errorf("plans[%d].created_at: invalid timestamp %q (expected RFC 3339)", i, p.CreatedAt))
		}
	}

	return errs
}

func validateSession(i int, s *SessionExport, seen map[string]bool) []error {
	var errs []error

	if s.ID == "" {
		errs = append(errs, fmt.Errorf("sessions[%d].id is required", i))
	} else if seen[s.ID] {
		errs = append(errs, fmt.Errorf("sessions[%d].id %q is duplicated", i, s.ID))
	} else {
		seen[s.ID] = true
	}
	if s.Subject == "" {
		errs = append(errs, fmt.Errorf("sessions[%d].subject is required", i))
	}
	if s.DurationMin < 0 {
		errs = append(errs, fmt.Errorf("sessions[%d].duration_min must not be negative", i))
	}
	if s.Date == "" {
		errs = append(errs, fmt.Errorf("sessions[%d].date is required", i))
	} else if _, err := time.Parse("2006-01-02", s.Date); err != nil {
		errs = append(errs, fmt.Errorf("sessions[%d].date: invalid date format %q (expected YYYY-MM-DD)", i, s.Date))
	}
	if s.CreatedAt != "" {
		if _, err := time.Parse(time.RFC3339, s.CreatedAt); err != nil {
			errs = append(errs, fmt.Errorf("sessions[%d].created_at: invalid timestamp %q (expected RFC 3339)", i, s.CreatedAt))
		}
	}

	return errs
}
