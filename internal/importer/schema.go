package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ExportSchema is the top-level JSON structure for data export and import.
type ExportSchema struct {
	Plans    []PlanExport    `json:"plans"`
	Sessions []SessionExport `json:"sessions"`
}

// PlanExport defines a study plan in the transfer file.
type PlanExport struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Subject        string  `json:"subject"`
	Goal           string  `json:"goal,omitempty"`
	Deadline       string  `json:"deadline"`
	EstimatedHours float64 `json:"estimated_hours"`
	CompletedHours float64 `json:"completed_hours"`
	Priority       string  `json:"priority"`
	CreatedAt      string  `json:"created_at"`
}

// SessionExport defines a study session in the transfer file.
type SessionExport struct {
	ID          string `json:"id"`
	Subject     string `json:"subject"`
	Notes       string `json:"notes,omitempty"`
	DurationMin int    `json:"duration_min"`
	Date        string `json:"date"`
	CreatedAt   string `json:"created_at"`
}

// LoadExportSchema reads and parses a transfer JSON file.
func LoadExportSchema(path string) (*ExportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ExportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing transfer file: %w", err)
	}
	return &schema, nil
}

// WriteExportSchema serializes a transfer document to a file, indented for
// human inspection.
func WriteExportSchema(schema *ExportSchema, path string) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding transfer file: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing transfer file: %w", err)
	}
	return nil
}
