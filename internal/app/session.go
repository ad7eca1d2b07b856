package app

import "time"

// RecordSessionRequest carries everything needed to record one study session.
type RecordSessionRequest struct {
	Subject string
	Notes   string

	// Minutes, when set, overrides duration derivation entirely.
	Minutes *int

	// SessionStart, when set and Minutes is not, derives the duration as the
	// rounded elapsed time since the timer first started.
	SessionStart *time.Time

	// Now overrides the reference instant; nil means time.Now().
	Now *time.Time
}

// RecordSessionResult reports what was recorded and which plans were credited.
type RecordSessionResult struct {
	SessionID      string
	DurationMin    int
	CreditedHours  float64  // hours added to each matched plan
	MatchedPlanIDs []string // every plan credited, in list order
}
