package domain

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"low": true, "medium": true, "high": true,
}

type TimerState string

const (
	TimerIdle    TimerState = "idle"
	TimerRunning TimerState = "running"
	TimerPaused  TimerState = "paused"
)
