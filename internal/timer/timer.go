// Package timer implements the countdown state machine behind the study
// timer. It holds no goroutines and never ticks itself; the caller (the
// timer TUI view) drives Tick once per second while the countdown runs.
package timer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/studytrack/internal/domain"
)

// DefaultMinutes is the configured countdown length.
const DefaultMinutes = 25

// Countdown tracks the remaining clock and the start instant of the current
// study session. All transitions are total: calling a method in a state it
// does not apply to is a no-op.
type Countdown struct {
	Minutes int
	Seconds int
	State   domain.TimerState

	// SessionStart is set when a countdown first starts and survives both
	// Pause and Reset. Only a successful session save clears it, so elapsed
	// time accounting spans pauses and timer resets.
	SessionStart *time.Time
}

// New returns an idle countdown at the default clock.
func New() *Countdown {
	return &Countdown{
		Minutes: DefaultMinutes,
		State:   domain.TimerIdle,
	}
}

// Start begins (or resumes) the countdown. SessionStart is recorded only if
// not already set, so pause/resume does not reset elapsed-time accounting.
func (c *Countdown) Start(now time.Time) {
	if c.State == domain.TimerRunning {
		return
	}
	if c.SessionStart == nil {
		t := now
		c.SessionStart = &t
	}
	c.State = domain.TimerRunning
}

// Pause stops the countdown without touching the clock or SessionStart.
func (c *Countdown) Pause() {
	if c.State != domain.TimerRunning {
		return
	}
	c.State = domain.TimerPaused
}

// Reset restores the default clock and returns to idle from any state.
// SessionStart is deliberately NOT cleared; see ClearSession.
func (c *Countdown) Reset() {
	c.Minutes = DefaultMinutes
	c.Seconds = 0
	c.State = domain.TimerIdle
}

// Tick advances the clock by one second while running. When the clock is
// already at 00:00, the session is complete: the countdown resets to idle
// and Tick reports true exactly once.
func (c *Countdown) Tick() (completed bool) {
	if c.State != domain.TimerRunning {
		return false
	}
	if c.Seconds == 0 {
		if c.Minutes == 0 {
			c.Reset()
			return true
		}
		c.Minutes--
		c.Seconds = 59
		return false
	}
	c.Seconds--
	return false
}

// ClearSession forgets the session start instant. Called by the session-save
// flow after the elapsed duration has been captured.
func (c *Countdown) ClearSession() {
	c.SessionStart = nil
}

// Running reports whether the countdown is actively ticking.
func (c *Countdown) Running() bool {
	return c.State == domain.TimerRunning
}

// Clock renders the remaining time as MM:SS.
func (c *Countdown) Clock() string {
	return fmt.Sprintf("%02d:%02d", c.Minutes, c.Seconds)
}

// ElapsedMinutes returns the minutes since SessionStart rounded to the
// nearest minute, or ok=false when no session has been started.
func (c *Countdown) ElapsedMinutes(now time.Time) (minutes int, ok bool) {
	if c.SessionStart == nil {
		return 0, false
	}
	return int(now.Sub(*c.SessionStart).Round(time.Minute) / time.Minute), true
}
