package analytics

import (
	"testing"
	"time"

	"github.com/alexanderramin/studytrack/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTodayTotal_IgnoresOtherDays(t *testing.T) {
	sessions := []*domain.StudySession{
		sessionOn(today, "Math", 30),
		sessionOn(today, "Physics", 20),
	}
	assert.Equal(t, 50, TodayTotal(sessions, today))

	// Adding sessions dated any other day leaves today's total invariant.
	sessions = append(sessions,
		sessionOn(today.AddDate(0, 0, -1), "Math", 90),
		sessionOn(today.AddDate(0, 0, 1), "Math", 90),
	)
	assert.Equal(t, 50, TodayTotal(sessions, today))
}

func TestWindowTotal_RollingWindow(t *testing.T) {
	sessions := []*domain.StudySession{
		sessionOn(today.Add(-2*24*time.Hour), "Math", 30),
		sessionOn(today.Add(-6*24*time.Hour), "Math", 40),
		sessionOn(today.Add(-8*24*time.Hour), "Math", 50),
		sessionOn(today.Add(-29*24*time.Hour), "Math", 60),
		sessionOn(today.Add(-31*24*time.Hour), "Math", 70),
	}
	assert.Equal(t, 70, WindowTotal(sessions, today, 7))
	assert.Equal(t, 180, WindowTotal(sessions, today, 30))
}

func TestAveragePerActiveDay(t *testing.T) {
	assert.Equal(t, 0.0, AveragePerActiveDay(nil))

	sessions := []*domain.StudySession{
		sessionOn(today, "Math", 30),
		sessionOn(today, "Physics", 30),
		sessionOn(today.AddDate(0, 0, -1), "Math", 60),
	}
	// 120 minutes over 2 active days.
	assert.InDelta(t, 60.0, AveragePerActiveDay(sessions), 1e-9)
}

func TestTotalMinutes(t *testing.T) {
	sessions := []*domain.StudySession{
		sessionOn(today, "Math", 30),
		sessionOn(today.AddDate(0, 0, -3), "Physics", 45),
	}
	assert.Equal(t, 75, TotalMinutes(sessions))
}
