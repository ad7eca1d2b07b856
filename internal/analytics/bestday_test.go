package analytics

import (
	"testing"
	"time"

	"github.com/alexanderramin/studytrack/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBestDay_Empty(t *testing.T) {
	assert.Equal(t, "-", BestDay(nil))
}

func TestBestDay_MaxWeekdayWins(t *testing.T) {
	monday := time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Monday, monday.Weekday())

	sessions := []*domain.StudySession{
		sessionOn(monday, "Math", 90),
		sessionOn(monday.AddDate(0, 0, 1), "Math", 30),  // Tuesday
		sessionOn(monday.AddDate(0, 0, 7), "Math", 30),  // next Monday
		sessionOn(monday.AddDate(0, 0, 2), "Math", 100), // Wednesday
	}
	assert.Equal(t, "Monday", BestDay(sessions))
}

func TestBestDay_TieBreaksToEarliestWeekday(t *testing.T) {
	sunday := time.Date(2025, 6, 8, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Sunday, sunday.Weekday())

	sessions := []*domain.StudySession{
		sessionOn(sunday.AddDate(0, 0, 3), "Math", 60), // Wednesday
		sessionOn(sunday, "Math", 60),                  // Sunday
	}
	assert.Equal(t, "Sunday", BestDay(sessions))
}
