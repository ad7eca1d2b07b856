package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		name string
		min  int
		want string
	}{
		{"zero", 0, "0m"},
		{"negative clamps", -5, "0m"},
		{"minutes only", 45, "45m"},
		{"exact hour", 120, "2h"},
		{"mixed", 95, "1h 35m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinutes(tt.min))
		})
	}
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "2h", FormatHours(2))
	assert.Equal(t, "2.5h", FormatHours(2.5))
	assert.Equal(t, "0h", FormatHours(0))
}

func TestHumanDate(t *testing.T) {
	past := time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Sep 30, 2022", HumanDate(past))

	assert.Equal(t, "Today", HumanDate(time.Now()))
	assert.Equal(t, "Yesterday", HumanDate(time.Now().AddDate(0, 0, -1)))
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "Just now", HumanTimestamp(now))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour)))
}

func TestTruncID(t *testing.T) {
	got := TruncID("0123456789abcdef")
	assert.Contains(t, got, "01234567")
	assert.NotContains(t, got, "89abcdef")
}
