package analytics

import (
	"testing"

	"github.com/alexanderramin/studytrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectTotals_GroupsAndRanks(t *testing.T) {
	sessions := []*domain.StudySession{
		sessionOn(today, "Math", 30),
		sessionOn(today, "Physics", 45),
		sessionOn(today.AddDate(0, 0, -1), "Math", 15),
	}

	totals := SubjectTotals(sessions)
	require.Len(t, totals, 2)

	// Both subjects total 45; ties order by subject ascending.
	assert.Equal(t, SubjectTotal{Subject: "Math", Minutes: 45}, totals[0])
	assert.Equal(t, SubjectTotal{Subject: "Physics", Minutes: 45}, totals[1])
}

func TestSubjectTotals_CaseSensitiveGrouping(t *testing.T) {
	sessions := []*domain.StudySession{
		sessionOn(today, "math", 30),
		sessionOn(today, "Math", 30),
	}
	assert.Len(t, SubjectTotals(sessions), 2)
}

func TestSubjectTotals_Empty(t *testing.T) {
	assert.Empty(t, SubjectTotals(nil))
}
