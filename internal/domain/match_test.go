package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches_SubjectCaseInsensitive(t *testing.T) {
	p := &StudyPlan{Title: "Algebra", Subject: "math"}
	assert.True(t, p.Matches("Math"))
	assert.True(t, p.Matches("MATH"))
	assert.False(t, p.Matches("Physics"))
}

func TestMatches_TitleSubstring(t *testing.T) {
	p := &StudyPlan{Title: "Linear Algebra Review", Subject: "Mathematics"}
	assert.True(t, p.Matches("algebra"))
	assert.True(t, p.Matches("linear algebra"))
	assert.False(t, p.Matches("calculus"))
}

func TestMatches_EmptySubject(t *testing.T) {
	p := &StudyPlan{Title: "Anything", Subject: "Anything"}
	assert.False(t, p.Matches(""))
}

func TestMatchingPlans_MultipleMatches(t *testing.T) {
	plans := []*StudyPlan{
		{ID: "a", Title: "Algebra", Subject: "Math"},
		{ID: "b", Title: "Math Olympiad Prep", Subject: "Competition"},
		{ID: "c", Title: "Chemistry", Subject: "Chemistry"},
	}

	matched := MatchingPlans(plans, "math")
	assert.Len(t, matched, 2)
	assert.Equal(t, "a", matched[0].ID)
	assert.Equal(t, "b", matched[1].ID)
}

func TestMatchingPlans_NoMatches(t *testing.T) {
	plans := []*StudyPlan{{Title: "Algebra", Subject: "Math"}}
	assert.Empty(t, MatchingPlans(plans, "history"))
}
