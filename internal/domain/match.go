package domain

import "strings"

// Matches reports whether a session subject links to this plan.
// A session matches when the plan subject equals it case-insensitively, or
// when the plan title contains it as a case-insensitive substring. There is
// no stored foreign key; a session can match zero, one, or many plans.
func (p *StudyPlan) Matches(sessionSubject string) bool {
	if sessionSubject == "" {
		return false
	}
	needle := strings.ToLower(sessionSubject)
	return strings.ToLower(p.Subject) == needle ||
		strings.Contains(strings.ToLower(p.Title), needle)
}

// MatchingPlans returns every plan linked to the given session subject,
// preserving the input order. All matches are returned, not just the first.
func MatchingPlans(plans []*StudyPlan, sessionSubject string) []*StudyPlan {
	var matched []*StudyPlan
	for _, p := range plans {
		if p.Matches(sessionSubject) {
			matched = append(matched, p)
		}
	}
	return matched
}
