package repository

import "time"

const dateLayout = "2006-01-02"

// parseDate parses a stored calendar date, truncating any time component.
func parseDate(s string) (time.Time, error) {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	return time.Parse(dateLayout, s)
}
