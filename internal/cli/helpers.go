package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}

func validatePositiveFloat(s string) error {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("enter a date as YYYY-MM-DD")
	}
	return nil
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("this field is required")
	}
	return nil
}

// flagChanged reports whether a flag was set explicitly on the command line,
// as opposed to holding its default value.
func flagChanged(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}

// resolvePlanID resolves user input to a full plan ID, accepting an exact
// UUID or an unambiguous prefix.
func resolvePlanID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("plan ID is required")
	}

	plans, err := app.Plans.List(ctx)
	if err != nil {
		return "", err
	}

	for _, p := range plans {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range plans {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("plan not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("plan ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
