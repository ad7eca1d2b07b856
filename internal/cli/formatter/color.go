package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studytrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PriorityBadge returns a colored priority indicator such as "▲ HIGH".
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("▲ HIGH")
	case domain.PriorityMedium:
		return StyleYellow.Render("● MEDIUM")
	case domain.PriorityLow:
		return StyleBlue.Render("▽ LOW")
	default:
		return StyleDim.Render(string(p))
	}
}

// DeadlineLabel renders a days-left count with urgency coloring. Negative or
// zero days means the deadline has passed.
func DeadlineLabel(daysLeft int) string {
	switch {
	case daysLeft <= 0:
		return StyleRed.Render("OVERDUE")
	case daysLeft == 1:
		return StyleRed.Render("1 day left")
	case daysLeft <= 7:
		return StyleYellow.Render(fmt.Sprintf("%d days left", daysLeft))
	default:
		return StyleFg.Render(fmt.Sprintf("%d days left", daysLeft))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
