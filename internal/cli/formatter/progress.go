package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%. The percentage
// is expected on a 0-100 scale and is clamped to it. Coloring follows how
// close the plan is to done: green above 66%, yellow between 33% and 66%,
// red below.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 33:
		style = StyleRed
	case pct < 66:
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct)
}
