package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable renders a simple aligned table with a header separator line.
// Headers use the Header style. Column widths follow the widest visible cell,
// measured with lipgloss so ANSI escape sequences do not skew alignment.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := columnWidths(headers, rows)

	var b strings.Builder

	headerCells := make([]string, len(headers))
	sepCells := make([]string, len(headers))
	for i, h := range headers {
		headerCells[i] = StyleHeader.Render(h) + pad(widths[i]-lipgloss.Width(h))
		sepCells[i] = StyleDim.Render(strings.Repeat("─", widths[i]))
	}
	b.WriteString(strings.TrimRight(strings.Join(headerCells, pad(colGap)), " ") + "\n")
	b.WriteString(strings.Join(sepCells, pad(colGap)) + "\n")

	for _, row := range rows {
		cells := make([]string, len(headers))
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = cell + pad(widths[i]-lipgloss.Width(cell))
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, pad(colGap)), " ") + "\n")
	}

	return b.String()
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
