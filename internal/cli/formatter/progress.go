package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"

	shareBarWidth = 16
)

// RenderShare renders a share bar like ████░░░░  45% in the given style.
func RenderShare(pct float64, width int, style lipgloss.Style) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled == 0 && pct > 0 {
		filled = 1
	}
	empty := width - filled

	bar := style.Render(strings.Repeat(filledBlock, filled)) + StyleDim.Render(strings.Repeat(emptyBlock, empty))
	return fmt.Sprintf("%s %3.0f%%", bar, pct*100)
}
