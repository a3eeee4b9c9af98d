package formatter

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatDuration renders d as a single humanized unit such as "3 hours",
// "1 day" or "45 minutes". Sub-second durations render as "0 seconds".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	base := time.Unix(0, 0)
	s := strings.TrimSpace(humanize.RelTime(base, base.Add(d), "", ""))
	if s == "now" {
		return "0 seconds"
	}
	return s
}

// FormatSeconds is FormatDuration for the API's fractional second totals.
func FormatSeconds(seconds float64) string {
	return FormatDuration(time.Duration(math.Round(seconds)) * time.Second)
}

// FormatHours renders a whole number of hours, e.g. "1 hour" or "1,204 hours".
func FormatHours(hours int) string {
	if hours == 1 {
		return "1 hour"
	}
	return humanize.Comma(int64(hours)) + " hours"
}

// Share returns part/total in [0,1], or 0 when total is not positive.
func Share(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total
}
