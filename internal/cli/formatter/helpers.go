package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmaselli/roicanvas/internal/finance"
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
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

// Money renders a dollar amount compactly: $1.25M, $12.3K, $45.00.
func Money(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("$%.2fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("$%.1fK", v/1_000)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}

// Percent renders a percentage with one decimal place.
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// ROI renders an ROI figure, or "n/a" when the metric is undefined
// (zero total cost).
func ROI(m finance.Metrics) string {
	if m.ROIUndefined {
		return Dim("n/a")
	}
	return Percent(m.ROIPercent)
}

// Payback renders a payback period in months, or "Never" when monthly net
// benefit is not positive.
func Payback(m finance.Metrics) string {
	if m.PaybackNever {
		return StyleRed.Render("Never")
	}
	return fmt.Sprintf("%.0f mo", m.PaybackMonths)
}

// Date renders a calendar date in the canvas's display format.
func Date(t time.Time) string {
	return t.Format("Jan 2006")
}

// FullDate renders a day-precision date.
func FullDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// Score renders a 0-100 priority score with urgency coloring.
func Score(v float64) string {
	text := fmt.Sprintf("%.1f", v)
	switch {
	case v >= 70:
		return StyleGreen.Render(text)
	case v >= 40:
		return StyleYellow.Render(text)
	default:
		return StyleRed.Render(text)
	}
}
