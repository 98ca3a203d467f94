package components

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Countdown renders how much of a lockout remains.
type Countdown struct {
	bar   progress.Model
	total time.Duration
	label lipgloss.Style
}

// NewCountdown creates a countdown for a lockout of the given length,
// drawn with a gradient between the two colours.
func NewCountdown(total time.Duration, width int, from, to string) Countdown {
	bar := progress.New(progress.WithGradient(from, to), progress.WithoutPercentage())
	bar.Width = width
	return Countdown{bar: bar, total: total, label: lipgloss.NewStyle().Bold(true)}
}

// WithLabelStyle returns a copy using style for the seconds label.
func (c Countdown) WithLabelStyle(style lipgloss.Style) Countdown {
	c.label = style
	return c
}

// Ratio is the fraction of the lockout still remaining, clamped to [0, 1].
func (c Countdown) Ratio(remaining time.Duration) float64 {
	if c.total <= 0 || remaining <= 0 {
		return 0
	}
	return math.Min(1.0, float64(remaining)/float64(c.total))
}

// View renders the bar for the remaining duration, with whole seconds
// rounded up so the label never reads 0s while still locked.
func (c Countdown) View(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	secs := int(math.Ceil(remaining.Seconds()))
	label := c.label.Render(fmt.Sprintf("%2ds", secs))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", c.bar.ViewAs(c.Ratio(remaining)))
}
