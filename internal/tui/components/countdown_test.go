package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCountdownRatio(t *testing.T) {
	t.Parallel()

	c := NewCountdown(20*time.Second, 20, "#22c55e", "#3b82f6")

	require.Equal(t, 1.0, c.Ratio(20*time.Second))
	require.Equal(t, 0.5, c.Ratio(10*time.Second))
	require.Equal(t, 0.0, c.Ratio(0))
	require.Equal(t, 0.0, c.Ratio(-time.Second))
	require.Equal(t, 1.0, c.Ratio(time.Minute), "ratio is capped")

	zero := NewCountdown(0, 20, "#22c55e", "#3b82f6")
	require.Equal(t, 0.0, zero.Ratio(time.Second))
}

func TestCountdownView(t *testing.T) {
	t.Parallel()

	t.Run("rounds seconds up", func(t *testing.T) {
		t.Parallel()
		c := NewCountdown(19*time.Second, 20, "#22c55e", "#3b82f6")
		view := c.View(18*time.Second + 100*time.Millisecond)
		require.Contains(t, view, "19s")
	})

	t.Run("clamps negative remaining", func(t *testing.T) {
		t.Parallel()
		c := NewCountdown(19*time.Second, 20, "#22c55e", "#3b82f6")
		view := c.View(-5 * time.Second)
		require.Contains(t, view, " 0s")
	})

	t.Run("bar takes up space", func(t *testing.T) {
		t.Parallel()
		c := NewCountdown(19*time.Second, 20, "#22c55e", "#3b82f6")
		view := c.View(10 * time.Second)
		require.True(t, len(strings.TrimSpace(view)) > len("10s"),
			"expected view to contain a bar in addition to the label")
	})
}
