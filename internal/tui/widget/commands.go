package widget

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// celebrationTimeoutCmd waits out the lockout for one celebration. It
// returns early when ctx is cancelled, which happens on every exit path
// other than the timeout itself.
func celebrationTimeoutCmd(ctx context.Context, generation uint64, d time.Duration) tea.Cmd {
	return func() tea.Msg {
		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
			return CelebrationTimeoutMsg{Generation: generation}
		case <-ctx.Done():
			return CelebrationCancelledMsg{Generation: generation}
		}
	}
}

// frameCmd schedules the next animation frame.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 30
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}
