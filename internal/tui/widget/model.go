package widget

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tally/internal/counter"
	"github.com/alexisbeaulieu97/tally/internal/logger"
	"github.com/alexisbeaulieu97/tally/internal/tui/components"
	"github.com/alexisbeaulieu97/tally/internal/tui/effects"
)

// Options configures a widget Model.
type Options struct {
	Interval            int
	CelebrationDuration time.Duration
	TransitionDuration  time.Duration
	Theme               counter.Theme
	Particles           int
	FPS                 int
	// Seed drives the confetti layout. Zero picks one from the clock.
	Seed   uint64
	Logger *logger.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// DefaultOptions returns the standard widget behaviour: a celebration every
// ten increments lasting nineteen seconds.
func DefaultOptions() Options {
	return Options{
		Interval:            counter.DefaultInterval,
		CelebrationDuration: 19 * time.Second,
		TransitionDuration:  500 * time.Millisecond,
		Theme:               counter.ThemeLight,
		Particles:           120,
		FPS:                 30,
	}
}

// celebrationTimer is the handle of the one outstanding lockout timer.
type celebrationTimer struct {
	generation uint64
	deadline   time.Time
	cancel     context.CancelFunc
}

// Model is the Bubble Tea model for the counter widget.
type Model struct {
	// Core state
	machine     counter.Machine
	celebration *celebrationTimer
	ctx         context.Context

	// Effects
	transition effects.Transition
	confetti   effects.Confetti
	animating  bool

	// UI state
	keys  keyMap
	help  help.Model
	focus Control

	// Size warning
	showError bool
	errorMsg  string

	// Dimensions
	width  int
	height int

	// Configuration
	celebrationDuration time.Duration
	fps                 int
	now                 func() time.Time
	log                 *logger.Logger
}

// NewModel creates a widget in its initial state. Timers armed by the
// widget are derived from ctx, so cancelling it releases them.
func NewModel(ctx context.Context, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	defaults := DefaultOptions()
	if opts.CelebrationDuration <= 0 {
		opts.CelebrationDuration = defaults.CelebrationDuration
	}
	if opts.FPS <= 0 {
		opts.FPS = defaults.FPS
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(opts.Clock().UnixNano())
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	now := opts.Clock()
	m := Model{
		machine:             counter.New(counter.WithInterval(opts.Interval), counter.WithTheme(opts.Theme)),
		ctx:                 ctx,
		transition:          effects.NewTransition(opts.TransitionDuration, 0, now),
		confetti:            effects.NewConfetti(effects.ConfettiOptions{Particles: opts.Particles, FPS: opts.FPS, Seed: opts.Seed}),
		keys:                defaultKeyMap(),
		help:                help.New(),
		focus:               ControlIncrease,
		celebrationDuration: opts.CelebrationDuration,
		fps:                 opts.FPS,
		now:                 opts.Clock,
		log:                 opts.Logger,
	}
	m.syncBindings()
	m.animating = m.transition.Active(now)

	return m
}

// Init plays the mount transition.
func (m Model) Init() tea.Cmd {
	if m.animating {
		return frameCmd(m.fps)
	}
	return nil
}

// Close cancels the pending celebration timer, if any. Call it once the
// program has exited.
func (m Model) Close() {
	if m.celebration != nil {
		m.celebration.cancel()
	}
}

// Helper Methods

// State returns the counter state.
func (m Model) State() counter.State {
	return m.machine.State()
}

// Focus returns the focused control.
func (m Model) Focus() Control {
	return m.focus
}

// PendingGeneration returns the generation of the armed celebration timer.
func (m Model) PendingGeneration() (uint64, bool) {
	if m.celebration == nil {
		return 0, false
	}
	return m.celebration.generation, true
}

// Remaining returns the lockout time left, or zero when not celebrating.
func (m Model) Remaining() time.Duration {
	if m.celebration == nil {
		return 0
	}
	left := m.celebration.deadline.Sub(m.now())
	if left < 0 {
		return 0
	}
	return left
}

// Enabled reports whether a control can currently be activated.
func (m Model) Enabled(c Control) bool {
	switch c {
	case ControlIncrease:
		return m.machine.CanIncrease()
	case ControlDecrease:
		return m.machine.CanDecrease()
	case ControlReset:
		return m.machine.CanReset()
	case ControlToggleTheme:
		return true
	default:
		return false
	}
}

// ConfettiActive reports whether the particle overlay is showing.
func (m Model) ConfettiActive() bool {
	return m.confetti.Active()
}

func (m *Model) syncBindings() {
	m.keys.setControlsEnabled(m.Enabled(ControlIncrease), m.Enabled(ControlDecrease), m.Enabled(ControlReset))
}

// moveFocus steps focus by delta, skipping disabled controls. The theme
// control is always enabled, so the loop terminates.
func (m *Model) moveFocus(delta int) {
	idx := 0
	for i, c := range controlOrder {
		if c == m.focus {
			idx = i
			break
		}
	}
	for range controlOrder {
		idx = (idx + delta + len(controlOrder)) % len(controlOrder)
		if m.Enabled(controlOrder[idx]) {
			m.focus = controlOrder[idx]
			return
		}
	}
}

func (m Model) countdown(width int) components.Countdown {
	p := PaletteFor(m.machine.State().Theme)
	return components.NewCountdown(m.celebrationDuration, width, p.CountdownLow, p.Highlight)
}
