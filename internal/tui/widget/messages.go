package widget

import "time"

// Control identifies one of the four buttons.
type Control int

const (
	ControlIncrease Control = iota
	ControlDecrease
	ControlReset
	ControlToggleTheme
)

var controlOrder = []Control{ControlIncrease, ControlDecrease, ControlReset, ControlToggleTheme}

func (c Control) String() string {
	switch c {
	case ControlIncrease:
		return "increase"
	case ControlDecrease:
		return "decrease"
	case ControlReset:
		return "reset"
	case ControlToggleTheme:
		return "toggle_theme"
	default:
		return "unknown"
	}
}

// Operation messages invoke the counter directly, bypassing the enabled
// state of the buttons. The machine still applies its own preconditions,
// so only Reset behaves differently from its button while locked.

// IncreaseMsg asks the counter to increase.
type IncreaseMsg struct{}

// DecreaseMsg asks the counter to decrease.
type DecreaseMsg struct{}

// ResetMsg asks the counter to reset, ending any celebration.
type ResetMsg struct{}

// ToggleThemeMsg asks the widget to switch palettes.
type ToggleThemeMsg struct{}

// Celebration timer messages

// CelebrationTimeoutMsg reports that the lockout for a celebration elapsed.
type CelebrationTimeoutMsg struct {
	Generation uint64
}

// CelebrationCancelledMsg reports that a pending timer was cancelled
// before it fired.
type CelebrationCancelledMsg struct {
	Generation uint64
}

// Animation messages

// FrameMsg advances the running animations.
type FrameMsg struct {
	Time time.Time
}
