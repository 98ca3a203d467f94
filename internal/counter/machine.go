package counter

// DefaultInterval is the number of increments between celebrations.
const DefaultInterval = 10

// State is a snapshot of the widget state.
type State struct {
	Count             int
	Theme             Theme
	CelebrationActive bool
	ControlsLocked    bool
}

// Transition reports what an operation did to the machine.
type Transition struct {
	// Changed is false when the operation was a no-op.
	Changed bool
	// Celebrate is set when the operation entered the celebrating state.
	// Generation identifies that celebration.
	Celebrate  bool
	Generation uint64
	// Settled is set when the operation left the celebrating state.
	Settled bool
}

// Machine holds the counter state and enforces its transitions. The zero
// value is not usable; construct with New.
type Machine struct {
	state      State
	interval   int
	generation uint64
}

// Option customises a Machine at construction.
type Option func(*Machine)

// WithInterval sets how many increments separate celebrations.
// Values below 1 are ignored.
func WithInterval(n int) Option {
	return func(m *Machine) {
		if n >= 1 {
			m.interval = n
		}
	}
}

// WithTheme sets the initial theme.
func WithTheme(t Theme) Option {
	return func(m *Machine) {
		m.state.Theme = t
	}
}

// New creates a machine at count 0 with both flags cleared.
func New(opts ...Option) Machine {
	m := Machine{interval: DefaultInterval}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	return m.state
}

// Interval returns the celebration interval.
func (m *Machine) Interval() int {
	return m.interval
}

// Generation returns the generation of the most recent celebration, or 0
// if none has happened yet.
func (m *Machine) Generation() uint64 {
	return m.generation
}

// Increase adds one to the count. Landing on a positive multiple of the
// interval starts a celebration and locks the controls.
func (m *Machine) Increase() Transition {
	if m.state.ControlsLocked {
		return Transition{}
	}

	m.state.Count++
	tr := Transition{Changed: true}
	if m.state.Count%m.interval == 0 {
		m.generation++
		m.state.CelebrationActive = true
		m.state.ControlsLocked = true
		tr.Celebrate = true
		tr.Generation = m.generation
	}
	return tr
}

// Decrease subtracts one from the count. It never goes below zero and never
// celebrates.
func (m *Machine) Decrease() Transition {
	if m.state.ControlsLocked || m.state.Count == 0 {
		return Transition{}
	}
	m.state.Count--
	return Transition{Changed: true}
}

// Reset zeroes the count and clears both flags. It is accepted while
// celebrating; the caller is responsible for cancelling the pending timer.
func (m *Machine) Reset() Transition {
	settled := m.state.CelebrationActive || m.state.ControlsLocked
	changed := settled || m.state.Count != 0

	m.state.Count = 0
	m.state.CelebrationActive = false
	m.state.ControlsLocked = false

	return Transition{Changed: changed, Settled: settled}
}

// ToggleTheme flips the theme. Always permitted.
func (m *Machine) ToggleTheme() Transition {
	m.state.Theme = m.state.Theme.Toggled()
	return Transition{Changed: true}
}

// Expire ends the celebration identified by generation. Timeouts for an
// older celebration, or arriving after the celebration already ended, are
// ignored.
func (m *Machine) Expire(generation uint64) Transition {
	if generation != m.generation || !m.state.CelebrationActive {
		return Transition{}
	}
	m.state.CelebrationActive = false
	m.state.ControlsLocked = false
	return Transition{Changed: true, Settled: true}
}

// CanIncrease reports whether the Increase control is enabled.
func (m *Machine) CanIncrease() bool {
	return !m.state.ControlsLocked
}

// CanDecrease reports whether the Decrease control is enabled.
func (m *Machine) CanDecrease() bool {
	return !m.state.ControlsLocked && m.state.Count > 0
}

// CanReset reports whether the Reset control is enabled.
func (m *Machine) CanReset() bool {
	return !m.state.ControlsLocked
}

// Highlighted reports whether the displayed value sits on a milestone.
func (m *Machine) Highlighted() bool {
	return m.state.Count > 0 && m.state.Count%m.interval == 0
}

// ToggleLabel is the caption of the theme control for the current theme.
func (m *Machine) ToggleLabel() string {
	if m.state.Theme == ThemeLight {
		return "Toggle Dark Theme"
	}
	return "Toggle Light Theme"
}
