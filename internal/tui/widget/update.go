package widget

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tally/internal/counter"
)

const (
	minWidth  = 40
	minHeight = 20
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.confetti = m.confetti.SetSize(msg.Width, msg.Height)

		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, "Terminal too small") {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	// Direct operations
	case IncreaseMsg:
		return m.apply(ControlIncrease, m.machine.Increase())

	case DecreaseMsg:
		return m.apply(ControlDecrease, m.machine.Decrease())

	case ResetMsg:
		return m.apply(ControlReset, m.machine.Reset())

	case ToggleThemeMsg:
		return m.apply(ControlToggleTheme, m.machine.ToggleTheme())

	// Celebration timer
	case CelebrationTimeoutMsg:
		return m.handleTimeout(msg)

	case CelebrationCancelledMsg:
		m.log.WithFields(map[string]any{"generation": msg.Generation}).Debug("celebration timer cancelled")
		return m, nil

	// Animation
	case FrameMsg:
		m.confetti = m.confetti.Step()
		if m.needsFrames() {
			return m, frameCmd(m.fps)
		}
		m.animating = false
		return m, nil
	}

	return m, nil
}

// handleKeyPress maps keys onto controls
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.disarm()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Press):
		return m.activate(m.focus)

	case key.Matches(msg, m.keys.Theme):
		return m.activate(ControlToggleTheme)
	}

	// Counter bindings are disabled while locked, so check them by key
	// rather than by binding to route them through activate.
	keyStr := msg.String()
	for _, c := range []Control{ControlIncrease, ControlDecrease, ControlReset} {
		if slices.Contains(m.bindingFor(c).Keys(), keyStr) {
			return m.activate(c)
		}
	}

	return m, nil
}

func (m Model) bindingFor(c Control) key.Binding {
	switch c {
	case ControlIncrease:
		return m.keys.Increase
	case ControlDecrease:
		return m.keys.Decrease
	case ControlReset:
		return m.keys.Reset
	default:
		return m.keys.Theme
	}
}

// activate presses a button. Disabled buttons do nothing.
func (m Model) activate(c Control) (tea.Model, tea.Cmd) {
	if !m.Enabled(c) {
		m.log.WithFields(map[string]any{"control": c.String()}).Debug("ignored disabled control")
		return m, nil
	}

	switch c {
	case ControlIncrease:
		return m.apply(c, m.machine.Increase())
	case ControlDecrease:
		return m.apply(c, m.machine.Decrease())
	case ControlReset:
		return m.apply(c, m.machine.Reset())
	case ControlToggleTheme:
		return m.apply(c, m.machine.ToggleTheme())
	}
	return m, nil
}

// apply carries the side effects of a machine transition: replaying the
// value transition, arming or cancelling the celebration timer, and
// switching the confetti.
func (m Model) apply(c Control, tr counter.Transition) (tea.Model, tea.Cmd) {
	if !tr.Changed {
		return m, nil
	}

	state := m.machine.State()
	now := m.now()
	m.log.WithFields(map[string]any{"control": c.String(), "count": state.Count, "theme": state.Theme.String()}).Debug("control applied")

	var cmds []tea.Cmd
	m.transition = m.transition.Play(state.Count, now)

	if tr.Settled {
		if m.celebration != nil {
			m.log.WithFields(map[string]any{"generation": m.celebration.generation}).Info("celebration superseded")
		}
		m.disarm()
		m.confetti = m.confetti.SetActive(false)
	}

	if tr.Celebrate {
		cmds = append(cmds, m.arm(tr.Generation))
		m.confetti = m.confetti.SetActive(true)
		m.log.WithFields(map[string]any{"generation": tr.Generation, "count": state.Count}).Info("celebration started")
	}

	m.syncBindings()
	if !m.Enabled(m.focus) {
		m.moveFocus(1)
	}

	cmds = append(cmds, m.startFrames())
	return m, tea.Batch(cmds...)
}

// handleTimeout ends the celebration the timer was armed for. Timeouts for
// any other generation are stale and dropped.
func (m Model) handleTimeout(msg CelebrationTimeoutMsg) (tea.Model, tea.Cmd) {
	if m.celebration == nil || m.celebration.generation != msg.Generation {
		m.log.WithFields(map[string]any{"generation": msg.Generation}).Debug("dropped stale celebration timeout")
		return m, nil
	}

	tr := m.machine.Expire(msg.Generation)
	m.disarm()
	m.confetti = m.confetti.SetActive(false)
	m.syncBindings()

	if tr.Changed {
		m.log.WithFields(map[string]any{"generation": msg.Generation, "count": m.machine.State().Count}).Info("celebration finished")
	}
	return m, nil
}

// arm starts the lockout timer for generation, cancelling any earlier one.
func (m *Model) arm(generation uint64) tea.Cmd {
	m.disarm()
	ctx, cancel := context.WithCancel(m.ctx)
	m.celebration = &celebrationTimer{
		generation: generation,
		deadline:   m.now().Add(m.celebrationDuration),
		cancel:     cancel,
	}
	return celebrationTimeoutCmd(ctx, generation, m.celebrationDuration)
}

// disarm cancels and forgets the pending timer.
func (m *Model) disarm() {
	if m.celebration == nil {
		return
	}
	m.celebration.cancel()
	m.celebration = nil
}

func (m Model) needsFrames() bool {
	return m.transition.Active(m.now()) || m.confetti.Active()
}

// startFrames begins the frame loop unless it is already running.
func (m *Model) startFrames() tea.Cmd {
	if m.animating || !m.needsFrames() {
		return nil
	}
	m.animating = true
	return frameCmd(m.fps)
}
