package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tally/internal/tui/effects"
)

const title = "Animated Counter with Theme Toggle"

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	state := m.machine.State()
	p := PaletteFor(state.Theme)
	st := newStyles(p, m.width)
	bg := lipgloss.Color(p.Background)

	var sections []string

	if m.showError {
		sections = append(sections, st.row.Render(st.errorBanner.Render(m.errorMsg)), st.row.Render(""))
	}

	sections = append(sections,
		st.row.Render(st.title.Render(title)),
		st.row.Render(""),
		st.row.Render(m.renderValue(p)),
		st.row.Render(""),
		m.renderButtons(st, p),
	)

	if m.celebration != nil {
		sections = append(sections,
			st.row.Render(""),
			st.row.Render(m.renderCountdown(st)),
		)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, sections...)
	footer := m.renderFooter(st, p)

	bodyHeight := max(m.height-lipgloss.Height(footer), lipgloss.Height(body))
	screen := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(bg))

	screen = lipgloss.JoinVertical(lipgloss.Left, screen, footer)
	return m.confetti.Overlay(screen, bg)
}

// renderValue draws the count through the transition effect, green on a
// milestone.
func (m Model) renderValue(p Palette) string {
	fg := p.Foreground
	if m.machine.Highlighted() {
		fg = p.Highlight
	}
	frame := m.transition.Frame(m.now())
	return effects.RenderValue(m.machine.State().Count, frame, effects.ValueStyle{
		Foreground: fg,
		Background: p.Background,
		Bold:       true,
	}, m.width-4)
}

// renderButtons stacks the four controls with a blank row between them.
func (m Model) renderButtons(st styles, p Palette) string {
	labels := map[Control]string{
		ControlIncrease:    "Increase",
		ControlDecrease:    "Decrease",
		ControlReset:       "Reset",
		ControlToggleTheme: m.machine.ToggleLabel(),
	}

	rows := make([]string, 0, len(controlOrder)*2)
	for i, c := range controlOrder {
		if i > 0 {
			rows = append(rows, st.row.Render(""))
		}
		rows = append(rows, st.row.Render(m.renderButton(st, p, c, labels[c])))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderButton(st styles, p Palette, c Control, label string) string {
	enabled := m.Enabled(c)
	style := st.button.Background(lipgloss.Color(buttonColor(p, c, enabled)))

	marker := lipgloss.NewStyle().Background(lipgloss.Color(p.Background)).Foreground(lipgloss.Color(p.Focus))
	left, right := marker.Render("  "), marker.Render("  ")
	if c == m.focus {
		style = style.Bold(true).Underline(enabled)
		left, right = marker.Render("▸ "), marker.Render(" ◂")
	}
	if !enabled {
		style = style.Faint(true)
	}
	return left + style.Render(label) + right
}

func (m Model) renderCountdown(st styles) string {
	caption := st.muted.Render("Controls unlock in ")
	return caption + m.countdown(buttonWidth).WithLabelStyle(st.title).View(m.Remaining())
}

// renderFooter renders the key help
func (m Model) renderFooter(st styles, p Palette) string {
	h := m.help
	h.Styles = helpStyles(p)
	return st.row.Render(h.View(m.keys))
}
