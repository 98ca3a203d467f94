package widget

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tally/internal/counter"
)

// Palette is the set of colours for one theme. Values are hex strings so
// they can be blended by the transition.
type Palette struct {
	Background   string
	Foreground   string
	Muted        string
	Highlight    string
	Increase     string
	Decrease     string
	Neutral      string
	Disabled     string
	ButtonText   string
	Focus        string
	ErrorFG      string
	ErrorBG      string
	CountdownLow string
}

var palettes = map[counter.Theme]Palette{
	counter.ThemeLight: {
		Background:   "#ffffff", // white
		Foreground:   "#111827", // gray-900
		Muted:        "#6b7280", // gray-500
		Highlight:    "#22c55e", // green-500
		Increase:     "#3b82f6", // blue-500
		Decrease:     "#ef4444", // red-500
		Neutral:      "#6b7280", // gray-500
		Disabled:     "#9ca3af", // gray-400
		ButtonText:   "#ffffff",
		Focus:        "#111827",
		ErrorFG:      "#991b1b",
		ErrorBG:      "#fee2e2",
		CountdownLow: "#eab308",
	},
	counter.ThemeDark: {
		Background:   "#111827", // gray-900
		Foreground:   "#ffffff",
		Muted:        "#9ca3af", // gray-400
		Highlight:    "#22c55e", // green-500
		Increase:     "#3b82f6", // blue-500
		Decrease:     "#ef4444", // red-500
		Neutral:      "#6b7280", // gray-500
		Disabled:     "#9ca3af", // gray-400
		ButtonText:   "#ffffff",
		Focus:        "#ffffff",
		ErrorFG:      "#fecaca",
		ErrorBG:      "#7f1d1d",
		CountdownLow: "#eab308",
	},
}

// PaletteFor returns the palette of a theme.
func PaletteFor(theme counter.Theme) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[counter.ThemeLight]
}

const buttonWidth = 24

type styles struct {
	row         lipgloss.Style
	title       lipgloss.Style
	muted       lipgloss.Style
	button      lipgloss.Style
	errorBanner lipgloss.Style
}

func newStyles(p Palette, width int) styles {
	bg := lipgloss.Color(p.Background)

	return styles{
		row: lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Background(bg),

		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Foreground)).
			Background(bg),

		muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			Background(bg),

		button: lipgloss.NewStyle().
			Width(buttonWidth).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color(p.ButtonText)),

		errorBanner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.ErrorFG)).
			Background(lipgloss.Color(p.ErrorBG)).
			Bold(true).
			Padding(0, 2),
	}
}

// buttonColor returns the fill for a control in its current state.
func buttonColor(p Palette, c Control, enabled bool) string {
	if !enabled {
		return p.Disabled
	}
	switch c {
	case ControlIncrease:
		return p.Increase
	case ControlDecrease:
		return p.Decrease
	default:
		return p.Neutral
	}
}

func helpStyles(p Palette) help.Styles {
	bg := lipgloss.Color(p.Background)
	key := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Foreground)).Background(bg).Bold(true)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted)).Background(bg)
	sep := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Disabled)).Background(bg)

	return help.Styles{
		Ellipsis:       sep,
		ShortKey:       key,
		ShortDesc:      desc,
		ShortSeparator: sep,
		FullKey:        key,
		FullDesc:       desc,
		FullSeparator:  sep,
	}
}
