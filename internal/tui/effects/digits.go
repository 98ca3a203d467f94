package effects

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// GlyphHeight is the number of rows in a large digit.
const GlyphHeight = 5

var glyphs = map[rune][GlyphHeight]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {"  █", "  █", "  █", "  █", "  █"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	'-': {"   ", "   ", "███", "   ", "   "},
}

// BigDigits renders value in block glyphs, each glyph cell doubled
// horizontally so digits look square in a terminal.
func BigDigits(value int) []string {
	rows := make([]string, GlyphHeight)
	for i, r := range strconv.Itoa(value) {
		g, ok := glyphs[r]
		if !ok {
			continue
		}
		for row := range rows {
			if i > 0 {
				rows[row] += "  "
			}
			rows[row] += strings.ReplaceAll(strings.ReplaceAll(g[row], "█", "██"), " ", "  ")
		}
	}
	return rows
}

// ValueStyle is the colouring used by RenderValue.
type ValueStyle struct {
	Foreground string
	Background string
	Bold       bool
}

// RenderValue draws value at the given frame. Opacity fades the colour in
// from the background; scale reveals glyph rows from the centre. The block
// always spans GlyphHeight rows. When the glyphs do not fit in maxWidth the
// plain number is drawn instead.
func RenderValue(value int, frame Frame, style ValueStyle, maxWidth int) string {
	color := BlendHex(style.Background, style.Foreground, frame.Opacity)
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Background(lipgloss.Color(style.Background)).
		Bold(style.Bold)

	rows := BigDigits(value)
	width := 0
	if len(rows) > 0 {
		width = ansi.StringWidth(rows[0])
	}

	if maxWidth > 0 && width > maxWidth {
		plain := strconv.Itoa(value)
		lines := make([]string, GlyphHeight)
		lines[GlyphHeight/2] = s.Render(plain)
		pad := lipgloss.NewStyle().Background(lipgloss.Color(style.Background))
		for i := range lines {
			if i != GlyphHeight/2 {
				lines[i] = pad.Render(strings.Repeat(" ", ansi.StringWidth(plain)))
			}
		}
		return strings.Join(lines, "\n")
	}

	visible := int(math.Round(frame.Scale * GlyphHeight))
	visible = max(1, min(GlyphHeight, visible))
	start := (GlyphHeight - visible) / 2

	blank := strings.Repeat(" ", width)
	out := make([]string, GlyphHeight)
	for i := range out {
		line := blank
		if i >= start && i < start+visible {
			line = rows[i]
		}
		out[i] = s.Render(line)
	}
	return strings.Join(out, "\n")
}

// BlendHex mixes two hex colours; t=0 yields from, t=1 yields to. Colours
// that fail to parse fall back to to.
func BlendHex(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return to
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return to
	}
	t = math.Max(0, math.Min(1, t))
	return a.BlendRgb(b, t).Clamped().Hex()
}
