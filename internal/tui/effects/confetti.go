package effects

import (
	"math"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	confettiGlyphs = []string{"▪", "▴", "•", "◆", "✦", "❖", "▾", "*"}
	confettiColors = []lipgloss.Color{
		"#ef4444", "#f97316", "#eab308", "#22c55e",
		"#06b6d4", "#3b82f6", "#8b5cf6", "#ec4899",
	}
)

// ConfettiOptions configures the particle overlay.
type ConfettiOptions struct {
	Particles int
	FPS       int
	Seed      uint64
}

type particle struct {
	proj  harmonica.Projectile
	glyph string
	color lipgloss.Color
}

// Confetti is a full-screen overlay of particles falling under terminal
// gravity. It draws nothing while inactive.
type Confetti struct {
	opts      ConfettiOptions
	active    bool
	width     int
	height    int
	rng       *rand.Rand
	particles []particle
}

// NewConfetti creates an inactive overlay.
func NewConfetti(opts ConfettiOptions) Confetti {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	return Confetti{
		opts: opts,
		rng:  rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15)),
	}
}

// Active reports whether the overlay is showing.
func (c Confetti) Active() bool {
	return c.active
}

// Size returns the overlay dimensions.
func (c Confetti) Size() (int, int) {
	return c.width, c.height
}

// Len returns the number of live particles.
func (c Confetti) Len() int {
	return len(c.particles)
}

// SetSize resizes the overlay. Particles outside the new bounds are
// recycled on the next step.
func (c Confetti) SetSize(width, height int) Confetti {
	c.width = width
	c.height = height
	return c
}

// SetActive turns the overlay on or off. Turning it on launches a fresh
// burst spread above the top edge; turning it off drops every particle.
func (c Confetti) SetActive(active bool) Confetti {
	if active == c.active {
		return c
	}
	c.active = active
	if !active {
		c.particles = nil
		return c
	}

	c.particles = make([]particle, c.opts.Particles)
	for i := range c.particles {
		c.particles[i] = c.spawn(-c.rng.Float64() * float64(max(c.height, 1)))
	}
	return c
}

func (c Confetti) spawn(y float64) particle {
	x := c.rng.Float64() * float64(max(c.width, 1))
	pos := harmonica.Point{X: x, Y: y}
	vel := harmonica.Vector{X: c.rng.Float64()*8 - 4, Y: c.rng.Float64() * 4}
	return particle{
		proj:  *harmonica.NewProjectile(harmonica.FPS(c.opts.FPS), pos, vel, harmonica.TerminalGravity),
		glyph: confettiGlyphs[c.rng.IntN(len(confettiGlyphs))],
		color: confettiColors[c.rng.IntN(len(confettiColors))],
	}
}

// Step advances every particle by one frame. Particles that fall past the
// bottom or drift off the sides are relaunched from just above the top.
func (c Confetti) Step() Confetti {
	if !c.active {
		return c
	}

	next := make([]particle, len(c.particles))
	copy(next, c.particles)
	for i := range next {
		pos := next[i].proj.Update()
		if pos.Y >= float64(c.height) || pos.X < -1 || pos.X > float64(c.width)+1 {
			next[i] = c.spawn(-c.rng.Float64() * 3)
		}
	}
	c.particles = next
	return c
}

type cell struct {
	x     int
	glyph string
	color lipgloss.Color
}

// Overlay draws the particles on top of base, which should already span
// the overlay dimensions. Cells under a particle keep the given background.
func (c Confetti) Overlay(base string, background lipgloss.TerminalColor) string {
	if !c.active || c.width <= 0 || c.height <= 0 || len(c.particles) == 0 {
		return base
	}

	rows := make(map[int][]cell)
	for _, p := range c.particles {
		pos := p.proj.Position()
		x, y := int(math.Round(pos.X)), int(math.Round(pos.Y))
		if x < 0 || x >= c.width || y < 0 || y >= c.height {
			continue
		}
		rows[y] = append(rows[y], cell{x: x, glyph: p.glyph, color: p.color})
	}

	lines := strings.Split(base, "\n")
	for len(lines) < c.height {
		lines = append(lines, "")
	}

	for y, cells := range rows {
		lines[y] = composeLine(lines[y], cells, c.width, background)
	}
	return strings.Join(lines, "\n")
}

func composeLine(line string, cells []cell, width int, background lipgloss.TerminalColor) string {
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	sort.SliceStable(cells, func(i, j int) bool { return cells[i].x < cells[j].x })

	var b strings.Builder
	prev := 0
	for _, cl := range cells {
		if cl.x < prev {
			continue
		}
		b.WriteString(ansi.Cut(line, prev, cl.x))
		b.WriteString(lipgloss.NewStyle().Foreground(cl.color).Background(background).Render(cl.glyph))
		prev = cl.x + 1
	}
	b.WriteString(ansi.Cut(line, prev, width))
	return b.String()
}
