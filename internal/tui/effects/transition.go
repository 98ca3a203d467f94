package effects

import (
	"math"
	"time"
)

// Frame is the appearance of the value at one instant.
type Frame struct {
	Scale   float64
	Opacity float64
}

var (
	// TransitionFrom is the frame a value starts from when its key changes.
	TransitionFrom = Frame{Scale: 0.5, Opacity: 0}
	// TransitionTo is the frame a value settles on.
	TransitionTo = Frame{Scale: 1, Opacity: 1}
)

// Transition plays a fade-and-scale-in every time its key changes. It
// holds no timers; callers ask for the frame at a given instant.
type Transition struct {
	key      int
	started  time.Time
	duration time.Duration
}

// NewTransition starts playing for key at now, the way a freshly mounted
// value animates in.
func NewTransition(duration time.Duration, key int, now time.Time) Transition {
	return Transition{key: key, started: now, duration: duration}
}

// Key returns the key of the value currently shown.
func (t Transition) Key() int {
	return t.key
}

// Play restarts the transition when key differs from the current one.
func (t Transition) Play(key int, now time.Time) Transition {
	if key == t.key {
		return t
	}
	t.key = key
	t.started = now
	return t
}

// Progress returns how far the transition has run, in [0, 1].
func (t Transition) Progress(now time.Time) float64 {
	if t.duration <= 0 {
		return 1
	}
	p := float64(now.Sub(t.started)) / float64(t.duration)
	return math.Max(0, math.Min(1, p))
}

// Active reports whether the transition is still running at now.
func (t Transition) Active(now time.Time) bool {
	return t.Progress(now) < 1
}

// Frame returns the eased frame at now.
func (t Transition) Frame(now time.Time) Frame {
	e := easeOutCubic(t.Progress(now))
	return Frame{
		Scale:   lerp(TransitionFrom.Scale, TransitionTo.Scale, e),
		Opacity: lerp(TransitionFrom.Opacity, TransitionTo.Opacity, e),
	}
}

func easeOutCubic(p float64) float64 {
	inv := 1 - p
	return 1 - inv*inv*inv
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
