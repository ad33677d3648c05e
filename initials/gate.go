package initials

import "time"

// DefaultDebounce is the cool-down between accepted moves.
const DefaultDebounce = 250 * time.Millisecond

// Gate is a one-shot cool-down that throttles held directional input.
type Gate struct {
	duration  time.Duration
	remaining time.Duration
	armed     bool
}

// NewGate creates an idle gate. A non-positive duration falls back to
// DefaultDebounce.
func NewGate(duration time.Duration) *Gate {
	if duration <= 0 {
		duration = DefaultDebounce
	}
	return &Gate{duration: duration}
}

// Blocking reports whether an accepted move's cool-down is still running.
func (g *Gate) Blocking() bool {
	return g.armed
}

// Arm starts, or restarts, the cool-down.
func (g *Gate) Arm() {
	g.armed = true
	g.remaining = g.duration
}

// Tick counts the cool-down down. When it runs out the gate expires once and
// stays idle until armed again.
func (g *Gate) Tick(elapsed time.Duration) {
	if !g.armed {
		return
	}
	g.remaining -= elapsed
	if g.remaining <= 0 {
		g.expire()
	}
}

func (g *Gate) expire() {
	g.armed = false
	g.remaining = 0
}

// Reset clears the gate immediately, dropping any pending cool-down.
func (g *Gate) Reset() {
	g.expire()
}
