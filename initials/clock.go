package initials

import (
	"image/color"
	"time"
)

const (
	// PhaseStep is how far the phase advances per tick.
	PhaseStep = 25
	// PhaseWrap is the bound above which the phase returns to zero.
	PhaseWrap = 1200
	// CycleTicks is the number of ticks before the phase repeats.
	CycleTicks = PhaseWrap/PhaseStep + 1
	// GradientRows is the period of the background scroll offset.
	GradientRows = 120

	// DefaultTickPeriod is the nominal interval between animation steps.
	DefaultTickPeriod = 20 * time.Millisecond
)

// Clock is the free-running animation timer behind the flickering accent
// colour and the scrolling background.
type Clock struct {
	period  time.Duration
	pending time.Duration
	phase   int
	running bool
}

// NewClock creates a stopped clock that steps once per period of elapsed time.
// A non-positive period falls back to DefaultTickPeriod.
func NewClock(period time.Duration) *Clock {
	if period <= 0 {
		period = DefaultTickPeriod
	}
	return &Clock{period: period}
}

// Start sets the clock running. Starting a running clock does nothing.
func (c *Clock) Start() {
	if c.running {
		return
	}
	c.running = true
	c.pending = 0
}

// Stop halts the clock. The phase is kept so the last colour stays valid.
func (c *Clock) Stop() {
	c.running = false
	c.pending = 0
}

// Running reports whether the clock is started.
func (c *Clock) Running() bool {
	return c.running
}

// Tick advances the clock by elapsed wall-clock time, stepping the phase once
// for every full period. Called once per frame at the nominal frame period it
// steps exactly once. A stopped clock ignores ticks.
func (c *Clock) Tick(elapsed time.Duration) {
	if !c.running || elapsed <= 0 {
		return
	}
	c.pending += elapsed
	for c.pending >= c.period {
		c.pending -= c.period
		c.step()
	}
}

func (c *Clock) step() {
	c.phase += PhaseStep
	if c.phase > PhaseWrap {
		c.phase = 0
	}
}

// Phase returns the raw phase counter.
func (c *Clock) Phase() int {
	return c.phase
}

// Color returns the accent colour for the current phase.
func (c *Clock) Color() color.RGBA {
	return PhaseColor(c.phase)
}

// GradientRow returns the background scroll offset for the current phase.
func (c *Clock) GradientRow() int {
	return PhaseGradientRow(c.phase)
}

// PhaseColor maps a phase to the accent colour: red ramps and wraps at 255,
// green ramps over twice the cycle at half speed, blue is red's complement.
func PhaseColor(phase int) color.RGBA {
	r := phase % 255
	return color.RGBA{
		R: uint8(r),
		G: uint8((phase % 512) / 2),
		B: uint8(255 - r),
		A: 255,
	}
}

// PhaseGradientRow maps a phase to the background scroll offset.
func PhaseGradientRow(phase int) int {
	return (phase / 10) % GradientRows
}
