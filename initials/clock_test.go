package initials

import (
	"image/color"
	"testing"
	"time"
)

func TestClockStartIsIdempotent(t *testing.T) {
	c := NewClock(0)
	c.Start()
	c.Tick(DefaultTickPeriod)
	c.Start()
	if c.Phase() != PhaseStep {
		t.Fatalf("restarting a running clock changed phase: got %d", c.Phase())
	}
	if !c.Running() {
		t.Fatal("clock should be running")
	}
}

func TestClockIgnoresTicksWhenStopped(t *testing.T) {
	c := NewClock(0)
	c.Tick(time.Second)
	if c.Phase() != 0 {
		t.Fatalf("stopped clock advanced to %d", c.Phase())
	}
	c.Start()
	c.Tick(DefaultTickPeriod)
	c.Stop()
	c.Tick(time.Second)
	if c.Phase() != PhaseStep {
		t.Fatalf("clock advanced after stop: %d", c.Phase())
	}
}

func TestClockWraps(t *testing.T) {
	c := NewClock(0)
	c.Start()
	for i := 0; i < PhaseWrap/PhaseStep; i++ {
		c.Tick(DefaultTickPeriod)
	}
	if c.Phase() != PhaseWrap {
		t.Fatalf("expected phase %d, got %d", PhaseWrap, c.Phase())
	}
	c.Tick(DefaultTickPeriod)
	if c.Phase() != 0 {
		t.Fatalf("expected wrap to 0, got %d", c.Phase())
	}
}

func TestClockCycleRepeats(t *testing.T) {
	c := NewClock(0)
	c.Start()
	for i := 0; i < 48; i++ {
		c.Tick(DefaultTickPeriod)
	}
	first := c.Phase()
	for i := 0; i < CycleTicks; i++ {
		c.Tick(DefaultTickPeriod)
	}
	if c.Phase() != first {
		t.Fatalf("phase after a full cycle = %d, want %d", c.Phase(), first)
	}
}

func TestClockFortyEightTicksIsNotACycle(t *testing.T) {
	c := NewClock(DefaultTickPeriod)
	c.Start()
	for i := 0; i < 48; i++ {
		c.Tick(DefaultTickPeriod)
	}
	if c.Phase() != 1200 {
		t.Fatalf("phase after 48 ticks = %d, want 1200", c.Phase())
	}
	for i := 0; i < 48; i++ {
		c.Tick(DefaultTickPeriod)
	}
	// 1200 is still in range, so the wrap happens on the 49th tick.
	if c.Phase() != 1175 {
		t.Fatalf("phase after 96 ticks = %d, want 1175", c.Phase())
	}
	if CycleTicks != 49 {
		t.Fatalf("CycleTicks = %d, want 49", CycleTicks)
	}
}

func TestClockAccumulatesElapsed(t *testing.T) {
	c := NewClock(20 * time.Millisecond)
	c.Start()
	c.Tick(10 * time.Millisecond)
	if c.Phase() != 0 {
		t.Fatalf("half a period should not step, phase %d", c.Phase())
	}
	c.Tick(10 * time.Millisecond)
	if c.Phase() != PhaseStep {
		t.Fatalf("full period should step once, phase %d", c.Phase())
	}
	c.Tick(60 * time.Millisecond)
	if c.Phase() != 4*PhaseStep {
		t.Fatalf("three periods should step three times, phase %d", c.Phase())
	}
}

func TestPhaseColor(t *testing.T) {
	tests := []struct {
		phase int
		want  color.RGBA
	}{
		{0, color.RGBA{0, 0, 255, 255}},
		{25, color.RGBA{25, 12, 230, 255}},
		{255, color.RGBA{0, 127, 255, 255}},
		{600, color.RGBA{90, 44, 165, 255}},
		{1200, color.RGBA{180, 88, 75, 255}},
	}
	for _, tt := range tests {
		if got := PhaseColor(tt.phase); got != tt.want {
			t.Errorf("PhaseColor(%d) = %v, want %v", tt.phase, got, tt.want)
		}
	}
}

func TestPhaseGradientRow(t *testing.T) {
	tests := []struct {
		phase, want int
	}{
		{0, 0},
		{25, 2},
		{1199, 119},
		{1200, 0},
	}
	for _, tt := range tests {
		if got := PhaseGradientRow(tt.phase); got != tt.want {
			t.Errorf("PhaseGradientRow(%d) = %d, want %d", tt.phase, got, tt.want)
		}
	}
}

func TestClockOutputsArePureInPhase(t *testing.T) {
	a, b := NewClock(0), NewClock(0)
	a.Start()
	b.Start()
	for i := 0; i < 30; i++ {
		a.Tick(DefaultTickPeriod)
	}
	for i := 0; i < 30+CycleTicks; i++ {
		b.Tick(DefaultTickPeriod)
	}
	if a.Phase() != b.Phase() {
		t.Fatalf("phases differ: %d vs %d", a.Phase(), b.Phase())
	}
	if a.Color() != b.Color() || a.GradientRow() != b.GradientRow() {
		t.Fatal("same phase produced different outputs")
	}
}
