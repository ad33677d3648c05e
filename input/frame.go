// Package input turns raw device state into one snapshot per frame.
package input

// DefaultDeadZone is how far an analog stick must deflect to count as pressed.
const DefaultDeadZone = 0.1

// Direction is one of the four directional inputs.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in evaluation order.
var Directions = [...]Direction{Left, Right, Up, Down}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

// Frame is the input state sampled once per frame.
type Frame struct {
	// Buttons holds the digital direction state, indexed by Direction.
	Buttons [4]bool
	// Confirm is true on the frame the confirm button was pressed.
	Confirm bool
	// StickX and StickY are analog deflections in [-1, 1]; negative Y is up.
	StickX, StickY float64
}

// Press returns a copy of f with the given directions held.
func (f Frame) Press(dirs ...Direction) Frame {
	for _, d := range dirs {
		f.Buttons[d] = true
	}
	return f
}

// Asserted reports whether d is held, either as a button or as a stick
// deflection past deadZone.
func (f Frame) Asserted(d Direction, deadZone float64) bool {
	if f.Buttons[d] {
		return true
	}
	switch d {
	case Left:
		return f.StickX < -deadZone
	case Right:
		return f.StickX > deadZone
	case Up:
		return f.StickY < -deadZone
	case Down:
		return f.StickY > deadZone
	}
	return false
}

// AnyDirection reports whether any direction is asserted.
func (f Frame) AnyDirection(deadZone float64) bool {
	for _, d := range Directions {
		if f.Asserted(d, deadZone) {
			return true
		}
	}
	return false
}
