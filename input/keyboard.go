package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultHold is how long a single key press keeps its direction held.
// Terminals send no release events, so auto-repeat keeps refreshing it.
const DefaultHold = 120 * time.Millisecond

// Keyboard collects terminal key events between frames.
type Keyboard struct {
	hold    time.Duration
	pressed [4]time.Time
	confirm bool
	mu      sync.Mutex
}

// NewKeyboard creates a keyboard poller. A non-positive hold falls back to
// DefaultHold.
func NewKeyboard(hold time.Duration) *Keyboard {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Keyboard{hold: hold}
}

// HandleKey records a key event. Returns true if the key is bound.
func (k *Keyboard) HandleKey(event *tcell.EventKey) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if event.Key() == tcell.KeyEnter {
		k.confirm = true
		return true
	}

	d, ok := keyDirection(event)
	if !ok {
		if event.Key() == tcell.KeyRune && (event.Rune() == 'b' || event.Rune() == 'B') {
			k.confirm = true
			return true
		}
		return false
	}
	k.pressed[d] = event.When()
	return true
}

func keyDirection(event *tcell.EventKey) (Direction, bool) {
	switch event.Key() {
	case tcell.KeyLeft:
		return Left, true
	case tcell.KeyRight:
		return Right, true
	case tcell.KeyUp:
		return Up, true
	case tcell.KeyDown:
		return Down, true
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h', 'a':
			return Left, true
		case 'l', 'd':
			return Right, true
		case 'k', 'w':
			return Up, true
		case 'j', 's':
			return Down, true
		}
	}
	return 0, false
}

// Poll returns the frame snapshot at now and consumes the confirm edge.
func (k *Keyboard) Poll(now time.Time) Frame {
	k.mu.Lock()
	defer k.mu.Unlock()

	var f Frame
	for _, d := range Directions {
		at := k.pressed[d]
		f.Buttons[d] = !at.IsZero() && now.Sub(at) < k.hold
	}
	f.Confirm = k.confirm
	k.confirm = false
	return f
}

// Release forgets every held direction and any pending confirm.
func (k *Keyboard) Release() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pressed = [4]time.Time{}
	k.confirm = false
}
