// Package initials implements the high-score initials entry screen: a three
// letter editor driven by directional input, a debounce gate that turns a held
// direction into slow repeats, and an animation clock for the visual accent.
package initials

import (
	"log/slog"
	"time"

	"termblox/input"
	"termblox/types"
)

// State is the screen state reported back to the dispatcher after each update.
type State int

const (
	// StateEditing means the player is still entering initials.
	StateEditing State = iota
	// StateCommitted means the entry was saved and the high-score table
	// should be shown.
	StateCommitted
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateCommitted:
		return "committed"
	}
	return "unknown"
}

// Leaderboard is the high-score storage the editor reads its threshold from
// and commits entries to.
type Leaderboard interface {
	// LowestScore returns the lowest score currently on the table.
	LowestScore() uint32
	// Save inserts a new entry.
	Save(score uint32, name types.Initials) error
}

// Feedback receives cues for accepted moves and commits, e.g. sound effects.
type Feedback interface {
	Moved()
	Committed()
}

// Options tunes an Editor. Zero values pick the defaults.
type Options struct {
	TickPeriod time.Duration
	Debounce   time.Duration
	DeadZone   float64
	Feedback   Feedback
	Logger     *slog.Logger
}

// Session is the entry being edited.
type Session struct {
	Score   uint32
	Letters types.Initials
	Cursor  int
}

// Editor is the initials entry state machine.
type Editor struct {
	board    Leaderboard
	clock    *Clock
	gate     *Gate
	deadZone float64
	feedback Feedback
	log      *slog.Logger

	state     State
	session   Session
	committed Session
}

// NewEditor creates an editor with no active session. Until CheckScore
// accepts a score the editor reports StateCommitted and ignores updates.
func NewEditor(board Leaderboard, opts Options) *Editor {
	deadZone := opts.DeadZone
	if deadZone <= 0 {
		deadZone = input.DefaultDeadZone
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor{
		board:    board,
		clock:    NewClock(opts.TickPeriod),
		gate:     NewGate(opts.Debounce),
		deadZone: deadZone,
		feedback: opts.Feedback,
		log:      logger,
		state:    StateCommitted,
	}
}

// CheckScore starts a new session if score beats the lowest entry on the
// leaderboard. Returns false, leaving the editor untouched, otherwise.
func (e *Editor) CheckScore(score uint32) bool {
	lowest := e.board.LowestScore()
	if score <= lowest {
		e.log.Debug("score does not qualify", "score", score, "lowest", lowest)
		return false
	}

	e.session = Session{
		Score:   score,
		Letters: types.DefaultInitials(),
	}
	e.gate.Reset()
	e.clock.Stop()
	e.state = StateEditing
	e.log.Info("new high score", "score", score, "lowest", lowest)
	return true
}

// Update advances both timers by elapsed, applies one frame of input and
// returns the state to continue in.
func (e *Editor) Update(frame input.Frame, elapsed time.Duration) State {
	if e.state != StateEditing {
		return e.state
	}

	// Timers advance before this frame's input is read.
	e.clock.Tick(elapsed)
	e.clock.Start()
	e.gate.Tick(elapsed)

	blocked := e.gate.Blocking()
	applied := false
	for _, d := range input.Directions {
		if blocked || !frame.Asserted(d, e.deadZone) {
			continue
		}
		if e.apply(d) {
			applied = true
		}
	}

	if applied {
		e.gate.Arm()
		if e.feedback != nil {
			e.feedback.Moved()
		}
	}
	if !frame.AnyDirection(e.deadZone) {
		e.gate.Reset()
	}

	if frame.Confirm {
		e.commit()
	}
	return e.state
}

// apply performs one bounded move. Returns false at a bound.
func (e *Editor) apply(d input.Direction) bool {
	s := &e.session
	switch d {
	case input.Left:
		if s.Cursor > 0 {
			s.Cursor--
			return true
		}
	case input.Right:
		if s.Cursor < types.InitialsLen-1 {
			s.Cursor++
			return true
		}
	case input.Up:
		if s.Letters[s.Cursor] < types.MaxLetter {
			s.Letters[s.Cursor]++
			return true
		}
	case input.Down:
		if s.Letters[s.Cursor] > types.MinLetter {
			s.Letters[s.Cursor]--
			return true
		}
	}
	return false
}

// commit saves the session and leaves the screen. A failed save is logged
// and does not hold the player on the screen.
func (e *Editor) commit() {
	s := e.session
	if err := e.board.Save(s.Score, s.Letters); err != nil {
		e.log.Warn("failed to save high score", "score", s.Score, "name", s.Letters.String(), "err", err)
	} else {
		e.log.Info("high score saved", "score", s.Score, "name", s.Letters.String())
	}

	e.clock.Stop()
	e.gate.Reset()
	e.committed = s
	e.session = Session{}
	e.state = StateCommitted

	if e.feedback != nil {
		e.feedback.Committed()
	}
}

// State returns the current state.
func (e *Editor) State() State {
	return e.state
}

// Session returns a copy of the entry being edited.
func (e *Editor) Session() Session {
	return e.session
}

// LastCommitted returns the most recently committed entry.
func (e *Editor) LastCommitted() Session {
	return e.committed
}

// Clock exposes the animation clock to the render pass.
func (e *Editor) Clock() *Clock {
	return e.clock
}

// Blocking reports whether directional input is currently held back.
func (e *Editor) Blocking() bool {
	return e.gate.Blocking()
}
