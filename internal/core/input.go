package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games consume actions instead of raw keys so input stays testable.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // A, Left arrow
	ActionMoveRight        // D, Right arrow
	ActionUp               // W, Up arrow - cursor up (lawn)
	ActionDown             // S, Down arrow - cursor down (lawn)
	ActionJump             // Space, Z
	ActionInhale           // X, C - primary action (inhale, place plant)
	ActionAbility          // V, Shift - secondary action (use copy ability)
	ActionDrop             // G - drop current ability / dig up plant
	ActionCycle            // Tab - cycle seed card selection
	ActionConfirm          // Enter
	ActionPause            // P, Esc
	ActionRestart          // R after game over
	ActionQuit             // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionInhale:
		return "Inhale"
	case ActionAbility:
		return "Ability"
	case ActionDrop:
		return "Drop"
	case ActionCycle:
		return "Cycle"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Snapshot is the input state for one simulation tick. It pairs the current
// held set with the previous tick's held set so games can distinguish
// held keys from fresh presses.
type Snapshot struct {
	held map[Action]bool
	prev map[Action]bool
}

// NewSnapshot builds a snapshot from explicit held sets. Primarily for tests;
// the platform produces snapshots through a Sampler.
func NewSnapshot(held, prev map[Action]bool) Snapshot {
	return Snapshot{held: held, prev: prev}
}

// EmptySnapshot returns a snapshot with nothing held.
func EmptySnapshot() Snapshot {
	return Snapshot{}
}

// Down reports whether the action is currently held.
func (s Snapshot) Down(a Action) bool {
	return s.held[a]
}

// JustPressed reports whether the action is held this tick and was not held
// on the immediately preceding tick.
func (s Snapshot) JustPressed(a Action) bool {
	return s.held[a] && !s.prev[a]
}

// Sampler converts terminal key events into per-tick input snapshots.
//
// Terminals only deliver key-down events (with OS auto-repeat), never key-up,
// so an action counts as held until no event for it has arrived within its
// hold window. A fresh press gets a long window (~600ms) to bridge the
// terminal's initial auto-repeat delay; subsequent repeat events refresh with
// a short one (~150ms), above typical repeat intervals. Without the long
// first window a physically held key would read as released and re-pressed
// once before repeat kicks in, re-firing JustPressed. Sample must be called
// exactly once per simulation tick; each snapshot's previous set is the held
// set of the tick immediately before it, which is what keeps JustPressed edge
// semantics intact.
type Sampler struct {
	ttl          map[Action]int
	initialTicks int
	repeatTicks  int
	prev         map[Action]bool
}

// NewSampler creates a sampler for the given tick rate.
func NewSampler(tickRate int) *Sampler {
	initial := tickRate * 60 / 100
	if initial < 2 {
		initial = 2
	}
	repeat := tickRate * 15 / 100
	if repeat < 2 {
		repeat = 2
	}
	return &Sampler{
		ttl:          make(map[Action]int),
		initialTicks: initial,
		repeatTicks:  repeat,
		prev:         make(map[Action]bool),
	}
}

// Press records a key event for the action, refreshing its hold window.
func (s *Sampler) Press(a Action) {
	if a == ActionNone {
		return
	}
	window := s.repeatTicks
	if s.ttl[a] == 0 {
		window = s.initialTicks
	}
	if window > s.ttl[a] {
		s.ttl[a] = window
	}
}

// Release drops an action immediately, without waiting for its window to lapse.
func (s *Sampler) Release(a Action) {
	delete(s.ttl, a)
}

// Sample produces the snapshot for the current tick and advances hold windows.
func (s *Sampler) Sample() Snapshot {
	held := make(map[Action]bool, len(s.ttl))
	for a, n := range s.ttl {
		if n > 0 {
			held[a] = true
		}
		if n <= 1 {
			delete(s.ttl, a)
		} else {
			s.ttl[a] = n - 1
		}
	}
	snap := Snapshot{held: held, prev: s.prev}
	s.prev = held
	return snap
}
