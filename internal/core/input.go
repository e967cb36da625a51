package core

// Action represents a logical control, abstracted from physical key presses.
// The platform layer resolves key bindings into actions before the simulation
// sees them, so the engine never depends on a specific keyboard layout.
type Action int

const (
	ActionNone      Action = iota
	ActionStart            // Space, Enter - leave the idle state
	ActionMoveUp           // W, Up arrow - move paddle up
	ActionMoveDown         // S, Down arrow - move paddle down
	ActionSpeedUp          // +, ] - raise paddle speed while held
	ActionSpeedDown        // -, [ - lower paddle speed while held
	ActionPause            // P - suspend updates (platform only)
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pressed and Released are the only values the input feed writes.
const (
	Pressed  = 1.0
	Released = 0.0
)

// InputState maps each tracked action to its held value for one tick.
// Missing actions read as released.
type InputState struct {
	values map[Action]float64
}

// NewInputState creates an input state with every action released.
func NewInputState() InputState {
	return InputState{
		values: make(map[Action]float64),
	}
}

// Set stores a raw value for an action.
func (s *InputState) Set(a Action, v float64) {
	if s.values == nil {
		s.values = make(map[Action]float64)
	}
	s.values[a] = v
}

// Press marks an action as held.
func (s *InputState) Press(a Action) {
	s.Set(a, Pressed)
}

// Release marks an action as not held.
func (s *InputState) Release(a Action) {
	s.Set(a, Released)
}

// Value returns the stored value for an action, 0.0 if never set.
func (s InputState) Value(a Action) float64 {
	if s.values == nil {
		return Released
	}
	return s.values[a]
}

// Held reports whether the action's value is positive.
func (s InputState) Held(a Action) bool {
	return s.Value(a) > 0
}

// Clear releases every action.
func (s *InputState) Clear() {
	for k := range s.values {
		delete(s.values, k)
	}
}
