package core

// Action represents a viewer action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // w - move the view up
	ActionDown         // s - move the view down
	ActionLeft         // a - move the view left
	ActionRight        // d - move the view right
	ActionQuit         // q - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Apply returns the offset after performing the action and whether the
// action requests the session to end. Quit and None leave the offset as is.
func (a Action) Apply(o Offset) (Offset, bool) {
	switch a {
	case ActionUp:
		return o.Add(0, 1), false
	case ActionDown:
		return o.Add(0, -1), false
	case ActionLeft:
		return o.Add(-1, 0), false
	case ActionRight:
		return o.Add(1, 0), false
	case ActionQuit:
		return o, true
	}
	return o, false
}
