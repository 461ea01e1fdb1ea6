package core

// Action represents a semantic input action, abstracted from physical keys,
// mouse drags or any other device.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H, swipe left
	ActionRight          // Right arrow, D, L, swipe right
	ActionRestart        // Any key on the game over banner
	ActionQuit           // Q, Ctrl+C
	ActionHelp           // ? toggles the full key legend
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action is a directional intent.
func (a Action) IsMovement() bool {
	return a == ActionLeft || a == ActionRight
}
