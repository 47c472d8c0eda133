package input

// State is the steering snapshot read once per tick
// Only the current level matters; presses between ticks are not queued
type State struct {
	Up, Down, Left, Right bool
	Boost                 bool
}

// Control is a held input sampled into State
type Control uint8

const (
	ControlNone Control = iota
	ControlUp
	ControlDown
	ControlLeft
	ControlRight
	ControlBoost

	controlCount
)

// Action is a discrete command handled by the driver, not the simulation
type Action uint8

const (
	ActionNone    Action = iota
	ActionPause          // Toggle pause while playing
	ActionStart          // Start or restart from the title and game-over screens
	ActionMenu           // Return to the title screen from game over
	ActionQuit           // Exit the program
	ActionRestart        // Restart from game over or pause
)

func (a Action) String() string {
	switch a {
	case ActionPause:
		return "pause"
	case ActionStart:
		return "start"
	case ActionMenu:
		return "menu"
	case ActionQuit:
		return "quit"
	case ActionRestart:
		return "restart"
	default:
		return "none"
	}
}
