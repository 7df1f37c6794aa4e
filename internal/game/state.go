package game

// State is the phase of the game loop.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a bit set of things that happened during one Step.
type Event uint8

const (
	EventStarted Event = 1 << iota // A run began (from Idle or GameOver)
	EventFlapped                   // An impulse was applied
	EventScored                    // At least one obstacle was passed
	EventDied                      // The run ended
	EventIdle                      // Returned to the title screen
)

// Has reports whether all bits of f are set.
func (e Event) Has(f Event) bool {
	return e&f == f
}

// StepResult summarizes one Step for the frontend.
type StepResult struct {
	State  State
	Events Event
	Score  Score
	Quit   bool
}
