package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // 1-based count of levels entered this run
	Lives    int  // Remaining lives
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
	Quit     bool // Whether the player asked to leave the game
}

// EventKind identifies something notable that happened during a tick.
type EventKind uint8

const (
	EventPellet EventKind = iota + 1
	EventPowerPellet
	EventGhostEaten
	EventLifeLost
	EventLevelCleared
	EventRunEnded
)

// String returns a stable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPellet:
		return "pellet"
	case EventPowerPellet:
		return "power_pellet"
	case EventGhostEaten:
		return "ghost_eaten"
	case EventLifeLost:
		return "life_lost"
	case EventLevelCleared:
		return "level_cleared"
	case EventRunEnded:
		return "run_ended"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported by a game step.
// Value carries the points awarded, or the final score for EventRunEnded.
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
	Err    error // fatal error; the platform stops the game
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
