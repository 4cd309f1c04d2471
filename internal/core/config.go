package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Render frames per second (default 60); simulation ticks at its own fixed rate
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has reached terminal game over
	Playing  bool // Whether the simulation is actively running
}

// StepResult is returned by Game.Step() after each rendered frame.
// Contains the updated game state and any control-flow signals.
type StepResult struct {
	State GameState

	// Quit is set when the game asks the platform to terminate the
	// process (cancel input during play). It is a plain signal value,
	// never a panic.
	Quit bool
}
