package core

// RuntimeConfig is what the platform knows when it starts a game: the
// terminal area left for drawing, how often Step is called and the seed for
// the tile generator.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int   // Rows available to the game, excluding the help footer
	TickRate int   // Step calls per second
	Seed     int64 // Same seed, same boards; 0 lets the platform pick one
}

// DefaultConfig fits a classic 80x24 terminal at 60 steps per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the part of a game the platform acts on: the score for the
// end-of-session log, and whether Restart or Back may be honoured.
type GameState struct {
	Score    int
	GameOver bool // The clock has run out
	Paused   bool // Paused by the player, or the terminal is too small
}

// StepResult carries the state after a Step.
type StepResult struct {
	State GameState
}
