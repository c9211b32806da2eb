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

// Dt returns the fixed logic timestep in seconds. All simulation integrates
// with this constant slice; the platform accumulator guarantees no larger
// step ever reaches a game.
func (c RuntimeConfig) Dt() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1.0 / float64(rate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended in a loss
	Won      bool // Whether the game has ended in a win
	Paused   bool // Whether the game is paused
}

// Cue is a one-shot audio event emitted by the simulation and consumed by the
// sound sink. Cues carry no payload and expect no acknowledgment.
type Cue string

const (
	CueJump     Cue = "jump"
	CueHit      Cue = "hit"
	CueInhale   Cue = "inhale"
	CueSwallow  Cue = "swallow"
	CueFire     Cue = "fire"
	CueIce      Cue = "ice"
	CueSpark    Cue = "spark"
	CueStone    Cue = "stone"
	CueSword    Cue = "sword"
	CueBeam     Cue = "beam"
	CueTornado  Cue = "tornado"
	CueBossHurt Cue = "boss_hurt"
	CuePlant    Cue = "plant"
	CueShoot    Cue = "shoot"
	CueBoom     Cue = "boom"
	CueWin      Cue = "win"
	CueLose     Cue = "lose"
)

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // One-shot audio cues raised during this tick
}
