package core

import (
	"sync/atomic"
	"time"
)

// RuntimeConfig is passed to games when they are (re)started.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 picks one from the clock, see ResolveSeed
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}

var seedCounter atomic.Int64

// ResolveSeed returns seed, or a fresh clock-based seed when it is zero.
// Fresh seeds differ between calls even within one clock tick.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	for {
		if s := time.Now().UnixNano() + seedCounter.Add(1); s != 0 {
			return s
		}
	}
}
