package core

import "time"

// DefaultTickInterval is the simulation cadence used when nothing else is configured.
const DefaultTickInterval = 100 * time.Millisecond

// RuntimeConfig carries the values the shell hands to a game session:
// the terminal size, the tick cadence and the RNG seed.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Wall-clock time between simulation steps
	Seed         int64         // RNG seed, 0 means derive from the clock
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: DefaultTickInterval,
	}
}

// ResolveSeed returns Seed, or a clock-derived seed when Seed is zero.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
