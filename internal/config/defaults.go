package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the hardcoded default configuration.
// It matches defaults/snake.yaml and is used if the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  30,
			Height: 30,
		},
		Timing: TimingConfig{
			TickMS: 100,
		},
		Scoring: ScoringConfig{
			PointsPerFood: 10,
		},
		Food: FoodConfig{
			MaxAttempts: 0,
		},
	}
}
