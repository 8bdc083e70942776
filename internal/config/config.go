// Package config provides YAML-based configuration loading and speed presets
// for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Food    FoodConfig    `yaml:"food"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the simulation cadence.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// ScoringConfig defines how score accrues.
type ScoringConfig struct {
	PointsPerFood int `yaml:"points_per_food"`
}

// FoodConfig tunes food placement.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // 0 = 4 x grid area
}

// TickInterval returns the configured step cadence.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// EngineOptions converts the config into engine options.
func (c SnakeConfig) EngineOptions(seed int64) snake.Options {
	return snake.Options{
		Width:           c.Grid.Width,
		Height:          c.Grid.Height,
		PointsPerFood:   c.Scoring.PointsPerFood,
		MaxFoodAttempts: c.Food.MaxAttempts,
		Seed:            seed,
	}
}

// Validate reports the first problem found in the config.
func (c SnakeConfig) Validate() error {
	if c.Timing.TickMS <= 0 {
		return fmt.Errorf("%w: timing.tick_ms must be positive, got %d", ErrInvalidConfig, c.Timing.TickMS)
	}
	if err := c.EngineOptions(0).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
