// snake is a terminal snake game.
//
// Usage:
//
//	snake play              - Play in this terminal
//	snake serve             - Start an SSH server, one game per connection
//	snake config            - Print the effective configuration
//	snake version           - Print the version
//
// Global flags:
//
//	--config <path>   - Custom YAML config
//	--speed <preset>  - slow, normal, fast or insane
//	--seed <value>    - RNG seed for reproducible food placement
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSpeed    string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is the classic grid game: steer a growing snake around a fixed
board, eat food to grow and score, and avoid the walls and your own tail.

Available commands:
  play     - Play in this terminal
  serve    - Start an SSH server for remote play
  config   - Print the effective configuration as YAML
  version  - Print the version

Examples:
  snake play
  snake play --speed fast
  snake serve --ssh :2222
  snake config --config ./my-snake.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast, insane")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the config file and applies the --speed override.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplySpeedPreset(&cfg, config.SpeedPreset(flagSpeed)); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
