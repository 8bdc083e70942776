package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake in this terminal",
	Long: `Start a game of snake in the current terminal.

Controls:
  Arrows/WASD/hjkl  - Steer
  Space/Enter       - Start, or restart after game over
  P                 - Pause
  Q/Ctrl+C          - Quit

Terminal size:
  Each cell is two columns wide, so a WxH grid needs a terminal of at least
  (2W+2) x (H+5). The default 30x30 grid needs 62x35. On a smaller terminal,
  shrink the board in the config file, e.g.:

    grid:
      width: 20
      height: 15

Examples:
  snake play
  snake play --speed slow
  snake play --config ./small.yaml
  snake play --seed 42 --log-file ./snake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the game owns the terminal)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "snake")
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	cfg.TickInterval = gameCfg.TickInterval()
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = cfg.ResolveSeed()

	engine, err := snake.NewEngine(gameCfg.EngineOptions(cfg.Seed))
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	gridW, gridH := engine.Size()
	if hint := sizeHint(gridW, gridH, cfg.ScreenW, cfg.ScreenH); hint != "" {
		fmt.Fprintln(os.Stderr, hint)
	}
	logger.Debug("session configured",
		"grid", fmt.Sprintf("%dx%d", gridW, gridH),
		"tick", cfg.TickInterval,
		"seed", cfg.Seed,
	)

	if err := tui.Run(engine, cfg, logger); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}

// sizeHint explains how to fit the board when the terminal is too small.
// It returns "" when the board fits.
func sizeHint(gridW, gridH, screenW, screenH int) string {
	needW, needH := tui.RequiredTerminal(gridW, gridH)
	if screenW >= needW && screenH >= needH {
		return ""
	}
	return fmt.Sprintf("A %dx%d grid needs a %dx%d terminal, this one is %dx%d. "+
		"Enlarge the window or set a smaller grid in the config (see 'snake play --help').",
		gridW, gridH, needW, needH, screenW, screenH)
}
