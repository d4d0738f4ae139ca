package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-catch/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/Right, A/D, H/L  - Move the basket (Up/Down work too)
  Mouse drag            - Centre the basket on the pointer
  Enter/Space/click     - Start
  P                     - Pause
  R                     - Restart (after game over)
  Ctrl+S                - Save a text screenshot
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Start at level 1 and speed up every interval
  normal - Start at level 3
  hard   - Start at level 7
  fixed  - No progression

Logs are discarded unless --log-file is given, since the game owns the
terminal.

Examples:
  fruitcatch play
  fruitcatch play --difficulty hard
  fruitcatch play --config ./my-catch.yaml --log-file catch.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	preset := parsePreset()
	logger, closeLog := newLogger(io.Discard, "fruitcatch")
	defer closeLog()

	game := newGame(preset, logger)
	if err := tui.Run(game, terminalConfig()); err != nil {
		logger.Error("game stopped", "err", err)
		closeLog()
		fail("running game: %v", err)
	}
}
