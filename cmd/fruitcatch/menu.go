package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-catch/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty preset, then play",
	Long: `Start with a menu of difficulty presets.

Use arrow keys or j/k to navigate, Enter to start a game. Press Esc or B
on the start screen, while paused or after game over to return to the
menu.

Examples:
  fruitcatch menu
  fruitcatch menu --difficulty normal   # Preselect a preset
  fruitcatch menu --fps 30`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	preset := parsePreset()
	logger, closeLog := newLogger(io.Discard, "fruitcatch")
	defer closeLog()

	cfg := terminalConfig()
	for {
		result, err := tui.RunMenu("Fruit Catch", cfg, preset)
		if err != nil {
			closeLog()
			fail("%v", err)
		}
		if result.Quit {
			return
		}
		cfg = result.Config
		preset = result.Preset

		logger.Info("preset selected", "preset", preset)
		game := newGame(preset, logger)
		back, err := tui.Play(game, cfg, tui.ModelOptions{AllowBack: true})
		if err != nil {
			closeLog()
			fail("running game: %v", err)
		}
		if !back {
			return
		}
	}
}
