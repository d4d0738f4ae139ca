package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-catch/internal/games/catch"
	"github.com/vovakirdan/fruit-catch/internal/platform/window"
)

var (
	flagAssets string
	flagScale  float64
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window.

Images are read from --assets as basket.png, heart.png and one
<fruit>.png per catalog entry. Missing images are drawn as shapes.

Controls:
  Left/Right, A/D     - Move the basket (Up/Down work too)
  Mouse drag / touch  - Centre the basket on the pointer
  Enter/Space/click   - Start
  P                   - Pause
  R                   - Restart (after game over)
  Q/Esc               - Quit

Examples:
  fruitcatch window
  fruitcatch window --assets ./assets --scale 1.5`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with PNG images")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the playfield")
}

func runWindow(_ *cobra.Command, _ []string) {
	preset := parsePreset()
	logger, closeLog := newLogger(os.Stderr, "fruitcatch")
	defer closeLog()

	game := catch.New(
		catch.WithConfigPath(flagConfig),
		catch.WithPreset(preset),
		catch.WithLogger(logger),
		catch.WithSink(catch.LogSink{Logger: logger}),
	)

	err := window.Run(game, window.Options{
		Scale:     flagScale,
		AssetsDir: flagAssets,
		TickRate:  flagFPS,
		Seed:      flagSeed,
		Logger:    logger,
	})
	if err != nil {
		closeLog()
		fail("%v", err)
	}
}
