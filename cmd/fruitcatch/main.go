// fruitcatch is a fruit catching arcade game for the terminal, SSH and
// desktop windows.
//
// Usage:
//
//	fruitcatch play          - Play in the terminal
//	fruitcatch menu          - Pick a difficulty, play, repeat
//	fruitcatch serve         - Start SSH server for remote play
//	fruitcatch window        - Play in a desktop window
//	fruitcatch levels        - Show the difficulty ramp
//	fruitcatch catalog       - Show the fruit catalog
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom YAML config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit-catch/internal/config"
	"github.com/vovakirdan/fruit-catch/internal/core"
	"github.com/vovakirdan/fruit-catch/internal/games/catch"
	"github.com/vovakirdan/fruit-catch/internal/registry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fruitcatch",
	Short: "Fruit Catch - catch falling fruit in your terminal",
	Long: `Fruit Catch is an arcade game: move the basket, catch the falling
fruit for points and don't let it drop. Every miss costs a life and the
fruit falls faster the longer you last.

Available commands:
  play     - Play in the terminal
  menu     - Pick a difficulty preset, then play
  serve    - Start SSH server for remote play
  window   - Play in a desktop window
  levels   - Show the difficulty ramp
  catalog  - Show the fruit catalog

Examples:
  fruitcatch play
  fruitcatch play --difficulty hard
  fruitcatch menu
  fruitcatch serve --ssh :2222
  fruitcatch window --assets ./assets`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(catalogCmd)
}

// fail prints an error the way every command reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the logger for a command. Logs go to --log-file when
// set, otherwise to out. The returned function closes the log file.
func newLogger(out io.Writer, prefix string) (*log.Logger, func()) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fail("invalid --log-level %q", flagLogLevel)
	}

	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			fail("cannot open log file: %v", openErr)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn
}

// parsePreset validates --difficulty.
func parsePreset() config.DifficultyPreset {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fail("%v", err)
	}
	return preset
}

// terminalConfig builds the runtime config from the terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newGame creates the registered game for the current flags.
func newGame(preset config.DifficultyPreset, logger *log.Logger) registry.Game {
	game, err := registry.Create(catch.ID, registry.Options{
		ConfigPath: flagConfig,
		Preset:     preset,
		Logger:     logger,
	})
	if err != nil {
		fail("creating game: %v", err)
	}
	return game
}

// loadConfig resolves the config the game would use, preset applied.
func loadConfig() config.CatchConfig {
	cfg, err := config.LoadCatch(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	config.ApplyCatchPreset(&cfg, parsePreset())
	return cfg
}
