package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-catch/internal/config"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the difficulty ramp",
	Long: `Print the difficulty levels of the resolved config: when each level
starts, the maximum extra fruit speed and the time between spawns. The
table stops at the first level where both have reached their limits.

Examples:
  fruitcatch levels
  fruitcatch levels --difficulty hard
  fruitcatch levels --config ./my-catch.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	d := config.NewDifficultyController(cfg.Difficulty)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("LEVEL", "STARTS AT", "MAX SPEED", "SPAWN EVERY").
		StyleFunc(tableStyle)

	first := d.Level()
	last := first
	if d.IsEnabled() {
		last = max(d.SaturationLevel(), first)
	}
	for level := first; level <= last; level++ {
		starts := time.Duration(level-first) * d.Interval()
		t.Row(
			strconv.Itoa(level),
			starts.String(),
			strconv.FormatFloat(d.MaxSpeedFor(level), 'f', 1, 64),
			d.SpawnPeriodFor(level).String(),
		)
	}

	fmt.Println(t)
	if !d.IsEnabled() {
		fmt.Println("Progression is disabled; the level never changes.")
	}
}

func tableStyle(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}
