package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-catch/internal/games/catch"
	"github.com/vovakirdan/fruit-catch/internal/platform/tui"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the fruit catalog",
	Long: `Print the fruit types of the resolved config with their points.

Examples:
  fruitcatch catalog
  fruitcatch catalog --config ./my-catch.yaml`,
	Args: cobra.NoArgs,
	Run:  runCatalog,
}

func runCatalog(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "FRUIT", "POINTS", "COLOR").
		StyleFunc(tableStyle)

	for i, ft := range catch.NewCatalog(cfg.Catalog) {
		t.Row(
			tui.StyleFor(ft.Color).Render("●"),
			ft.Name,
			strconv.Itoa(ft.Points),
			cfg.Catalog[i].Color,
		)
	}

	fmt.Println(t)
}
