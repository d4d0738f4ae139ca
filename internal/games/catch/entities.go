package catch

import (
	"github.com/vovakirdan/fruit-catch/internal/config"
	"github.com/vovakirdan/fruit-catch/internal/core"
)

// FruitType is an immutable catalog entry.
type FruitType struct {
	Name   string
	Points int
	Color  core.Color
}

// NewCatalog builds the fruit catalog from config entries.
// Unknown color names fall back to the default color.
func NewCatalog(entries []config.FruitTypeConfig) []FruitType {
	catalog := make([]FruitType, 0, len(entries))
	for _, e := range entries {
		c, _ := core.ColorByName(e.Color)
		catalog = append(catalog, FruitType{Name: e.Name, Points: e.Points, Color: c})
	}
	return catalog
}

// Basket is the player-controlled catcher.
type Basket struct {
	X, Y  float64
	W, H  float64
	Speed float64 // Units per frame unit
}

// Box returns the basket's collision box.
func (b Basket) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Fruit is a falling entity. Speed is fixed at spawn.
type Fruit struct {
	X, Y  float64
	W, H  float64
	Speed float64
	Type  *FruitType
}

// Box returns the fruit's collision box.
func (f Fruit) Box() core.Box {
	return core.NewBox(f.X, f.Y, f.W, f.H)
}
