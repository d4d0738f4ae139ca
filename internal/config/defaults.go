package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the default fruit catch configuration.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 500,
		},
		Basket: BasketConfig{
			Width:  100,
			Height: 80,
			Speed:  15,
			Margin: 10,
		},
		Fruit: FruitConfig{
			Size: 50,
		},
		Catalog: []FruitTypeConfig{
			{Name: "apple", Points: 10, Color: "red"},
			{Name: "orange", Points: 15, Color: "orange"},
			{Name: "pear", Points: 20, Color: "green"},
			{Name: "grapes", Points: 25, Color: "purple"},
			{Name: "lemon", Points: 30, Color: "yellow"},
		},
		Session: SessionConfig{
			Lives:     3,
			FrameUnit: 16 * time.Millisecond,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			StartLevel:   1,
			Interval:     10 * time.Second,
			BaseMaxSpeed: 2,
			SpeedStep:    0.5,
			SpeedCap:     8,
			BaseSpawn:    2 * time.Second,
			SpawnStep:    150 * time.Millisecond,
			SpawnFloor:   500 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCatchYAML
}
