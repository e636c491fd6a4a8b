package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in configuration: an 800x600
// surface with an 8x5 block grid.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Surface: SurfaceConfig{
			Width:  800,
			Height: 600,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       10,
			Step:         7,
			CornerRadius: 5,
		},
		Ball: BallConfig{
			Radius:      10,
			StartOffset: 30,
			VX:          4,
			VY:          -4,
		},
		Blocks: BlocksConfig{
			Columns:      8,
			Rows:         5,
			Width:        75,
			Height:       20,
			Padding:      10,
			OffsetTop:    30,
			OffsetLeft:   35,
			CornerRadius: 10,
		},
		Colors: ColorsConfig{
			BlockFrom:    "dodgerblue",
			BlockTo:      "deepskyblue",
			BlockStroke:  "white",
			BallInner:    "orangered",
			BallOuter:    "tomato",
			PaddleFill:   "limegreen",
			PaddleStroke: "darkgreen",
		},
		Input: InputConfig{
			HoldMS: 150,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
