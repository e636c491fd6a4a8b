// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all configuration for the game screen.
// All distances are in surface units; velocities are in units per frame.
type BreakoutConfig struct {
	Surface SurfaceConfig `yaml:"surface"`
	Paddle  PaddleConfig  `yaml:"paddle"`
	Ball    BallConfig    `yaml:"ball"`
	Blocks  BlocksConfig  `yaml:"blocks"`
	Colors  ColorsConfig  `yaml:"colors"`
	Input   InputConfig   `yaml:"input"`
}

// SurfaceConfig defines the fixed logical drawing surface.
type SurfaceConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines the paddle geometry and speed.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Step         float64 `yaml:"step"` // Horizontal move per frame while a key is held
	CornerRadius float64 `yaml:"corner_radius"`
}

// BallConfig defines the ball size and launch state.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	StartOffset float64 `yaml:"start_offset"` // Distance of the start position above the bottom edge
	VX          float64 `yaml:"vx"`
	VY          float64 `yaml:"vy"`
}

// BlocksConfig defines the block grid.
type BlocksConfig struct {
	Columns      int     `yaml:"columns"`
	Rows         int     `yaml:"rows"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Padding      float64 `yaml:"padding"`
	OffsetTop    float64 `yaml:"offset_top"`
	OffsetLeft   float64 `yaml:"offset_left"`
	CornerRadius float64 `yaml:"corner_radius"`
}

// ColorsConfig holds color names (CSS/SVG names) or #rrggbb values.
type ColorsConfig struct {
	BlockFrom    string `yaml:"block_from"`
	BlockTo      string `yaml:"block_to"`
	BlockStroke  string `yaml:"block_stroke"`
	BallInner    string `yaml:"ball_inner"`
	BallOuter    string `yaml:"ball_outer"`
	PaddleFill   string `yaml:"paddle_fill"`
	PaddleStroke string `yaml:"paddle_stroke"`
}

// InputConfig tunes key handling on terminals, which report no key releases.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // A key counts as released after this long without a repeat
}

// Validate checks that the configuration describes a playable screen.
func (c BreakoutConfig) Validate() error {
	var errs []error

	if c.Surface.Width <= 0 || c.Surface.Height <= 0 {
		errs = append(errs, fmt.Errorf("surface must be positive, got %vx%v", c.Surface.Width, c.Surface.Height))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %vx%v", c.Paddle.Width, c.Paddle.Height))
	}
	if c.Paddle.Width > c.Surface.Width {
		errs = append(errs, fmt.Errorf("paddle width %v exceeds surface width %v", c.Paddle.Width, c.Surface.Width))
	}
	if c.Paddle.Step <= 0 {
		errs = append(errs, fmt.Errorf("paddle step must be positive, got %v", c.Paddle.Step))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %v", c.Ball.Radius))
	}
	if c.Ball.VX == 0 || c.Ball.VY == 0 {
		errs = append(errs, fmt.Errorf("ball velocity must be diagonal, got (%v, %v)", c.Ball.VX, c.Ball.VY))
	}
	if c.Ball.StartOffset <= 0 || c.Ball.StartOffset >= c.Surface.Height {
		errs = append(errs, fmt.Errorf("ball start offset %v outside surface", c.Ball.StartOffset))
	}
	if c.Blocks.Columns < 0 || c.Blocks.Rows < 0 {
		errs = append(errs, fmt.Errorf("block grid must not be negative, got %dx%d", c.Blocks.Columns, c.Blocks.Rows))
	}
	if c.Blocks.Columns > 0 && c.Blocks.Rows > 0 {
		right := c.Blocks.OffsetLeft + float64(c.Blocks.Columns)*(c.Blocks.Width+c.Blocks.Padding) - c.Blocks.Padding
		bottom := c.Blocks.OffsetTop + float64(c.Blocks.Rows)*(c.Blocks.Height+c.Blocks.Padding) - c.Blocks.Padding
		if right > c.Surface.Width || bottom > c.Surface.Height {
			errs = append(errs, fmt.Errorf("block grid %vx%v does not fit the surface", right, bottom))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid breakout config: %w", errors.Join(errs...))
	}
	return nil
}
