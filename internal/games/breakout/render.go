package breakout

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
)

// Theme holds the colors and corner radii used by Render.
type Theme struct {
	BlockFrom    color.Color
	BlockTo      color.Color
	BlockStroke  color.Color
	BallInner    color.Color
	BallOuter    color.Color
	PaddleFill   color.Color
	PaddleStroke color.Color

	BlockRadius  float64
	PaddleRadius float64
}

// DefaultTheme returns the built-in look.
func DefaultTheme() Theme {
	return Theme{
		BlockFrom:    colornames.Dodgerblue,
		BlockTo:      colornames.Deepskyblue,
		BlockStroke:  colornames.White,
		BallInner:    colornames.Orangered,
		BallOuter:    colornames.Tomato,
		PaddleFill:   colornames.Limegreen,
		PaddleStroke: colornames.Darkgreen,
		BlockRadius:  10,
		PaddleRadius: 5,
	}
}

// NewTheme builds a theme from config. Empty color entries keep the default.
func NewTheme(cfg config.BreakoutConfig) (Theme, error) {
	t := DefaultTheme()
	t.BlockRadius = cfg.Blocks.CornerRadius
	t.PaddleRadius = cfg.Paddle.CornerRadius

	fields := []struct {
		value string
		dst   *color.Color
	}{
		{cfg.Colors.BlockFrom, &t.BlockFrom},
		{cfg.Colors.BlockTo, &t.BlockTo},
		{cfg.Colors.BlockStroke, &t.BlockStroke},
		{cfg.Colors.BallInner, &t.BallInner},
		{cfg.Colors.BallOuter, &t.BallOuter},
		{cfg.Colors.PaddleFill, &t.PaddleFill},
		{cfg.Colors.PaddleStroke, &t.PaddleStroke},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		c, err := ParseColor(f.value)
		if err != nil {
			return t, err
		}
		*f.dst = c
	}
	return t, nil
}

// ParseColor accepts an SVG color name ("dodgerblue") or #rrggbb.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("breakout: unknown color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("breakout: bad color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Render draws one frame: blocks, then ball, then paddle.
// It never mutates the state.
func Render(s *State, t Theme, dst core.Canvas) {
	dst.Clear()
	renderBlocks(s, t, dst)
	renderBall(s, t, dst)
	renderPaddle(s, t, dst)
}

func renderBlocks(s *State, t Theme, dst core.Canvas) {
	for c := range s.Grid {
		for r := range s.Grid[c] {
			if !s.Grid[c][r].Active() {
				continue
			}
			fx, fy, fw, fh := s.Layout.BlockRect(c, r)
			x, y, w, h := fx.Float(), fy.Float(), fw.Float(), fh.Float()

			fill := core.LinearGradient(x, y, x+w, y+h,
				core.Stop{Offset: 0, Color: t.BlockFrom},
				core.Stop{Offset: 1, Color: t.BlockTo},
			)
			dst.FillRoundedRect(x, y, w, h, t.BlockRadius, fill, t.BlockStroke)
		}
	}
}

func renderBall(s *State, t Theme, dst core.Canvas) {
	x, y, r := s.Ball.X.Float(), s.Ball.Y.Float(), s.Layout.BallRadius.Float()
	fill := core.RadialGradient(x, y, r/4, r,
		core.Stop{Offset: 0, Color: t.BallInner},
		core.Stop{Offset: 1, Color: t.BallOuter},
	)
	dst.FillCircle(x, y, r, fill)
}

func renderPaddle(s *State, t Theme, dst core.Canvas) {
	p := s.PaddleRect()
	dst.FillRoundedRect(p.X, p.Y, p.W, p.H, t.PaddleRadius, core.Solid(t.PaddleFill), t.PaddleStroke)
}
