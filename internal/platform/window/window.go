//go:build ebiten

package window

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/blockbreak/internal/games/breakout"
	"github.com/vovakirdan/blockbreak/internal/raster"
	"github.com/vovakirdan/blockbreak/internal/storage"
)

var (
	background = color.RGBA{A: 0xff}
	shade      = color.RGBA{A: 0xa0}
)

// directionKeys are forwarded to breakout.Keys by their ebiten name.
var directionKeys = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowRight}

// Game adapts a breakout game to the ebiten.Game interface.
type Game struct {
	game   *breakout.Game
	keys   *breakout.Keys
	canvas *raster.Canvas
	frame  *ebiten.Image
	shade  *ebiten.Image
	opts   Options
}

// New constructs a Game for the provided breakout game.
func New(game *breakout.Game, opts Options) *Game {
	cfg := game.Config()
	w, h := int(cfg.Surface.Width), int(cfg.Surface.Height)

	g := &Game{
		game:   game,
		keys:   &breakout.Keys{},
		canvas: raster.NewCanvas(w, h),
		frame:  ebiten.NewImage(w, h),
		shade:  ebiten.NewImage(w, h),
		opts:   opts.withDefaults(),
	}
	g.shade.Fill(shade)
	game.Render(g.canvas)
	return g
}

// Update handles input and runs one frame: draw into the canvas, then step.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, k := range directionKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.keys.Press(k.String())
		}
		if inpututil.IsKeyJustReleased(k) {
			g.keys.Release(k.String())
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && g.game.Acknowledge() {
		g.opts.Logger.Debug("round restarted", "session", Session)
	}

	wasOver := g.game.State().GameOver
	res := g.game.Tick(g.keys.Frame(), g.canvas)
	if res.GameOver && !wasOver {
		stats := g.game.Round()
		g.opts.journal(storage.Round{
			Session:         Session,
			Ticks:           stats.Ticks,
			BlocksDestroyed: stats.BlocksDestroyed,
			PaddleBounces:   stats.PaddleBounces,
		})
	}
	return nil
}

// Draw presents the last rendered frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.frame.WritePixels(g.canvas.Image().Pix)
	screen.DrawImage(g.frame, nil)

	if g.game.State().GameOver {
		screen.DrawImage(g.shade, nil)
		w, h := g.frame.Bounds().Dx(), g.frame.Bounds().Dy()
		drawCentered(screen, "GAME OVER", w, h/2-10)
		drawCentered(screen, "Press Enter to restart", w, h/2+14)
	}
}

func drawCentered(screen *ebiten.Image, msg string, width, y int) {
	face := basicfont.Face7x13
	x := (width - len(msg)*face.Advance) / 2
	text.Draw(screen, msg, face, x, y, color.White)
}

// Layout returns the logical surface size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.frame.Bounds()
	return b.Dx(), b.Dy()
}

// Run opens a window and plays until it is closed or Q/Esc is pressed.
// Update runs once per displayed frame.
func Run(game *breakout.Game, opts Options) error {
	g := New(game, opts)
	w, h := g.Layout(0, 0)

	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowSize(int(float64(w)*g.opts.Scale), int(float64(h)*g.opts.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
