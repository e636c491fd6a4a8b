package tui

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockbreak/internal/config"
	"github.com/vovakirdan/blockbreak/internal/core"
	"github.com/vovakirdan/blockbreak/internal/games/breakout"
	"github.com/vovakirdan/blockbreak/internal/raster"
	"github.com/vovakirdan/blockbreak/internal/storage"
)

// Smallest terminal that still shows a usable picture, footer included.
const (
	minCols = 32
	minRows = 12
)

// LocalSession names rounds played in the local terminal.
const LocalSession = "local"

var (
	overlayFG = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	overlayBG = color.RGBA{R: 0x8b, A: 0xff}
	noticeFG  = color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}
)

// Options configures a Model. Zero values select defaults.
type Options struct {
	Store    *storage.Store     // Round journal; nil disables it
	Logger   *log.Logger        // nil discards log output
	Renderer *lipgloss.Renderer // nil uses the default renderer
	Session  string             // Journal session name, LocalSession if empty

	TickRate int           // Frames per second
	Hold     time.Duration // Synthesized key release delay

	Width, Height int // Initial terminal size

	ScreenshotDir string // Defaults to ~/.blockbreak/screenshots
}

// Model is the Bubble Tea model that drives one game screen.
type Model struct {
	game    *breakout.Game
	keys    *breakout.Keys
	hold    *holdKeys
	canvas  *raster.Canvas
	blitter *raster.Blitter
	screen  *core.Screen

	opts     Options
	keyMap   KeyMap
	help     help.Model
	width    int
	height   int
	status   string // Last screenshot result, shown in the footer
	quitting bool
}

// NewModel creates a model for the given game.
func NewModel(game *breakout.Game, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	if opts.Session == "" {
		opts.Session = LocalSession
	}
	if opts.TickRate <= 0 {
		opts.TickRate = DefaultTickRate
	}

	cfg := game.Config()
	keys := &breakout.Keys{}
	canvas := raster.NewCanvas(int(cfg.Surface.Width), int(cfg.Surface.Height))
	game.Render(canvas)

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:    game,
		keys:    keys,
		hold:    newHoldKeys(keys, opts.Hold),
		canvas:  canvas,
		blitter: raster.NewBlitter(core.DefaultBG),
		screen:  core.NewScreen(0, 0),
		opts:    opts,
		keyMap:  DefaultKeyMap(),
		help:    h,
	}
	m.resize(opts.Width, opts.Height)
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Screenshot):
		m.status = m.saveScreenshot()

	case key.Matches(msg, m.keyMap.Confirm):
		if m.game.Acknowledge() {
			m.hold.releaseAll()
			m.opts.Logger.Debug("round restarted", "session", m.opts.Session)
		}

	case key.Matches(msg, m.keyMap.Left):
		m.hold.press(breakout.DirLeft, now)

	case key.Matches(msg, m.keyMap.Right):
		m.hold.press(breakout.DirRight, now)
	}

	return m, nil
}

// handleTick runs one frame: draw the current state, then simulate.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.hold.expire(now)

	wasOver := m.game.State().GameOver
	res := m.game.Tick(m.keys.Frame(), m.canvas)
	if res.GameOver && !wasOver {
		m.recordRound()
	}

	return m, tickCmd(m.opts.TickRate)
}

// recordRound logs the finished round and appends it to the journal.
func (m Model) recordRound() {
	stats := m.game.Round()
	m.opts.Logger.Info("round ended",
		"session", m.opts.Session,
		"ticks", stats.Ticks,
		"blocks", stats.BlocksDestroyed,
		"bounces", stats.PaddleBounces,
	)

	if m.opts.Store == nil {
		return
	}
	round, err := m.opts.Store.SaveRound(storage.Round{
		Session:         m.opts.Session,
		Ticks:           stats.Ticks,
		BlocksDestroyed: stats.BlocksDestroyed,
		PaddleBounces:   stats.PaddleBounces,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save round", "error", err)
		return
	}
	m.opts.Logger.Debug("round saved", "id", round.ID)
}

// saveScreenshot writes the current surface to a PNG file and returns a
// status line for the footer.
func (m Model) saveScreenshot() string {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
			return "screenshot failed"
		}
		dir = filepath.Join(home, config.ConfigDirName, "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", m.game.ID(), timestamp))
	if err := m.canvas.SavePNG(path); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return "screenshot failed"
	}

	m.opts.Logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

// resize adapts the cell buffer to a new terminal size. The last row is
// reserved for the help footer.
func (m *Model) resize(width, height int) {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.screen.Resize(m.width, max(m.height-1, 0))
	m.help.Width = m.width
}

func (m Model) tooSmall() bool {
	return m.width < minCols || m.height < minRows
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		m.screen.Clear()
		mid := m.screen.Height() / 2
		m.screen.DrawTextCentered(mid-1, "Window too small", noticeFG, core.DefaultBG)
		m.screen.DrawTextCentered(mid+1, fmt.Sprintf("Need %dx%d", minCols, minRows), noticeFG, core.DefaultBG)
		return RenderScreen(m.screen, m.opts.Renderer)
	}

	m.blitter.Blit(m.canvas.Image(), m.screen)
	if m.game.State().GameOver {
		m.drawGameOver()
	}

	return RenderScreen(m.screen, m.opts.Renderer) + "\n" + m.footer()
}

// drawGameOver puts the game-over notice over the surface.
func (m Model) drawGameOver() {
	const boxW, boxH = 28, 5
	x := (m.screen.Width() - boxW) / 2
	y := (m.screen.Height() - boxH) / 2

	m.screen.DrawBox(x, y, boxW, boxH, overlayFG, overlayBG)
	m.screen.DrawTextCentered(y+1, "GAME OVER", overlayFG, overlayBG)
	m.screen.DrawTextCentered(y+3, "Press Enter to restart", overlayFG, overlayBG)
}

func (m Model) footer() string {
	style := m.opts.Renderer.NewStyle().Foreground(lipgloss.Color("241"))
	if m.status != "" {
		return style.Render(m.status)
	}
	return style.Render(m.help.View(m.keyMap))
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run plays the game in the local terminal until the user quits.
func Run(game *breakout.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
