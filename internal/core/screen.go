package core

import (
	"image/color"
	"strings"
)

// Cell is one terminal character with truecolor foreground and background.
type Cell struct {
	Rune rune
	FG   color.RGBA
	BG   color.RGBA
}

// Default cell colors.
var (
	DefaultFG = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	DefaultBG = color.RGBA{A: 0xff}
)

// Screen is a 2D cell buffer for terminal output.
// It decouples game rendering from the terminal: the platform rasterizes the
// game surface into cells and writes overlay text on top.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is cleared.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', FG: DefaultFG, BG: DefaultBG}
		}
	}
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Set places a rune at the given position, keeping the cell colors.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x].Rune = r
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', FG: DefaultFG, BG: DefaultBG}
	}
	return s.cells[y][x]
}

// Get returns the rune at the given position.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// DrawText writes a string horizontally starting at (x, y) with the given colors.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg, bg color.RGBA) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, FG: fg, BG: bg})
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, fg, bg color.RGBA) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, fg, bg)
}

// DrawBox draws a filled box with a box-drawing outline.
func (s *Screen) DrawBox(x, y, w, h int, fg, bg color.RGBA) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			s.SetCell(xx, yy, Cell{Rune: ' ', FG: fg, BG: bg})
		}
	}

	// Corners
	s.SetCell(x, y, Cell{Rune: '┌', FG: fg, BG: bg})
	s.SetCell(x+w-1, y, Cell{Rune: '┐', FG: fg, BG: bg})
	s.SetCell(x, y+h-1, Cell{Rune: '└', FG: fg, BG: bg})
	s.SetCell(x+w-1, y+h-1, Cell{Rune: '┘', FG: fg, BG: bg})

	for xx := x + 1; xx < x+w-1; xx++ {
		s.SetCell(xx, y, Cell{Rune: '─', FG: fg, BG: bg})
		s.SetCell(xx, y+h-1, Cell{Rune: '─', FG: fg, BG: bg})
	}
	for yy := y + 1; yy < y+h-1; yy++ {
		s.SetCell(x, yy, Cell{Rune: '│', FG: fg, BG: bg})
		s.SetCell(x+w-1, yy, Cell{Rune: '│', FG: fg, BG: bg})
	}
}

// String returns the runes of the screen without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := range s.height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range s.width {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}
