package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/blockbreak/internal/games/breakout"
)

// KeyMap defines the key bindings while playing.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Confirm, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Confirm, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// DefaultHold is how long a direction stays held after its last press or
// auto-repeat.
const DefaultHold = 150 * time.Millisecond

// holdKeys feeds breakout.Keys from a terminal. Terminals report presses and
// auto-repeats but never releases, so a direction is released once no repeat
// arrived within hold, or as soon as the opposite direction is pressed.
type holdKeys struct {
	keys *breakout.Keys
	hold time.Duration

	lastLeft  time.Time
	lastRight time.Time
}

func newHoldKeys(keys *breakout.Keys, hold time.Duration) *holdKeys {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &holdKeys{keys: keys, hold: hold}
}

// press records a press or repeat of a direction at now.
func (h *holdKeys) press(dir breakout.Direction, now time.Time) {
	switch dir {
	case breakout.DirLeft:
		h.keys.Release(breakout.KeyArrowRight)
		h.keys.Press(breakout.KeyArrowLeft)
		h.lastLeft = now
	case breakout.DirRight:
		h.keys.Release(breakout.KeyArrowLeft)
		h.keys.Press(breakout.KeyArrowRight)
		h.lastRight = now
	}
}

// expire releases directions whose last press is older than the hold time.
func (h *holdKeys) expire(now time.Time) {
	if h.keys.Left() && now.Sub(h.lastLeft) > h.hold {
		h.keys.Release(breakout.KeyArrowLeft)
	}
	if h.keys.Right() && now.Sub(h.lastRight) > h.hold {
		h.keys.Release(breakout.KeyArrowRight)
	}
}

// releaseAll drops both directions.
func (h *holdKeys) releaseAll() {
	h.keys.ReleaseAll()
}
