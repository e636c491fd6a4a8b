package breakout

import (
	"sync/atomic"

	"github.com/vovakirdan/blockbreak/internal/core"
)

// Key identifiers understood by Keys. Both the modern and the legacy
// name are accepted for each direction.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyLeft       = "Left"
	KeyArrowRight = "ArrowRight"
	KeyRight      = "Right"
)

// Direction is a logical paddle direction.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// ParseKey maps a key identifier to a direction. Unknown keys map to DirNone.
func ParseKey(id string) Direction {
	switch id {
	case KeyArrowLeft, KeyLeft:
		return DirLeft
	case KeyArrowRight, KeyRight:
		return DirRight
	default:
		return DirNone
	}
}

// Keys turns key press/release events into two held flags.
//
// Events may arrive on a different goroutine than the tick that reads the
// flags; each flag has a single writer key, so atomics are enough.
type Keys struct {
	left  atomic.Bool
	right atomic.Bool
}

// Press records a key-down event.
func (k *Keys) Press(id string) {
	k.set(ParseKey(id), true)
}

// Release records a key-up event.
func (k *Keys) Release(id string) {
	k.set(ParseKey(id), false)
}

func (k *Keys) set(d Direction, held bool) {
	switch d {
	case DirLeft:
		k.left.Store(held)
	case DirRight:
		k.right.Store(held)
	}
}

// Left reports whether left is held.
func (k *Keys) Left() bool {
	return k.left.Load()
}

// Right reports whether right is held.
func (k *Keys) Right() bool {
	return k.right.Load()
}

// ReleaseAll clears both flags.
func (k *Keys) ReleaseAll() {
	k.left.Store(false)
	k.right.Store(false)
}

// Frame snapshots the flags as an input frame for one tick.
func (k *Keys) Frame() core.InputFrame {
	f := core.NewInputFrame()
	if k.Left() {
		f.Set(core.ActionLeft)
	}
	if k.Right() {
		f.Set(core.ActionRight)
	}
	return f
}
