// Package window runs the game in a native window with ebiten.
//
// The window driver needs the ebiten build tag:
//
//	go build -tags ebiten ./cmd/blockbreak
//
// Without it Run reports ErrUnavailable.
package window

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockbreak/internal/storage"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("window: built without the ebiten tag, rebuild with -tags ebiten")

// Session is the journal session name of window rounds.
const Session = "window"

// Options configures the window driver. Zero values select defaults.
type Options struct {
	Store  *storage.Store // Round journal; nil disables it
	Logger *log.Logger    // nil discards log output
	Scale  float64        // Initial window size relative to the surface
	Title  string
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Title == "" {
		o.Title = "Blockbreak"
	}
	return o
}

// journal records a finished round, logging failures instead of returning them.
func (o Options) journal(r storage.Round) {
	o.Logger.Info("round ended",
		"session", r.Session,
		"ticks", r.Ticks,
		"blocks", r.BlocksDestroyed,
		"bounces", r.PaddleBounces,
	)
	if o.Store == nil {
		return
	}
	if _, err := o.Store.SaveRound(r); err != nil {
		o.Logger.Warn("could not save round", "error", err)
	}
}
