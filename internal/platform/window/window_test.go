package window

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockbreak/internal/storage"
)

func TestOptionsDefaults(t *testing.T) {
	o := Options{}.withDefaults()
	if o.Logger == nil || o.Scale != 1 || o.Title == "" {
		t.Errorf("unexpected defaults: %+v", o)
	}

	o = Options{Scale: 1.5, Title: "x"}.withDefaults()
	if o.Scale != 1.5 || o.Title != "x" {
		t.Error("explicit values must be kept")
	}
}

func TestJournal(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open() error: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	o := Options{Store: store, Logger: log.New(&buf)}.withDefaults()
	o.journal(storage.Round{Session: Session, Ticks: 42, BlocksDestroyed: 2})

	rounds, err := store.SessionRounds(Session, 10)
	if err != nil {
		t.Fatalf("SessionRounds() error: %v", err)
	}
	if len(rounds) != 1 || rounds[0].Ticks != 42 {
		t.Errorf("unexpected rounds: %+v", rounds)
	}
	if !strings.Contains(buf.String(), "round ended") {
		t.Errorf("expected log line, got %q", buf.String())
	}

	// Without a store only the log line is written.
	Options{}.withDefaults().journal(storage.Round{Session: Session})
}
