package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRound(Round{Session: "local", Ticks: 10}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	store.Close()

	// Migrations must be idempotent and data must survive.
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	rounds, err := store.RecentRounds(10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Errorf("Expected 1 round after reopen, got %d", len(rounds))
	}
}

func TestSaveRoundFillsDefaults(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveRound(Round{Session: "local", Ticks: 300, BlocksDestroyed: 4, PaddleBounces: 2})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	if saved.ID == uuid.Nil {
		t.Error("SaveRound should assign an ID")
	}
	if saved.EndedAt.IsZero() {
		t.Error("SaveRound should set EndedAt")
	}

	got, err := store.RoundByID(saved.ID)
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RoundByID() returned nil for a saved round")
	}
	if got.ID != saved.ID || got.Session != "local" || got.Ticks != 300 ||
		got.BlocksDestroyed != 4 || got.PaddleBounces != 2 {
		t.Errorf("RoundByID() = %+v, expected %+v", *got, saved)
	}
	if !got.EndedAt.Equal(saved.EndedAt) {
		t.Errorf("EndedAt = %v, expected %v", got.EndedAt, saved.EndedAt)
	}
}

func TestRoundByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RoundByID(uuid.New())
	if err != nil {
		t.Fatalf("RoundByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for unknown round, got %+v", got)
	}
}

func TestRecentRounds(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := range 5 {
		_, err := store.SaveRound(Round{
			Session: "local",
			Ticks:   (i + 1) * 100,
			EndedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	rounds, err := store.RecentRounds(3)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}

	// Newest first
	expectedTicks := []int{500, 400, 300}
	for i, r := range rounds {
		if r.Ticks != expectedTicks[i] {
			t.Errorf("rounds[%d].Ticks = %d, expected %d", i, r.Ticks, expectedTicks[i])
		}
	}
	if !rounds[0].EndedAt.Equal(base.Add(4 * time.Minute)) {
		t.Errorf("rounds[0].EndedAt = %v", rounds[0].EndedAt)
	}

	// Default limit
	all, err := store.RecentRounds(0)
	if err != nil {
		t.Fatalf("RecentRounds(0) failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 rounds with default limit, got %d", len(all))
	}
}

func TestSessionRounds(t *testing.T) {
	store := openTestStore(t)

	sessions := []string{"local", "ssh-a", "ssh-a", "ssh-b"}
	for _, s := range sessions {
		if _, err := store.SaveRound(Round{Session: s, Ticks: 1}); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	tests := []struct {
		session  string
		expected int
	}{
		{"local", 1},
		{"ssh-a", 2},
		{"ssh-b", 1},
		{"nobody", 0},
	}

	for _, tc := range tests {
		t.Run(tc.session, func(t *testing.T) {
			rounds, err := store.SessionRounds(tc.session, 10)
			if err != nil {
				t.Fatalf("SessionRounds() failed: %v", err)
			}
			if len(rounds) != tc.expected {
				t.Errorf("Expected %d rounds, got %d", tc.expected, len(rounds))
			}
			for _, r := range rounds {
				if r.Session != tc.session {
					t.Errorf("got round of session %q", r.Session)
				}
			}
		})
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty journal failed: %v", err)
	}
	if empty.Rounds != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected stats for empty journal: %+v", empty)
	}

	last := time.Date(2026, 5, 2, 8, 30, 0, 0, time.UTC)
	rounds := []Round{
		{Session: "local", Ticks: 100, BlocksDestroyed: 2, PaddleBounces: 1, EndedAt: last.Add(-time.Hour)},
		{Session: "local", Ticks: 300, BlocksDestroyed: 7, PaddleBounces: 4, EndedAt: last},
		{Session: "ssh-a", Ticks: 200, BlocksDestroyed: 3, PaddleBounces: 2, EndedAt: last.Add(-2 * time.Hour)},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.Rounds != 3 {
		t.Errorf("Rounds = %d, expected 3", stats.Rounds)
	}
	if stats.Sessions != 2 {
		t.Errorf("Sessions = %d, expected 2", stats.Sessions)
	}
	if stats.TotalTicks != 600 || stats.TotalBlocks != 12 {
		t.Errorf("totals = %d ticks / %d blocks", stats.TotalTicks, stats.TotalBlocks)
	}
	if stats.MostBlocks != 7 || stats.LongestRound != 300 {
		t.Errorf("MostBlocks = %d, LongestRound = %d", stats.MostBlocks, stats.LongestRound)
	}
	if stats.AvgTicks != 200 {
		t.Errorf("AvgTicks = %v, expected 200", stats.AvgTicks)
	}
	if !stats.LastPlayed.Equal(last) {
		t.Errorf("LastPlayed = %v, expected %v", stats.LastPlayed, last)
	}
}

func TestClearRounds(t *testing.T) {
	store := openTestStore(t)

	for range 3 {
		if _, err := store.SaveRound(Round{Session: "local"}); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	if err := store.ClearRounds(); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	rounds, err := store.RecentRounds(10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 0 {
		t.Errorf("Expected empty journal, got %d rounds", len(rounds))
	}
}
