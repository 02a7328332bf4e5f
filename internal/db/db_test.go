package db

import (
	"testing"
	"time"
)

// setupTestDB points the package at a fresh in-memory database.
func setupTestDB(t *testing.T) {
	t.Helper()

	if err := Initialize(":memory:"); err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() {
		Close()
		DB = nil
	})
}

// pinClock freezes the package clock at a known instant.
func pinClock(t *testing.T, at time.Time) {
	t.Helper()

	original := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = original })
}
