package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	runs := []RunEntry{
		{Width: 80, Height: 24, Steps: 1500, EndReason: EndLeftGrid, Duration: 30},
		{Width: 80, Height: 24, Steps: 200, EndReason: EndQuit, Duration: 4},
		{Width: 120, Height: 40, Steps: 9800, EndReason: EndLeftGrid, Duration: 196},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Errorf("Expected 3 runs, got %d", len(recent))
	}
	// Newest first
	if recent[0].Steps != 9800 {
		t.Errorf("Expected newest run first (9800 steps), got %d", recent[0].Steps)
	}

	longest, err := store.LongestRuns(2)
	if err != nil {
		t.Fatalf("LongestRuns() failed: %v", err)
	}
	if len(longest) != 2 {
		t.Errorf("Expected 2 runs, got %d", len(longest))
	}
	if longest[0].Steps != 9800 || longest[1].Steps != 1500 {
		t.Errorf("Longest runs out of order: %d, %d", longest[0].Steps, longest[1].Steps)
	}
	if longest[0].EndReason != EndLeftGrid {
		t.Errorf("EndReason = %q, expected %q", longest[0].EndReason, EndLeftGrid)
	}
}

func TestStoreStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Empty store
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 0 || stats.MaxSteps != 0 {
		t.Errorf("Empty store stats: %+v", stats)
	}

	for _, steps := range []int64{100, 300, 200} {
		if _, err := store.SaveRun(RunEntry{Width: 80, Height: 24, Steps: steps, EndReason: EndQuit}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 3 {
		t.Errorf("RunsCount = %d, expected 3", stats.RunsCount)
	}
	if stats.MaxSteps != 300 {
		t.Errorf("MaxSteps = %d, expected 300", stats.MaxSteps)
	}
	if stats.TotalSteps != 600 {
		t.Errorf("TotalSteps = %d, expected 600", stats.TotalSteps)
	}
	if stats.AvgSteps != 200 {
		t.Errorf("AvgSteps = %f, expected 200", stats.AvgSteps)
	}
}

func TestStoreClear(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(RunEntry{Width: 10, Height: 10, Steps: 50, EndReason: EndQuit}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	recent, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(recent))
	}
}
