package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreCreatesNestedDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndLoadRun(t *testing.T) {
	store := openTemp(t)

	in := Run{
		Level:      "01-tiny",
		Seed:       42,
		Difficulty: "normal",
		Config:     "gameplay:\n  lives: 3\n",
		Inputs:     ">>>vvv..<<p^",
		Score:      120,
		Ticks:      12,
		Outcome:    "lost",
	}
	id, err := store.SaveRun(in)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	got, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run(%d) failed: %v", id, err)
	}

	in.ID = id
	in.CreatedAt = got.CreatedAt
	if *got != in {
		t.Errorf("Run() = %+v, expected %+v", *got, in)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreRunNotFound(t *testing.T) {
	store := openTemp(t)

	_, err := store.Run(404)
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Run(404) error = %v, expected ErrRunNotFound", err)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTemp(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(Run{Level: "01-tiny", Seed: int64(i), Inputs: "", Outcome: "quit"}); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	// Newest first
	if runs[0].Seed != 4 || runs[1].Seed != 3 || runs[2].Seed != 2 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	all, err := store.RecentRuns(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 runs with default limit, got %d", len(all))
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTemp(t)

	store.SaveRun(Run{Level: "a", Outcome: "won"})
	store.SaveRun(Run{Level: "b", Outcome: "lost"})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
}
