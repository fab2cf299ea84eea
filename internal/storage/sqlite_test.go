package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenCreatesFile(t *testing.T) {
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct{ score, level int }{{10, 2}, {3, 1}, {72, 4}} {
		if _, err := store.SaveScore("paintdrop", s.score, s.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500, 9); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("paintdrop", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []struct{ score, level int }{{72, 4}, {10, 2}, {3, 1}}
	for i, e := range expected {
		if scores[i].Score != e.score || scores[i].Level != e.level {
			t.Errorf("scores[%d] = %d/%d, expected %d/%d", i, scores[i].Score, scores[i].Level, e.score, e.level)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d] has no timestamp", i)
		}
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 15; i++ {
		store.SaveScore("paintdrop", i*10, 1)
	}

	scores, err := store.TopScores("paintdrop", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 || scores[0].Score != 150 || scores[4].Score != 110 {
		t.Errorf("TopScores(5) = %+v", scores)
	}

	// Non-positive limit falls back to 10
	scores, _ = store.TopScores("paintdrop", 0)
	if len(scores) != 10 {
		t.Errorf("TopScores(0) returned %d rows, expected 10", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("paintdrop")
	if err != nil || high != 0 {
		t.Errorf("HighScore() on empty = %d, %v", high, err)
	}

	store.SaveScore("paintdrop", 40, 3)
	store.SaveScore("paintdrop", 12, 2)

	high, err = store.HighScore("paintdrop")
	if err != nil || high != 40 {
		t.Errorf("HighScore() = %d, %v, expected 40", high, err)
	}
}

func TestStoreLevelDefaultsToOne(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("paintdrop", 5, 0)
	scores, _ := store.TopScores("paintdrop", 1)
	if len(scores) != 1 || scores[0].Level != 1 {
		t.Errorf("level = %+v, expected 1", scores)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("paintdrop", 5, 1)
	store.SaveScore("other", 7, 1)

	if err := store.ClearScores("paintdrop"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("paintdrop", 10)
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Error("ClearScores() should not touch other games")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("paintdrop")
	if err != nil {
		t.Fatalf("GetGameStats() on empty failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("paintdrop", 10, 2)
	store.SaveScore("paintdrop", 30, 3)

	stats, err := store.GetGameStats("paintdrop")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.BestLevel != 3 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "persist.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore("paintdrop", 99, 5)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, _ := store.HighScore("paintdrop")
	if high != 99 {
		t.Errorf("HighScore() after reopen = %d, expected 99", high)
	}
}
