package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

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
	store := openTest(t)

	saves := []struct {
		pack   string
		player string
		score  int
		level  int
	}{
		{"classic", "ann", 1200, 2},
		{"classic", "bob", 450, 0},
		{"classic", "ann", 3100, 4},
		{"freebounce", "bob", 90, 0},
	}
	for _, s := range saves {
		if _, err := store.SaveScore(s.pack, s.player, s.score, s.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 3100 || scores[1].Score != 1200 || scores[2].Score != 450 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Player != "ann" || scores[0].Level != 4 || scores[0].Pack != "classic" {
		t.Errorf("Unexpected top entry: %+v", scores[0])
	}

	free, err := store.TopScores("freebounce", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(free) != 1 {
		t.Errorf("Expected 1 freebounce score, got %d", len(free))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTest(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", "p", (i+1)*100, i)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected default limit to return all 5 scores, got %d", len(all))
	}
}

func TestStoreTiesKeepOrder(t *testing.T) {
	store := openTest(t)
	store.SaveScore("classic", "first", 700, 1)
	store.SaveScore("classic", "second", 700, 1)

	scores, err := store.TopScores("classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Player != "first" || scores[1].Player != "second" {
		t.Errorf("Equal scores out of order: %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTest(t)

	high, err := store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty pack, got %d", high)
	}

	store.SaveScore("classic", "a", 100, 0)
	store.SaveScore("classic", "a", 300, 1)
	store.SaveScore("classic", "a", 200, 1)

	high, err = store.HighScore("classic")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTest(t)

	store.SaveScore("classic", "a", 100, 0)
	store.SaveScore("classic", "a", 200, 0)
	store.SaveScore("freebounce", "a", 300, 0)

	if err := store.ClearScores("classic"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classic, _ := store.TopScores("classic", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classic))
	}

	free, _ := store.TopScores("freebounce", 10)
	if len(free) != 1 {
		t.Errorf("freebounce scores should not be affected by clearing classic")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTest(t)

	empty, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for empty pack: %+v", empty)
	}

	store.SaveScore("classic", "a", 100, 1)
	store.SaveScore("classic", "b", 300, 3)
	store.SaveScore("freebounce", "c", 50, 0)

	stats, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.BestLevel != 3 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 || all["freebounce"].HighScore != 50 {
		t.Errorf("Unexpected AllStats(): %+v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
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
