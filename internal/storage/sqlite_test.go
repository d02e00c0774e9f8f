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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "scores.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("voidrunner", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("neoncipher", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("voidrunner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []int{200, 100, 50}
	for i, e := range expected {
		if scores[i].Score != e {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, e)
		}
		if scores[i].GameID != "voidrunner" {
			t.Errorf("scores[%d].GameID = %q, expected voidrunner", i, scores[i].GameID)
		}
	}

	cipher, err := store.TopScores("neoncipher", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(cipher) != 1 || cipher[0].Score != 500 {
		t.Errorf("neoncipher scores = %+v, expected one entry of 500", cipher)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 20 {
		if _, err := store.SaveScore("voidrunner", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("voidrunner", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 190 {
		t.Errorf("Expected top score 190, got %d", scores[0].Score)
	}

	recent, err := store.RecentScores("voidrunner", 3)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	if len(recent) != 3 || recent[0].Score != 190 || recent[2].Score != 170 {
		t.Errorf("RecentScores() = %+v, expected 190, 180, 170", recent)
	}
}

func TestStoreRejectsNegativeScore(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("voidrunner", -1); err == nil {
		t.Error("SaveScore(-1) should fail")
	}
	if err := store.SaveHighScore("voidrunner", -1); err == nil {
		t.Error("SaveHighScore(-1) should fail")
	}
}

func TestHighScoreSlot(t *testing.T) {
	store := openTestStore(t)

	got, err := store.LoadHighScore("voidrunner")
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if got != 0 {
		t.Errorf("LoadHighScore() = %d, expected 0 for an unset slot", got)
	}

	tests := []struct {
		save     int
		expected int
	}{
		{120, 120},
		{80, 120},
		{300, 300},
		{300, 300},
	}

	for _, tt := range tests {
		if err := store.SaveHighScore("voidrunner", tt.save); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", tt.save, err)
		}
		got, err := store.LoadHighScore("voidrunner")
		if err != nil {
			t.Fatalf("LoadHighScore() failed: %v", err)
		}
		if got != tt.expected {
			t.Errorf("after SaveHighScore(%d): LoadHighScore() = %d, expected %d", tt.save, got, tt.expected)
		}
	}

	other, err := store.LoadHighScore("neoncipher")
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if other != 0 {
		t.Errorf("slots should be per game, neoncipher = %d", other)
	}
}

func TestHighScorePersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveHighScore("neoncipher", 90); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	got, err := store.LoadHighScore("neoncipher")
	if err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if got != 90 {
		t.Errorf("LoadHighScore() = %d, expected 90", got)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("voidrunner", 100)
	store.SaveScore("voidrunner", 200)
	store.SaveHighScore("voidrunner", 200)
	store.SaveScore("neoncipher", 300)
	store.SaveHighScore("neoncipher", 300)

	if err := store.ClearScores("voidrunner"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("voidrunner", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if best, _ := store.LoadHighScore("voidrunner"); best != 0 {
		t.Errorf("LoadHighScore() = %d after clear, expected 0", best)
	}

	if best, _ := store.LoadHighScore("neoncipher"); best != 300 {
		t.Errorf("other game's slot should be kept, got %d", best)
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("voidrunner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("voidrunner", 10)
	store.SaveScore("voidrunner", 30)
	store.SaveHighScore("voidrunner", 30)

	stats, err := store.GetGameStats("voidrunner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, expected 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
	if stats.TotalScore != 40 {
		t.Errorf("TotalScore = %d, expected 40", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	store.SaveScore("neoncipher", 60)
	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("GetAllGamesStats() = %d games, expected 2", len(all))
	}
	if all["neoncipher"].HighScore != 60 {
		t.Errorf("neoncipher HighScore = %d, expected history max 60 without a slot", all["neoncipher"].HighScore)
	}
	if all["voidrunner"].GamesCount != 2 {
		t.Errorf("voidrunner GamesCount = %d, expected 2", all["voidrunner"].GamesCount)
	}
}
