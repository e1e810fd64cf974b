package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	v, err := store.SchemaVersion(context.Background())
	if err != nil {
		t.Fatalf("SchemaVersion() failed: %v", err)
	}
	if v != 1 {
		t.Errorf("schema version = %d, want 1", v)
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("sushi", 1200, 1); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("sushi", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 1200 || scores[0].Level != 1 {
		t.Errorf("scores after reopen = %+v", scores)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct{ score, level int }{{100, 0}, {50, 0}, {200, 2}} {
		if _, err := store.SaveScore("sushi", s.score, s.level); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500, 0); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("sushi", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i].Score, w)
		}
	}
	if scores[0].Level != 2 {
		t.Errorf("level of best run = %d, want 2", scores[0].Level)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("created_at not parsed")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("sushi", (i+1)*100, 0)
	}

	scores, err := store.TopScores("sushi", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.AllScores("sushi")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("AllScores() returned %d, want 5", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	if high := store.HighScore("sushi"); high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	tests := []struct {
		score   int
		changed bool
		want    int
	}{
		{300, true, 300},
		{200, false, 300},
		{300, false, 300},
		{450, true, 450},
	}
	for _, tt := range tests {
		changed, err := store.UpdateHighScore("sushi", tt.score)
		if err != nil {
			t.Fatalf("UpdateHighScore(%d) failed: %v", tt.score, err)
		}
		if changed != tt.changed {
			t.Errorf("UpdateHighScore(%d) changed = %v, want %v", tt.score, changed, tt.changed)
		}
		if got := store.HighScore("sushi"); got != tt.want {
			t.Errorf("after %d: high = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestStoreCorruptHighScoreReadsZero(t *testing.T) {
	store := openTestStore(t)

	var buf bytes.Buffer
	store.SetLogger(log.New(&buf))

	if _, err := store.db.Exec(
		"INSERT INTO high_scores (game_id, score) VALUES (?, ?)", "sushi", "not-a-number",
	); err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	if high := store.HighScore("sushi"); high != 0 {
		t.Errorf("corrupt high score = %d, want 0", high)
	}
	if !strings.Contains(buf.String(), "corrupt high score") {
		t.Errorf("expected warning, log was %q", buf.String())
	}

	changed, err := store.UpdateHighScore("sushi", 10)
	if err != nil || !changed {
		t.Fatalf("UpdateHighScore over corrupt row = %v, %v", changed, err)
	}
	if high := store.HighScore("sushi"); high != 10 {
		t.Errorf("high = %d, want 10", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("sushi", 100, 0)
	store.SaveScore("sushi", 200, 0)
	store.UpdateHighScore("sushi", 200)
	store.SaveScore("other", 300, 0)

	if err := store.ClearScores("sushi"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("sushi", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if store.HighScore("sushi") != 0 {
		t.Error("high score should be cleared")
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("other game should not be affected by clearing")
	}
}

func TestStoreSettings(t *testing.T) {
	store := openTestStore(t)

	v, err := store.Setting(SettingControlMode)
	if err != nil {
		t.Fatalf("Setting() failed: %v", err)
	}
	if v != "" {
		t.Errorf("unset setting = %q, want empty", v)
	}

	for _, mode := range []string{"spin", "direction"} {
		if err := store.SetSetting(SettingControlMode, mode); err != nil {
			t.Fatalf("SetSetting() failed: %v", err)
		}
		got, err := store.Setting(SettingControlMode)
		if err != nil {
			t.Fatalf("Setting() failed: %v", err)
		}
		if got != mode {
			t.Errorf("Setting() = %q, want %q", got, mode)
		}
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("sushi")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("sushi", 100, 0)
	store.SaveScore("sushi", 300, 2)

	stats, err := store.GetGameStats("sushi")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestLevel != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("avg = %v, want 200", stats.AvgScore)
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
