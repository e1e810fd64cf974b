// Package storage provides SQLite-based persistence for scores and settings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// ScoreEntry is a single finished run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Level     int // Level reached (0-based)
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dbPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions share one store; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	if err := runMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return &Store{db: db, logger: log.Default()}, nil
}

// SetLogger replaces the logger used for persistence warnings.
func (s *Store) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score, level int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score, level) VALUES (?, ?, ?)",
		gameID, score, level,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game, best first.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, level, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

// AllScores retrieves all scores for the given game (no limit).
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, game_id, score, level, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

func scanScores(rows *sql.Rows) ([]ScoreEntry, error) {
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// HighScore returns the stored best score for the game.
// Missing or corrupt data reads as 0 ("no scores yet"); corruption is logged.
func (s *Store) HighScore(gameID string) int {
	var raw sql.NullString
	err := s.db.QueryRow(
		"SELECT score FROM high_scores WHERE game_id = ?",
		gameID,
	).Scan(&raw)

	if errors.Is(err, sql.ErrNoRows) {
		return 0
	}
	if err != nil {
		s.logger.Warn("cannot read high score", "game", gameID, "err", err)
		return 0
	}
	if !raw.Valid {
		return 0
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw.String))
	if err != nil || n < 0 {
		s.logger.Warn("corrupt high score ignored", "game", gameID, "value", raw.String)
		return 0
	}
	return n
}

// UpdateHighScore raises the stored best score if score beats it.
// Returns true when the record changed.
func (s *Store) UpdateHighScore(gameID string, score int) (bool, error) {
	if score <= s.HighScore(gameID) {
		return false, nil
	}

	_, err := s.db.Exec(
		`INSERT INTO high_scores (game_id, score, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		gameID, score,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot update high score: %w", err)
	}
	return true, nil
}

// ClearScores deletes all scores and the high score for the given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM high_scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	BestLevel  int
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(level), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.BestLevel, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}
