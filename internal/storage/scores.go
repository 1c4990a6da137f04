package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScoreRecord is a finished board to be recorded.
type ScoreRecord struct {
	GameID  string
	Profile string
	Score   int
	Rows    int
	Cols    int
	Moves   int
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	RunID     string
	GameID    string
	Profile   string
	Score     int
	Rows      int
	Cols      int
	Moves     int
	CreatedAt time.Time
}

// Board returns the board size as "RxC", or "" if unknown.
func (e ScoreEntry) Board() string {
	if e.Rows == 0 || e.Cols == 0 {
		return ""
	}
	return fmt.Sprintf("%dx%d", e.Rows, e.Cols)
}

// SaveScore records a finished board and returns its run ID.
func (s *Store) SaveScore(rec ScoreRecord) (string, error) {
	runID := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO scores (run_id, game_id, profile, score, board_rows, board_cols, moves)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, rec.GameID, rec.Profile, rec.Score, rec.Rows, rec.Cols, rec.Moves,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save score: %w", err)
	}
	return runID, nil
}

const scoreColumns = `id, run_id, game_id, profile, score, board_rows, board_cols, moves, created_at`

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending, then by fewer moves.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+scoreColumns+`
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, moves ASC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	return scanScores(rows)
}

// ProfileTopScores is TopScores restricted to one profile.
func (s *Store) ProfileTopScores(gameID, profile string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+scoreColumns+`
		 FROM scores
		 WHERE game_id = ? AND profile = ?
		 ORDER BY score DESC, moves ASC, id ASC
		 LIMIT ?`,
		gameID, profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	return scanScores(rows)
}

// ScoreByRun retrieves a score by its run ID. Returns nil if not found.
func (s *Store) ScoreByRun(runID string) (*ScoreEntry, error) {
	row := s.db.QueryRow(`SELECT `+scoreColumns+` FROM scores WHERE run_id = ?`, runID)

	e, err := scanScore(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &e, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanScore(sc scanner) (ScoreEntry, error) {
	var e ScoreEntry
	var createdAt any
	err := sc.Scan(&e.ID, &e.RunID, &e.GameID, &e.Profile, &e.Score, &e.Rows, &e.Cols, &e.Moves, &createdAt)
	if err != nil {
		return ScoreEntry{}, err
	}
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

func scanScores(rows *sql.Rows) ([]ScoreEntry, error) {
	var entries []ScoreEntry
	for rows.Next() {
		e, err := scanScore(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	BestMoves  int
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MIN(moves), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.BestMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}
