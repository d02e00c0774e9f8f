package storage

import (
	"fmt"

	"github.com/cyberarcade/neon-arcade/internal/core"
)

var _ core.HighScoreStore = (*Store)(nil)

// LoadHighScore returns the best-score slot for a game, 0 if unset.
func (s *Store) LoadHighScore(gameID string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_scores WHERE game_id = ?", gameID).Scan(&score)
	if errNoRows(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load high score: %w", err)
	}
	return score, nil
}

// SaveHighScore writes the best-score slot for a game.
// The slot never decreases; a lower score leaves it unchanged.
func (s *Store) SaveHighScore(gameID string, score int) error {
	if score < 0 {
		return fmt.Errorf("storage: negative high score %d for %s", score, gameID)
	}
	_, err := s.db.Exec(
		`INSERT INTO high_scores (game_id, score, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET
		   score = MAX(high_scores.score, excluded.score),
		   updated_at = CURRENT_TIMESTAMP`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}
