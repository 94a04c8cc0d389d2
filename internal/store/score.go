package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/hangman/internal/hangman"
)

// ScoreKey is the fixed key the cumulative score is stored under.
const ScoreKey = "hangmanScore"

// ScoreRepo persists the win/loss record as {"wins":n,"losses":m}.
type ScoreRepo struct {
	kv *Store
}

// Load returns the stored score. It returns ErrNotFound when no score has
// been saved, and an error for malformed records.
func (r *ScoreRepo) Load(ctx context.Context) (hangman.Score, error) {
	raw, err := r.kv.Get(ctx, ScoreKey)
	if err != nil {
		return hangman.Score{}, err
	}

	var score hangman.Score
	if err := json.Unmarshal(raw, &score); err != nil {
		return hangman.Score{}, fmt.Errorf("decode score: %w", err)
	}
	if !score.Valid() {
		return hangman.Score{}, fmt.Errorf("decode score: negative counters %+v", score)
	}
	return score, nil
}

// Save replaces the stored score.
func (r *ScoreRepo) Save(ctx context.Context, score hangman.Score) error {
	raw, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("encode score: %w", err)
	}
	return r.kv.Put(ctx, ScoreKey, raw)
}
