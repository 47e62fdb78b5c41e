package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brewkit/tapvote/internal/models"
)

type RatingStore struct {
	pool *pgxpool.Pool
}

func NewRatingStore(pool *pgxpool.Pool) *RatingStore {
	return &RatingStore{pool: pool}
}

// Upsert writes a score keyed by (session, beer, user, criterion).
// Resubmitting overwrites the old score in place — last write wins.
func (s *RatingStore) Upsert(ctx context.Context, r models.Rating) error {
	query := `
		INSERT INTO ratings (session_id, beer_id, user_id, criterion_id, score, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (session_id, beer_id, user_id, criterion_id)
		DO UPDATE SET score = EXCLUDED.score`

	_, err := s.pool.Exec(ctx, query, r.SessionID, r.BeerID, r.UserID, r.CriterionID, r.Score)
	if err != nil {
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

func (s *RatingStore) CountForBeer(ctx context.Context, sessionID, beerID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM ratings
		WHERE session_id = $1 AND beer_id = $2`

	var count int
	if err := s.pool.QueryRow(ctx, query, sessionID, beerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count ratings: %w", err)
	}
	return count, nil
}

func (s *RatingStore) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.Rating, error) {
	query := `
		SELECT session_id, beer_id, user_id, criterion_id, score, created_at
		FROM ratings
		WHERE session_id = $1`

	rows, err := s.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	ratings := make([]models.Rating, 0)
	for rows.Next() {
		var r models.Rating
		if err := rows.Scan(
			&r.SessionID,
			&r.BeerID,
			&r.UserID,
			&r.CriterionID,
			&r.Score,
			&r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ratings: %w", err)
	}

	return ratings, nil
}
