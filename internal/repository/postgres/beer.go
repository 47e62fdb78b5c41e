package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brewkit/tapvote/internal/models"
)

type BeerStore struct {
	pool *pgxpool.Pool
}

func NewBeerStore(pool *pgxpool.Pool) *BeerStore {
	return &BeerStore{pool: pool}
}

// Upsert inserts a catalog row keyed by Untappd id. On conflict the no-op
// update still fires RETURNING, so the existing row comes back with its
// original internal id — two sessions adding the same beer share one row.
func (s *BeerStore) Upsert(ctx context.Context, d models.BeerDescriptor) (*models.Beer, error) {
	query := `
		INSERT INTO beers (untappd_id, name, brewery, style, abv, label_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (untappd_id) DO UPDATE SET untappd_id = EXCLUDED.untappd_id
		RETURNING id, untappd_id, name, brewery, style, abv, label_url, created_at`

	var b models.Beer
	err := s.pool.QueryRow(ctx, query, d.UntappdID, d.Name, d.Brewery, d.Style, d.ABV, d.LabelURL).Scan(
		&b.ID,
		&b.UntappdID,
		&b.Name,
		&b.Brewery,
		&b.Style,
		&b.ABV,
		&b.LabelURL,
		&b.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert beer: %w", err)
	}
	return &b, nil
}

func (s *BeerStore) GetByID(ctx context.Context, beerID uuid.UUID) (*models.Beer, error) {
	query := `
		SELECT id, untappd_id, name, brewery, style, abv, label_url, created_at
		FROM beers
		WHERE id = $1`

	var b models.Beer
	err := s.pool.QueryRow(ctx, query, beerID).Scan(
		&b.ID,
		&b.UntappdID,
		&b.Name,
		&b.Brewery,
		&b.Style,
		&b.ABV,
		&b.LabelURL,
		&b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get beer: %w", err)
	}
	return &b, nil
}
