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

type SessionBeerStore struct {
	pool *pgxpool.Pool
}

func NewSessionBeerStore(pool *pgxpool.Pool) *SessionBeerStore {
	return &SessionBeerStore{pool: pool}
}

// Add links a beer into the session queue. ON CONFLICT DO NOTHING makes a
// duplicate add a silent skip — the RETURNING clause then produces no row
// and the caller gets nil, nil.
func (s *SessionBeerStore) Add(ctx context.Context, sessionID, beerID uuid.UUID, beerOrder *int, addedBy uuid.UUID) (*models.SessionBeer, error) {
	query := `
		INSERT INTO session_beers (session_id, beer_id, beer_order, status, added_by_user_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id, beer_id) DO NOTHING
		RETURNING id, session_id, beer_id, beer_order, status, added_by_user_id`

	var sb models.SessionBeer
	err := s.pool.QueryRow(ctx, query, sessionID, beerID, beerOrder, models.BeerStatusWaiting, addedBy).Scan(
		&sb.ID,
		&sb.SessionID,
		&sb.BeerID,
		&sb.BeerOrder,
		&sb.Status,
		&sb.AddedByUserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("add session beer: %w", err)
	}
	return &sb, nil
}

func (s *SessionBeerStore) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.SessionBeer, error) {
	query := `
		SELECT sb.id, sb.session_id, sb.beer_id, sb.beer_order, sb.status, sb.added_by_user_id,
		       b.id, b.untappd_id, b.name, b.brewery, b.style, b.abv, b.label_url, b.created_at
		FROM session_beers sb
		JOIN beers b ON b.id = sb.beer_id
		WHERE sb.session_id = $1
		ORDER BY sb.beer_order ASC NULLS LAST`

	return s.queryBeers(ctx, query, sessionID)
}

func (s *SessionBeerStore) ListByStatus(ctx context.Context, sessionID uuid.UUID, status string) ([]models.SessionBeer, error) {
	query := `
		SELECT sb.id, sb.session_id, sb.beer_id, sb.beer_order, sb.status, sb.added_by_user_id,
		       b.id, b.untappd_id, b.name, b.brewery, b.style, b.abv, b.label_url, b.created_at
		FROM session_beers sb
		JOIN beers b ON b.id = sb.beer_id
		WHERE sb.session_id = $1 AND sb.status = $2
		ORDER BY sb.beer_order ASC NULLS LAST`

	return s.queryBeers(ctx, query, sessionID, status)
}

func (s *SessionBeerStore) queryBeers(ctx context.Context, query string, args ...any) ([]models.SessionBeer, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list session beers: %w", err)
	}
	defer rows.Close()

	beers := make([]models.SessionBeer, 0)
	for rows.Next() {
		var sb models.SessionBeer
		var b models.Beer
		if err := rows.Scan(
			&sb.ID,
			&sb.SessionID,
			&sb.BeerID,
			&sb.BeerOrder,
			&sb.Status,
			&sb.AddedByUserID,
			&b.ID,
			&b.UntappdID,
			&b.Name,
			&b.Brewery,
			&b.Style,
			&b.ABV,
			&b.LabelURL,
			&b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan session beer: %w", err)
		}
		sb.Beer = &b
		beers = append(beers, sb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session beers: %w", err)
	}

	return beers, nil
}

func (s *SessionBeerStore) MaxOrder(ctx context.Context, sessionID uuid.UUID) (int, error) {
	query := `
		SELECT COALESCE(MAX(beer_order), 0)
		FROM session_beers
		WHERE session_id = $1`

	var max int
	if err := s.pool.QueryRow(ctx, query, sessionID).Scan(&max); err != nil {
		return 0, fmt.Errorf("max order: %w", err)
	}
	return max, nil
}

func (s *SessionBeerStore) MaxOrderNotWaiting(ctx context.Context, sessionID uuid.UUID) (int, error) {
	query := `
		SELECT COALESCE(MAX(beer_order), 0)
		FROM session_beers
		WHERE session_id = $1 AND status <> 'waiting'`

	var max int
	if err := s.pool.QueryRow(ctx, query, sessionID).Scan(&max); err != nil {
		return 0, fmt.Errorf("max order not waiting: %w", err)
	}
	return max, nil
}

func (s *SessionBeerStore) SetOrder(ctx context.Context, sessionBeerID uuid.UUID, beerOrder int) error {
	query := `
		UPDATE session_beers
		SET beer_order = $2
		WHERE id = $1`

	_, err := s.pool.Exec(ctx, query, sessionBeerID, beerOrder)
	if err != nil {
		return fmt.Errorf("set beer order: %w", err)
	}
	return nil
}

func (s *SessionBeerStore) SetStatus(ctx context.Context, sessionBeerID uuid.UUID, status string) error {
	query := `
		UPDATE session_beers
		SET status = $2
		WHERE id = $1`

	_, err := s.pool.Exec(ctx, query, sessionBeerID, status)
	if err != nil {
		return fmt.Errorf("set beer status: %w", err)
	}
	return nil
}

// Remove deletes only the rows the acting user may remove: their own,
// not yet rated. Everything else in beerIDs is left alone, which is the
// silent-skip behavior the caller expects.
func (s *SessionBeerStore) Remove(ctx context.Context, sessionID uuid.UUID, beerIDs []uuid.UUID, addedBy uuid.UUID) (int64, error) {
	query := `
		DELETE FROM session_beers
		WHERE session_id = $1
		  AND beer_id = ANY($2)
		  AND added_by_user_id = $3
		  AND status <> 'rated'`

	tag, err := s.pool.Exec(ctx, query, sessionID, beerIDs, addedBy)
	if err != nil {
		return 0, fmt.Errorf("remove session beers: %w", err)
	}
	return tag.RowsAffected(), nil
}
