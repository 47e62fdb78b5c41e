package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brewkit/tapvote/internal/models"
)

type CriteriaStore struct {
	pool *pgxpool.Pool
}

func NewCriteriaStore(pool *pgxpool.Pool) *CriteriaStore {
	return &CriteriaStore{pool: pool}
}

// CreateForSession inserts the criteria and their session links in one
// transaction so a session never ends up with half its criteria.
func (s *CriteriaStore) CreateForSession(ctx context.Context, sessionID uuid.UUID, criteria []models.Criterion) ([]models.Criterion, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	created := make([]models.Criterion, 0, len(criteria))
	for _, c := range criteria {
		var out models.Criterion
		err := tx.QueryRow(ctx, `
			INSERT INTO criteria (name, weight)
			VALUES ($1, $2)
			RETURNING id, name, weight`,
			c.Name, c.Weight,
		).Scan(&out.ID, &out.Name, &out.Weight)
		if err != nil {
			return nil, fmt.Errorf("insert criterion: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO session_criteria (session_id, criterion_id)
			VALUES ($1, $2)`,
			sessionID, out.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("link criterion: %w", err)
		}

		created = append(created, out)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return created, nil
}

func (s *CriteriaStore) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.Criterion, error) {
	query := `
		SELECT c.id, c.name, c.weight
		FROM criteria c
		JOIN session_criteria sc ON sc.criterion_id = c.id
		WHERE sc.session_id = $1
		ORDER BY c.name ASC`

	rows, err := s.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list criteria: %w", err)
	}
	defer rows.Close()

	criteria := make([]models.Criterion, 0)
	for rows.Next() {
		var c models.Criterion
		if err := rows.Scan(&c.ID, &c.Name, &c.Weight); err != nil {
			return nil, fmt.Errorf("scan criterion: %w", err)
		}
		criteria = append(criteria, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate criteria: %w", err)
	}

	return criteria, nil
}
