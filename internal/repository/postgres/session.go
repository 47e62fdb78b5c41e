package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brewkit/tapvote/internal/models"
)

type SessionStore struct {
	pool *pgxpool.Pool
}

func NewSessionStore(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{pool: pool}
}

// Create inserts the session together with its state row so the pair can
// never exist half-made.
func (s *SessionStore) Create(ctx context.Context, name, joinCode string, creatorID uuid.UUID) (*models.Session, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO sessions (name, join_code, creator_id, created_at)
		VALUES ($1, $2, $3, now())
		RETURNING id, name, join_code, creator_id, created_at`

	var sess models.Session
	err = tx.QueryRow(ctx, query, name, joinCode, creatorID).Scan(
		&sess.ID,
		&sess.Name,
		&sess.JoinCode,
		&sess.CreatorID,
		&sess.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO session_states (session_id, status, last_updated_at)
		VALUES ($1, $2, now())`,
		sess.ID, models.SessionStatusCreated,
	)
	if err != nil {
		return nil, fmt.Errorf("insert session state: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &sess, nil
}

func (s *SessionStore) GetByID(ctx context.Context, sessionID uuid.UUID) (*models.Session, error) {
	query := `
		SELECT id, name, join_code, creator_id, created_at
		FROM sessions
		WHERE id = $1`

	var sess models.Session
	err := s.pool.QueryRow(ctx, query, sessionID).Scan(
		&sess.ID,
		&sess.Name,
		&sess.JoinCode,
		&sess.CreatorID,
		&sess.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &sess, nil
}

func (s *SessionStore) GetByJoinCode(ctx context.Context, joinCode string) (*models.Session, error) {
	query := `
		SELECT id, name, join_code, creator_id, created_at
		FROM sessions
		WHERE join_code = $1`

	var sess models.Session
	err := s.pool.QueryRow(ctx, query, joinCode).Scan(
		&sess.ID,
		&sess.Name,
		&sess.JoinCode,
		&sess.CreatorID,
		&sess.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session by join code: %w", err)
	}
	return &sess, nil
}

func (s *SessionStore) GetState(ctx context.Context, sessionID uuid.UUID) (*models.SessionState, error) {
	query := `
		SELECT session_id, current_beer_id, current_beer_order, status, last_updated_at
		FROM session_states
		WHERE session_id = $1`

	var st models.SessionState
	err := s.pool.QueryRow(ctx, query, sessionID).Scan(
		&st.SessionID,
		&st.CurrentBeerID,
		&st.CurrentBeerOrder,
		&st.Status,
		&st.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session state: %w", err)
	}
	return &st, nil
}

func (s *SessionStore) SetStatus(ctx context.Context, sessionID uuid.UUID, status string) error {
	query := `
		UPDATE session_states
		SET status = $2, last_updated_at = now()
		WHERE session_id = $1`

	_, err := s.pool.Exec(ctx, query, sessionID, status)
	if err != nil {
		return fmt.Errorf("set session status: %w", err)
	}
	return nil
}

func (s *SessionStore) SetCurrentBeer(ctx context.Context, sessionID uuid.UUID, beerID *uuid.UUID, beerOrder *int) error {
	query := `
		UPDATE session_states
		SET current_beer_id = $2, current_beer_order = $3, last_updated_at = now()
		WHERE session_id = $1`

	_, err := s.pool.Exec(ctx, query, sessionID, beerID, beerOrder)
	if err != nil {
		return fmt.Errorf("set current beer: %w", err)
	}
	return nil
}

func (s *SessionStore) TouchHeartbeat(ctx context.Context, sessionID uuid.UUID) error {
	query := `
		UPDATE session_states
		SET last_updated_at = now()
		WHERE session_id = $1`

	_, err := s.pool.Exec(ctx, query, sessionID)
	if err != nil {
		return fmt.Errorf("touch heartbeat: %w", err)
	}
	return nil
}

// ListIdle returns sessions the reaper should close: not finished, created
// before minCreatedAt, and untouched since maxHeartbeat.
func (s *SessionStore) ListIdle(ctx context.Context, maxHeartbeat, minCreatedAt time.Time) ([]models.Session, error) {
	query := `
		SELECT se.id, se.name, se.join_code, se.creator_id, se.created_at
		FROM sessions se
		JOIN session_states st ON st.session_id = se.id
		WHERE st.status <> 'finished'
		  AND st.last_updated_at < $1
		  AND se.created_at < $2`

	rows, err := s.pool.Query(ctx, query, maxHeartbeat, minCreatedAt)
	if err != nil {
		return nil, fmt.Errorf("list idle sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		var sess models.Session
		if err := rows.Scan(
			&sess.ID,
			&sess.Name,
			&sess.JoinCode,
			&sess.CreatorID,
			&sess.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}
