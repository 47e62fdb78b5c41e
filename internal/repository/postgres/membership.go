package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brewkit/tapvote/internal/models"
)

type MembershipStore struct {
	pool *pgxpool.Pool
}

func NewMembershipStore(pool *pgxpool.Pool) *MembershipStore {
	return &MembershipStore{pool: pool}
}

// Join upserts the membership row. A user rejoining after a leave gets the
// same row back with active flipped to true, so joining is idempotent.
func (s *MembershipStore) Join(ctx context.Context, sessionID, userID uuid.UUID) error {
	query := `
		INSERT INTO session_users (session_id, user_id, active, joined_at)
		VALUES ($1, $2, true, now())
		ON CONFLICT (session_id, user_id) DO UPDATE SET active = true`

	_, err := s.pool.Exec(ctx, query, sessionID, userID)
	if err != nil {
		return fmt.Errorf("join session: %w", err)
	}
	return nil
}

// Leave soft-deactivates the membership. The row survives so ratings keep
// pointing at a real member.
func (s *MembershipStore) Leave(ctx context.Context, sessionID, userID uuid.UUID) error {
	query := `
		UPDATE session_users
		SET active = false
		WHERE session_id = $1 AND user_id = $2`

	_, err := s.pool.Exec(ctx, query, sessionID, userID)
	if err != nil {
		return fmt.Errorf("leave session: %w", err)
	}
	return nil
}

func (s *MembershipStore) ListMembers(ctx context.Context, sessionID uuid.UUID) ([]models.SessionUser, error) {
	query := `
		SELECT session_id, user_id, active, joined_at
		FROM session_users
		WHERE session_id = $1
		ORDER BY joined_at ASC`

	rows, err := s.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	members := make([]models.SessionUser, 0)
	for rows.Next() {
		var m models.SessionUser
		if err := rows.Scan(&m.SessionID, &m.UserID, &m.Active, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	return members, nil
}

func (s *MembershipStore) CountActive(ctx context.Context, sessionID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM session_users
		WHERE session_id = $1 AND active`

	var count int
	if err := s.pool.QueryRow(ctx, query, sessionID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active members: %w", err)
	}
	return count, nil
}

func (s *MembershipStore) IsActiveMember(ctx context.Context, sessionID, userID uuid.UUID) (bool, error) {
	// EXISTS stops at the first match — this runs on every vote.
	query := `
		SELECT EXISTS (
			SELECT 1 FROM session_users
			WHERE session_id = $1 AND user_id = $2 AND active
		)`

	var exists bool
	err := s.pool.QueryRow(ctx, query, sessionID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check membership: %w", err)
	}
	return exists, nil
}
