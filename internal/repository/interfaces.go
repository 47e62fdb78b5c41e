package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/brewkit/tapvote/internal/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/brewkit/tapvote/internal/repository UserRepository,SessionRepository,BeerRepository,SessionBeerRepository,RatingRepository,MembershipRepository,CriteriaRepository

// Every method takes a context because every method talks to the database:
// request cancellation propagates into the query, and the handlers pass
// c.Request.Context() straight through.
//
// Lookup methods return nil, nil when the row does not exist. Handlers
// translate that to a 404; callers never have to string-match errors.

// UserRepository handles account rows.
type UserRepository interface {
	Create(ctx context.Context, email, displayName, passwordHash string) (*models.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// SessionRepository handles sessions and their one-to-one state rows.
type SessionRepository interface {
	// Create inserts the session and its state row (status "created").
	Create(ctx context.Context, name, joinCode string, creatorID uuid.UUID) (*models.Session, error)

	GetByID(ctx context.Context, sessionID uuid.UUID) (*models.Session, error)
	GetByJoinCode(ctx context.Context, joinCode string) (*models.Session, error)
	GetState(ctx context.Context, sessionID uuid.UUID) (*models.SessionState, error)

	// SetStatus moves the session through created → active → finished and
	// bumps the heartbeat.
	SetStatus(ctx context.Context, sessionID uuid.UUID, status string) error

	// SetCurrentBeer points the session at its next beer, or clears the
	// pointer when beerID is nil. Bumps the heartbeat.
	SetCurrentBeer(ctx context.Context, sessionID uuid.UUID, beerID *uuid.UUID, beerOrder *int) error

	// TouchHeartbeat bumps last_updated_at without touching anything else.
	TouchHeartbeat(ctx context.Context, sessionID uuid.UUID) error

	// ListIdle returns unfinished sessions created before minCreatedAt whose
	// heartbeat is older than maxHeartbeat. Feeds the idle reaper.
	ListIdle(ctx context.Context, maxHeartbeat, minCreatedAt time.Time) ([]models.Session, error)
}

// BeerRepository handles the global beer catalog.
type BeerRepository interface {
	// Upsert inserts the beer or, when a row with the same Untappd id
	// already exists, returns the existing row.
	Upsert(ctx context.Context, d models.BeerDescriptor) (*models.Beer, error)

	GetByID(ctx context.Context, beerID uuid.UUID) (*models.Beer, error)
}

// SessionBeerRepository handles the per-session beer queue.
type SessionBeerRepository interface {
	// Add links a beer into the session, status "waiting". A nil order
	// leaves the rank unassigned until the next reshuffle. Returns nil, nil
	// when the beer is already in the session.
	Add(ctx context.Context, sessionID, beerID uuid.UUID, beerOrder *int, addedBy uuid.UUID) (*models.SessionBeer, error)

	// ListBySession returns every queue row with its beer joined, ordered
	// by beer_order (unassigned ranks last).
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.SessionBeer, error)

	// ListByStatus is ListBySession filtered to one status.
	ListByStatus(ctx context.Context, sessionID uuid.UUID, status string) ([]models.SessionBeer, error)

	// MaxOrder returns the highest assigned rank in the session, 0 if none.
	MaxOrder(ctx context.Context, sessionID uuid.UUID) (int, error)

	// MaxOrderNotWaiting is MaxOrder restricted to rating/rated rows, so a
	// reshuffle can renumber the waiting beers past everything already
	// locked in place.
	MaxOrderNotWaiting(ctx context.Context, sessionID uuid.UUID) (int, error)

	SetOrder(ctx context.Context, sessionBeerID uuid.UUID, beerOrder int) error
	SetStatus(ctx context.Context, sessionBeerID uuid.UUID, status string) error

	// Remove deletes the rows matching all of: this session, one of beerIDs,
	// added by addedBy, not yet rated. Returns how many rows went away.
	Remove(ctx context.Context, sessionID uuid.UUID, beerIDs []uuid.UUID, addedBy uuid.UUID) (int64, error)
}

// RatingRepository handles vote rows.
type RatingRepository interface {
	// Upsert writes the score for (session, beer, user, criterion),
	// overwriting any previous score. Last write wins.
	Upsert(ctx context.Context, r models.Rating) error

	// CountForBeer counts ratings submitted for one beer in one session —
	// the quorum check.
	CountForBeer(ctx context.Context, sessionID, beerID uuid.UUID) (int, error)

	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.Rating, error)
}

// MembershipRepository handles who is in a session right now.
type MembershipRepository interface {
	// Join upserts the membership row with active = true. Rejoining after
	// a leave reactivates the old row.
	Join(ctx context.Context, sessionID, userID uuid.UUID) error

	// Leave flips active to false. The row stays so old votes keep an owner.
	Leave(ctx context.Context, sessionID, userID uuid.UUID) error

	ListMembers(ctx context.Context, sessionID uuid.UUID) ([]models.SessionUser, error)

	// CountActive counts active members — the other quorum factor.
	CountActive(ctx context.Context, sessionID uuid.UUID) (int, error)

	IsActiveMember(ctx context.Context, sessionID, userID uuid.UUID) (bool, error)
}

// CriteriaRepository handles rating criteria and their session assignment.
type CriteriaRepository interface {
	// CreateForSession inserts the criteria and links them to the session.
	CreateForSession(ctx context.Context, sessionID uuid.UUID, criteria []models.Criterion) ([]models.Criterion, error)

	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.Criterion, error)
}
