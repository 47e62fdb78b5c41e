package rotation

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brewkit/tapvote/internal/models"
	"github.com/brewkit/tapvote/internal/repository"
)

//go:generate mockgen -destination=mocks/mock_publisher.go -package=mocks github.com/brewkit/tapvote/internal/rotation Publisher

// Publisher is the fire-and-forget notification sink. Implementations must
// never fail the calling operation: a lost notification costs a client one
// refetch, a failed vote costs a user their evening.
type Publisher interface {
	BeerChanged(ctx context.Context, sessionID uuid.UUID)
	UsersChanged(ctx context.Context, sessionID uuid.UUID)
	VoteReceived(ctx context.Context, sessionID uuid.UUID)
}

// Vote is one user's full submission for the beer currently up.
type Vote struct {
	SessionID uuid.UUID        `json:"session_id"`
	UserID    uuid.UUID        `json:"user_id"`
	BeerID    uuid.UUID        `json:"beer_id"`
	Scores    []CriterionScore `json:"scores"`
}

type CriterionScore struct {
	CriterionID uuid.UUID `json:"criterion_id"`
	Score       float64   `json:"score"`
}

// Service is the session rotation engine: it owns the beer queue of every
// session — adding, removing, ordering — and the advancement of the
// current-beer pointer once a beer has collected its quorum of votes.
//
// All state lives in the store; the only things held in memory are the
// per-session mutexes and the RNG. Everything is keyed by session id, so
// the per-session mutex is the full concurrency story (two votes for the
// same beer racing the quorum check would otherwise both advance).
type Service struct {
	sessions repository.SessionRepository
	beers    repository.BeerRepository
	queue    repository.SessionBeerRepository
	ratings  repository.RatingRepository
	members  repository.MembershipRepository
	criteria repository.CriteriaRepository

	publisher Publisher
	logger    *zap.Logger

	rng   *rand.Rand
	rngMu sync.Mutex

	locks *keyedMutex
}

// NewService wires the engine. The rand source is injected so tests can
// pin a seed; production passes rand.New(rand.NewSource(time.Now().UnixNano())).
func NewService(
	sessions repository.SessionRepository,
	beers repository.BeerRepository,
	queue repository.SessionBeerRepository,
	ratings repository.RatingRepository,
	members repository.MembershipRepository,
	criteria repository.CriteriaRepository,
	publisher Publisher,
	rng *rand.Rand,
	logger *zap.Logger,
) *Service {
	return &Service{
		sessions:  sessions,
		beers:     beers,
		queue:     queue,
		ratings:   ratings,
		members:   members,
		criteria:  criteria,
		publisher: publisher,
		logger:    logger,
		rng:       rng,
		locks:     newKeyedMutex(),
	}
}

// AddBeers upserts each complete descriptor into the catalog and links it
// into the session queue as "waiting".
//
// A single-beer add slots in at the end of the queue (max order + 1)
// without disturbing the existing order. A multi-beer add leaves the new
// rows unranked and reshuffles the whole waiting set. If the session is
// active and between beers — typically right after creation — the
// lowest-ranked waiting beer is promoted to "rating" immediately.
//
// Incomplete descriptors and beers already in the session are skipped
// silently. If nothing ends up inserted, nothing else happens.
func (s *Service) AddBeers(ctx context.Context, sessionID uuid.UUID, descriptors []models.BeerDescriptor, userID uuid.UUID) error {
	accepted := make([]models.BeerDescriptor, 0, len(descriptors))
	for _, d := range descriptors {
		if d.Complete() {
			accepted = append(accepted, d)
		}
	}
	if len(accepted) == 0 {
		return nil
	}

	unlock := s.locks.lock(sessionID)
	defer unlock()

	inserted := 0
	singleAdd := len(accepted) == 1

	for _, d := range accepted {
		beer, err := s.beers.Upsert(ctx, d)
		if err != nil {
			return fmt.Errorf("upsert beer: %w", err)
		}

		var order *int
		if singleAdd {
			// One beer takes the next rank directly; the queue order of
			// everything else is already settled and stays put.
			maxOrder, err := s.queue.MaxOrder(ctx, sessionID)
			if err != nil {
				return fmt.Errorf("max order: %w", err)
			}
			next := maxOrder + 1
			order = &next
		}

		row, err := s.queue.Add(ctx, sessionID, beer.ID, order, userID)
		if err != nil {
			return fmt.Errorf("add beer to session: %w", err)
		}
		if row != nil {
			inserted++
		}
	}

	if inserted == 0 {
		return nil
	}

	if !singleAdd {
		if err := s.reshuffleWaiting(ctx, sessionID); err != nil {
			return err
		}
	}

	state, err := s.sessions.GetState(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get session state: %w", err)
	}
	if state == nil {
		return ErrSessionNotFound
	}

	if state.Status == models.SessionStatusActive && state.CurrentBeerID == nil {
		// The session was waiting for its first beer.
		if err := s.promoteNextWaiting(ctx, sessionID); err != nil {
			return err
		}
	} else {
		if err := s.sessions.TouchHeartbeat(ctx, sessionID); err != nil {
			return fmt.Errorf("touch heartbeat: %w", err)
		}
	}

	s.logger.Info("beers added",
		zap.String("session_id", sessionID.String()),
		zap.Int("inserted", inserted),
	)
	s.publisher.BeerChanged(ctx, sessionID)
	return nil
}

// RemoveBeers deletes the requested beers the acting user is allowed to
// remove: ones they added themselves that have not been rated yet.
// Ineligible ids are skipped without complaint. Any deletion reshuffles the
// remaining waiting beers, and if the deletion took out the beer currently
// up for rating, the next waiting beer is promoted in its place.
func (s *Service) RemoveBeers(ctx context.Context, sessionID uuid.UUID, beerIDs []uuid.UUID, userID uuid.UUID) error {
	if len(beerIDs) == 0 {
		return nil
	}

	unlock := s.locks.lock(sessionID)
	defer unlock()

	removed, err := s.queue.Remove(ctx, sessionID, beerIDs, userID)
	if err != nil {
		return fmt.Errorf("remove beers: %w", err)
	}
	if removed == 0 {
		return nil
	}

	if err := s.reshuffleWaiting(ctx, sessionID); err != nil {
		return err
	}

	// Removal may have taken out the current beer (a "rating" row is
	// removable by the user who added it). Repair the pointer so it never
	// dangles.
	state, err := s.sessions.GetState(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get session state: %w", err)
	}
	if state != nil && state.CurrentBeerID != nil {
		still, err := s.queue.ListByStatus(ctx, sessionID, models.BeerStatusRating)
		if err != nil {
			return fmt.Errorf("list rating beers: %w", err)
		}
		if len(still) == 0 {
			if err := s.promoteNextWaiting(ctx, sessionID); err != nil {
				return err
			}
		}
	}

	if err := s.sessions.TouchHeartbeat(ctx, sessionID); err != nil {
		return fmt.Errorf("touch heartbeat: %w", err)
	}

	s.logger.Info("beers removed",
		zap.String("session_id", sessionID.String()),
		zap.Int64("removed", removed),
	)
	s.publisher.BeerChanged(ctx, sessionID)
	return nil
}

// reshuffleWaiting reorders the waiting beers with the variety heuristic
// and renumbers them past every rank already held by rating/rated rows.
// Each row is persisted on its own; only the relative order matters to
// readers, so a batch transaction buys nothing here.
func (s *Service) reshuffleWaiting(ctx context.Context, sessionID uuid.UUID) error {
	waiting, err := s.queue.ListByStatus(ctx, sessionID, models.BeerStatusWaiting)
	if err != nil {
		return fmt.Errorf("list waiting beers: %w", err)
	}
	if len(waiting) == 0 {
		return nil
	}

	base, err := s.queue.MaxOrderNotWaiting(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("max order: %w", err)
	}

	ordered := s.bestOrdering(waiting)
	for i, sb := range ordered {
		if err := s.queue.SetOrder(ctx, sb.ID, base+1+i); err != nil {
			return fmt.Errorf("set beer order: %w", err)
		}
	}
	return nil
}

// promoteNextWaiting flips the lowest-ranked waiting beer to "rating" and
// points the session at it, or clears the pointer when the queue is empty.
func (s *Service) promoteNextWaiting(ctx context.Context, sessionID uuid.UUID) error {
	waiting, err := s.queue.ListByStatus(ctx, sessionID, models.BeerStatusWaiting)
	if err != nil {
		return fmt.Errorf("list waiting beers: %w", err)
	}
	if len(waiting) == 0 {
		if err := s.sessions.SetCurrentBeer(ctx, sessionID, nil, nil); err != nil {
			return fmt.Errorf("clear current beer: %w", err)
		}
		return nil
	}

	next := waiting[0]
	if err := s.queue.SetStatus(ctx, next.ID, models.BeerStatusRating); err != nil {
		return fmt.Errorf("set beer status: %w", err)
	}
	if err := s.sessions.SetCurrentBeer(ctx, sessionID, &next.BeerID, next.BeerOrder); err != nil {
		return fmt.Errorf("set current beer: %w", err)
	}
	return nil
}
