package rotation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brewkit/tapvote/internal/models"
)

// TryAdvance moves the rotation to the next beer if the current one has
// collected its quorum: (active members × criteria) ratings. Anything
// short of that — session not active, votes still outstanding, rotation
// already exhausted — is a quiet no-op, which makes the call idempotent
// and safe to fire after every vote.
func (s *Service) TryAdvance(ctx context.Context, sessionID uuid.UUID) error {
	unlock := s.locks.lock(sessionID)
	defer unlock()
	return s.tryAdvanceLocked(ctx, sessionID)
}

func (s *Service) tryAdvanceLocked(ctx context.Context, sessionID uuid.UUID) error {
	state, err := s.sessions.GetState(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get session state: %w", err)
	}
	if state == nil || state.Status != models.SessionStatusActive {
		return nil
	}
	if state.CurrentBeerID == nil {
		return nil
	}

	expected, err := s.expectedVotes(ctx, sessionID)
	if err != nil {
		return err
	}
	// A session with no criteria (or no active members) must not advance on
	// zero votes. Without this guard, expected == 0 would make every check
	// trivially satisfied and the rotation would burn through the queue
	// before anyone tasted anything.
	if expected == 0 {
		return nil
	}

	submitted, err := s.ratings.CountForBeer(ctx, sessionID, *state.CurrentBeerID)
	if err != nil {
		return fmt.Errorf("count ratings: %w", err)
	}
	if submitted < expected {
		return nil
	}

	all, err := s.queue.ListBySession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("list session beers: %w", err)
	}

	// Already fully rated — a second advancement attempt for the same
	// quorum lands here and does nothing.
	done := true
	for _, sb := range all {
		if sb.Status != models.BeerStatusRated {
			done = false
			break
		}
	}
	if done {
		return nil
	}

	// Close out the current beer.
	currentIdx := -1
	for i, sb := range all {
		if sb.BeerID == *state.CurrentBeerID {
			currentIdx = i
			break
		}
	}
	if currentIdx == -1 {
		s.logger.Warn("current beer missing from queue",
			zap.String("session_id", sessionID.String()),
			zap.String("beer_id", state.CurrentBeerID.String()),
		)
		return nil
	}
	if err := s.queue.SetStatus(ctx, all[currentIdx].ID, models.BeerStatusRated); err != nil {
		return fmt.Errorf("set beer status: %w", err)
	}

	// The list is ordered by rank, so the next waiting row after the
	// current position is the next beer up.
	var next *models.SessionBeer
	for i := currentIdx + 1; i < len(all); i++ {
		if all[i].Status == models.BeerStatusWaiting {
			next = &all[i]
			break
		}
	}

	if next == nil {
		// Rotation exhausted. The session stays active until someone (or
		// the reaper) finishes it; the cleared pointer is what "all beers
		// tasted" looks like to clients.
		if err := s.sessions.SetCurrentBeer(ctx, sessionID, nil, nil); err != nil {
			return fmt.Errorf("clear current beer: %w", err)
		}
		s.logger.Info("rotation complete", zap.String("session_id", sessionID.String()))
		s.publisher.BeerChanged(ctx, sessionID)
		return nil
	}

	if err := s.queue.SetStatus(ctx, next.ID, models.BeerStatusRating); err != nil {
		return fmt.Errorf("set beer status: %w", err)
	}
	if err := s.sessions.SetCurrentBeer(ctx, sessionID, &next.BeerID, next.BeerOrder); err != nil {
		return fmt.Errorf("set current beer: %w", err)
	}

	s.logger.Info("advanced to next beer",
		zap.String("session_id", sessionID.String()),
		zap.String("beer_id", next.BeerID.String()),
	)
	s.publisher.BeerChanged(ctx, sessionID)
	return nil
}

// expectedVotes is the quorum: every active member scores every criterion.
func (s *Service) expectedVotes(ctx context.Context, sessionID uuid.UUID) (int, error) {
	users, err := s.members.CountActive(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("count active members: %w", err)
	}
	criteria, err := s.criteria.ListBySession(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("list criteria: %w", err)
	}
	return users * len(criteria), nil
}

// SubmitVote validates and persists one user's scores for the current
// beer, then immediately attempts advancement under the same session lock.
//
// Scores upsert by (session, beer, user, criterion): resubmitting before
// the beer advances overwrites the earlier score instead of double
// counting it.
func (s *Service) SubmitVote(ctx context.Context, vote Vote) error {
	if len(vote.Scores) == 0 {
		return ErrNoScores
	}

	unlock := s.locks.lock(vote.SessionID)
	defer unlock()

	state, err := s.sessions.GetState(ctx, vote.SessionID)
	if err != nil {
		return fmt.Errorf("get session state: %w", err)
	}
	if state == nil {
		return ErrSessionNotFound
	}
	if state.Status != models.SessionStatusActive {
		return ErrSessionNotActive
	}
	if state.CurrentBeerID == nil || *state.CurrentBeerID != vote.BeerID {
		return ErrWrongBeer
	}

	for _, score := range vote.Scores {
		r := models.Rating{
			SessionID:   vote.SessionID,
			BeerID:      vote.BeerID,
			UserID:      vote.UserID,
			CriterionID: score.CriterionID,
			Score:       score.Score,
		}
		if err := s.ratings.Upsert(ctx, r); err != nil {
			return fmt.Errorf("upsert rating: %w", err)
		}
	}

	if err := s.sessions.TouchHeartbeat(ctx, vote.SessionID); err != nil {
		return fmt.Errorf("touch heartbeat: %w", err)
	}

	s.publisher.VoteReceived(ctx, vote.SessionID)
	return s.tryAdvanceLocked(ctx, vote.SessionID)
}

// Activate flips a created session to active and, when beers are already
// queued, promotes the first one so voting can start immediately.
func (s *Service) Activate(ctx context.Context, sessionID uuid.UUID) error {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	state, err := s.sessions.GetState(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("get session state: %w", err)
	}
	if state == nil {
		return ErrSessionNotFound
	}
	if state.Status != models.SessionStatusCreated {
		return nil
	}

	if err := s.sessions.SetStatus(ctx, sessionID, models.SessionStatusActive); err != nil {
		return fmt.Errorf("set session status: %w", err)
	}
	if err := s.promoteNextWaiting(ctx, sessionID); err != nil {
		return err
	}

	s.logger.Info("session activated", zap.String("session_id", sessionID.String()))
	s.publisher.BeerChanged(ctx, sessionID)
	return nil
}

// Finish closes the session. Also used by the idle reaper.
func (s *Service) Finish(ctx context.Context, sessionID uuid.UUID) error {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	if err := s.sessions.SetStatus(ctx, sessionID, models.SessionStatusFinished); err != nil {
		return fmt.Errorf("set session status: %w", err)
	}

	s.logger.Info("session finished", zap.String("session_id", sessionID.String()))
	s.publisher.UsersChanged(ctx, sessionID)
	return nil
}
