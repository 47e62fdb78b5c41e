// Package reaper closes abandoned sessions. A tasting that ended with
// nobody pressing "finish" would otherwise sit active forever and keep
// showing up in lobby views.
package reaper

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brewkit/tapvote/internal/repository"
)

// finisher is the slice of the rotation engine the reaper needs.
type finisher interface {
	Finish(ctx context.Context, sessionID uuid.UUID) error
}

type Reaper struct {
	sessions repository.SessionRepository
	engine   finisher
	logger   *zap.Logger

	interval   time.Duration
	idleCutoff time.Duration
	minAge     time.Duration

	stop chan struct{}
}

func New(sessions repository.SessionRepository, engine finisher, interval, idleCutoff, minAge time.Duration, logger *zap.Logger) *Reaper {
	return &Reaper{
		sessions:   sessions,
		engine:     engine,
		logger:     logger,
		interval:   interval,
		idleCutoff: idleCutoff,
		minAge:     minAge,
		stop:       make(chan struct{}),
	}
}

// Start runs the sweep loop in the background until Stop is called.
func (r *Reaper) Start() {
	r.logger.Info("reaper started",
		zap.Duration("interval", r.interval),
		zap.Duration("idle_cutoff", r.idleCutoff),
		zap.Duration("min_age", r.minAge),
	)
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-r.stop:
				return
			case <-ticker.C:
				r.Sweep(context.Background())
			}
		}
	}()
}

func (r *Reaper) Stop() {
	close(r.stop)
	r.logger.Info("reaper stopped")
}

// Sweep finishes every unfinished session that is both old enough and
// idle past the cutoff. One failed session does not stop the sweep; the
// next tick retries it anyway.
func (r *Reaper) Sweep(ctx context.Context) {
	now := time.Now()
	idle, err := r.sessions.ListIdle(ctx, now.Add(-r.idleCutoff), now.Add(-r.minAge))
	if err != nil {
		r.logger.Error("list idle sessions", zap.Error(err))
		return
	}

	for _, sess := range idle {
		if err := r.engine.Finish(ctx, sess.ID); err != nil {
			r.logger.Error("finish idle session",
				zap.String("session_id", sess.ID.String()),
				zap.Error(err),
			)
			continue
		}
		r.logger.Info("reaped idle session",
			zap.String("session_id", sess.ID.String()),
			zap.String("name", sess.Name),
		)
	}
}
