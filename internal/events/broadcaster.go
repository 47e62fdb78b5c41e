// Package events is the pub/sub fan-out layer. Notifications are
// fire-and-forget hints: clients re-fetch authoritative state from the API
// when one arrives, so a dropped message degrades to a slower refresh and
// publish failures are logged rather than returned.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Event types, also used as the per-session channel suffix.
const (
	TypeBeerChanged  = "beer-changed"
	TypeUsersChanged = "users-changed"
	TypeVote         = "vote"
	TypeCreated      = "created"
)

// Global channels carry session-lifecycle noise for lobby-style views that
// watch every session at once.
const (
	GlobalCreatedChannel      = "sessions:created"
	GlobalBeerChangedChannel  = "sessions:beer-changed"
	GlobalUsersChangedChannel = "sessions:users-changed"
)

// Event is the wire payload. Deliberately thin: type plus session id.
type Event struct {
	Type      string    `json:"type"`
	SessionID uuid.UUID `json:"session_id"`
}

// SessionChannel names the per-session channel for one event type,
// e.g. "session:3f2a...:beer-changed".
func SessionChannel(sessionID uuid.UUID, eventType string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, eventType)
}

// Broadcaster publishes rotation events over Redis pub/sub.
type Broadcaster struct {
	client *redis.Client
	logger *zap.Logger
}

func NewBroadcaster(client *redis.Client, logger *zap.Logger) (*Broadcaster, error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &Broadcaster{client: client, logger: logger}, nil
}

// BeerChanged announces that a session's queue or current beer moved:
// adds, removals, reshuffles, and advancement all land here.
func (b *Broadcaster) BeerChanged(ctx context.Context, sessionID uuid.UUID) {
	b.publish(ctx, sessionID, TypeBeerChanged, GlobalBeerChangedChannel)
}

// UsersChanged announces membership changes (join, leave, finish).
func (b *Broadcaster) UsersChanged(ctx context.Context, sessionID uuid.UUID) {
	b.publish(ctx, sessionID, TypeUsersChanged, GlobalUsersChangedChannel)
}

// VoteReceived announces one more vote for the current beer. Per-session
// only; the lobby does not care about individual votes.
func (b *Broadcaster) VoteReceived(ctx context.Context, sessionID uuid.UUID) {
	b.publish(ctx, sessionID, TypeVote, "")
}

// SessionCreated announces a brand-new session on the global channel.
func (b *Broadcaster) SessionCreated(ctx context.Context, sessionID uuid.UUID) {
	b.publish(ctx, sessionID, TypeCreated, GlobalCreatedChannel)
}

func (b *Broadcaster) publish(ctx context.Context, sessionID uuid.UUID, eventType, globalChannel string) {
	payload, err := json.Marshal(Event{Type: eventType, SessionID: sessionID})
	if err != nil {
		b.logger.Error("marshal event", zap.Error(err))
		return
	}

	channels := []string{SessionChannel(sessionID, eventType)}
	if globalChannel != "" {
		channels = append(channels, globalChannel)
	}
	for _, channel := range channels {
		if err := b.client.Publish(ctx, channel, payload).Err(); err != nil {
			b.logger.Warn("publish event failed",
				zap.String("channel", channel),
				zap.Error(err),
			)
		}
	}
}

// SubscribeSession opens a subscription covering every per-session channel
// for one session. The caller owns the returned PubSub and must Close it.
func (b *Broadcaster) SubscribeSession(ctx context.Context, sessionID uuid.UUID) *redis.PubSub {
	return b.client.Subscribe(ctx,
		SessionChannel(sessionID, TypeBeerChanged),
		SessionChannel(sessionID, TypeUsersChanged),
		SessionChannel(sessionID, TypeVote),
	)
}
