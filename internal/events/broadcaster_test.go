package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type BroadcasterTestSuite struct {
	suite.Suite
	mini        *miniredis.Miniredis
	client      *redis.Client
	broadcaster *Broadcaster
	ctx         context.Context
}

func (s *BroadcasterTestSuite) SetupTest() {
	var err error
	s.mini, err = miniredis.Run()
	s.Require().NoError(err)

	s.client = redis.NewClient(&redis.Options{Addr: s.mini.Addr()})
	s.ctx = context.Background()

	s.broadcaster, err = NewBroadcaster(s.client, zap.NewNop())
	s.Require().NoError(err)
}

func (s *BroadcasterTestSuite) TearDownTest() {
	s.client.Close()
	s.mini.Close()
}

func TestBroadcasterTestSuite(t *testing.T) {
	suite.Run(t, new(BroadcasterTestSuite))
}

func (s *BroadcasterTestSuite) subscribe(channels ...string) *redis.PubSub {
	pubsub := s.client.Subscribe(s.ctx, channels...)
	// Drain the subscription confirmation so publishes cannot race it.
	_, err := pubsub.Receive(s.ctx)
	s.Require().NoError(err)
	return pubsub
}

func (s *BroadcasterTestSuite) receive(pubsub *redis.PubSub) *redis.Message {
	ctx, cancel := context.WithTimeout(s.ctx, 2*time.Second)
	defer cancel()
	msg, err := pubsub.ReceiveMessage(ctx)
	s.Require().NoError(err)
	return msg
}

func (s *BroadcasterTestSuite) TestNewBroadcaster_NilClient() {
	_, err := NewBroadcaster(nil, zap.NewNop())
	s.Error(err)
}

func (s *BroadcasterTestSuite) TestSessionChannelNaming() {
	id := uuid.MustParse("3f2a0000-0000-0000-0000-000000000000")
	s.Equal("session:3f2a0000-0000-0000-0000-000000000000:beer-changed", SessionChannel(id, TypeBeerChanged))
	s.Equal("session:3f2a0000-0000-0000-0000-000000000000:vote", SessionChannel(id, TypeVote))
}

func (s *BroadcasterTestSuite) TestBeerChanged_ReachesSessionAndGlobalChannels() {
	sessionID := uuid.New()

	perSession := s.subscribe(SessionChannel(sessionID, TypeBeerChanged))
	defer perSession.Close()
	global := s.subscribe(GlobalBeerChangedChannel)
	defer global.Close()

	s.broadcaster.BeerChanged(s.ctx, sessionID)

	for _, pubsub := range []*redis.PubSub{perSession, global} {
		msg := s.receive(pubsub)

		var event Event
		s.Require().NoError(json.Unmarshal([]byte(msg.Payload), &event))
		s.Equal(TypeBeerChanged, event.Type)
		s.Equal(sessionID, event.SessionID)
	}
}

func (s *BroadcasterTestSuite) TestVoteReceived_IsPerSessionOnly() {
	sessionID := uuid.New()

	perSession := s.subscribe(SessionChannel(sessionID, TypeVote))
	defer perSession.Close()

	s.broadcaster.VoteReceived(s.ctx, sessionID)

	msg := s.receive(perSession)
	var event Event
	s.Require().NoError(json.Unmarshal([]byte(msg.Payload), &event))
	s.Equal(TypeVote, event.Type)
	s.Equal(sessionID, event.SessionID)
}

func (s *BroadcasterTestSuite) TestSessionCreated_ReachesLobbyChannel() {
	sessionID := uuid.New()

	global := s.subscribe(GlobalCreatedChannel)
	defer global.Close()

	s.broadcaster.SessionCreated(s.ctx, sessionID)

	msg := s.receive(global)
	var event Event
	s.Require().NoError(json.Unmarshal([]byte(msg.Payload), &event))
	s.Equal(TypeCreated, event.Type)
	s.Equal(sessionID, event.SessionID)
}

func (s *BroadcasterTestSuite) TestSubscribeSession_CoversAllSessionEventTypes() {
	sessionID := uuid.New()

	pubsub := s.broadcaster.SubscribeSession(s.ctx, sessionID)
	defer pubsub.Close()
	// Three channels, three confirmations.
	for i := 0; i < 3; i++ {
		_, err := pubsub.Receive(s.ctx)
		s.Require().NoError(err)
	}

	s.broadcaster.BeerChanged(s.ctx, sessionID)
	s.broadcaster.UsersChanged(s.ctx, sessionID)
	s.broadcaster.VoteReceived(s.ctx, sessionID)

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		msg := s.receive(pubsub)
		var event Event
		s.Require().NoError(json.Unmarshal([]byte(msg.Payload), &event))
		seen[event.Type] = true
	}
	s.True(seen[TypeBeerChanged])
	s.True(seen[TypeUsersChanged])
	s.True(seen[TypeVote])
}
