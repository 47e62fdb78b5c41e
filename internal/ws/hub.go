// Package ws fans session events out to connected browsers. One Redis
// subscription per session feeds every WebSocket attached to it, so a
// session with thirty phones costs one upstream subscription, not thirty.
package ws

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/brewkit/tapvote/internal/events"
)

type Hub struct {
	broadcaster *events.Broadcaster
	logger      *zap.Logger

	mu    sync.Mutex
	rooms map[uuid.UUID]*room
}

// room is the connection set for one session plus the pump goroutine
// feeding it. The pump is the only writer on every connection, which is
// what makes gorilla's one-concurrent-writer rule hold without per-conn
// locks.
type room struct {
	conns  map[*websocket.Conn]bool
	cancel context.CancelFunc
}

func NewHub(broadcaster *events.Broadcaster, logger *zap.Logger) *Hub {
	return &Hub{
		broadcaster: broadcaster,
		logger:      logger,
		rooms:       make(map[uuid.UUID]*room),
	}
}

// Attach registers a connection with a session's room, creating the room
// and its Redis subscription when this is the first attachment.
func (h *Hub) Attach(sessionID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.rooms[sessionID]
	if !ok {
		ctx, cancel := context.WithCancel(context.Background())
		r = &room{
			conns:  make(map[*websocket.Conn]bool),
			cancel: cancel,
		}
		h.rooms[sessionID] = r
		go h.pump(ctx, sessionID)
	}
	r.conns[conn] = true

	h.logger.Info("websocket attached",
		zap.String("session_id", sessionID.String()),
		zap.Int("connections", len(r.conns)),
	)
}

// Detach removes a connection and tears the room down when it empties.
func (h *Hub) Detach(sessionID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.rooms[sessionID]
	if !ok {
		return
	}
	if _, exists := r.conns[conn]; !exists {
		return
	}
	delete(r.conns, conn)
	conn.Close()

	if len(r.conns) == 0 {
		r.cancel()
		delete(h.rooms, sessionID)
	}
}

// pump forwards every Redis message for the session to every attached
// connection. Runs until the room is torn down. A connection that fails a
// write is detached on the spot — its read loop in the handler will see
// the close and return.
func (h *Hub) pump(ctx context.Context, sessionID uuid.UUID) {
	sub := h.broadcaster.SubscribeSession(ctx, sessionID)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.fanOut(sessionID, []byte(msg.Payload))
		}
	}
}

func (h *Hub) fanOut(sessionID uuid.UUID, payload []byte) {
	h.mu.Lock()
	r, ok := h.rooms[sessionID]
	if !ok {
		h.mu.Unlock()
		return
	}
	conns := make([]*websocket.Conn, 0, len(r.conns))
	for conn := range r.conns {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Warn("websocket write failed",
				zap.String("session_id", sessionID.String()),
				zap.Error(err),
			)
			h.Detach(sessionID, conn)
		}
	}
}
