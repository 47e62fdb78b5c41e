package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/brewkit/tapvote/internal/repository"
	"github.com/brewkit/tapvote/internal/ws"
)

type WSHandler struct {
	sessions repository.SessionRepository
	hub      *ws.Hub
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

func NewWSHandler(sessions repository.SessionRepository, hub *ws.Hub, logger *zap.Logger) *WSHandler {
	return &WSHandler{
		sessions: sessions,
		hub:      hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The API is origin-agnostic: auth is the JWT, not the origin,
			// and the frontend is served from a different host in every
			// deployment.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Attach handles GET /v1/sessions/:id/ws
//
// The connection is downstream-only: the server pushes events, the client
// re-fetches state over the REST API. The read loop below exists to notice
// the client going away, not to accept input.
func (h *WSHandler) Attach(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	sess, err := h.sessions.GetByID(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Error("failed to get session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to attach"})
		return
	}
	if sess == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.Attach(sessionID, conn)
	defer h.hub.Detach(sessionID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
