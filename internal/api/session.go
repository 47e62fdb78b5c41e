package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brewkit/tapvote/internal/events"
	"github.com/brewkit/tapvote/internal/middleware"
	"github.com/brewkit/tapvote/internal/models"
	"github.com/brewkit/tapvote/internal/repository"
	"github.com/brewkit/tapvote/internal/rotation"
)

// defaultCriteria is used when a session is created without naming any.
// Sessions must carry at least one criterion or quorum arithmetic
// degenerates (zero expected votes would advance beers nobody tasted).
var defaultCriteria = []models.Criterion{
	{Name: "look", Weight: 1},
	{Name: "smell", Weight: 1},
	{Name: "taste", Weight: 2},
	{Name: "overall", Weight: 1},
}

type SessionHandler struct {
	sessions    repository.SessionRepository
	members     repository.MembershipRepository
	criteria    repository.CriteriaRepository
	queue       repository.SessionBeerRepository
	engine      *rotation.Service
	broadcaster *events.Broadcaster
	logger      *zap.Logger
}

func NewSessionHandler(
	sessions repository.SessionRepository,
	members repository.MembershipRepository,
	criteria repository.CriteriaRepository,
	queue repository.SessionBeerRepository,
	engine *rotation.Service,
	broadcaster *events.Broadcaster,
	logger *zap.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessions:    sessions,
		members:     members,
		criteria:    criteria,
		queue:       queue,
		engine:      engine,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

type createSessionRequest struct {
	Name     string `json:"name" binding:"required"`
	Criteria []struct {
		Name   string  `json:"name" binding:"required"`
		Weight float64 `json:"weight"`
	} `json:"criteria"`
}

type joinSessionRequest struct {
	Code string `json:"code" binding:"required"`
}

// sessionDetail is the full read model clients re-fetch when an event
// arrives: session, live state, the queue in order, members, criteria.
type sessionDetail struct {
	Session  *models.Session      `json:"session"`
	State    *models.SessionState `json:"state"`
	Beers    []models.SessionBeer `json:"beers"`
	Members  []models.SessionUser `json:"members"`
	Criteria []models.Criterion   `json:"criteria"`
}

// Create handles POST /v1/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := middleware.GetUserID(c)
	ctx := c.Request.Context()

	// Join codes collide rarely (31^6 keyspace) but the unique constraint
	// makes a collision an insert error, so try a few codes.
	var sess *models.Session
	for attempt := 0; attempt < 5; attempt++ {
		code, err := newJoinCode()
		if err != nil {
			h.logger.Error("failed to generate join code", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
			return
		}
		sess, err = h.sessions.Create(ctx, req.Name, code, userID)
		if err == nil {
			break
		}
		sess = nil
		h.logger.Warn("session insert failed, retrying with new code", zap.Error(err))
	}
	if sess == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	criteria := make([]models.Criterion, 0, len(req.Criteria))
	for _, cr := range req.Criteria {
		weight := cr.Weight
		if weight <= 0 {
			weight = 1
		}
		criteria = append(criteria, models.Criterion{Name: cr.Name, Weight: weight})
	}
	if len(criteria) == 0 {
		criteria = defaultCriteria
	}
	if _, err := h.criteria.CreateForSession(ctx, sess.ID, criteria); err != nil {
		h.logger.Error("failed to create criteria", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	// The creator is a member from the start.
	if err := h.members.Join(ctx, sess.ID, userID); err != nil {
		h.logger.Error("failed to join creator", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	h.broadcaster.SessionCreated(ctx, sess.ID)
	c.JSON(http.StatusCreated, sess)
}

// Join handles POST /v1/sessions/join
func (h *SessionHandler) Join(c *gin.Context) {
	var req joinSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	sess, err := h.sessions.GetByJoinCode(ctx, req.Code)
	if err != nil {
		h.logger.Error("failed to look up join code", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to join session"})
		return
	}
	// Unknown code is its own answer — the UI renders "invalid code", not
	// "something went wrong".
	if sess == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "invalid join code"})
		return
	}

	userID := middleware.GetUserID(c)
	if err := h.members.Join(ctx, sess.ID, userID); err != nil {
		h.logger.Error("failed to join session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to join session"})
		return
	}

	h.broadcaster.UsersChanged(ctx, sess.ID)
	c.JSON(http.StatusOK, sess)
}

// Leave handles POST /v1/sessions/:id/leave
func (h *SessionHandler) Leave(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	ctx := c.Request.Context()
	userID := middleware.GetUserID(c)
	if err := h.members.Leave(ctx, sessionID, userID); err != nil {
		h.logger.Error("failed to leave session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to leave session"})
		return
	}

	h.broadcaster.UsersChanged(ctx, sessionID)
	c.JSON(http.StatusOK, gin.H{"status": "left"})
}

// Start handles POST /v1/sessions/:id/start — creator only.
func (h *SessionHandler) Start(c *gin.Context) {
	sess, ok := h.requireCreator(c)
	if !ok {
		return
	}

	if err := h.engine.Activate(c.Request.Context(), sess.ID); err != nil {
		h.logger.Error("failed to start session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.SessionStatusActive})
}

// Finish handles POST /v1/sessions/:id/finish — creator only.
func (h *SessionHandler) Finish(c *gin.Context) {
	sess, ok := h.requireCreator(c)
	if !ok {
		return
	}

	if err := h.engine.Finish(c.Request.Context(), sess.ID); err != nil {
		h.logger.Error("failed to finish session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to finish session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.SessionStatusFinished})
}

// Get handles GET /v1/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	ctx := c.Request.Context()
	sess, err := h.sessions.GetByID(ctx, sessionID)
	if err != nil {
		h.logger.Error("failed to get session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get session"})
		return
	}
	if sess == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	state, err := h.sessions.GetState(ctx, sessionID)
	if err != nil {
		h.logger.Error("failed to get session state", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get session"})
		return
	}
	beers, err := h.queue.ListBySession(ctx, sessionID)
	if err != nil {
		h.logger.Error("failed to list beers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get session"})
		return
	}
	members, err := h.members.ListMembers(ctx, sessionID)
	if err != nil {
		h.logger.Error("failed to list members", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get session"})
		return
	}
	criteria, err := h.criteria.ListBySession(ctx, sessionID)
	if err != nil {
		h.logger.Error("failed to list criteria", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get session"})
		return
	}

	c.JSON(http.StatusOK, sessionDetail{
		Session:  sess,
		State:    state,
		Beers:    beers,
		Members:  members,
		Criteria: criteria,
	})
}

// requireCreator loads the session from :id and checks the caller created
// it. Writes the error response itself when the check fails.
func (h *SessionHandler) requireCreator(c *gin.Context) (*models.Session, bool) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return nil, false
	}

	sess, err := h.sessions.GetByID(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Error("failed to get session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get session"})
		return nil, false
	}
	if sess == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return nil, false
	}
	if sess.CreatorID != middleware.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "only the session creator can do that"})
		return nil, false
	}
	return sess, true
}
