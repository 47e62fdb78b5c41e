package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brewkit/tapvote/internal/repository"
	"github.com/brewkit/tapvote/internal/results"
)

type ResultsHandler struct {
	sessions repository.SessionRepository
	queue    repository.SessionBeerRepository
	criteria repository.CriteriaRepository
	ratings  repository.RatingRepository
	logger   *zap.Logger
}

func NewResultsHandler(
	sessions repository.SessionRepository,
	queue repository.SessionBeerRepository,
	criteria repository.CriteriaRepository,
	ratings repository.RatingRepository,
	logger *zap.Logger,
) *ResultsHandler {
	return &ResultsHandler{
		sessions: sessions,
		queue:    queue,
		criteria: criteria,
		ratings:  ratings,
		logger:   logger,
	}
}

// Get handles GET /v1/sessions/:id/results
//
// Results are available mid-session too — the scoreboard just only shows
// beers that have collected at least one rating.
func (h *ResultsHandler) Get(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	ctx := c.Request.Context()
	sess, err := h.sessions.GetByID(ctx, sessionID)
	if err != nil {
		h.logger.Error("failed to get session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get results"})
		return
	}
	if sess == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	beers, err := h.queue.ListBySession(ctx, sessionID)
	if err != nil {
		h.logger.Error("failed to list beers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get results"})
		return
	}
	criteria, err := h.criteria.ListBySession(ctx, sessionID)
	if err != nil {
		h.logger.Error("failed to list criteria", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get results"})
		return
	}
	ratings, err := h.ratings.ListBySession(ctx, sessionID)
	if err != nil {
		h.logger.Error("failed to list ratings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get results"})
		return
	}

	c.JSON(http.StatusOK, results.Compute(beers, criteria, ratings))
}
