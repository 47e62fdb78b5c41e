package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brewkit/tapvote/internal/middleware"
	"github.com/brewkit/tapvote/internal/repository"
	"github.com/brewkit/tapvote/internal/rotation"
)

type VoteHandler struct {
	engine  *rotation.Service
	members repository.MembershipRepository
	logger  *zap.Logger
}

func NewVoteHandler(engine *rotation.Service, members repository.MembershipRepository, logger *zap.Logger) *VoteHandler {
	return &VoteHandler{engine: engine, members: members, logger: logger}
}

type submitVoteRequest struct {
	BeerID uuid.UUID `json:"beer_id" binding:"required"`
	Scores []struct {
		CriterionID uuid.UUID `json:"criterion_id" binding:"required"`
		Score       float64   `json:"score"`
	} `json:"scores" binding:"required"`
}

// Submit handles POST /v1/sessions/:id/votes
//
// Engine validation errors map to status codes here: the engine knows
// nothing about HTTP, the handler knows nothing about quorum.
func (h *VoteHandler) Submit(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	var req submitVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	userID := middleware.GetUserID(c)

	member, err := h.members.IsActiveMember(ctx, sessionID, userID)
	if err != nil {
		h.logger.Error("failed to check membership", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit vote"})
		return
	}
	if !member {
		c.JSON(http.StatusForbidden, gin.H{"error": "not an active member of this session"})
		return
	}

	vote := rotation.Vote{
		SessionID: sessionID,
		UserID:    userID,
		BeerID:    req.BeerID,
	}
	for _, score := range req.Scores {
		vote.Scores = append(vote.Scores, rotation.CriterionScore{
			CriterionID: score.CriterionID,
			Score:       score.Score,
		})
	}

	err = h.engine.SubmitVote(ctx, vote)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	case errors.Is(err, rotation.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, rotation.ErrSessionNotActive):
		c.JSON(http.StatusConflict, gin.H{"error": "session is not active"})
	case errors.Is(err, rotation.ErrWrongBeer):
		c.JSON(http.StatusConflict, gin.H{"error": "that beer is not currently up for rating"})
	case errors.Is(err, rotation.ErrNoScores):
		c.JSON(http.StatusBadRequest, gin.H{"error": "vote carries no scores"})
	default:
		h.logger.Error("failed to submit vote", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit vote"})
	}
}
