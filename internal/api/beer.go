package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brewkit/tapvote/internal/middleware"
	"github.com/brewkit/tapvote/internal/models"
	"github.com/brewkit/tapvote/internal/repository"
	"github.com/brewkit/tapvote/internal/rotation"
	"github.com/brewkit/tapvote/internal/untappd"
)

type BeerHandler struct {
	engine  *rotation.Service
	beers   repository.BeerRepository
	catalog *untappd.Client
	logger  *zap.Logger
}

func NewBeerHandler(engine *rotation.Service, beers repository.BeerRepository, catalog *untappd.Client, logger *zap.Logger) *BeerHandler {
	return &BeerHandler{engine: engine, beers: beers, catalog: catalog, logger: logger}
}

type addBeersRequest struct {
	Beers []models.BeerDescriptor `json:"beers" binding:"required"`
}

type removeBeersRequest struct {
	BeerIDs []uuid.UUID `json:"beer_ids" binding:"required"`
}

// Add handles POST /v1/sessions/:id/beers
//
// The engine skips incomplete descriptors and duplicates silently; an
// all-skipped request still returns 200 because nothing went wrong, the
// queue just did not change.
func (h *BeerHandler) Add(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	var req addBeersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := middleware.GetUserID(c)
	if err := h.engine.AddBeers(c.Request.Context(), sessionID, req.Beers, userID); err != nil {
		h.logger.Error("failed to add beers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add beers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Remove handles DELETE /v1/sessions/:id/beers
func (h *BeerHandler) Remove(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	var req removeBeersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := middleware.GetUserID(c)
	if err := h.engine.RemoveBeers(c.Request.Context(), sessionID, req.BeerIDs, userID); err != nil {
		h.logger.Error("failed to remove beers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove beers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Search handles GET /v1/beers/search?q=
func (h *BeerHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'q' parameter"})
		return
	}

	beers, err := h.catalog.SearchBeer(c.Request.Context(), query)
	if err != nil {
		h.logger.Error("beer search failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "beer search failed"})
		return
	}

	c.JSON(http.StatusOK, beers)
}

type checkinRequest struct {
	BeerID      uuid.UUID `json:"beer_id" binding:"required"`
	AccessToken string    `json:"access_token" binding:"required"`
	Comment     string    `json:"comment"`
	Rating      float64   `json:"rating"`
}

// Checkin handles POST /v1/sessions/:id/checkin
//
// Posts an Untappd check-in with the caller's own OAuth token. The server
// only maps our beer id back to the Untappd one; the token is forwarded,
// never stored.
func (h *BeerHandler) Checkin(c *gin.Context) {
	if _, err := uuid.Parse(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	var req checkinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	beer, err := h.beers.GetByID(c.Request.Context(), req.BeerID)
	if err != nil {
		h.logger.Error("failed to load beer", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load beer"})
		return
	}
	if beer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "beer not found"})
		return
	}

	if err := h.catalog.Checkin(c.Request.Context(), req.AccessToken, beer.UntappdID, req.Comment, req.Rating); err != nil {
		h.logger.Error("untappd checkin failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "checkin failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
