package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/brewkit/tapvote/internal/middleware"
	"github.com/brewkit/tapvote/internal/models"
	repoMocks "github.com/brewkit/tapvote/internal/repository/mocks"
	"github.com/brewkit/tapvote/internal/untappd"
)

type CheckinHandlerTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockBeers *repoMocks.MockBeerRepository
	upstream  *httptest.Server
	router    *gin.Engine

	testSessionID uuid.UUID
	testUserID    uuid.UUID
	testBeerID    uuid.UUID

	upstreamStatus int
	lastPath       string
	lastQuery      map[string]string
}

func (s *CheckinHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBeers = repoMocks.NewMockBeerRepository(s.mockCtrl)

	s.testSessionID = uuid.New()
	s.testUserID = uuid.New()
	s.testBeerID = uuid.New()

	s.upstreamStatus = http.StatusOK
	s.lastPath = ""
	s.lastQuery = nil
	s.upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lastPath = r.URL.Path
		s.lastQuery = map[string]string{}
		for key, vals := range r.URL.Query() {
			s.lastQuery[key] = vals[0]
		}
		w.WriteHeader(s.upstreamStatus)
	}))

	catalog := untappd.NewClientWithBaseURL("test-id", "test-secret", s.upstream.URL)
	handler := NewBeerHandler(nil, s.mockBeers, catalog, zap.NewNop())

	s.router = gin.New()
	s.router.POST("/v1/sessions/:id/checkin", func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, s.testUserID)
		c.Next()
	}, handler.Checkin)
}

func (s *CheckinHandlerTestSuite) TearDownTest() {
	s.upstream.Close()
	s.mockCtrl.Finish()
}

func TestCheckinHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CheckinHandlerTestSuite))
}

func (s *CheckinHandlerTestSuite) checkin(sessionID string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/"+sessionID+"/checkin", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *CheckinHandlerTestSuite) TestCheckin_ForwardsTokenAndUntappdID() {
	beer := &models.Beer{
		ID:        s.testBeerID,
		UntappdID: 4711,
		Name:      "Westvleteren 12",
		Brewery:   "Brouwerij Westvleteren",
		Style:     "Quadrupel",
		ABV:       10.2,
		LabelURL:  "https://example.com/label.png",
		CreatedAt: time.Now().UTC(),
	}
	s.mockBeers.EXPECT().GetByID(gomock.Any(), s.testBeerID).Return(beer, nil)

	rec := s.checkin(s.testSessionID.String(), gin.H{
		"beer_id":      s.testBeerID,
		"access_token": "user-oauth-token",
		"comment":      "cracking quad",
		"rating":       4.25,
	})

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("/checkin/add", s.lastPath)
	s.Equal("4711", s.lastQuery["bid"])
	s.Equal("user-oauth-token", s.lastQuery["access_token"])
	s.Equal("cracking quad", s.lastQuery["shout"])
	s.Equal("4.25", s.lastQuery["rating"])
}

func (s *CheckinHandlerTestSuite) TestCheckin_InvalidSessionID() {
	rec := s.checkin("not-a-uuid", gin.H{
		"beer_id":      s.testBeerID,
		"access_token": "user-oauth-token",
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *CheckinHandlerTestSuite) TestCheckin_MissingTokenRejected() {
	rec := s.checkin(s.testSessionID.String(), gin.H{
		"beer_id": s.testBeerID,
	})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *CheckinHandlerTestSuite) TestCheckin_UnknownBeer() {
	s.mockBeers.EXPECT().GetByID(gomock.Any(), s.testBeerID).Return(nil, nil)

	rec := s.checkin(s.testSessionID.String(), gin.H{
		"beer_id":      s.testBeerID,
		"access_token": "user-oauth-token",
	})
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *CheckinHandlerTestSuite) TestCheckin_StoreError() {
	s.mockBeers.EXPECT().GetByID(gomock.Any(), s.testBeerID).Return(nil, errors.New("connection reset"))

	rec := s.checkin(s.testSessionID.String(), gin.H{
		"beer_id":      s.testBeerID,
		"access_token": "user-oauth-token",
	})
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *CheckinHandlerTestSuite) TestCheckin_UpstreamFailure() {
	beer := &models.Beer{ID: s.testBeerID, UntappdID: 4711}
	s.mockBeers.EXPECT().GetByID(gomock.Any(), s.testBeerID).Return(beer, nil)
	s.upstreamStatus = http.StatusUnauthorized

	rec := s.checkin(s.testSessionID.String(), gin.H{
		"beer_id":      s.testBeerID,
		"access_token": "expired-token",
	})
	s.Equal(http.StatusBadGateway, rec.Code)
}
