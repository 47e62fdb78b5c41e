package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/brewkit/tapvote/internal/middleware"
	"github.com/brewkit/tapvote/internal/models"
	repoMocks "github.com/brewkit/tapvote/internal/repository/mocks"
	"github.com/brewkit/tapvote/internal/rotation"
	rotationMocks "github.com/brewkit/tapvote/internal/rotation/mocks"
)

type VoteHandlerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockSessions *repoMocks.MockSessionRepository
	mockBeers    *repoMocks.MockBeerRepository
	mockQueue    *repoMocks.MockSessionBeerRepository
	mockRatings  *repoMocks.MockRatingRepository
	mockMembers  *repoMocks.MockMembershipRepository
	mockCriteria *repoMocks.MockCriteriaRepository
	router       *gin.Engine

	testSessionID uuid.UUID
	testUserID    uuid.UUID
	testBeerID    uuid.UUID
	criterionID   uuid.UUID
}

func (s *VoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessions = repoMocks.NewMockSessionRepository(s.mockCtrl)
	s.mockBeers = repoMocks.NewMockBeerRepository(s.mockCtrl)
	s.mockQueue = repoMocks.NewMockSessionBeerRepository(s.mockCtrl)
	s.mockRatings = repoMocks.NewMockRatingRepository(s.mockCtrl)
	s.mockMembers = repoMocks.NewMockMembershipRepository(s.mockCtrl)
	s.mockCriteria = repoMocks.NewMockCriteriaRepository(s.mockCtrl)

	s.testSessionID = uuid.New()
	s.testUserID = uuid.New()
	s.testBeerID = uuid.New()
	s.criterionID = uuid.New()

	publisher := rotationMocks.NewMockPublisher(s.mockCtrl)
	publisher.EXPECT().VoteReceived(gomock.Any(), gomock.Any()).AnyTimes()
	publisher.EXPECT().BeerChanged(gomock.Any(), gomock.Any()).AnyTimes()

	engine := rotation.NewService(
		s.mockSessions,
		s.mockBeers,
		s.mockQueue,
		s.mockRatings,
		s.mockMembers,
		s.mockCriteria,
		publisher,
		rand.New(rand.NewSource(1)),
		zap.NewNop(),
	)
	handler := NewVoteHandler(engine, s.mockMembers, zap.NewNop())

	s.router = gin.New()
	s.router.POST("/v1/sessions/:id/votes", func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, s.testUserID)
		c.Next()
	}, handler.Submit)
}

func (s *VoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVoteHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VoteHandlerTestSuite))
}

func (s *VoteHandlerTestSuite) submit(sessionID string, body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/v1/sessions/%s/votes", sessionID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *VoteHandlerTestSuite) voteBody() gin.H {
	return gin.H{
		"beer_id": s.testBeerID,
		"scores": []gin.H{
			{"criterion_id": s.criterionID, "score": 8},
		},
	}
}

func (s *VoteHandlerTestSuite) activeState(current *uuid.UUID) *models.SessionState {
	return &models.SessionState{
		SessionID:     s.testSessionID,
		CurrentBeerID: current,
		Status:        models.SessionStatusActive,
	}
}

func (s *VoteHandlerTestSuite) TestSubmit_OK() {
	s.mockMembers.EXPECT().IsActiveMember(gomock.Any(), s.testSessionID, s.testUserID).Return(true, nil)

	s.mockSessions.EXPECT().GetState(gomock.Any(), s.testSessionID).
		Return(s.activeState(&s.testBeerID), nil).Times(2)
	s.mockRatings.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	s.mockSessions.EXPECT().TouchHeartbeat(gomock.Any(), s.testSessionID).Return(nil)
	// Quorum check after the vote, still short.
	s.mockMembers.EXPECT().CountActive(gomock.Any(), s.testSessionID).Return(3, nil)
	s.mockCriteria.EXPECT().ListBySession(gomock.Any(), s.testSessionID).
		Return([]models.Criterion{{ID: s.criterionID, Name: "overall", Weight: 1}}, nil)
	s.mockRatings.EXPECT().CountForBeer(gomock.Any(), s.testSessionID, s.testBeerID).Return(1, nil)

	rec := s.submit(s.testSessionID.String(), s.voteBody())
	s.Equal(http.StatusOK, rec.Code)
}

func (s *VoteHandlerTestSuite) TestSubmit_InvalidSessionID() {
	rec := s.submit("not-a-uuid", s.voteBody())
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *VoteHandlerTestSuite) TestSubmit_NonMemberForbidden() {
	s.mockMembers.EXPECT().IsActiveMember(gomock.Any(), s.testSessionID, s.testUserID).Return(false, nil)

	rec := s.submit(s.testSessionID.String(), s.voteBody())
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *VoteHandlerTestSuite) TestSubmit_UnknownSessionMapsTo404() {
	s.mockMembers.EXPECT().IsActiveMember(gomock.Any(), s.testSessionID, s.testUserID).Return(true, nil)
	s.mockSessions.EXPECT().GetState(gomock.Any(), s.testSessionID).Return(nil, nil)

	rec := s.submit(s.testSessionID.String(), s.voteBody())
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *VoteHandlerTestSuite) TestSubmit_FinishedSessionMapsTo409() {
	s.mockMembers.EXPECT().IsActiveMember(gomock.Any(), s.testSessionID, s.testUserID).Return(true, nil)
	s.mockSessions.EXPECT().GetState(gomock.Any(), s.testSessionID).Return(&models.SessionState{
		SessionID: s.testSessionID,
		Status:    models.SessionStatusFinished,
	}, nil)

	rec := s.submit(s.testSessionID.String(), s.voteBody())
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *VoteHandlerTestSuite) TestSubmit_WrongBeerMapsTo409() {
	other := uuid.New()
	s.mockMembers.EXPECT().IsActiveMember(gomock.Any(), s.testSessionID, s.testUserID).Return(true, nil)
	s.mockSessions.EXPECT().GetState(gomock.Any(), s.testSessionID).Return(s.activeState(&other), nil)

	rec := s.submit(s.testSessionID.String(), s.voteBody())
	s.Equal(http.StatusConflict, rec.Code)
}
