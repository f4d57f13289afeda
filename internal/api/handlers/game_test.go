package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"club-stats-backend/internal/api/handlers"
	"club-stats-backend/internal/database/models"
	"club-stats-backend/internal/mocks"
	"club-stats-backend/internal/service"
	"club-stats-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GameHandlerTestSuite defines the test suite for GameHandler
type GameHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockGameRepo *mocks.MockGameRepositoryInterface
	httpSuite    *testutils.HTTPTestSuite
}

func (suite *GameHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGameRepo = mocks.NewMockGameRepositoryInterface(suite.ctrl)

	gameService := service.NewGameService(suite.mockGameRepo, validator.New())
	handler := handlers.NewGameHandler(gameService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.DELETE("/games/:id", handler.DeleteGame)
}

func (suite *GameHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GameHandlerTestSuite) TestDeleteGame() {
	gameID := uuid.New()
	game := &models.Game{
		BaseModel:  models.BaseModel{ID: gameID},
		ClubID:     uuid.New(),
		Name:       "Catan",
		MinPlayers: 3,
		MaxPlayers: 4,
	}
	suite.mockGameRepo.EXPECT().GetByID(gameID).Return(game, nil).Times(1)
	suite.mockGameRepo.EXPECT().CountResults(gameID).Return(int64(0), nil).Times(1)
	suite.mockGameRepo.EXPECT().Delete(gameID).Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/games/"+gameID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *GameHandlerTestSuite) TestDeleteGameWithResults() {
	gameID := uuid.New()
	game := &models.Game{
		BaseModel:  models.BaseModel{ID: gameID},
		ClubID:     uuid.New(),
		Name:       "Catan",
		MinPlayers: 3,
		MaxPlayers: 4,
	}
	suite.mockGameRepo.EXPECT().GetByID(gameID).Return(game, nil).Times(1)
	suite.mockGameRepo.EXPECT().CountResults(gameID).Return(int64(5), nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/games/"+gameID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "cannot be deleted")
}

func (suite *GameHandlerTestSuite) TestDeleteGameNotFound() {
	gameID := uuid.New()
	suite.mockGameRepo.EXPECT().GetByID(gameID).Return(nil, assert.AnError).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/games/"+gameID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "game not found")
}

func (suite *GameHandlerTestSuite) TestDeleteGameStorageError() {
	gameID := uuid.New()
	game := &models.Game{
		BaseModel:  models.BaseModel{ID: gameID},
		ClubID:     uuid.New(),
		Name:       "Catan",
		MinPlayers: 3,
		MaxPlayers: 4,
	}
	suite.mockGameRepo.EXPECT().GetByID(gameID).Return(game, nil).Times(1)
	suite.mockGameRepo.EXPECT().CountResults(gameID).Return(int64(0), nil).Times(1)
	suite.mockGameRepo.EXPECT().Delete(gameID).
		Return(errors.New(`pq: could not serialize access due to concurrent update`)).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/games/"+gameID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "internal server error")
	assert.NotContains(suite.T(), recorder.Body.String(), "pq:")
}

func TestGameHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GameHandlerTestSuite))
}
