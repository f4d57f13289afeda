package service_test

import (
	"testing"

	"club-stats-backend/internal/database/models"
	apperrors "club-stats-backend/internal/errors"
	"club-stats-backend/internal/mocks"
	"club-stats-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// GameServiceTestSuite defines the test suite for GameService
type GameServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockGameRepo *mocks.MockGameRepositoryInterface
	gameService  *service.GameService
	validator    *validator.Validate
}

// SetupTest sets up the test suite
func (suite *GameServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockGameRepo = mocks.NewMockGameRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.gameService = service.NewGameService(suite.mockGameRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *GameServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateGame tests creating a game
func (suite *GameServiceTestSuite) TestCreateGame() {
	req := &service.CreateGameRequest{
		ClubID:     uuid.New(),
		Name:       "Terraforming Mars",
		MinPlayers: 1,
		MaxPlayers: 5,
	}

	suite.mockGameRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.gameService.CreateGame(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.Equal(suite.T(), 1, response.MinPlayers)
	assert.Equal(suite.T(), 5, response.MaxPlayers)
}

// TestCreateGamePlayerRangeInverted tests that max players below min is rejected
func (suite *GameServiceTestSuite) TestCreateGamePlayerRangeInverted() {
	req := &service.CreateGameRequest{
		ClubID:     uuid.New(),
		Name:       "Terraforming Mars",
		MinPlayers: 4,
		MaxPlayers: 2,
	}

	response, err := suite.gameService.CreateGame(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestGetGameByIDNotFound tests getting a game by ID when not found
func (suite *GameServiceTestSuite) TestGetGameByIDNotFound() {
	gameID := uuid.New()

	suite.mockGameRepo.EXPECT().
		GetByID(gameID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.gameService.GetGameByID(gameID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrGameNotFound)
}

// TestSearchGames tests searching a club's catalog
func (suite *GameServiceTestSuite) TestSearchGames() {
	clubID := uuid.New()
	games := []models.Game{
		{BaseModel: models.BaseModel{ID: uuid.New()}, ClubID: clubID, Name: "Terraforming Mars", MinPlayers: 1, MaxPlayers: 5},
	}

	suite.mockGameRepo.EXPECT().
		Search(clubID, "mars", 20, 0).
		Return(games, int64(1), nil).
		Times(1)

	responses, total, err := suite.gameService.SearchGames(clubID, "mars", 20, 0)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 1)
	assert.Equal(suite.T(), int64(1), total)
}

// TestUpdateGamePlayerRangeInverted tests that an update leaving max below min is rejected
func (suite *GameServiceTestSuite) TestUpdateGamePlayerRangeInverted() {
	gameID := uuid.New()
	maxPlayers := 1
	req := &service.UpdateGameRequest{MaxPlayers: &maxPlayers}

	game := &models.Game{
		BaseModel:  models.BaseModel{ID: gameID},
		ClubID:     uuid.New(),
		Name:       "Terraforming Mars",
		MinPlayers: 2,
		MaxPlayers: 5,
	}

	suite.mockGameRepo.EXPECT().
		GetByID(gameID).
		Return(game, nil).
		Times(1)

	response, err := suite.gameService.UpdateGame(gameID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestDeleteGame tests deleting a game with no recorded results
func (suite *GameServiceTestSuite) TestDeleteGame() {
	gameID := uuid.New()

	suite.mockGameRepo.EXPECT().
		GetByID(gameID).
		Return(&models.Game{BaseModel: models.BaseModel{ID: gameID}}, nil).
		Times(1)

	suite.mockGameRepo.EXPECT().
		CountResults(gameID).
		Return(int64(0), nil).
		Times(1)

	suite.mockGameRepo.EXPECT().
		Delete(gameID).
		Return(nil).
		Times(1)

	err := suite.gameService.DeleteGame(gameID)

	assert.NoError(suite.T(), err)
}

// TestDeleteGameWithResults tests that a game with recorded results cannot be deleted
func (suite *GameServiceTestSuite) TestDeleteGameWithResults() {
	gameID := uuid.New()

	suite.mockGameRepo.EXPECT().
		GetByID(gameID).
		Return(&models.Game{BaseModel: models.BaseModel{ID: gameID}}, nil).
		Times(1)

	suite.mockGameRepo.EXPECT().
		CountResults(gameID).
		Return(int64(3), nil).
		Times(1)

	err := suite.gameService.DeleteGame(gameID)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrGameHasResults)
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}
