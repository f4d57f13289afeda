package service_test

import (
	"errors"
	"testing"
	"time"

	"club-stats-backend/internal/database/models"
	apperrors "club-stats-backend/internal/errors"
	"club-stats-backend/internal/logger"
	"club-stats-backend/internal/mocks"
	"club-stats-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// GameResultServiceTestSuite defines the test suite for GameResultService
type GameResultServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockResultRepo *mocks.MockGameResultRepositoryInterface
	mockGameRepo   *mocks.MockGameRepositoryInterface
	mockMemberRepo *mocks.MockMemberRepositoryInterface
	resultService  *service.GameResultService
	validator      *validator.Validate

	clubID uuid.UUID
	gameID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *GameResultServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockResultRepo = mocks.NewMockGameResultRepositoryInterface(suite.ctrl)
	suite.mockGameRepo = mocks.NewMockGameRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockMemberRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.resultService = service.NewGameResultService(
		suite.mockResultRepo,
		suite.mockGameRepo,
		suite.mockMemberRepo,
		suite.validator,
		logger.New(),
	)

	suite.clubID = uuid.New()
	suite.gameID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *GameResultServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *GameResultServiceTestSuite) expectGame() {
	suite.mockGameRepo.EXPECT().
		GetByID(suite.gameID).
		Return(&models.Game{
			BaseModel: models.BaseModel{ID: suite.gameID},
			ClubID:    suite.clubID,
			Name:      "Catan",
		}, nil).
		Times(1)
}

func (suite *GameResultServiceTestSuite) expectMembersInClub(memberIDs ...uuid.UUID) {
	for _, id := range memberIDs {
		suite.mockMemberRepo.EXPECT().
			GetByID(id).
			Return(&models.Member{
				BaseModel: models.BaseModel{ID: id},
				ClubID:    suite.clubID,
				FullName:  "Member",
			}, nil).
			Times(1)
	}
}

// TestCreateRankedResult tests recording a ranked result with three players
func (suite *GameResultServiceTestSuite) TestCreateRankedResult() {
	winner := uuid.New()
	second := uuid.New()
	third := uuid.New()
	req := &service.CreateGameResultRequest{
		GameID:          suite.gameID,
		Mode:            "ranked",
		WinnerID:        winner,
		Places:          []uuid.UUID{second, third},
		DurationMinutes: 75,
		PlayedAt:        "2026-03-14T19:30:00Z",
	}

	suite.expectGame()
	suite.expectMembersInClub(winner, second, third)

	var savedID uuid.UUID
	suite.mockResultRepo.EXPECT().
		Create(gomock.Any(), gomock.Nil()).
		DoAndReturn(func(result *models.GameResult, loserIDs []uuid.UUID) error {
			assert.Equal(suite.T(), suite.clubID, result.ClubID)
			assert.Equal(suite.T(), models.ResultModeRanked, result.Mode)
			assert.Equal(suite.T(), 3, result.NumPlayers)
			assert.Equal(suite.T(), &second, result.Place2ID)
			assert.Equal(suite.T(), &third, result.Place3ID)
			assert.Nil(suite.T(), result.Place4ID)
			assert.NotEmpty(suite.T(), result.SessionID)
			result.ID = uuid.New()
			savedID = result.ID
			return nil
		}).
		Times(1)

	suite.mockResultRepo.EXPECT().
		GetByID(gomock.Any()).
		DoAndReturn(func(id uuid.UUID) (*models.GameResult, error) {
			assert.Equal(suite.T(), savedID, id)
			return &models.GameResult{
				BaseModel:       models.BaseModel{ID: id},
				ClubID:          suite.clubID,
				GameID:          suite.gameID,
				Game:            models.Game{BaseModel: models.BaseModel{ID: suite.gameID}, Name: "Catan"},
				Mode:            models.ResultModeRanked,
				WinnerID:        winner,
				Winner:          models.Member{BaseModel: models.BaseModel{ID: winner}, FullName: "Winner"},
				Place2ID:        &second,
				Place2:          &models.Member{BaseModel: models.BaseModel{ID: second}, FullName: "Second"},
				Place3ID:        &third,
				Place3:          &models.Member{BaseModel: models.BaseModel{ID: third}, FullName: "Third"},
				NumPlayers:      3,
				DurationMinutes: 75,
				PlayedAt:        time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC),
			}, nil
		}).
		Times(1)

	response, err := suite.resultService.CreateGameResult(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "ranked", response.Mode)
	assert.Equal(suite.T(), winner, response.Winner.MemberID)
	assert.Equal(suite.T(), 1, *response.Winner.Place)
	assert.Len(suite.T(), response.Placements, 2)
	assert.Equal(suite.T(), 2, *response.Placements[0].Place)
	assert.Equal(suite.T(), 3, *response.Placements[1].Place)
}

// TestCreateWinnerLosersResult tests recording a winner/losers result
func (suite *GameResultServiceTestSuite) TestCreateWinnerLosersResult() {
	winner := uuid.New()
	loser1 := uuid.New()
	loser2 := uuid.New()
	req := &service.CreateGameResultRequest{
		GameID:          suite.gameID,
		Mode:            "winner_losers",
		WinnerID:        winner,
		LoserIDs:        []uuid.UUID{loser1, loser2},
		DurationMinutes: 45,
		PlayedAt:        "2026-03-14T19:30",
	}

	suite.expectGame()
	suite.expectMembersInClub(winner, loser1, loser2)

	suite.mockResultRepo.EXPECT().
		Create(gomock.Any(), []uuid.UUID{loser1, loser2}).
		DoAndReturn(func(result *models.GameResult, loserIDs []uuid.UUID) error {
			assert.Equal(suite.T(), models.ResultModeWinnerLosers, result.Mode)
			assert.Equal(suite.T(), 3, result.NumPlayers)
			assert.Nil(suite.T(), result.Place2ID)
			result.ID = uuid.New()
			return nil
		}).
		Times(1)

	suite.mockResultRepo.EXPECT().
		GetByID(gomock.Any()).
		DoAndReturn(func(id uuid.UUID) (*models.GameResult, error) {
			return &models.GameResult{
				BaseModel: models.BaseModel{ID: id},
				ClubID:    suite.clubID,
				GameID:    suite.gameID,
				Mode:      models.ResultModeWinnerLosers,
				WinnerID:  winner,
				Winner:    models.Member{BaseModel: models.BaseModel{ID: winner}, FullName: "Winner"},
				Losers: []models.GameResultLoser{
					{ResultID: id, MemberID: loser1, Member: models.Member{BaseModel: models.BaseModel{ID: loser1}, FullName: "Loser One"}},
					{ResultID: id, MemberID: loser2, Member: models.Member{BaseModel: models.BaseModel{ID: loser2}, FullName: "Loser Two"}},
				},
				NumPlayers:      3,
				DurationMinutes: 45,
				PlayedAt:        time.Date(2026, 3, 14, 19, 30, 0, 0, time.UTC),
			}, nil
		}).
		Times(1)

	response, err := suite.resultService.CreateGameResult(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "winner_losers", response.Mode)
	assert.Empty(suite.T(), response.Placements)
	assert.Len(suite.T(), response.Losers, 2)
}

// TestCreateResultInvalidMode tests that an unknown mode is rejected
func (suite *GameResultServiceTestSuite) TestCreateResultInvalidMode() {
	req := &service.CreateGameResultRequest{
		GameID:          suite.gameID,
		Mode:            "free_for_all",
		WinnerID:        uuid.New(),
		DurationMinutes: 30,
		PlayedAt:        "2026-03-14T19:30:00Z",
	}

	response, err := suite.resultService.CreateGameResult(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateResultPlaceOverflow tests that more than seven places behind the
// winner are rejected before any write
func (suite *GameResultServiceTestSuite) TestCreateResultPlaceOverflow() {
	places := make([]uuid.UUID, models.MaxPlaces)
	for i := range places {
		places[i] = uuid.New()
	}
	req := &service.CreateGameResultRequest{
		GameID:          suite.gameID,
		Mode:            "ranked",
		WinnerID:        uuid.New(),
		Places:          places,
		DurationMinutes: 60,
		PlayedAt:        "2026-03-14T19:30:00Z",
	}

	suite.expectGame()

	response, err := suite.resultService.CreateGameResult(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrPlaceLimitExceeded)
}

// TestCreateResultFullTable tests that a winner plus seven places, eight
// players in total, is accepted
func (suite *GameResultServiceTestSuite) TestCreateResultFullTable() {
	players := make([]uuid.UUID, models.MaxPlaces)
	for i := range players {
		players[i] = uuid.New()
	}
	req := &service.CreateGameResultRequest{
		GameID:          suite.gameID,
		Mode:            "ranked",
		WinnerID:        players[0],
		Places:          players[1:],
		DurationMinutes: 120,
		PlayedAt:        "2026-03-14T19:30:00Z",
	}

	suite.expectGame()
	suite.expectMembersInClub(players...)

	var saved models.GameResult
	suite.mockResultRepo.EXPECT().
		Create(gomock.Any(), gomock.Nil()).
		DoAndReturn(func(result *models.GameResult, loserIDs []uuid.UUID) error {
			assert.Equal(suite.T(), models.MaxPlaces, result.NumPlayers)
			assert.Equal(suite.T(), &players[7], result.Place8ID)
			result.ID = uuid.New()
			saved = *result
			return nil
		}).
		Times(1)

	member := func(id *uuid.UUID) *models.Member {
		if id == nil {
			return nil
		}
		return &models.Member{BaseModel: models.BaseModel{ID: *id}, FullName: "Member"}
	}
	suite.mockResultRepo.EXPECT().
		GetByID(gomock.Any()).
		DoAndReturn(func(id uuid.UUID) (*models.GameResult, error) {
			fetched := saved
			fetched.Game = models.Game{BaseModel: models.BaseModel{ID: suite.gameID}, Name: "Catan"}
			fetched.Winner = *member(&fetched.WinnerID)
			fetched.Place2 = member(fetched.Place2ID)
			fetched.Place3 = member(fetched.Place3ID)
			fetched.Place4 = member(fetched.Place4ID)
			fetched.Place5 = member(fetched.Place5ID)
			fetched.Place6 = member(fetched.Place6ID)
			fetched.Place7 = member(fetched.Place7ID)
			fetched.Place8 = member(fetched.Place8ID)
			return &fetched, nil
		}).
		Times(1)

	response, err := suite.resultService.CreateGameResult(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), models.MaxPlaces, response.NumPlayers)
	assert.Len(suite.T(), response.Placements, models.MaxPlaces-1)
	assert.Equal(suite.T(), players[7], response.Placements[6].MemberID)
	assert.Equal(suite.T(), 8, *response.Placements[6].Place)
}

// TestCreateResultDuplicateParticipant tests that the same member cannot appear twice
func (suite *GameResultServiceTestSuite) TestCreateResultDuplicateParticipant() {
	winner := uuid.New()
	second := uuid.New()
	req := &service.CreateGameResultRequest{
		GameID:          suite.gameID,
		Mode:            "ranked",
		WinnerID:        winner,
		Places:          []uuid.UUID{second, winner},
		DurationMinutes: 60,
		PlayedAt:        "2026-03-14T19:30:00Z",
	}

	suite.expectGame()

	response, err := suite.resultService.CreateGameResult(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicateParticipants)
}

// TestCreateResultWinnerInLosers tests that the winner cannot also lose
func (suite *GameResultServiceTestSuite) TestCreateResultWinnerInLosers() {
	winner := uuid.New()
	req := &service.CreateGameResultRequest{
		GameID:          suite.gameID,
		Mode:            "winner_losers",
		WinnerID:        winner,
		LoserIDs:        []uuid.UUID{uuid.New(), winner},
		DurationMinutes: 60,
		PlayedAt:        "2026-03-14T19:30:00Z",
	}

	suite.expectGame()

	response, err := suite.resultService.CreateGameResult(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrWinnerInLosers)
}

// TestCreateResultDurationRequired tests that a missing duration is rejected
func (suite *GameResultServiceTestSuite) TestCreateResultDurationRequired() {
	req := &service.CreateGameResultRequest{
		GameID:   suite.gameID,
		Mode:     "ranked",
		WinnerID: uuid.New(),
		PlayedAt: "2026-03-14T19:30:00Z",
	}

	suite.expectGame()

	response, err := suite.resultService.CreateGameResult(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDurationRequired)
}

// TestCreateResultInvalidPlayedAt tests that an unparseable timestamp is rejected
func (suite *GameResultServiceTestSuite) TestCreateResultInvalidPlayedAt() {
	req := &service.CreateGameResultRequest{
		GameID:          suite.gameID,
		Mode:            "ranked",
		WinnerID:        uuid.New(),
		DurationMinutes: 60,
		PlayedAt:        "last thursday",
	}

	suite.expectGame()

	response, err := suite.resultService.CreateGameResult(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidPlayedAt)
}

// TestCreateResultMemberFromOtherClub tests that participants must belong to
// the game's club
func (suite *GameResultServiceTestSuite) TestCreateResultMemberFromOtherClub() {
	winner := uuid.New()
	req := &service.CreateGameResultRequest{
		GameID:          suite.gameID,
		Mode:            "ranked",
		WinnerID:        winner,
		DurationMinutes: 60,
		PlayedAt:        "2026-03-14T19:30:00Z",
	}

	suite.expectGame()

	suite.mockMemberRepo.EXPECT().
		GetByID(winner).
		Return(&models.Member{
			BaseModel: models.BaseModel{ID: winner},
			ClubID:    uuid.New(),
		}, nil).
		Times(1)

	response, err := suite.resultService.CreateGameResult(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateResultSaveFailure tests that a repository write error surfaces as
// an opaque save failure
func (suite *GameResultServiceTestSuite) TestCreateResultSaveFailure() {
	winner := uuid.New()
	req := &service.CreateGameResultRequest{
		GameID:          suite.gameID,
		Mode:            "ranked",
		WinnerID:        winner,
		DurationMinutes: 60,
		PlayedAt:        "2026-03-14T19:30:00Z",
	}

	suite.expectGame()
	suite.expectMembersInClub(winner)

	suite.mockResultRepo.EXPECT().
		Create(gomock.Any(), gomock.Nil()).
		Return(errors.New("pq: connection reset")).
		Times(1)

	response, err := suite.resultService.CreateGameResult(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSaveFailed)
	assert.NotContains(suite.T(), err.Error(), "pq:")
}

// TestUpdateResultReplacesPlaces tests that an update rewrites the place columns wholesale
func (suite *GameResultServiceTestSuite) TestUpdateResultReplacesPlaces() {
	resultID := uuid.New()
	winner := uuid.New()
	oldSecond := uuid.New()
	newSecond := uuid.New()
	req := &service.UpdateGameResultRequest{
		Places: []uuid.UUID{newSecond},
	}

	existing := &models.GameResult{
		BaseModel:       models.BaseModel{ID: resultID},
		ClubID:          suite.clubID,
		GameID:          suite.gameID,
		Mode:            models.ResultModeRanked,
		WinnerID:        winner,
		Place2ID:        &oldSecond,
		NumPlayers:      2,
		DurationMinutes: 60,
		PlayedAt:        time.Now(),
	}

	suite.mockResultRepo.EXPECT().
		GetByID(resultID).
		Return(existing, nil).
		Times(1)

	suite.expectMembersInClub(winner, newSecond)

	suite.mockResultRepo.EXPECT().
		Update(gomock.Any(), gomock.Nil()).
		DoAndReturn(func(result *models.GameResult, loserIDs []uuid.UUID) error {
			assert.Equal(suite.T(), &newSecond, result.Place2ID)
			assert.Nil(suite.T(), result.Place3ID)
			return nil
		}).
		Times(1)

	suite.mockResultRepo.EXPECT().
		GetByID(resultID).
		Return(&models.GameResult{
			BaseModel:       models.BaseModel{ID: resultID},
			ClubID:          suite.clubID,
			GameID:          suite.gameID,
			Mode:            models.ResultModeRanked,
			WinnerID:        winner,
			Winner:          models.Member{BaseModel: models.BaseModel{ID: winner}, FullName: "Winner"},
			Place2ID:        &newSecond,
			Place2:          &models.Member{BaseModel: models.BaseModel{ID: newSecond}, FullName: "Second"},
			NumPlayers:      2,
			DurationMinutes: 60,
			PlayedAt:        time.Now(),
		}, nil).
		Times(1)

	response, err := suite.resultService.UpdateGameResult(resultID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Len(suite.T(), response.Placements, 1)
	assert.Equal(suite.T(), newSecond, response.Placements[0].MemberID)
}

// TestGetResultBySessionNotFound tests the session lookup miss path
func (suite *GameResultServiceTestSuite) TestGetResultBySessionNotFound() {
	suite.mockResultRepo.EXPECT().
		GetBySessionID("missing").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.resultService.GetGameResultBySession("missing")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrResultNotFound)
}

// TestDeleteResult tests deleting a recorded result
func (suite *GameResultServiceTestSuite) TestDeleteResult() {
	resultID := uuid.New()

	suite.mockResultRepo.EXPECT().
		GetByID(resultID).
		Return(&models.GameResult{BaseModel: models.BaseModel{ID: resultID}}, nil).
		Times(1)

	suite.mockResultRepo.EXPECT().
		Delete(resultID).
		Return(nil).
		Times(1)

	err := suite.resultService.DeleteGameResult(resultID)

	assert.NoError(suite.T(), err)
}

// TestDeleteResultSaveFailed tests that a storage error on delete surfaces as
// the opaque save failure
func (suite *GameResultServiceTestSuite) TestDeleteResultSaveFailed() {
	resultID := uuid.New()

	suite.mockResultRepo.EXPECT().
		GetByID(resultID).
		Return(&models.GameResult{BaseModel: models.BaseModel{ID: resultID}}, nil).
		Times(1)

	suite.mockResultRepo.EXPECT().
		Delete(resultID).
		Return(errors.New("connection reset by peer")).
		Times(1)

	err := suite.resultService.DeleteGameResult(resultID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrSaveFailed)
	assert.NotContains(suite.T(), err.Error(), "connection reset")
}

func TestGameResultServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameResultServiceTestSuite))
}
