//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"club-stats-backend/internal/database/models"
	"club-stats-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// GameResultRepositoryTestSuite tests the GameResultRepository
type GameResultRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *GameResultRepository
	factories     *testutils.FactorySet
	club          *models.Club
	game          *models.Game
	members       []*models.Member
}

// SetupSuite runs before all tests in the suite
func (suite *GameResultRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewGameResultRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *GameResultRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds a club, a game and four members for results to reference
func (suite *GameResultRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	club, members, game := suite.factories.CreateClubFixture(4)
	suite.NoError(NewClubRepository(suite.baseTestSuite.DB).Create(club))
	memberRepo := NewMemberRepository(suite.baseTestSuite.DB)
	for _, m := range members {
		suite.NoError(memberRepo.Create(m))
	}
	suite.NoError(NewGameRepository(suite.baseTestSuite.DB).Create(game))

	suite.club = club
	suite.game = game
	suite.members = members
}

// TearDownTest runs after each test
func (suite *GameResultRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *GameResultRepositoryTestSuite) memberID(i int) uuid.UUID {
	return suite.members[i].ID
}

// TestCreateRanked tests creating a ranked result and reading it back with
// every place slot resolved
func (suite *GameResultRepositoryTestSuite) TestCreateRanked() {
	result := suite.factories.GameResult.Ranked(suite.club.ID, suite.game.ID,
		suite.memberID(0), suite.memberID(1), suite.memberID(2))

	err := suite.repo.Create(result, nil)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(result.ID)
	suite.NoError(err)
	suite.Equal(models.ResultModeRanked, retrieved.Mode)
	suite.Equal(suite.memberID(0), retrieved.WinnerID)
	suite.Equal(suite.members[0].FullName, retrieved.Winner.FullName)
	suite.NotNil(retrieved.Place2)
	suite.Equal(suite.memberID(1), retrieved.Place2.ID)
	suite.NotNil(retrieved.Place3)
	suite.Equal(suite.memberID(2), retrieved.Place3.ID)
	suite.Nil(retrieved.Place4ID)
	suite.Empty(retrieved.Losers)
	suite.Equal(suite.game.Name, retrieved.Game.Name)
}

// TestCreateWinnerLosers tests that loser rows land in the side table
func (suite *GameResultRepositoryTestSuite) TestCreateWinnerLosers() {
	result := suite.factories.GameResult.WinnerLosers(suite.club.ID, suite.game.ID,
		suite.memberID(0), suite.memberID(1), suite.memberID(2))
	loserIDs := []uuid.UUID{suite.memberID(1), suite.memberID(2)}

	err := suite.repo.Create(result, loserIDs)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(result.ID)
	suite.NoError(err)
	suite.Equal(models.ResultModeWinnerLosers, retrieved.Mode)
	suite.Len(retrieved.Losers, 2)

	got := []uuid.UUID{retrieved.Losers[0].MemberID, retrieved.Losers[1].MemberID}
	suite.ElementsMatch(loserIDs, got)
	suite.NotEqual(uuid.Nil, retrieved.Losers[0].Member.ID)
}

// TestCreateUnknownMember tests the foreign key on the winner column
func (suite *GameResultRepositoryTestSuite) TestCreateUnknownMember() {
	result := suite.factories.GameResult.Ranked(suite.club.ID, suite.game.ID, uuid.New())

	err := suite.repo.Create(result, nil)

	suite.Error(err)
	suite.Contains(err.Error(), "foreign key")
}

// TestGetBySessionID tests looking a result up by its public session token
func (suite *GameResultRepositoryTestSuite) TestGetBySessionID() {
	result := suite.factories.GameResult.Ranked(suite.club.ID, suite.game.ID,
		suite.memberID(0), suite.memberID(1))
	suite.NoError(suite.repo.Create(result, nil))

	retrieved, err := suite.repo.GetBySessionID(result.SessionID)
	suite.NoError(err)
	suite.Equal(result.ID, retrieved.ID)

	_, err = suite.repo.GetBySessionID("missing-session")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestGetByGameID tests listing results for a game, newest first
func (suite *GameResultRepositoryTestSuite) TestGetByGameID() {
	older := suite.factories.GameResult.Ranked(suite.club.ID, suite.game.ID,
		suite.memberID(0), suite.memberID(1))
	older.PlayedAt = time.Now().Add(-2 * time.Hour)
	suite.NoError(suite.repo.Create(older, nil))

	newer := suite.factories.GameResult.Ranked(suite.club.ID, suite.game.ID,
		suite.memberID(1), suite.memberID(0))
	newer.PlayedAt = time.Now().Add(-1 * time.Hour)
	suite.NoError(suite.repo.Create(newer, nil))

	results, total, err := suite.repo.GetByGameID(suite.game.ID, 10, 0)

	suite.NoError(err)
	suite.Len(results, 2)
	suite.Equal(int64(2), total)
	suite.Equal(newer.ID, results[0].ID)
	suite.Equal(older.ID, results[1].ID)
}

// TestUpdateReplacesLosers tests that an update rewrites the loser side table
func (suite *GameResultRepositoryTestSuite) TestUpdateReplacesLosers() {
	result := suite.factories.GameResult.WinnerLosers(suite.club.ID, suite.game.ID,
		suite.memberID(0), suite.memberID(1), suite.memberID(2))
	suite.NoError(suite.repo.Create(result, []uuid.UUID{suite.memberID(1), suite.memberID(2)}))

	result.NumPlayers = 2
	err := suite.repo.Update(result, []uuid.UUID{suite.memberID(3)})
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(result.ID)
	suite.NoError(err)
	suite.Equal(2, retrieved.NumPlayers)
	suite.Len(retrieved.Losers, 1)
	suite.Equal(suite.memberID(3), retrieved.Losers[0].MemberID)
}

// TestDeleteCascadesLosers tests that loser rows disappear with the result
func (suite *GameResultRepositoryTestSuite) TestDeleteCascadesLosers() {
	result := suite.factories.GameResult.WinnerLosers(suite.club.ID, suite.game.ID,
		suite.memberID(0), suite.memberID(1))
	suite.NoError(suite.repo.Create(result, []uuid.UUID{suite.memberID(1)}))

	err := suite.repo.Delete(result.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(result.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	var loserCount int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.GameResultLoser{}).
		Where("result_id = ?", result.ID).Count(&loserCount).Error)
	suite.Equal(int64(0), loserCount)
}

// Run the test suite
func TestGameResultRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GameResultRepositoryTestSuite))
}
