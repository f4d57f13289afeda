//go:build integration
// +build integration

package repository

import (
	"testing"

	"club-stats-backend/internal/database/models"
	"club-stats-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ClubRepositoryTestSuite tests the ClubRepository
type ClubRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ClubRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ClubRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewClubRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ClubRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ClubRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ClubRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new club
func (suite *ClubRepositoryTestSuite) TestCreate() {
	club := suite.factories.Club.Create()

	err := suite.repo.Create(club)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, club.ID)
	suite.NotZero(club.CreatedAt)
	suite.NotZero(club.UpdatedAt)
}

// TestCreateDuplicateSlug tests creating a club with a duplicate slug
func (suite *ClubRepositoryTestSuite) TestCreateDuplicateSlug() {
	club1 := suite.factories.Club.WithName("Meeple Masters", "meeple-masters")
	err := suite.repo.Create(club1)
	suite.NoError(err)

	club2 := suite.factories.Club.WithName("Other Club", "meeple-masters")
	err = suite.repo.Create(club2)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByID tests retrieving a club by ID
func (suite *ClubRepositoryTestSuite) TestGetByID() {
	club := suite.factories.Club.Create()
	err := suite.repo.Create(club)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(club.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(club.ID, retrieved.ID)
	suite.Equal(club.Name, retrieved.Name)
	suite.Equal(club.Slug, retrieved.Slug)
	suite.Equal(models.ClubStatusActive, retrieved.Status)
}

// TestGetByIDNotFound tests retrieving a non-existent club
func (suite *ClubRepositoryTestSuite) TestGetByIDNotFound() {
	club, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(club)
}

// TestGetBySlug tests retrieving a club by slug
func (suite *ClubRepositoryTestSuite) TestGetBySlug() {
	club := suite.factories.Club.WithName("Meeple Masters", "meeple-masters")
	err := suite.repo.Create(club)
	suite.NoError(err)

	retrieved, err := suite.repo.GetBySlug("meeple-masters")

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(club.ID, retrieved.ID)
}

// TestGetBySlugNotFound tests retrieving a club by an unknown slug
func (suite *ClubRepositoryTestSuite) TestGetBySlugNotFound() {
	club, err := suite.repo.GetBySlug("nowhere")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(club)
}

// TestGetAll tests listing clubs with pagination
func (suite *ClubRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 3; i++ {
		club := suite.factories.Club.Create()
		err := suite.repo.Create(club)
		suite.NoError(err)
	}

	clubs, total, err := suite.repo.GetAll(2, 0)
	suite.NoError(err)
	suite.Len(clubs, 2)
	suite.Equal(int64(3), total)

	clubs, total, err = suite.repo.GetAll(2, 2)
	suite.NoError(err)
	suite.Len(clubs, 1)
	suite.Equal(int64(3), total)
}

// TestUpdate tests updating a club
func (suite *ClubRepositoryTestSuite) TestUpdate() {
	club := suite.factories.Club.Create()
	err := suite.repo.Create(club)
	suite.NoError(err)

	club.Name = "Renamed Club"
	club.Status = models.ClubStatusSuspended
	err = suite.repo.Update(club)
	suite.NoError(err)

	updated, err := suite.repo.GetByID(club.ID)
	suite.NoError(err)
	suite.Equal("Renamed Club", updated.Name)
	suite.Equal(models.ClubStatusSuspended, updated.Status)
}

// TestDelete tests deleting a club
func (suite *ClubRepositoryTestSuite) TestDelete() {
	club := suite.factories.Club.Create()
	err := suite.repo.Create(club)
	suite.NoError(err)

	err = suite.repo.Delete(club.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(club.ID)
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteWithRecordedResults tests that deleting a club cascades through its
// members, teams, games and every recorded result in one statement
func (suite *ClubRepositoryTestSuite) TestDeleteWithRecordedResults() {
	db := suite.baseTestSuite.DB

	club, members, game := suite.factories.CreateClubFixture(4)
	suite.NoError(suite.repo.Create(club))
	memberRepo := NewMemberRepository(db)
	for _, m := range members {
		suite.NoError(memberRepo.Create(m))
	}
	suite.NoError(NewGameRepository(db).Create(game))

	teamRepo := NewTeamRepository(db)
	teamA := suite.factories.Team.WithRoster(club.ID, members[0].ID, members[1].ID)
	teamB := suite.factories.Team.WithRoster(club.ID, members[2].ID, members[3].ID)
	suite.NoError(teamRepo.Create(teamA))
	suite.NoError(teamRepo.Create(teamB))

	resultRepo := NewGameResultRepository(db)
	ranked := suite.factories.GameResult.Ranked(club.ID, game.ID,
		members[0].ID, members[1].ID, members[2].ID)
	suite.NoError(resultRepo.Create(ranked, nil))
	winnerLosers := suite.factories.GameResult.WinnerLosers(club.ID, game.ID,
		members[0].ID, members[1].ID, members[2].ID)
	suite.NoError(resultRepo.Create(winnerLosers, []uuid.UUID{members[1].ID, members[2].ID}))

	teamResult := suite.factories.TeamGameResult.Ranked(club.ID, game.ID, teamA.ID, teamB.ID)
	suite.NoError(NewTeamGameResultRepository(db).Create(teamResult))

	coopRepo := NewCooperativeResultRepository(db)
	coopMembers := suite.factories.CoopResult.WithMembers(club.ID, game.ID, models.CoopOutcomeWin, 2)
	suite.NoError(coopRepo.Create(coopMembers, []uuid.UUID{members[0].ID, members[1].ID}))
	coopTeam := suite.factories.CoopResult.WithTeam(club.ID, game.ID, teamA.ID, models.CoopOutcomeLoss, 2)
	suite.NoError(coopRepo.Create(coopTeam, nil))

	err := suite.repo.Delete(club.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(club.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	for model, name := range map[interface{}]string{
		&models.Member{}:                       "members",
		&models.Team{}:                         "teams",
		&models.Game{}:                         "games",
		&models.GameResult{}:                   "game results",
		&models.GameResultLoser{}:              "loser rows",
		&models.TeamGameResult{}:               "team results",
		&models.CooperativeGameResult{}:        "cooperative results",
		&models.CooperativeResultParticipant{}: "participant rows",
	} {
		var count int64
		suite.NoError(db.Model(model).Count(&count).Error)
		suite.Zero(count, "expected no %s left after club delete", name)
	}
}

// TestGetWithMembers tests retrieving a club with its members preloaded
func (suite *ClubRepositoryTestSuite) TestGetWithMembers() {
	club := suite.factories.Club.Create()
	err := suite.repo.Create(club)
	suite.NoError(err)

	memberRepo := NewMemberRepository(suite.baseTestSuite.DB)
	for i := 0; i < 2; i++ {
		member := suite.factories.Member.WithClub(club.ID)
		err = memberRepo.Create(member)
		suite.NoError(err)
	}

	retrieved, err := suite.repo.GetWithMembers(club.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Len(retrieved.Members, 2)
}

// Run the test suite
func TestClubRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ClubRepositoryTestSuite))
}
