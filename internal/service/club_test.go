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

// ClubServiceTestSuite defines the test suite for ClubService
type ClubServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockClubRepo *mocks.MockClubRepositoryInterface
	clubService  *service.ClubService
	validator    *validator.Validate
}

// SetupTest sets up the test suite
func (suite *ClubServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockClubRepo = mocks.NewMockClubRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.clubService = service.NewClubService(suite.mockClubRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *ClubServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateClub tests creating a club with a derived slug
func (suite *ClubServiceTestSuite) TestCreateClub() {
	req := &service.CreateClubRequest{
		Name:       "Meeple Masters",
		MeetingDay: "Thursday",
	}

	suite.mockClubRepo.EXPECT().
		GetBySlug("meeple-masters").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockClubRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(club *models.Club) error {
			assert.Equal(suite.T(), "meeple-masters", club.Slug)
			assert.Equal(suite.T(), models.ClubStatusActive, club.Status)
			return nil
		}).
		Times(1)

	response, err := suite.clubService.CreateClub(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.Equal(suite.T(), "meeple-masters", response.Slug)
	assert.Equal(suite.T(), "active", response.Status)
}

// TestCreateClubDuplicateSlug tests creating a club whose slug is already taken
func (suite *ClubServiceTestSuite) TestCreateClubDuplicateSlug() {
	req := &service.CreateClubRequest{
		Name: "Meeple Masters",
	}

	existing := &models.Club{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Meeple Masters",
		Slug:      "meeple-masters",
	}

	suite.mockClubRepo.EXPECT().
		GetBySlug("meeple-masters").
		Return(existing, nil).
		Times(1)

	response, err := suite.clubService.CreateClub(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrClubExists)
}

// TestCreateClubInvalidStatus tests creating a club with an unknown status
func (suite *ClubServiceTestSuite) TestCreateClubInvalidStatus() {
	status := "dormant"
	req := &service.CreateClubRequest{
		Name:   "Meeple Masters",
		Status: &status,
	}

	suite.mockClubRepo.EXPECT().
		GetBySlug("meeple-masters").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.clubService.CreateClub(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

// TestCreateClubValidationError tests creating a club with an empty name
func (suite *ClubServiceTestSuite) TestCreateClubValidationError() {
	req := &service.CreateClubRequest{
		Name: "",
	}

	response, err := suite.clubService.CreateClub(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestGetClubByID tests getting a club by ID
func (suite *ClubServiceTestSuite) TestGetClubByID() {
	clubID := uuid.New()
	expected := &models.Club{
		BaseModel: models.BaseModel{ID: clubID},
		Name:      "Meeple Masters",
		Slug:      "meeple-masters",
		Status:    models.ClubStatusActive,
	}

	suite.mockClubRepo.EXPECT().
		GetByID(clubID).
		Return(expected, nil).
		Times(1)

	response, err := suite.clubService.GetClubByID(clubID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), expected.ID, response.ID)
	assert.Equal(suite.T(), expected.Name, response.Name)
}

// TestGetClubByIDNotFound tests getting a club by ID when not found
func (suite *ClubServiceTestSuite) TestGetClubByIDNotFound() {
	clubID := uuid.New()

	suite.mockClubRepo.EXPECT().
		GetByID(clubID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.clubService.GetClubByID(clubID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrClubNotFound)
}

// TestGetClubBySlug tests getting a club by slug
func (suite *ClubServiceTestSuite) TestGetClubBySlug() {
	expected := &models.Club{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Meeple Masters",
		Slug:      "meeple-masters",
	}

	suite.mockClubRepo.EXPECT().
		GetBySlug("meeple-masters").
		Return(expected, nil).
		Times(1)

	response, err := suite.clubService.GetClubBySlug("meeple-masters")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), expected.Slug, response.Slug)
}

// TestUpdateClub tests updating a club
func (suite *ClubServiceTestSuite) TestUpdateClub() {
	clubID := uuid.New()
	name := "Meeple Masters Renamed"
	status := "suspended"
	req := &service.UpdateClubRequest{
		Name:   &name,
		Status: &status,
	}

	existing := &models.Club{
		BaseModel: models.BaseModel{ID: clubID},
		Name:      "Meeple Masters",
		Slug:      "meeple-masters",
		Status:    models.ClubStatusActive,
	}

	suite.mockClubRepo.EXPECT().
		GetByID(clubID).
		Return(existing, nil).
		Times(1)

	suite.mockClubRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.clubService.UpdateClub(clubID, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), name, response.Name)
	assert.Equal(suite.T(), "suspended", response.Status)
}

// TestUpdateClubInvalidStatus tests that an unknown status leaves the club untouched
func (suite *ClubServiceTestSuite) TestUpdateClubInvalidStatus() {
	clubID := uuid.New()
	status := "retired"
	req := &service.UpdateClubRequest{Status: &status}

	existing := &models.Club{
		BaseModel: models.BaseModel{ID: clubID},
		Name:      "Meeple Masters",
		Slug:      "meeple-masters",
		Status:    models.ClubStatusActive,
	}

	suite.mockClubRepo.EXPECT().
		GetByID(clubID).
		Return(existing, nil).
		Times(1)

	response, err := suite.clubService.UpdateClub(clubID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidStatus)
}

// TestDeleteClub tests deleting a club
func (suite *ClubServiceTestSuite) TestDeleteClub() {
	clubID := uuid.New()

	suite.mockClubRepo.EXPECT().
		GetByID(clubID).
		Return(&models.Club{BaseModel: models.BaseModel{ID: clubID}}, nil).
		Times(1)

	suite.mockClubRepo.EXPECT().
		Delete(clubID).
		Return(nil).
		Times(1)

	err := suite.clubService.DeleteClub(clubID)

	assert.NoError(suite.T(), err)
}

// TestGetClubWithMembers tests that the member count reflects the preloaded roster
func (suite *ClubServiceTestSuite) TestGetClubWithMembers() {
	clubID := uuid.New()
	club := &models.Club{
		BaseModel: models.BaseModel{ID: clubID},
		Name:      "Meeple Masters",
		Slug:      "meeple-masters",
		Members: []models.Member{
			{BaseModel: models.BaseModel{ID: uuid.New()}, FullName: "Alice"},
			{BaseModel: models.BaseModel{ID: uuid.New()}, FullName: "Bob"},
		},
	}

	suite.mockClubRepo.EXPECT().
		GetWithMembers(clubID).
		Return(club, nil).
		Times(1)

	response, err := suite.clubService.GetClubWithMembers(clubID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), 2, response.MemberCount)
}

func TestClubServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClubServiceTestSuite))
}
