package handlers_test

import (
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
	"gorm.io/gorm"
)

// ClubHandlerTestSuite defines the test suite for ClubHandler
type ClubHandlerTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockClubRepo *mocks.MockClubRepositoryInterface
	httpSuite    *testutils.HTTPTestSuite
}

func (suite *ClubHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockClubRepo = mocks.NewMockClubRepositoryInterface(suite.ctrl)

	clubService := service.NewClubService(suite.mockClubRepo, validator.New())
	handler := handlers.NewClubHandler(clubService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/clubs", handler.CreateClub)
	suite.httpSuite.Router.GET("/clubs/:id", handler.GetClub)
	suite.httpSuite.Router.GET("/clubs/by-slug/:slug", handler.GetClubBySlug)
	suite.httpSuite.Router.DELETE("/clubs/:id", handler.DeleteClub)
}

func (suite *ClubHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ClubHandlerTestSuite) TestCreateClub() {
	suite.mockClubRepo.EXPECT().
		GetBySlug("meeple-masters").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockClubRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(club *models.Club) error {
			club.ID = uuid.New()
			return nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/clubs", map[string]interface{}{
		"name": "Meeple Masters",
	})

	var got service.ClubResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &got)
	assert.Equal(suite.T(), "Meeple Masters", got.Name)
	assert.Equal(suite.T(), "meeple-masters", got.Slug)
	assert.Equal(suite.T(), "active", got.Status)
}

func (suite *ClubHandlerTestSuite) TestCreateClubDuplicateSlug() {
	existing := &models.Club{Name: "Meeple Masters", Slug: "meeple-masters"}
	suite.mockClubRepo.EXPECT().
		GetBySlug("meeple-masters").
		Return(existing, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/clubs", map[string]interface{}{
		"name": "Meeple Masters",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

func (suite *ClubHandlerTestSuite) TestCreateClubMissingName() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/clubs", map[string]interface{}{
		"description": "no name given",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

func (suite *ClubHandlerTestSuite) TestGetClub() {
	clubID := uuid.New()
	club := &models.Club{
		BaseModel: models.BaseModel{ID: clubID},
		Name:      "Meeple Masters",
		Slug:      "meeple-masters",
		Status:    models.ClubStatusActive,
	}
	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(club, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/clubs/"+clubID.String(), nil)

	var got service.ClubResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), clubID, got.ID)
}

func (suite *ClubHandlerTestSuite) TestGetClubInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/clubs/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid club ID")
}

func (suite *ClubHandlerTestSuite) TestGetClubNotFound() {
	clubID := uuid.New()
	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/clubs/"+clubID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "club not found")
}

func (suite *ClubHandlerTestSuite) TestGetClubBySlug() {
	club := &models.Club{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Meeple Masters",
		Slug:      "meeple-masters",
		Status:    models.ClubStatusActive,
	}
	suite.mockClubRepo.EXPECT().GetBySlug("meeple-masters").Return(club, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/clubs/by-slug/meeple-masters", nil)

	var got service.ClubResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	assert.Equal(suite.T(), "meeple-masters", got.Slug)
}

func (suite *ClubHandlerTestSuite) TestDeleteClub() {
	clubID := uuid.New()
	club := &models.Club{BaseModel: models.BaseModel{ID: clubID}, Name: "Meeple Masters", Slug: "meeple-masters"}
	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(club, nil).Times(1)
	suite.mockClubRepo.EXPECT().Delete(clubID).Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/clubs/"+clubID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "deleted")
}

func TestClubHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ClubHandlerTestSuite))
}
