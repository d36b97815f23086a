package service_test

import (
	"errors"
	"testing"

	"barshift-backend/internal/database/models"
	apperrors "barshift-backend/internal/errors"
	"barshift-backend/internal/mocks"
	"barshift-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type VenueServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockVenueRepo *mocks.MockVenueRepositoryInterface
	venueService  *service.VenueService
}

func (suite *VenueServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockVenueRepo = mocks.NewMockVenueRepositoryInterface(suite.ctrl)
	suite.venueService = service.NewVenueService(suite.mockVenueRepo, validator.New())
}

func (suite *VenueServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VenueServiceTestSuite) TestCreateVenue_Success() {
	suite.mockVenueRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(venue *models.Venue) error {
		assert.Equal(suite.T(), "The Copper Still", venue.Name)
		assert.True(suite.T(), venue.IsNetworked)
		assert.True(suite.T(), venue.IsActive)
		venue.ID = uuid.New()
		return nil
	})

	resp, err := suite.venueService.CreateVenue(&service.CreateVenueRequest{
		Name:        "The Copper Still",
		Address:     "14 Harbor Lane",
		IsNetworked: true,
		Priority:    1,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "The Copper Still", resp.Name)
	assert.NotEqual(suite.T(), uuid.Nil, resp.ID)
}

func (suite *VenueServiceTestSuite) TestCreateVenue_DuplicateName() {
	suite.mockVenueRepo.EXPECT().Create(gomock.Any()).
		Return(errors.New(`duplicate key value violates unique constraint "idx_venues_name" (SQLSTATE 23505)`))

	resp, err := suite.venueService.CreateVenue(&service.CreateVenueRequest{Name: "The Copper Still"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVenueExists)
}

func (suite *VenueServiceTestSuite) TestCreateVenue_EmptyNameRejected() {
	resp, err := suite.venueService.CreateVenue(&service.CreateVenueRequest{Name: ""})

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
}

func (suite *VenueServiceTestSuite) TestGetVenue_NotFound() {
	id := uuid.New()
	suite.mockVenueRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.venueService.GetVenue(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVenueNotFound)
}

func (suite *VenueServiceTestSuite) TestUpdateVenue_PartialUpdate() {
	venue := &models.Venue{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        "The Copper Still",
		IsNetworked: false,
		IsActive:    true,
	}
	networked := true
	suite.mockVenueRepo.EXPECT().GetByID(venue.ID).Return(venue, nil)
	suite.mockVenueRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.Venue) error {
		assert.Equal(suite.T(), "The Copper Still", updated.Name)
		assert.True(suite.T(), updated.IsNetworked)
		return nil
	})

	resp, err := suite.venueService.UpdateVenue(venue.ID, &service.UpdateVenueRequest{IsNetworked: &networked})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), resp.IsNetworked)
}

func (suite *VenueServiceTestSuite) TestListVenues_NormalizesPagination() {
	suite.mockVenueRepo.EXPECT().GetAll(20, 0).Return([]models.Venue{}, int64(0), nil)

	_, total, err := suite.venueService.ListVenues(-3, -10)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), total)
}

func (suite *VenueServiceTestSuite) TestDeleteVenue_NotFound() {
	id := uuid.New()
	suite.mockVenueRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.venueService.DeleteVenue(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrVenueNotFound)
}

func TestVenueServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VenueServiceTestSuite))
}
