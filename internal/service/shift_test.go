package service_test

import (
	"testing"
	"time"

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

type ShiftServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockShiftRepo *mocks.MockShiftRepositoryInterface
	mockVenueRepo *mocks.MockVenueRepositoryInterface
	shiftService  *service.ShiftService
}

func (suite *ShiftServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockShiftRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.mockVenueRepo = mocks.NewMockVenueRepositoryInterface(suite.ctrl)
	suite.shiftService = service.NewShiftService(suite.mockShiftRepo, suite.mockVenueRepo, validator.New())
}

func (suite *ShiftServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ShiftServiceTestSuite) TestCreateShift_Success() {
	venueID := uuid.New()
	suite.mockVenueRepo.EXPECT().GetByID(venueID).Return(&models.Venue{
		BaseModel: models.BaseModel{ID: venueID},
		Name:      "The Copper Still",
		IsActive:  true,
	}, nil)
	suite.mockShiftRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(shift *models.Shift) error {
		assert.Equal(suite.T(), venueID, shift.VenueID)
		assert.Equal(suite.T(), "2026-03-14", shift.Date.Format("2006-01-02"))
		assert.Equal(suite.T(), "18:00", shift.StartTime)
		shift.ID = uuid.New()
		return nil
	})

	resp, err := suite.shiftService.CreateShift(&service.CreateShiftRequest{
		VenueID:            venueID,
		Date:               "2026-03-14",
		StartTime:          "18:00",
		EndTime:            "02:00",
		BartendersRequired: 2,
		BarbacksRequired:   1,
		LeadsRequired:      1,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "2026-03-14", resp.Date)
	assert.False(suite.T(), resp.UpForTrade)
}

func (suite *ShiftServiceTestSuite) TestCreateShift_LeadsCannotExceedBartenders() {
	resp, err := suite.shiftService.CreateShift(&service.CreateShiftRequest{
		VenueID:            uuid.New(),
		Date:               "2026-03-14",
		StartTime:          "18:00",
		EndTime:            "02:00",
		BartendersRequired: 1,
		LeadsRequired:      2,
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ShiftServiceTestSuite) TestCreateShift_BadTimeFormat() {
	resp, err := suite.shiftService.CreateShift(&service.CreateShiftRequest{
		VenueID:   uuid.New(),
		Date:      "2026-03-14",
		StartTime: "6pm",
		EndTime:   "02:00",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidTimeFormat)
}

func (suite *ShiftServiceTestSuite) TestCreateShift_VenueNotFound() {
	venueID := uuid.New()
	suite.mockVenueRepo.EXPECT().GetByID(venueID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.shiftService.CreateShift(&service.CreateShiftRequest{
		VenueID:   venueID,
		Date:      "2026-03-14",
		StartTime: "18:00",
		EndTime:   "02:00",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrVenueNotFound)
}

func (suite *ShiftServiceTestSuite) TestUpdateShift_QuotaChangeRevalidatesLeads() {
	shift := &models.Shift{
		BaseModel:          models.BaseModel{ID: uuid.New()},
		VenueID:            uuid.New(),
		Date:               time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:          "18:00",
		EndTime:            "02:00",
		BartendersRequired: 2,
		LeadsRequired:      1,
	}
	bartenders := 0
	suite.mockShiftRepo.EXPECT().GetByID(shift.ID).Return(shift, nil)

	resp, err := suite.shiftService.UpdateShift(shift.ID, &service.UpdateShiftRequest{
		BartendersRequired: &bartenders,
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ShiftServiceTestSuite) TestListShifts_RejectsInvertedRange() {
	_, _, err := suite.shiftService.ListShifts(uuid.New(), "2026-03-31", "2026-03-01", 20, 0)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ShiftServiceTestSuite) TestListShifts_Success() {
	venueID := uuid.New()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	suite.mockShiftRepo.EXPECT().GetByVenueAndDateRange(venueID, from, to, 20, 0).Return([]models.Shift{
		{
			BaseModel: models.BaseModel{ID: uuid.New()},
			VenueID:   venueID,
			Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			StartTime: "18:00",
			EndTime:   "02:00",
		},
	}, int64(1), nil)

	shifts, total, err := suite.shiftService.ListShifts(venueID, "2026-03-01", "2026-03-31", 20, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), total)
	assert.Len(suite.T(), shifts, 1)
	assert.Equal(suite.T(), "2026-03-14", shifts[0].Date)
}

func (suite *ShiftServiceTestSuite) TestDeleteShift_NotFound() {
	id := uuid.New()
	suite.mockShiftRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.shiftService.DeleteShift(id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrShiftNotFound)
}

func TestShiftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftServiceTestSuite))
}
