package service_test

import (
	"errors"
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

type AssignmentServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockShiftRepo        *mocks.MockShiftRepositoryInterface
	mockStaffRepo        *mocks.MockStaffRepositoryInterface
	mockVenueRepo        *mocks.MockVenueRepositoryInterface
	mockAssignmentRepo   *mocks.MockAssignmentRepositoryInterface
	mockAvailabilityRepo *mocks.MockAvailabilityRepositoryInterface
	mockOverrideRepo     *mocks.MockOverrideRepositoryInterface
	mockNotifier         *mocks.MockNotifier
	assignmentService    *service.AssignmentService

	venue *models.Venue
	shift *models.Shift
	staff *models.StaffMember
}

func (suite *AssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockShiftRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.mockStaffRepo = mocks.NewMockStaffRepositoryInterface(suite.ctrl)
	suite.mockVenueRepo = mocks.NewMockVenueRepositoryInterface(suite.ctrl)
	suite.mockAssignmentRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.mockAvailabilityRepo = mocks.NewMockAvailabilityRepositoryInterface(suite.ctrl)
	suite.mockOverrideRepo = mocks.NewMockOverrideRepositoryInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)
	suite.assignmentService = service.NewAssignmentService(
		suite.mockShiftRepo,
		suite.mockStaffRepo,
		suite.mockVenueRepo,
		suite.mockAssignmentRepo,
		suite.mockAvailabilityRepo,
		suite.mockOverrideRepo,
		suite.mockNotifier,
		validator.New(),
	)

	suite.venue = &models.Venue{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "The Anchor",
		IsActive:  true,
	}
	suite.shift = &models.Shift{
		BaseModel:          models.BaseModel{ID: uuid.New()},
		VenueID:            suite.venue.ID,
		Date:               time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:          "18:00",
		EndTime:            "02:00",
		BartendersRequired: 2,
	}
	suite.staff = &models.StaffMember{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FullName:  "Alex Rivera",
		Role:      models.StaffRoleBartender,
		Status:    models.StaffStatusActive,
		VenuePreferences: []models.StaffVenuePreference{
			{VenueID: suite.venue.ID, Position: 0},
		},
	}
}

func (suite *AssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectNoActiveOverride covers the implicit override lookup that runs
// when the request names no override and no bypass flag is set.
func (suite *AssignmentServiceTestSuite) expectNoActiveOverride() {
	suite.mockOverrideRepo.EXPECT().GetActiveForAssignment(suite.shift.ID, suite.staff.ID).Return(nil, gorm.ErrRecordNotFound)
}

// expectSnapshot wires the read path the eligibility check runs against:
// existing shift assignments, availability, venue scope, same-day lookups.
func (suite *AssignmentServiceTestSuite) expectSnapshot(existing []models.ShiftAssignment, sameDay []models.ShiftAssignment) {
	suite.mockAssignmentRepo.EXPECT().GetByShiftID(suite.shift.ID).Return(existing, nil)
	suite.mockAvailabilityRepo.EXPECT().GetByStaffAndMonth(suite.staff.ID, "2026-03").Return(nil, gorm.ErrRecordNotFound)
	suite.mockVenueRepo.EXPECT().GetByID(suite.venue.ID).Return(suite.venue, nil)
	suite.mockAssignmentRepo.EXPECT().GetByStaffAndDate(suite.staff.ID, suite.shift.Date, []uuid.UUID{suite.venue.ID}).Return(sameDay, nil)
}

func (suite *AssignmentServiceTestSuite) TestEvaluateAssignment_Success() {
	suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
	suite.mockStaffRepo.EXPECT().GetByID(suite.staff.ID).Return(suite.staff, nil)
	suite.expectNoActiveOverride()
	suite.expectSnapshot(nil, nil)
	suite.mockAssignmentRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockNotifier.EXPECT().Dispatch(suite.staff.ID, models.NotificationAssignmentCreated, gomock.Any(), gomock.Any(), gomock.Any())

	resp, err := suite.assignmentService.EvaluateAssignment(&service.EvaluateAssignmentRequest{
		ShiftID: suite.shift.ID,
		StaffID: suite.staff.ID,
		Role:    models.AssignedRoleBartender,
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), suite.shift.ID, resp.ShiftID)
	assert.Equal(suite.T(), suite.staff.ID, resp.StaffID)
	assert.Equal(suite.T(), models.AssignedRoleBartender, resp.Role)
}

func (suite *AssignmentServiceTestSuite) TestEvaluateAssignment_ViolationsReturnedTogether() {
	// Wrong venue and a same-day conflict both come back in one batch.
	suite.staff.VenuePreferences = nil
	suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
	suite.mockStaffRepo.EXPECT().GetByID(suite.staff.ID).Return(suite.staff, nil)
	suite.expectNoActiveOverride()
	suite.expectSnapshot(nil, []models.ShiftAssignment{
		{ShiftID: uuid.New(), StaffID: suite.staff.ID},
	})

	resp, err := suite.assignmentService.EvaluateAssignment(&service.EvaluateAssignmentRequest{
		ShiftID: suite.shift.ID,
		StaffID: suite.staff.ID,
		Role:    models.AssignedRoleBartender,
	})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsEligibility(err))
	eligErr := apperrors.AsEligibility(err)
	assert.Len(suite.T(), eligErr.Violations, 2)
}

func (suite *AssignmentServiceTestSuite) TestEvaluateAssignment_AdminBypassSkipsRulesAndNotification() {
	suite.staff.VenuePreferences = nil // would normally violate
	suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
	suite.mockStaffRepo.EXPECT().GetByID(suite.staff.ID).Return(suite.staff, nil)
	suite.expectSnapshot(nil, nil)
	suite.mockAssignmentRepo.EXPECT().Create(gomock.Any()).Return(nil)
	// No Dispatch expectation: the bypass path is silent.

	resp, err := suite.assignmentService.EvaluateAssignment(&service.EvaluateAssignmentRequest{
		ShiftID: suite.shift.ID,
		StaffID: suite.staff.ID,
		Role:    models.AssignedRoleBartender,
		Bypass:  true,
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
}

func (suite *AssignmentServiceTestSuite) TestEvaluateAssignment_ActiveOverrideConsumedOnUse() {
	suite.staff.VenuePreferences = nil
	override := &models.Override{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ShiftID:   suite.shift.ID,
		StaffID:   suite.staff.ID,
		Status:    models.OverrideStatusActive,
	}

	suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
	suite.mockStaffRepo.EXPECT().GetByID(suite.staff.ID).Return(suite.staff, nil)
	suite.mockOverrideRepo.EXPECT().GetByID(override.ID).Return(override, nil)
	suite.expectSnapshot(nil, nil)
	suite.mockAssignmentRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockOverrideRepo.EXPECT().UpdateStatus(override.ID, models.OverrideStatusConsumed).Return(nil)
	suite.mockOverrideRepo.EXPECT().AppendEvent(gomock.Any()).DoAndReturn(func(event *models.OverrideEvent) error {
		assert.Equal(suite.T(), models.OverrideEventConsumed, event.Action)
		assert.Equal(suite.T(), override.ID, event.OverrideID)
		return nil
	})

	resp, err := suite.assignmentService.EvaluateAssignment(&service.EvaluateAssignmentRequest{
		ShiftID:    suite.shift.ID,
		StaffID:    suite.staff.ID,
		Role:       models.AssignedRoleBartender,
		OverrideID: &override.ID,
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
}

func (suite *AssignmentServiceTestSuite) TestEvaluateAssignment_ImplicitActiveOverrideFound() {
	// An active override for the pair kicks in even when the request
	// does not name it, and is consumed all the same.
	suite.staff.VenuePreferences = nil
	override := &models.Override{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ShiftID:   suite.shift.ID,
		StaffID:   suite.staff.ID,
		Status:    models.OverrideStatusActive,
	}

	suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
	suite.mockStaffRepo.EXPECT().GetByID(suite.staff.ID).Return(suite.staff, nil)
	suite.mockOverrideRepo.EXPECT().GetActiveForAssignment(suite.shift.ID, suite.staff.ID).Return(override, nil)
	suite.expectSnapshot(nil, nil)
	suite.mockAssignmentRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockOverrideRepo.EXPECT().UpdateStatus(override.ID, models.OverrideStatusConsumed).Return(nil)
	suite.mockOverrideRepo.EXPECT().AppendEvent(gomock.Any()).DoAndReturn(func(event *models.OverrideEvent) error {
		assert.Equal(suite.T(), models.OverrideEventConsumed, event.Action)
		return nil
	})

	resp, err := suite.assignmentService.EvaluateAssignment(&service.EvaluateAssignmentRequest{
		ShiftID: suite.shift.ID,
		StaffID: suite.staff.ID,
		Role:    models.AssignedRoleBartender,
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
}

func (suite *AssignmentServiceTestSuite) TestEvaluateAssignment_NetworkedVenuesShareDoubleBookingScope() {
	suite.venue.IsNetworked = true
	otherVenue := models.Venue{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        "Velvet Hour",
		IsNetworked: true,
		IsActive:    true,
	}

	suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
	suite.mockStaffRepo.EXPECT().GetByID(suite.staff.ID).Return(suite.staff, nil)
	suite.expectNoActiveOverride()
	suite.mockAssignmentRepo.EXPECT().GetByShiftID(suite.shift.ID).Return(nil, nil)
	suite.mockAvailabilityRepo.EXPECT().GetByStaffAndMonth(suite.staff.ID, "2026-03").Return(nil, gorm.ErrRecordNotFound)
	suite.mockVenueRepo.EXPECT().GetByID(suite.venue.ID).Return(suite.venue, nil)
	suite.mockVenueRepo.EXPECT().GetNetworked().Return([]models.Venue{*suite.venue, otherVenue}, nil)
	// A same-day assignment at the other networked venue is in scope.
	suite.mockAssignmentRepo.EXPECT().
		GetByStaffAndDate(suite.staff.ID, suite.shift.Date, []uuid.UUID{suite.venue.ID, otherVenue.ID}).
		Return([]models.ShiftAssignment{{ShiftID: uuid.New(), StaffID: suite.staff.ID}}, nil)

	resp, err := suite.assignmentService.EvaluateAssignment(&service.EvaluateAssignmentRequest{
		ShiftID: suite.shift.ID,
		StaffID: suite.staff.ID,
		Role:    models.AssignedRoleBartender,
	})

	assert.Nil(suite.T(), resp)
	eligErr := apperrors.AsEligibility(err)
	assert.NotNil(suite.T(), eligErr)
	assert.Len(suite.T(), eligErr.Violations, 1)
	assert.Equal(suite.T(), models.ViolationDoubleBooking, eligErr.Violations[0].Type)
}

func (suite *AssignmentServiceTestSuite) TestEvaluateAssignment_NonNetworkedVenueScopesToItself() {
	// The venue is not networked, so the same-day lookup is confined to
	// it and an assignment at any other venue does not collide.
	suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
	suite.mockStaffRepo.EXPECT().GetByID(suite.staff.ID).Return(suite.staff, nil)
	suite.expectNoActiveOverride()
	suite.mockAssignmentRepo.EXPECT().GetByShiftID(suite.shift.ID).Return(nil, nil)
	suite.mockAvailabilityRepo.EXPECT().GetByStaffAndMonth(suite.staff.ID, "2026-03").Return(nil, gorm.ErrRecordNotFound)
	suite.mockVenueRepo.EXPECT().GetByID(suite.venue.ID).Return(suite.venue, nil)
	suite.mockAssignmentRepo.EXPECT().
		GetByStaffAndDate(suite.staff.ID, suite.shift.Date, []uuid.UUID{suite.venue.ID}).
		Return(nil, nil)
	suite.mockAssignmentRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockNotifier.EXPECT().Dispatch(suite.staff.ID, models.NotificationAssignmentCreated, gomock.Any(), gomock.Any(), gomock.Any())

	resp, err := suite.assignmentService.EvaluateAssignment(&service.EvaluateAssignmentRequest{
		ShiftID: suite.shift.ID,
		StaffID: suite.staff.ID,
		Role:    models.AssignedRoleBartender,
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
}

func (suite *AssignmentServiceTestSuite) TestEvaluateAssignment_PendingOverrideRejected() {
	override := &models.Override{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ShiftID:   suite.shift.ID,
		StaffID:   suite.staff.ID,
		Status:    models.OverrideStatusPending,
	}

	suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
	suite.mockStaffRepo.EXPECT().GetByID(suite.staff.ID).Return(suite.staff, nil)
	suite.mockOverrideRepo.EXPECT().GetByID(override.ID).Return(override, nil)

	resp, err := suite.assignmentService.EvaluateAssignment(&service.EvaluateAssignmentRequest{
		ShiftID:    suite.shift.ID,
		StaffID:    suite.staff.ID,
		Role:       models.AssignedRoleBartender,
		OverrideID: &override.ID,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOverrideNotActive)
}

func (suite *AssignmentServiceTestSuite) TestEvaluateAssignment_OverrideForDifferentPairRejected() {
	override := &models.Override{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ShiftID:   suite.shift.ID,
		StaffID:   uuid.New(), // covers someone else
		Status:    models.OverrideStatusActive,
	}

	suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
	suite.mockStaffRepo.EXPECT().GetByID(suite.staff.ID).Return(suite.staff, nil)
	suite.mockOverrideRepo.EXPECT().GetByID(override.ID).Return(override, nil)

	resp, err := suite.assignmentService.EvaluateAssignment(&service.EvaluateAssignmentRequest{
		ShiftID:    suite.shift.ID,
		StaffID:    suite.staff.ID,
		Role:       models.AssignedRoleBartender,
		OverrideID: &override.ID,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOverrideMismatch)
}

func (suite *AssignmentServiceTestSuite) TestEvaluateAssignment_ManagerNotSchedulable() {
	suite.staff.Role = models.StaffRoleManager
	suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
	suite.mockStaffRepo.EXPECT().GetByID(suite.staff.ID).Return(suite.staff, nil)

	resp, err := suite.assignmentService.EvaluateAssignment(&service.EvaluateAssignmentRequest{
		ShiftID: suite.shift.ID,
		StaffID: suite.staff.ID,
		Role:    models.AssignedRoleBartender,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRoleNotSchedulable)
}

func (suite *AssignmentServiceTestSuite) TestEvaluateAssignment_ConcurrentDuplicateMapsToConflict() {
	suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
	suite.mockStaffRepo.EXPECT().GetByID(suite.staff.ID).Return(suite.staff, nil)
	suite.expectNoActiveOverride()
	suite.expectSnapshot(nil, nil)
	suite.mockAssignmentRepo.EXPECT().Create(gomock.Any()).
		Return(errors.New(`ERROR: duplicate key value violates unique constraint "idx_assignments_shift_staff" (SQLSTATE 23505)`))

	resp, err := suite.assignmentService.EvaluateAssignment(&service.EvaluateAssignmentRequest{
		ShiftID: suite.shift.ID,
		StaffID: suite.staff.ID,
		Role:    models.AssignedRoleBartender,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAssignmentExists)
}

func (suite *AssignmentServiceTestSuite) TestEvaluateAssignment_ShiftNotFound() {
	shiftID := uuid.New()
	suite.mockShiftRepo.EXPECT().GetByID(shiftID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.assignmentService.EvaluateAssignment(&service.EvaluateAssignmentRequest{
		ShiftID: shiftID,
		StaffID: suite.staff.ID,
		Role:    models.AssignedRoleBartender,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrShiftNotFound)
}

func (suite *AssignmentServiceTestSuite) TestRecordTip_Success() {
	assignment := &models.ShiftAssignment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ShiftID:   suite.shift.ID,
		StaffID:   suite.staff.ID,
		Role:      models.AssignedRoleBartender,
	}
	suite.mockAssignmentRepo.EXPECT().GetByID(assignment.ID).Return(assignment, nil)
	suite.mockAssignmentRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.assignmentService.RecordTip(assignment.ID, &service.RecordTipRequest{
		TipAmount: 184.50,
		TipNote:   "busy Saturday",
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp.TipAmount)
	assert.Equal(suite.T(), 184.50, *resp.TipAmount)
	assert.Equal(suite.T(), "busy Saturday", resp.TipNote)
}

func (suite *AssignmentServiceTestSuite) TestRemoveAssignment_NotifiesStaff() {
	assignment := &models.ShiftAssignment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		ShiftID:   suite.shift.ID,
		StaffID:   suite.staff.ID,
		Role:      models.AssignedRoleBartender,
	}
	suite.mockAssignmentRepo.EXPECT().GetByID(assignment.ID).Return(assignment, nil)
	suite.mockAssignmentRepo.EXPECT().Delete(assignment.ID).Return(nil)
	suite.mockNotifier.EXPECT().Dispatch(suite.staff.ID, models.NotificationAssignmentRemoved, gomock.Any(), gomock.Any(), gomock.Any())

	err := suite.assignmentService.RemoveAssignment(assignment.ID)

	assert.NoError(suite.T(), err)
}

func (suite *AssignmentServiceTestSuite) TestRemoveAssignment_NotFound() {
	assignmentID := uuid.New()
	suite.mockAssignmentRepo.EXPECT().GetByID(assignmentID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.assignmentService.RemoveAssignment(assignmentID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrAssignmentNotFound)
}

func TestAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentServiceTestSuite))
}
