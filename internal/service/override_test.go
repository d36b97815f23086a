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

type OverrideServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockOverrideRepo *mocks.MockOverrideRepositoryInterface
	mockShiftRepo    *mocks.MockShiftRepositoryInterface
	mockStaffRepo    *mocks.MockStaffRepositoryInterface
	mockNotifier     *mocks.MockNotifier
	overrideService  *service.OverrideService

	shift   *models.Shift
	staff   *models.StaffMember
	manager *models.StaffMember
}

func (suite *OverrideServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockOverrideRepo = mocks.NewMockOverrideRepositoryInterface(suite.ctrl)
	suite.mockShiftRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.mockStaffRepo = mocks.NewMockStaffRepositoryInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)
	suite.overrideService = service.NewOverrideService(
		suite.mockOverrideRepo,
		suite.mockShiftRepo,
		suite.mockStaffRepo,
		suite.mockNotifier,
		validator.New(),
	)

	suite.shift = &models.Shift{
		BaseModel: models.BaseModel{ID: uuid.New()},
		VenueID:   uuid.New(),
		Date:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime: "18:00",
		EndTime:   "02:00",
	}
	suite.staff = &models.StaffMember{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FullName:  "Alex Rivera",
		Role:      models.StaffRoleBartender,
		Status:    models.StaffStatusActive,
	}
	suite.manager = &models.StaffMember{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FullName:  "Morgan Hale",
		Role:      models.StaffRoleManager,
		Status:    models.StaffStatusActive,
	}
}

func (suite *OverrideServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OverrideServiceTestSuite) TestCreateOverride_RecordsManagerApprovalAndLedgerEntry() {
	req := &service.CreateOverrideRequest{
		ShiftID:       suite.shift.ID,
		StaffID:       suite.staff.ID,
		Reason:        "short-staffed for the festival weekend",
		ViolationType: models.ViolationVenueMismatch,
		ManagerID:     suite.manager.ID,
	}

	suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
	suite.mockStaffRepo.EXPECT().GetByID(suite.staff.ID).Return(suite.staff, nil)
	suite.mockStaffRepo.EXPECT().GetByID(suite.manager.ID).Return(suite.manager, nil)

	var createdID uuid.UUID
	suite.mockOverrideRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(override *models.Override) error {
		override.ID = uuid.New()
		createdID = override.ID
		assert.Equal(suite.T(), models.OverrideStatusPending, override.Status)
		return nil
	})
	suite.mockOverrideRepo.EXPECT().AddApproval(gomock.Any()).DoAndReturn(func(approval *models.OverrideApproval) error {
		assert.Equal(suite.T(), suite.manager.ID, approval.ApproverID)
		assert.True(suite.T(), approval.IsManager)
		assert.True(suite.T(), approval.Approved)
		return nil
	})
	suite.mockOverrideRepo.EXPECT().AppendEvent(gomock.Any()).DoAndReturn(func(event *models.OverrideEvent) error {
		assert.Equal(suite.T(), models.OverrideEventCreated, event.Action)
		assert.Equal(suite.T(), suite.manager.ID, event.UserID)
		return nil
	})
	suite.mockNotifier.EXPECT().Dispatch(suite.staff.ID, models.NotificationOverrideRequested, gomock.Any(), gomock.Any(), gomock.Any())
	suite.mockOverrideRepo.EXPECT().GetByID(gomock.Any()).DoAndReturn(func(id uuid.UUID) (*models.Override, error) {
		assert.Equal(suite.T(), createdID, id)
		return &models.Override{
			BaseModel:     models.BaseModel{ID: id},
			ShiftID:       suite.shift.ID,
			StaffID:       suite.staff.ID,
			Reason:        req.Reason,
			ViolationType: req.ViolationType,
			Status:        models.OverrideStatusPending,
			Approvals: []models.OverrideApproval{
				{OverrideID: id, ApproverID: suite.manager.ID, IsManager: true, Approved: true},
			},
		}, nil
	})

	resp, err := suite.overrideService.CreateOverride(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.OverrideStatusPending, resp.Status)
	assert.Len(suite.T(), resp.Approvals, 1)
	assert.True(suite.T(), resp.Approvals[0].IsManager)
}

func (suite *OverrideServiceTestSuite) TestCreateOverride_NonManagerRejected() {
	bartender := suite.staff
	req := &service.CreateOverrideRequest{
		ShiftID:       suite.shift.ID,
		StaffID:       suite.staff.ID,
		Reason:        "short-staffed for the festival weekend",
		ViolationType: models.ViolationCutoff,
		ManagerID:     bartender.ID,
	}

	suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
	suite.mockStaffRepo.EXPECT().GetByID(suite.staff.ID).Return(suite.staff, nil).Times(2)

	resp, err := suite.overrideService.CreateOverride(req)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrManagerRequired)
}

func (suite *OverrideServiceTestSuite) TestCreateOverride_ShortReasonRejected() {
	req := &service.CreateOverrideRequest{
		ShiftID:       suite.shift.ID,
		StaffID:       suite.staff.ID,
		Reason:        "because",
		ViolationType: models.ViolationCutoff,
		ManagerID:     suite.manager.ID,
	}

	resp, err := suite.overrideService.CreateOverride(req)

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *OverrideServiceTestSuite) pendingOverride() *models.Override {
	id := uuid.New()
	return &models.Override{
		BaseModel:     models.BaseModel{ID: id},
		ShiftID:       suite.shift.ID,
		StaffID:       suite.staff.ID,
		Reason:        "short-staffed for the festival weekend",
		ViolationType: models.ViolationVenueMismatch,
		Status:        models.OverrideStatusPending,
		Approvals: []models.OverrideApproval{
			{OverrideID: id, ApproverID: suite.manager.ID, IsManager: true, Approved: true},
		},
	}
}

func (suite *OverrideServiceTestSuite) TestRespondToOverride_ApprovalActivates() {
	override := suite.pendingOverride()

	suite.mockOverrideRepo.EXPECT().GetByID(override.ID).Return(override, nil)
	suite.mockStaffRepo.EXPECT().GetByID(suite.staff.ID).Return(suite.staff, nil)
	suite.mockOverrideRepo.EXPECT().AddApproval(gomock.Any()).Return(nil)
	suite.mockOverrideRepo.EXPECT().UpdateStatus(override.ID, models.OverrideStatusActive).Return(nil)
	suite.mockOverrideRepo.EXPECT().AppendEvent(gomock.Any()).DoAndReturn(func(event *models.OverrideEvent) error {
		assert.Equal(suite.T(), models.OverrideEventApproved, event.Action)
		return nil
	})

	activated := *override
	activated.Status = models.OverrideStatusActive
	suite.mockOverrideRepo.EXPECT().GetByID(override.ID).Return(&activated, nil)

	resp, err := suite.overrideService.RespondToOverride(override.ID, &service.RespondOverrideRequest{
		StaffID:  suite.staff.ID,
		Approved: true,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.OverrideStatusActive, resp.Status)
}

func (suite *OverrideServiceTestSuite) TestRespondToOverride_DeclineIsTerminal() {
	override := suite.pendingOverride()

	suite.mockOverrideRepo.EXPECT().GetByID(override.ID).Return(override, nil)
	suite.mockStaffRepo.EXPECT().GetByID(suite.staff.ID).Return(suite.staff, nil)
	suite.mockOverrideRepo.EXPECT().AddApproval(gomock.Any()).DoAndReturn(func(approval *models.OverrideApproval) error {
		assert.False(suite.T(), approval.Approved)
		return nil
	})
	suite.mockOverrideRepo.EXPECT().UpdateStatus(override.ID, models.OverrideStatusDeclined).Return(nil)
	suite.mockOverrideRepo.EXPECT().AppendEvent(gomock.Any()).DoAndReturn(func(event *models.OverrideEvent) error {
		assert.Equal(suite.T(), models.OverrideEventDeclined, event.Action)
		return nil
	})

	declined := *override
	declined.Status = models.OverrideStatusDeclined
	suite.mockOverrideRepo.EXPECT().GetByID(override.ID).Return(&declined, nil)

	resp, err := suite.overrideService.RespondToOverride(override.ID, &service.RespondOverrideRequest{
		StaffID:  suite.staff.ID,
		Approved: false,
		Comment:  "cannot make that shift work",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.OverrideStatusDeclined, resp.Status)
}

func (suite *OverrideServiceTestSuite) TestRespondToOverride_OnlyTargetMayRespond() {
	override := suite.pendingOverride()
	stranger := uuid.New()

	suite.mockOverrideRepo.EXPECT().GetByID(override.ID).Return(override, nil)

	resp, err := suite.overrideService.RespondToOverride(override.ID, &service.RespondOverrideRequest{
		StaffID:  stranger,
		Approved: true,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotOverrideTarget)
}

func (suite *OverrideServiceTestSuite) TestRespondToOverride_SecondResponseRejected() {
	override := suite.pendingOverride()
	override.Approvals = append(override.Approvals, models.OverrideApproval{
		OverrideID: override.ID,
		ApproverID: suite.staff.ID,
		Approved:   true,
	})

	suite.mockOverrideRepo.EXPECT().GetByID(override.ID).Return(override, nil)

	resp, err := suite.overrideService.RespondToOverride(override.ID, &service.RespondOverrideRequest{
		StaffID:  suite.staff.ID,
		Approved: false,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadyResponded)
}

func (suite *OverrideServiceTestSuite) TestRespondToOverride_TerminalStatusRejected() {
	override := suite.pendingOverride()
	override.Status = models.OverrideStatusConsumed

	suite.mockOverrideRepo.EXPECT().GetByID(override.ID).Return(override, nil)

	resp, err := suite.overrideService.RespondToOverride(override.ID, &service.RespondOverrideRequest{
		StaffID:  suite.staff.ID,
		Approved: true,
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOverrideNotPending)
}

func (suite *OverrideServiceTestSuite) TestGetOverride_NotFound() {
	id := uuid.New()
	suite.mockOverrideRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.overrideService.GetOverride(id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOverrideNotFound)
}

func (suite *OverrideServiceTestSuite) TestListByStaff_NormalizesPagination() {
	suite.mockOverrideRepo.EXPECT().GetByStaffID(suite.staff.ID, 20, 0).Return([]models.Override{}, int64(0), nil)

	responses, total, err := suite.overrideService.ListByStaff(suite.staff.ID, -1, -5)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), total)
	assert.Len(suite.T(), responses, 0)
}

func TestOverrideServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OverrideServiceTestSuite))
}
