package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"barshift-backend/internal/api/handlers"
	"barshift-backend/internal/database/models"
	"barshift-backend/internal/mocks"
	"barshift-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AssignmentHandlerTestSuite defines the test suite for AssignmentHandler
type AssignmentHandlerTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockShiftRepo        *mocks.MockShiftRepositoryInterface
	mockStaffRepo        *mocks.MockStaffRepositoryInterface
	mockVenueRepo        *mocks.MockVenueRepositoryInterface
	mockAssignmentRepo   *mocks.MockAssignmentRepositoryInterface
	mockAvailabilityRepo *mocks.MockAvailabilityRepositoryInterface
	mockOverrideRepo     *mocks.MockOverrideRepositoryInterface
	mockNotifier         *mocks.MockNotifier
	handler              *handlers.AssignmentHandler
	router               *gin.Engine

	venue *models.Venue
	shift *models.Shift
	staff *models.StaffMember
}

func (suite *AssignmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockShiftRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.mockStaffRepo = mocks.NewMockStaffRepositoryInterface(suite.ctrl)
	suite.mockVenueRepo = mocks.NewMockVenueRepositoryInterface(suite.ctrl)
	suite.mockAssignmentRepo = mocks.NewMockAssignmentRepositoryInterface(suite.ctrl)
	suite.mockAvailabilityRepo = mocks.NewMockAvailabilityRepositoryInterface(suite.ctrl)
	suite.mockOverrideRepo = mocks.NewMockOverrideRepositoryInterface(suite.ctrl)
	suite.mockNotifier = mocks.NewMockNotifier(suite.ctrl)

	assignmentService := service.NewAssignmentService(
		suite.mockShiftRepo,
		suite.mockStaffRepo,
		suite.mockVenueRepo,
		suite.mockAssignmentRepo,
		suite.mockAvailabilityRepo,
		suite.mockOverrideRepo,
		suite.mockNotifier,
		validator.New(),
	)
	autoFillService := service.NewAutoFillService(
		suite.mockShiftRepo,
		suite.mockStaffRepo,
		suite.mockAssignmentRepo,
		suite.mockAvailabilityRepo,
		suite.mockNotifier,
	)
	suite.handler = handlers.NewAssignmentHandler(assignmentService, autoFillService)

	suite.router = gin.New()
	suite.router.POST("/assignments", suite.handler.EvaluateAssignment)
	suite.router.DELETE("/assignments/:id", suite.handler.RemoveAssignment)
	suite.router.GET("/shifts/:id/assignments", suite.handler.ListByShift)
	suite.router.POST("/shifts/:id/auto-fill", suite.handler.AutoFill)

	suite.venue = &models.Venue{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Name:        "The Copper Still",
		IsNetworked: false,
		IsActive:    true,
	}
	suite.shift = &models.Shift{
		BaseModel:          models.BaseModel{ID: uuid.New()},
		VenueID:            suite.venue.ID,
		Date:               time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:          "18:00",
		EndTime:            "02:00",
		BartendersRequired: 2,
		BarbacksRequired:   1,
		LeadsRequired:      1,
	}
	suite.staff = &models.StaffMember{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FullName:  "Alex Rivera",
		Role:      models.StaffRoleBartender,
		Status:    models.StaffStatusActive,
		VenuePreferences: []models.StaffVenuePreference{
			{StaffID: uuid.Nil, VenueID: suite.venue.ID, Position: 0},
		},
	}
}

func (suite *AssignmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AssignmentHandlerTestSuite) postAssignment(body map[string]interface{}) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	require.NoError(suite.T(), err)
	req := httptest.NewRequest(http.MethodPost, "/assignments", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AssignmentHandlerTestSuite) expectSnapshot() {
	suite.mockOverrideRepo.EXPECT().GetActiveForAssignment(suite.shift.ID, suite.staff.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockAssignmentRepo.EXPECT().GetByShiftID(suite.shift.ID).Return(nil, nil)
	suite.mockAvailabilityRepo.EXPECT().GetByStaffAndMonth(suite.staff.ID, "2026-03").Return(nil, gorm.ErrRecordNotFound)
	suite.mockVenueRepo.EXPECT().GetByID(suite.venue.ID).Return(suite.venue, nil)
	suite.mockAssignmentRepo.EXPECT().GetByStaffAndDate(suite.staff.ID, suite.shift.Date, gomock.Any()).Return(nil, nil)
}

func (suite *AssignmentHandlerTestSuite) TestEvaluateAssignment_Created() {
	suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
	suite.mockStaffRepo.EXPECT().GetByID(suite.staff.ID).Return(suite.staff, nil)
	suite.expectSnapshot()
	suite.mockAssignmentRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockNotifier.EXPECT().Dispatch(suite.staff.ID, models.NotificationAssignmentCreated, gomock.Any(), gomock.Any(), gomock.Any())

	w := suite.postAssignment(map[string]interface{}{
		"shift_id": suite.shift.ID,
		"staff_id": suite.staff.ID,
		"role":     "bartender",
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestEvaluateAssignment_ViolationBatchReturns422() {
	// no venue preference and a cutoff conflict produce two violations
	cutoff := "19:00"
	suite.staff.VenuePreferences = nil
	suite.staff.HasDayJob = true
	suite.staff.DayJobCutoff = &cutoff

	suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
	suite.mockStaffRepo.EXPECT().GetByID(suite.staff.ID).Return(suite.staff, nil)
	suite.expectSnapshot()

	w := suite.postAssignment(map[string]interface{}{
		"shift_id": suite.shift.ID,
		"staff_id": suite.staff.ID,
		"role":     "bartender",
	})

	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)

	var got struct {
		Error      string `json:"error"`
		Violations []struct {
			Field         string `json:"field"`
			ViolationType string `json:"violation_type"`
		} `json:"violations"`
	}
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(suite.T(), got.Violations, 2)
}

func (suite *AssignmentHandlerTestSuite) TestEvaluateAssignment_BypassWithoutManagerRoleForbidden() {
	// no auth context on the test router, so the bypass gate rejects
	w := suite.postAssignment(map[string]interface{}{
		"shift_id": suite.shift.ID,
		"staff_id": suite.staff.ID,
		"role":     "bartender",
		"bypass":   true,
	})

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestEvaluateAssignment_DuplicateConflict() {
	suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
	suite.mockStaffRepo.EXPECT().GetByID(suite.staff.ID).Return(suite.staff, nil)
	suite.expectSnapshot()
	suite.mockAssignmentRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	w := suite.postAssignment(map[string]interface{}{
		"shift_id": suite.shift.ID,
		"staff_id": suite.staff.ID,
		"role":     "bartender",
	})

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestRemoveAssignment_NotFound() {
	id := uuid.New()
	suite.mockAssignmentRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/assignments/"+id.String(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *AssignmentHandlerTestSuite) TestAutoFill_ReturnsSummary() {
	suite.shift.BartendersRequired = 0
	suite.shift.BarbacksRequired = 0
	suite.shift.LeadsRequired = 0
	suite.mockShiftRepo.EXPECT().GetByID(suite.shift.ID).Return(suite.shift, nil)
	suite.mockAssignmentRepo.EXPECT().GetByShiftID(suite.shift.ID).Return(nil, nil)
	suite.mockStaffRepo.EXPECT().GetActiveByVenue(suite.venue.ID).Return(nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/shifts/"+suite.shift.ID.String()+"/auto-fill", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.AllocationSummary
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Zero(suite.T(), got.AssignedCount)
}

func TestAssignmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentHandlerTestSuite))
}
