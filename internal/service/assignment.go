package service

import (
	"errors"
	"fmt"

	"barshift-backend/internal/database/models"
	apperrors "barshift-backend/internal/errors"
	"barshift-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentService handles assignment evaluation and creation: the full
// eligibility path, override bypass, and the assignment-created notification
type AssignmentService struct {
	shiftRepo        repository.ShiftRepositoryInterface
	staffRepo        repository.StaffRepositoryInterface
	venueRepo        repository.VenueRepositoryInterface
	assignmentRepo   repository.AssignmentRepositoryInterface
	availabilityRepo repository.AvailabilityRepositoryInterface
	overrideRepo     repository.OverrideRepositoryInterface
	notifier         Notifier
	validator        *validator.Validate
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(
	shiftRepo repository.ShiftRepositoryInterface,
	staffRepo repository.StaffRepositoryInterface,
	venueRepo repository.VenueRepositoryInterface,
	assignmentRepo repository.AssignmentRepositoryInterface,
	availabilityRepo repository.AvailabilityRepositoryInterface,
	overrideRepo repository.OverrideRepositoryInterface,
	notifier Notifier,
	validator *validator.Validate,
) *AssignmentService {
	return &AssignmentService{
		shiftRepo:        shiftRepo,
		staffRepo:        staffRepo,
		venueRepo:        venueRepo,
		assignmentRepo:   assignmentRepo,
		availabilityRepo: availabilityRepo,
		overrideRepo:     overrideRepo,
		notifier:         notifier,
		validator:        validator,
	}
}

// EvaluateAssignmentRequest represents the request to place a staff member on a shift
type EvaluateAssignmentRequest struct {
	ShiftID    uuid.UUID           `json:"shift_id" validate:"required"`
	StaffID    uuid.UUID           `json:"staff_id" validate:"required"`
	Role       models.AssignedRole `json:"role" validate:"required"`
	IsLead     bool                `json:"is_lead"`
	OverrideID *uuid.UUID          `json:"override_id,omitempty"`
	Bypass     bool                `json:"bypass,omitempty"` // admin bypass flag; callers must gate on role
}

// AssignmentResponse represents the response for assignment operations
type AssignmentResponse struct {
	ID        uuid.UUID           `json:"id"`
	ShiftID   uuid.UUID           `json:"shift_id"`
	StaffID   uuid.UUID           `json:"staff_id"`
	Role      models.AssignedRole `json:"role"`
	IsLead    bool                `json:"is_lead"`
	TipAmount *float64            `json:"tip_amount,omitempty"`
	TipNote   string              `json:"tip_note,omitempty"`
	CreatedAt string              `json:"created_at"`
}

// RecordTipRequest represents the request to record tips on an assignment
type RecordTipRequest struct {
	TipAmount float64 `json:"tip_amount" validate:"required,min=0"`
	TipNote   string  `json:"tip_note,omitempty"`
}

// EvaluateAssignment runs the full eligibility path for one (shift, staff)
// placement and creates the assignment when allowed. Violations are
// collected and returned together as an EligibilityError, never one at a
// time. An active override for the pair, or the Bypass flag, skips the
// bypassable rules; the override is consumed on success.
func (s *AssignmentService) EvaluateAssignment(req *EvaluateAssignmentRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	shift, err := s.shiftRepo.GetByID(req.ShiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	staff, err := s.staffRepo.GetByID(req.StaffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	if !staff.Role.IsSchedulable() {
		return nil, apperrors.ErrRoleNotSchedulable
	}

	// Resolve the bypass source: an explicit admin flag or an active
	// override covering exactly this (shift, staff) pair.
	var usedOverride *models.Override
	bypass := req.Bypass
	if req.OverrideID != nil {
		override, err := s.overrideRepo.GetByID(*req.OverrideID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrOverrideNotFound
			}
			return nil, fmt.Errorf("failed to get override: %w", err)
		}
		if override.Status != models.OverrideStatusActive {
			return nil, apperrors.ErrOverrideNotActive
		}
		if override.ShiftID != req.ShiftID || override.StaffID != req.StaffID {
			return nil, apperrors.ErrOverrideMismatch
		}
		usedOverride = override
		bypass = true
	} else if !bypass {
		override, err := s.overrideRepo.GetActiveForAssignment(req.ShiftID, req.StaffID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up override: %w", err)
		}
		if err == nil {
			usedOverride = override
			bypass = true
		}
	}

	check, err := s.buildCheck(shift, staff, req.Role, req.IsLead, bypass)
	if err != nil {
		return nil, err
	}

	if violations := CheckEligibility(*check); len(violations) > 0 {
		return nil, apperrors.NewEligibilityError(violations)
	}

	assignment := &models.ShiftAssignment{
		ShiftID: req.ShiftID,
		StaffID: req.StaffID,
		Role:    req.Role,
		IsLead:  req.IsLead,
	}
	if err := s.assignmentRepo.Create(assignment); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrAssignmentExists
		}
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	if usedOverride != nil {
		s.consumeOverride(usedOverride, staff)
	}

	// The bypass path is a tracked exception; only normal assignments emit
	// the assignment-created event.
	if !bypass {
		s.notifier.Dispatch(staff.ID, models.NotificationAssignmentCreated,
			"New shift assignment",
			fmt.Sprintf("You have been assigned to a shift on %s (%s-%s)", shift.DateKey(), shift.StartTime, shift.EndTime),
			map[string]interface{}{"shift_id": shift.ID.String()})
	}

	return toAssignmentResponse(assignment), nil
}

// consumeOverride marks a used override as consumed and appends the ledger
// entry. An override authorizes exactly one bypassed assignment; failures
// here are not fatal to the already-created assignment.
func (s *AssignmentService) consumeOverride(override *models.Override, staff *models.StaffMember) {
	if err := s.overrideRepo.UpdateStatus(override.ID, models.OverrideStatusConsumed); err != nil {
		return
	}
	_ = s.overrideRepo.AppendEvent(&models.OverrideEvent{
		OverrideID: override.ID,
		Action:     models.OverrideEventConsumed,
		UserID:     staff.ID,
		UserName:   staff.FullName,
		Note:       "override used for one bypassed assignment",
	})
}

// buildCheck assembles the read-only snapshot the eligibility checker runs against
func (s *AssignmentService) buildCheck(shift *models.Shift, staff *models.StaffMember, role models.AssignedRole, isLead, bypass bool) (*AssignmentCheck, error) {
	existing, err := s.assignmentRepo.GetByShiftID(shift.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift assignments: %w", err)
	}

	availability, err := s.availabilityRepo.GetByStaffAndMonth(staff.ID, shift.MonthKey())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get availability: %w", err)
	}

	scope, err := networkedVenueScope(s.venueRepo, shift.VenueID)
	if err != nil {
		return nil, err
	}

	sameDay, err := s.assignmentRepo.GetByStaffAndDate(staff.ID, shift.Date, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to get same-day assignments: %w", err)
	}

	return &AssignmentCheck{
		Shift:               shift,
		Candidate:           staff,
		Role:                role,
		IsLead:              isLead,
		ExistingAssignments: existing,
		Availability:        availability,
		SameDayAssignments:  sameDay,
		Bypass:              bypass,
	}, nil
}

// ListByShift retrieves all assignments on a shift
func (s *AssignmentService) ListByShift(shiftID uuid.UUID) ([]AssignmentResponse, error) {
	if _, err := s.shiftRepo.GetByID(shiftID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	assignments, err := s.assignmentRepo.GetByShiftID(shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *toAssignmentResponse(&assignments[i])
	}
	return responses, nil
}

// RecordTip records tip data on an existing assignment
func (s *AssignmentService) RecordTip(assignmentID uuid.UUID, req *RecordTipRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	assignment, err := s.assignmentRepo.GetByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	assignment.TipAmount = &req.TipAmount
	assignment.TipNote = req.TipNote
	if err := s.assignmentRepo.Update(assignment); err != nil {
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}

	return toAssignmentResponse(assignment), nil
}

// RemoveAssignment deletes an assignment and notifies the affected staff member
func (s *AssignmentService) RemoveAssignment(assignmentID uuid.UUID) error {
	assignment, err := s.assignmentRepo.GetByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to get assignment: %w", err)
	}

	if err := s.assignmentRepo.Delete(assignmentID); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	s.notifier.Dispatch(assignment.StaffID, models.NotificationAssignmentRemoved,
		"Shift assignment removed",
		"One of your shift assignments has been removed",
		map[string]interface{}{"shift_id": assignment.ShiftID.String()})

	return nil
}

// toAssignmentResponse converts an assignment model to a response
func toAssignmentResponse(assignment *models.ShiftAssignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:        assignment.ID,
		ShiftID:   assignment.ShiftID,
		StaffID:   assignment.StaffID,
		Role:      assignment.Role,
		IsLead:    assignment.IsLead,
		TipAmount: assignment.TipAmount,
		TipNote:   assignment.TipNote,
		CreatedAt: assignment.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
