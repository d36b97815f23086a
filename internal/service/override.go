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

// OverrideService handles the override ledger: manager-initiated exceptions
// to eligibility rules with staff + manager double-sign-off and an
// append-only event history
type OverrideService struct {
	repo      repository.OverrideRepositoryInterface
	shiftRepo repository.ShiftRepositoryInterface
	staffRepo repository.StaffRepositoryInterface
	notifier  Notifier
	validator *validator.Validate
}

// NewOverrideService creates a new override service
func NewOverrideService(
	repo repository.OverrideRepositoryInterface,
	shiftRepo repository.ShiftRepositoryInterface,
	staffRepo repository.StaffRepositoryInterface,
	notifier Notifier,
	validator *validator.Validate,
) *OverrideService {
	return &OverrideService{
		repo:      repo,
		shiftRepo: shiftRepo,
		staffRepo: staffRepo,
		notifier:  notifier,
		validator: validator,
	}
}

// CreateOverrideRequest represents the request to create an override
type CreateOverrideRequest struct {
	ShiftID       uuid.UUID            `json:"shift_id" validate:"required"`
	StaffID       uuid.UUID            `json:"staff_id" validate:"required"`
	Reason        string               `json:"reason" validate:"required,min=10"`
	ViolationType models.ViolationType `json:"violation_type" validate:"required"`
	ManagerID     uuid.UUID            `json:"manager_id" validate:"required"`
}

// RespondOverrideRequest represents the target staff member's response
type RespondOverrideRequest struct {
	StaffID  uuid.UUID `json:"staff_id" validate:"required"`
	Approved bool      `json:"approved"`
	Comment  string    `json:"comment,omitempty"`
}

// OverrideResponse represents the response for override operations
type OverrideResponse struct {
	ID            uuid.UUID             `json:"id"`
	ShiftID       uuid.UUID             `json:"shift_id"`
	StaffID       uuid.UUID             `json:"staff_id"`
	Reason        string                `json:"reason"`
	ViolationType models.ViolationType  `json:"violation_type"`
	Status        models.OverrideStatus `json:"status"`
	Approvals     []ApprovalResponse    `json:"approvals,omitempty"`
	Events        []EventResponse       `json:"events,omitempty"`
	CreatedAt     string                `json:"created_at"`
}

// ApprovalResponse represents one recorded sign-off
type ApprovalResponse struct {
	ApproverID uuid.UUID `json:"approver_id"`
	IsManager  bool      `json:"is_manager"`
	Approved   bool      `json:"approved"`
	Comment    string    `json:"comment,omitempty"`
}

// EventResponse represents one ledger entry
type EventResponse struct {
	Action    string    `json:"action"`
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Note      string    `json:"note,omitempty"`
	Timestamp string    `json:"timestamp"`
}

// CreateOverride opens an exception for one (shift, staff) assignment.
// The initiating manager's approval is auto-recorded; the override stays
// pending until the target staff member responds.
func (s *OverrideService) CreateOverride(req *CreateOverrideRequest) (*OverrideResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.ViolationType.IsValid() {
		return nil, apperrors.ErrInvalidViolation
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

	manager, err := s.staffRepo.GetByID(req.ManagerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get manager: %w", err)
	}
	if !manager.Role.IsManagerial() {
		return nil, apperrors.ErrManagerRequired
	}

	override := &models.Override{
		ShiftID:       req.ShiftID,
		StaffID:       req.StaffID,
		Reason:        req.Reason,
		ViolationType: req.ViolationType,
		Status:        models.OverrideStatusPending,
	}
	if err := s.repo.Create(override); err != nil {
		return nil, fmt.Errorf("failed to create override: %w", err)
	}

	if err := s.repo.AddApproval(&models.OverrideApproval{
		OverrideID: override.ID,
		ApproverID: manager.ID,
		IsManager:  true,
		Approved:   true,
	}); err != nil {
		return nil, fmt.Errorf("failed to record manager approval: %w", err)
	}

	if err := s.repo.AppendEvent(&models.OverrideEvent{
		OverrideID: override.ID,
		Action:     models.OverrideEventCreated,
		UserID:     manager.ID,
		UserName:   manager.FullName,
		Note:       req.Reason,
	}); err != nil {
		return nil, fmt.Errorf("failed to append ledger event: %w", err)
	}

	s.notifier.Dispatch(staff.ID, models.NotificationOverrideRequested,
		"Override approval requested",
		fmt.Sprintf("%s requested an override for your assignment on %s", manager.FullName, shift.DateKey()),
		map[string]interface{}{"override_id": override.ID.String()})

	created, err := s.repo.GetByID(override.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload override: %w", err)
	}
	return toOverrideResponse(created), nil
}

// RespondToOverride records the target staff member's decision. Approval
// with the manager's existing sign-off activates the override; a decline is
// terminal. A second response from the same staff member is rejected, not
// overwritten.
func (s *OverrideService) RespondToOverride(overrideID uuid.UUID, req *RespondOverrideRequest) (*OverrideResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	override, err := s.repo.GetByID(overrideID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOverrideNotFound
		}
		return nil, fmt.Errorf("failed to get override: %w", err)
	}

	if override.StaffID != req.StaffID {
		return nil, apperrors.ErrNotOverrideTarget
	}
	if override.Status.IsTerminal() || override.Status == models.OverrideStatusActive {
		return nil, apperrors.ErrOverrideNotPending
	}
	if override.ApprovalBy(req.StaffID) != nil {
		return nil, apperrors.ErrAlreadyResponded
	}

	staff, err := s.staffRepo.GetByID(req.StaffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}

	if err := s.repo.AddApproval(&models.OverrideApproval{
		OverrideID: override.ID,
		ApproverID: req.StaffID,
		IsManager:  false,
		Approved:   req.Approved,
		Comment:    req.Comment,
	}); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrAlreadyResponded
		}
		return nil, fmt.Errorf("failed to record response: %w", err)
	}

	var status models.OverrideStatus
	var action string
	if !req.Approved {
		status = models.OverrideStatusDeclined
		action = models.OverrideEventDeclined
	} else if override.HasManagerApproval() {
		status = models.OverrideStatusActive
		action = models.OverrideEventApproved
	} else {
		// Structurally the manager approval exists from creation; this
		// branch covers overrides migrated without one.
		status = models.OverrideStatusApproved
		action = models.OverrideEventApproved
	}

	if err := s.repo.UpdateStatus(override.ID, status); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	if err := s.repo.AppendEvent(&models.OverrideEvent{
		OverrideID: override.ID,
		Action:     action,
		UserID:     staff.ID,
		UserName:   staff.FullName,
		Note:       req.Comment,
	}); err != nil {
		return nil, fmt.Errorf("failed to append ledger event: %w", err)
	}

	updated, err := s.repo.GetByID(override.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload override: %w", err)
	}
	return toOverrideResponse(updated), nil
}

// GetOverride retrieves an override with approvals and its ledger
func (s *OverrideService) GetOverride(id uuid.UUID) (*OverrideResponse, error) {
	override, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOverrideNotFound
		}
		return nil, fmt.Errorf("failed to get override: %w", err)
	}
	return toOverrideResponse(override), nil
}

// ListByStaff retrieves overrides targeting one staff member
func (s *OverrideService) ListByStaff(staffID uuid.UUID, limit, offset int) ([]OverrideResponse, int64, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	overrides, total, err := s.repo.GetByStaffID(staffID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list overrides: %w", err)
	}

	responses := make([]OverrideResponse, len(overrides))
	for i := range overrides {
		responses[i] = *toOverrideResponse(&overrides[i])
	}
	return responses, total, nil
}

// toOverrideResponse converts an override model to a response
func toOverrideResponse(override *models.Override) *OverrideResponse {
	response := &OverrideResponse{
		ID:            override.ID,
		ShiftID:       override.ShiftID,
		StaffID:       override.StaffID,
		Reason:        override.Reason,
		ViolationType: override.ViolationType,
		Status:        override.Status,
		CreatedAt:     override.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	for _, a := range override.Approvals {
		response.Approvals = append(response.Approvals, ApprovalResponse{
			ApproverID: a.ApproverID,
			IsManager:  a.IsManager,
			Approved:   a.Approved,
			Comment:    a.Comment,
		})
	}
	for _, e := range override.Events {
		response.Events = append(response.Events, EventResponse{
			Action:    e.Action,
			UserID:    e.UserID,
			UserName:  e.UserName,
			Note:      e.Note,
			Timestamp: e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return response
}
