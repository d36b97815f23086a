package service

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"barshift-backend/internal/database/models"
	apperrors "barshift-backend/internal/errors"
	"barshift-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// AvailabilityService handles the monthly availability workflow: editing,
// submission, post-deadline locking, and manager-issued unlocks
type AvailabilityService struct {
	repo      repository.AvailabilityRepositoryInterface
	staffRepo repository.StaffRepositoryInterface
	notifier  Notifier
	validator *validator.Validate
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(
	repo repository.AvailabilityRepositoryInterface,
	staffRepo repository.StaffRepositoryInterface,
	notifier Notifier,
	validator *validator.Validate,
) *AvailabilityService {
	return &AvailabilityService{
		repo:      repo,
		staffRepo: staffRepo,
		notifier:  notifier,
		validator: validator,
	}
}

// SaveAvailabilityRequest represents the request to save a month's days
type SaveAvailabilityRequest struct {
	StaffID uuid.UUID               `json:"staff_id" validate:"required"`
	Month   string                  `json:"month" validate:"required"`
	Days    models.AvailabilityDays `json:"days" validate:"required"`
}

// UnlockAvailabilityRequest represents a manager unlocking a locked month
type UnlockAvailabilityRequest struct {
	StaffID   uuid.UUID `json:"staff_id" validate:"required"`
	Month     string    `json:"month" validate:"required"`
	ManagerID uuid.UUID `json:"manager_id" validate:"required"`
	Reason    string    `json:"reason,omitempty"`
}

// AvailabilityResponse represents the response for availability operations
type AvailabilityResponse struct {
	ID          uuid.UUID               `json:"id"`
	StaffID     uuid.UUID               `json:"staff_id"`
	Month       string                  `json:"month"`
	Days        models.AvailabilityDays `json:"days"`
	SubmittedAt *string                 `json:"submitted_at,omitempty"`
	IsLocked    bool                    `json:"is_locked"`
}

// GetMonth retrieves one staff member's availability for a month
func (s *AvailabilityService) GetMonth(staffID uuid.UUID, month string) (*AvailabilityResponse, error) {
	if !monthPattern.MatchString(month) {
		return nil, apperrors.ErrInvalidMonthFormat
	}

	availability, err := s.repo.GetByStaffAndMonth(staffID, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAvailabilityNotFound
		}
		return nil, fmt.Errorf("failed to get availability: %w", err)
	}
	return toAvailabilityResponse(availability), nil
}

// SaveDays creates or updates the day map for a month. A locked month
// rejects edits unless a manager-issued unlock record exists for the
// (staff, month) pair.
func (s *AvailabilityService) SaveDays(req *SaveAvailabilityRequest) (*AvailabilityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !monthPattern.MatchString(req.Month) {
		return nil, apperrors.ErrInvalidMonthFormat
	}
	for dateKey := range req.Days {
		if _, err := time.Parse("2006-01-02", dateKey); err != nil {
			return nil, apperrors.NewValidationError("days", fmt.Sprintf("invalid date key %q", dateKey))
		}
	}

	if _, err := s.staffRepo.GetByID(req.StaffID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to verify staff member: %w", err)
	}

	availability, err := s.repo.GetByStaffAndMonth(req.StaffID, req.Month)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get availability: %w", err)
		}
		availability = &models.Availability{
			StaffID: req.StaffID,
			Month:   req.Month,
			Days:    models.AvailabilityDays{},
		}
	}

	if availability.IsLocked {
		unlocked, err := s.repo.HasUnlock(req.StaffID, req.Month)
		if err != nil {
			return nil, fmt.Errorf("failed to check unlock: %w", err)
		}
		if !unlocked {
			return nil, apperrors.ErrAvailabilityLocked
		}
	}

	availability.Days = req.Days
	if err := s.repo.Save(availability); err != nil {
		return nil, fmt.Errorf("failed to save availability: %w", err)
	}
	return toAvailabilityResponse(availability), nil
}

// Submit marks a month as submitted, making it visible to auto-fill
func (s *AvailabilityService) Submit(staffID uuid.UUID, month string) (*AvailabilityResponse, error) {
	if !monthPattern.MatchString(month) {
		return nil, apperrors.ErrInvalidMonthFormat
	}

	availability, err := s.repo.GetByStaffAndMonth(staffID, month)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAvailabilityNotFound
		}
		return nil, fmt.Errorf("failed to get availability: %w", err)
	}
	if availability.IsSubmitted() {
		return nil, apperrors.ErrAvailabilitySubmitted
	}

	now := time.Now()
	availability.SubmittedAt = &now
	if err := s.repo.Save(availability); err != nil {
		return nil, fmt.Errorf("failed to submit availability: %w", err)
	}
	return toAvailabilityResponse(availability), nil
}

// Lock locks every submitted availability for a month. Run after the
// submission deadline.
func (s *AvailabilityService) Lock(month string) (int, error) {
	if !monthPattern.MatchString(month) {
		return 0, apperrors.ErrInvalidMonthFormat
	}

	availabilities, err := s.repo.GetByMonth(month)
	if err != nil {
		return 0, fmt.Errorf("failed to get month availabilities: %w", err)
	}

	locked := 0
	for i := range availabilities {
		if availabilities[i].IsLocked {
			continue
		}
		availabilities[i].IsLocked = true
		if err := s.repo.Save(&availabilities[i]); err != nil {
			return locked, fmt.Errorf("failed to lock availability: %w", err)
		}
		locked++
	}
	return locked, nil
}

// Unlock records a manager-issued unlock for one (staff, month) pair and
// notifies the staff member
func (s *AvailabilityService) Unlock(req *UnlockAvailabilityRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if !monthPattern.MatchString(req.Month) {
		return apperrors.ErrInvalidMonthFormat
	}

	manager, err := s.staffRepo.GetByID(req.ManagerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStaffNotFound
		}
		return fmt.Errorf("failed to get manager: %w", err)
	}
	if !manager.Role.IsManagerial() {
		return apperrors.ErrManagerRequired
	}

	if _, err := s.staffRepo.GetByID(req.StaffID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStaffNotFound
		}
		return fmt.Errorf("failed to verify staff member: %w", err)
	}

	unlock := &models.AvailabilityUnlock{
		StaffID:   req.StaffID,
		Month:     req.Month,
		ManagerID: req.ManagerID,
		Reason:    req.Reason,
	}
	if err := s.repo.CreateUnlock(unlock); err != nil {
		if repository.IsUniqueViolation(err) {
			return apperrors.ErrUnlockExists
		}
		return fmt.Errorf("failed to create unlock: %w", err)
	}

	s.notifier.Dispatch(req.StaffID, models.NotificationAvailabilityUnlocked,
		"Availability unlocked",
		fmt.Sprintf("%s unlocked your %s availability for editing", manager.FullName, req.Month),
		map[string]interface{}{"month": req.Month})

	return nil
}

// toAvailabilityResponse converts an availability model to a response
func toAvailabilityResponse(availability *models.Availability) *AvailabilityResponse {
	response := &AvailabilityResponse{
		ID:       availability.ID,
		StaffID:  availability.StaffID,
		Month:    availability.Month,
		Days:     availability.Days,
		IsLocked: availability.IsLocked,
	}
	if availability.SubmittedAt != nil {
		formatted := availability.SubmittedAt.Format("2006-01-02T15:04:05Z07:00")
		response.SubmittedAt = &formatted
	}
	return response
}
