package service

import (
	"errors"
	"fmt"
	"time"

	"barshift-backend/internal/database/models"
	apperrors "barshift-backend/internal/errors"
	"barshift-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftService handles shift business logic
type ShiftService struct {
	repo      repository.ShiftRepositoryInterface
	venueRepo repository.VenueRepositoryInterface
	validator *validator.Validate
}

// NewShiftService creates a new shift service
func NewShiftService(
	repo repository.ShiftRepositoryInterface,
	venueRepo repository.VenueRepositoryInterface,
	validator *validator.Validate,
) *ShiftService {
	return &ShiftService{
		repo:      repo,
		venueRepo: venueRepo,
		validator: validator,
	}
}

// CreateShiftRequest represents the request to create a shift
type CreateShiftRequest struct {
	VenueID            uuid.UUID `json:"venue_id" validate:"required"`
	Date               string    `json:"date" validate:"required"`
	StartTime          string    `json:"start_time" validate:"required"`
	EndTime            string    `json:"end_time" validate:"required"`
	BartendersRequired int       `json:"bartenders_required" validate:"min=0"`
	BarbacksRequired   int       `json:"barbacks_required" validate:"min=0"`
	LeadsRequired      int       `json:"leads_required" validate:"min=0"`
	Notes              string    `json:"notes,omitempty"`
}

// UpdateShiftRequest represents the request to update a shift
type UpdateShiftRequest struct {
	Date               *string `json:"date,omitempty"`
	StartTime          *string `json:"start_time,omitempty"`
	EndTime            *string `json:"end_time,omitempty"`
	BartendersRequired *int    `json:"bartenders_required,omitempty" validate:"omitempty,min=0"`
	BarbacksRequired   *int    `json:"barbacks_required,omitempty" validate:"omitempty,min=0"`
	LeadsRequired      *int    `json:"leads_required,omitempty" validate:"omitempty,min=0"`
	Notes              *string `json:"notes,omitempty"`
}

// ShiftResponse represents the response for shift operations
type ShiftResponse struct {
	ID                 uuid.UUID  `json:"id"`
	VenueID            uuid.UUID  `json:"venue_id"`
	Date               string     `json:"date"`
	StartTime          string     `json:"start_time"`
	EndTime            string     `json:"end_time"`
	BartendersRequired int        `json:"bartenders_required"`
	BarbacksRequired   int        `json:"barbacks_required"`
	LeadsRequired      int        `json:"leads_required"`
	Notes              string     `json:"notes,omitempty"`
	UpForTrade         bool       `json:"up_for_trade"`
	TradeProposerID    *uuid.UUID `json:"trade_proposer_id,omitempty"`
	TradeReason        string     `json:"trade_reason,omitempty"`
}

// CreateShift creates a new shift at a venue
func (s *ShiftService) CreateShift(req *CreateShiftRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !timePattern.MatchString(req.StartTime) || !timePattern.MatchString(req.EndTime) {
		return nil, apperrors.ErrInvalidTimeFormat
	}
	if req.LeadsRequired > req.BartendersRequired {
		return nil, apperrors.NewValidationError("leads_required", "lead count cannot exceed the bartender count")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("date", "date must be formatted as YYYY-MM-DD")
	}

	if _, err := s.venueRepo.GetByID(req.VenueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to verify venue: %w", err)
	}

	shift := &models.Shift{
		VenueID:            req.VenueID,
		Date:               date,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		BartendersRequired: req.BartendersRequired,
		BarbacksRequired:   req.BarbacksRequired,
		LeadsRequired:      req.LeadsRequired,
		Notes:              req.Notes,
	}
	if err := s.repo.Create(shift); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}
	return toShiftResponse(shift), nil
}

// GetShift retrieves a shift by ID
func (s *ShiftService) GetShift(id uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return toShiftResponse(shift), nil
}

// ListShifts retrieves shifts at a venue inside a date range
func (s *ShiftService) ListShifts(venueID uuid.UUID, from, to string, limit, offset int) ([]ShiftResponse, int64, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, 0, apperrors.NewValidationError("from", "date must be formatted as YYYY-MM-DD")
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, 0, apperrors.NewValidationError("to", "date must be formatted as YYYY-MM-DD")
	}
	if toDate.Before(fromDate) {
		return nil, 0, apperrors.NewValidationError("to", "range end must not precede range start")
	}

	shifts, total, err := s.repo.GetByVenueAndDateRange(venueID, fromDate, toDate, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = *toShiftResponse(&shifts[i])
	}
	return responses, total, nil
}

// UpdateShift updates a shift's schedule or staffing requirements
func (s *ShiftService) UpdateShift(id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, apperrors.NewValidationError("date", "date must be formatted as YYYY-MM-DD")
		}
		shift.Date = date
	}
	if req.StartTime != nil {
		if !timePattern.MatchString(*req.StartTime) {
			return nil, apperrors.ErrInvalidTimeFormat
		}
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		if !timePattern.MatchString(*req.EndTime) {
			return nil, apperrors.ErrInvalidTimeFormat
		}
		shift.EndTime = *req.EndTime
	}
	if req.BartendersRequired != nil {
		shift.BartendersRequired = *req.BartendersRequired
	}
	if req.BarbacksRequired != nil {
		shift.BarbacksRequired = *req.BarbacksRequired
	}
	if req.LeadsRequired != nil {
		shift.LeadsRequired = *req.LeadsRequired
	}
	if shift.LeadsRequired > shift.BartendersRequired {
		return nil, apperrors.NewValidationError("leads_required", "lead count cannot exceed the bartender count")
	}
	if req.Notes != nil {
		shift.Notes = *req.Notes
	}

	if err := s.repo.Update(shift); err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}
	return toShiftResponse(shift), nil
}

// DeleteShift deletes a shift and its assignments
func (s *ShiftService) DeleteShift(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get shift: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

// toShiftResponse converts a shift model to a response
func toShiftResponse(shift *models.Shift) *ShiftResponse {
	return &ShiftResponse{
		ID:                 shift.ID,
		VenueID:            shift.VenueID,
		Date:               shift.DateKey(),
		StartTime:          shift.StartTime,
		EndTime:            shift.EndTime,
		BartendersRequired: shift.BartendersRequired,
		BarbacksRequired:   shift.BarbacksRequired,
		LeadsRequired:      shift.LeadsRequired,
		Notes:              shift.Notes,
		UpForTrade:         shift.UpForTrade,
		TradeProposerID:    shift.TradeProposerID,
		TradeReason:        shift.TradeReason,
	}
}
