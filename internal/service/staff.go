package service

import (
	"errors"
	"fmt"
	"regexp"

	"barshift-backend/internal/auth"
	"barshift-backend/internal/database/models"
	apperrors "barshift-backend/internal/errors"
	"barshift-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// StaffService handles staff member business logic
type StaffService struct {
	repo      repository.StaffRepositoryInterface
	venueRepo repository.VenueRepositoryInterface
	validator *validator.Validate
}

// NewStaffService creates a new staff service
func NewStaffService(
	repo repository.StaffRepositoryInterface,
	venueRepo repository.VenueRepositoryInterface,
	validator *validator.Validate,
) *StaffService {
	return &StaffService{
		repo:      repo,
		venueRepo: venueRepo,
		validator: validator,
	}
}

// CreateStaffRequest represents the request to create a staff member
type CreateStaffRequest struct {
	FullName     string  `json:"full_name" validate:"required,max=200"`
	Email        string  `json:"email" validate:"required,email,max=255"`
	Password     string  `json:"password" validate:"required,min=8"`
	PhoneNumber  string  `json:"phone_number,omitempty" validate:"max=20"`
	Role         string  `json:"role" validate:"required"`
	IsLead       bool    `json:"is_lead"`
	HasDayJob    bool    `json:"has_day_job"`
	DayJobCutoff *string `json:"day_job_cutoff,omitempty"`
}

// UpdateStaffRequest represents the request to update a staff member
type UpdateStaffRequest struct {
	FullName     *string `json:"full_name,omitempty" validate:"omitempty,max=200"`
	PhoneNumber  *string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Role         *string `json:"role,omitempty"`
	IsLead       *bool   `json:"is_lead,omitempty"`
	HasDayJob    *bool   `json:"has_day_job,omitempty"`
	DayJobCutoff *string `json:"day_job_cutoff,omitempty"`
	Status       *string `json:"status,omitempty"`
}

// VenuePreferenceRequest represents one entry in a staff member's ordered venue list
type VenuePreferenceRequest struct {
	VenueID uuid.UUID `json:"venue_id" validate:"required"`
	Rank    *int      `json:"rank,omitempty"`
}

// StaffResponse represents the response for staff operations
type StaffResponse struct {
	ID           uuid.UUID                 `json:"id"`
	FullName     string                    `json:"full_name"`
	Email        string                    `json:"email"`
	PhoneNumber  string                    `json:"phone_number,omitempty"`
	Role         models.StaffRole          `json:"role"`
	IsLead       bool                      `json:"is_lead"`
	HasDayJob    bool                      `json:"has_day_job"`
	DayJobCutoff *string                   `json:"day_job_cutoff,omitempty"`
	Status       models.StaffStatus        `json:"status"`
	Preferences  []VenuePreferenceResponse `json:"preferences,omitempty"`
}

// VenuePreferenceResponse represents a staff member's link to a venue
type VenuePreferenceResponse struct {
	VenueID  uuid.UUID `json:"venue_id"`
	Position int       `json:"position"`
	Rank     *int      `json:"rank,omitempty"`
}

// CreateStaff creates a new staff member
func (s *StaffService) CreateStaff(req *CreateStaffRequest) (*StaffResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.StaffRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}
	if req.IsLead && role != models.StaffRoleBartender {
		return nil, apperrors.ErrLeadMustBeBartender
	}
	if req.DayJobCutoff != nil && !timePattern.MatchString(*req.DayJobCutoff) {
		return nil, apperrors.ErrInvalidTimeFormat
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	staff := &models.StaffMember{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: passwordHash,
		PhoneNumber:  req.PhoneNumber,
		Role:         role,
		IsLead:       req.IsLead,
		HasDayJob:    req.HasDayJob,
		DayJobCutoff: req.DayJobCutoff,
		Status:       models.StaffStatusActive,
	}
	if err := s.repo.Create(staff); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrStaffExists
		}
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}
	return toStaffResponse(staff), nil
}

// GetStaff retrieves a staff member by ID
func (s *StaffService) GetStaff(id uuid.UUID) (*StaffResponse, error) {
	staff, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	return toStaffResponse(staff), nil
}

// ListStaff retrieves staff members with pagination
func (s *StaffService) ListStaff(limit, offset int) ([]StaffResponse, int64, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	members, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list staff members: %w", err)
	}

	responses := make([]StaffResponse, len(members))
	for i := range members {
		responses[i] = *toStaffResponse(&members[i])
	}
	return responses, total, nil
}

// UpdateStaff updates a staff member's fields
func (s *StaffService) UpdateStaff(id uuid.UUID, req *UpdateStaffRequest) (*StaffResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	staff, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}

	if req.FullName != nil {
		staff.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		staff.PhoneNumber = *req.PhoneNumber
	}
	if req.Role != nil {
		role := models.StaffRole(*req.Role)
		if !role.IsValid() {
			return nil, apperrors.ErrInvalidRole
		}
		staff.Role = role
	}
	if req.IsLead != nil {
		staff.IsLead = *req.IsLead
	}
	if staff.IsLead && staff.Role != models.StaffRoleBartender {
		return nil, apperrors.ErrLeadMustBeBartender
	}
	if req.HasDayJob != nil {
		staff.HasDayJob = *req.HasDayJob
	}
	if req.DayJobCutoff != nil {
		if !timePattern.MatchString(*req.DayJobCutoff) {
			return nil, apperrors.ErrInvalidTimeFormat
		}
		staff.DayJobCutoff = req.DayJobCutoff
	}
	if !staff.HasDayJob {
		staff.DayJobCutoff = nil
	}
	if req.Status != nil {
		status := models.StaffStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		staff.Status = status
	}

	if err := s.repo.Update(staff); err != nil {
		return nil, fmt.Errorf("failed to update staff member: %w", err)
	}
	return toStaffResponse(staff), nil
}

// DeleteStaff deletes a staff member
func (s *StaffService) DeleteStaff(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrStaffNotFound
		}
		return fmt.Errorf("failed to get staff member: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	return nil
}

// SetVenuePreferences replaces a staff member's ordered venue list. The
// request order becomes the preference order; existing ranks carry over
// only when restated in the request.
func (s *StaffService) SetVenuePreferences(staffID uuid.UUID, prefs []VenuePreferenceRequest) (*StaffResponse, error) {
	if _, err := s.repo.GetByID(staffID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}

	seen := make(map[uuid.UUID]bool, len(prefs))
	rows := make([]models.StaffVenuePreference, 0, len(prefs))
	for i, pref := range prefs {
		if seen[pref.VenueID] {
			return nil, apperrors.NewValidationError("preferences", "duplicate venue in preference list")
		}
		seen[pref.VenueID] = true

		if _, err := s.venueRepo.GetByID(pref.VenueID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrVenueNotFound
			}
			return nil, fmt.Errorf("failed to verify venue: %w", err)
		}
		rows = append(rows, models.StaffVenuePreference{
			StaffID:  staffID,
			VenueID:  pref.VenueID,
			Position: i,
			Rank:     pref.Rank,
		})
	}

	if err := s.repo.SetVenuePreferences(staffID, rows); err != nil {
		return nil, fmt.Errorf("failed to set venue preferences: %w", err)
	}
	return s.GetStaff(staffID)
}

// SetVenueRank sets or clears the management ranking for one staff/venue pair
func (s *StaffService) SetVenueRank(staffID, venueID uuid.UUID, rank *int) error {
	if rank != nil && *rank < 1 {
		return apperrors.NewValidationError("rank", "rank must be a positive integer")
	}
	if err := s.repo.SetVenueRank(staffID, venueID, rank); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPreferenceNotFound
		}
		return fmt.Errorf("failed to set venue rank: %w", err)
	}
	return nil
}

// toStaffResponse converts a staff model to a response
func toStaffResponse(staff *models.StaffMember) *StaffResponse {
	response := &StaffResponse{
		ID:           staff.ID,
		FullName:     staff.FullName,
		Email:        staff.Email,
		PhoneNumber:  staff.PhoneNumber,
		Role:         staff.Role,
		IsLead:       staff.IsLead,
		HasDayJob:    staff.HasDayJob,
		DayJobCutoff: staff.DayJobCutoff,
		Status:       staff.Status,
	}
	for _, pref := range staff.VenuePreferences {
		response.Preferences = append(response.Preferences, VenuePreferenceResponse{
			VenueID:  pref.VenueID,
			Position: pref.Position,
			Rank:     pref.Rank,
		})
	}
	return response
}
