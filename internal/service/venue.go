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

// VenueService handles venue business logic
type VenueService struct {
	repo      repository.VenueRepositoryInterface
	validator *validator.Validate
}

// NewVenueService creates a new venue service
func NewVenueService(repo repository.VenueRepositoryInterface, validator *validator.Validate) *VenueService {
	return &VenueService{
		repo:      repo,
		validator: validator,
	}
}

// CreateVenueRequest represents the request to create a venue
type CreateVenueRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Address     string `json:"address,omitempty" validate:"max=200"`
	IsNetworked bool   `json:"is_networked"`
	Priority    int    `json:"priority"`
}

// UpdateVenueRequest represents the request to update a venue
type UpdateVenueRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=200"`
	IsNetworked *bool   `json:"is_networked,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// VenueResponse represents the response for venue operations
type VenueResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address,omitempty"`
	IsNetworked bool      `json:"is_networked"`
	Priority    int       `json:"priority"`
	IsActive    bool      `json:"is_active"`
}

// CreateVenue creates a new venue
func (s *VenueService) CreateVenue(req *CreateVenueRequest) (*VenueResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	venue := &models.Venue{
		Name:        req.Name,
		Address:     req.Address,
		IsNetworked: req.IsNetworked,
		Priority:    req.Priority,
		IsActive:    true,
	}
	if err := s.repo.Create(venue); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrVenueExists
		}
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}
	return toVenueResponse(venue), nil
}

// GetVenue retrieves a venue by its ID
func (s *VenueService) GetVenue(id uuid.UUID) (*VenueResponse, error) {
	venue, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}
	return toVenueResponse(venue), nil
}

// ListVenues retrieves venues with pagination
func (s *VenueService) ListVenues(limit, offset int) ([]VenueResponse, int64, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	venues, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list venues: %w", err)
	}

	responses := make([]VenueResponse, len(venues))
	for i := range venues {
		responses[i] = *toVenueResponse(&venues[i])
	}
	return responses, total, nil
}

// UpdateVenue updates a venue's fields
func (s *VenueService) UpdateVenue(id uuid.UUID, req *UpdateVenueRequest) (*VenueResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	venue, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}

	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Address != nil {
		venue.Address = *req.Address
	}
	if req.IsNetworked != nil {
		venue.IsNetworked = *req.IsNetworked
	}
	if req.Priority != nil {
		venue.Priority = *req.Priority
	}
	if req.IsActive != nil {
		venue.IsActive = *req.IsActive
	}

	if err := s.repo.Update(venue); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrVenueExists
		}
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}
	return toVenueResponse(venue), nil
}

// DeleteVenue deletes a venue and its shifts
func (s *VenueService) DeleteVenue(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVenueNotFound
		}
		return fmt.Errorf("failed to get venue: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete venue: %w", err)
	}
	return nil
}

// toVenueResponse converts a venue model to a response
func toVenueResponse(venue *models.Venue) *VenueResponse {
	return &VenueResponse{
		ID:          venue.ID,
		Name:        venue.Name,
		Address:     venue.Address,
		IsNetworked: venue.IsNetworked,
		Priority:    venue.Priority,
		IsActive:    venue.IsActive,
	}
}
