package service

import (
	"errors"
	"fmt"

	apperrors "barshift-backend/internal/errors"
	"barshift-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// networkedVenueScope returns the venue IDs sharing a no-double-booking
// scope with the given venue: all networked venues when the venue is
// networked, otherwise just the venue itself.
func networkedVenueScope(venueRepo repository.VenueRepositoryInterface, venueID uuid.UUID) ([]uuid.UUID, error) {
	venue, err := venueRepo.GetByID(venueID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}

	if !venue.IsNetworked {
		return []uuid.UUID{venue.ID}, nil
	}

	networked, err := venueRepo.GetNetworked()
	if err != nil {
		return nil, fmt.Errorf("failed to get networked venues: %w", err)
	}
	scope := make([]uuid.UUID, 0, len(networked))
	for _, v := range networked {
		scope = append(scope, v.ID)
	}
	return scope, nil
}
