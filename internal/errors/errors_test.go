package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"barshift-backend/internal/database/models"
	apperrors "barshift-backend/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_IsComparesEntity(t *testing.T) {
	assert.ErrorIs(t, apperrors.NewNotFoundError("venue"), apperrors.ErrVenueNotFound)
	assert.NotErrorIs(t, apperrors.NewNotFoundError("shift"), apperrors.ErrVenueNotFound)
}

func TestConflictError_IsComparesEntity(t *testing.T) {
	wrapped := fmt.Errorf("failed to save: %w", apperrors.ErrAvailabilityLocked)

	assert.ErrorIs(t, wrapped, apperrors.ErrAvailabilityLocked)
	assert.NotErrorIs(t, wrapped, apperrors.ErrVenueExists)
}

func TestClassificationHelpers(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		isNotFound  bool
		isConflict  bool
		isForbidden bool
	}{
		{"not found", apperrors.ErrShiftNotFound, true, false, false},
		{"conflict", apperrors.ErrAssignmentExists, false, true, false},
		{"forbidden", apperrors.ErrManagerRequired, false, false, true},
		{"plain error", errors.New("boom"), false, false, false},
		{"wrapped not found", fmt.Errorf("outer: %w", apperrors.ErrStaffNotFound), true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isNotFound, apperrors.IsNotFound(tt.err))
			assert.Equal(t, tt.isConflict, apperrors.IsConflict(tt.err))
			assert.Equal(t, tt.isForbidden, apperrors.IsForbidden(tt.err))
		})
	}
}

func TestIsValidation(t *testing.T) {
	err := apperrors.NewValidationError("rank", "rank must be a positive integer")

	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "rank")
	assert.False(t, apperrors.IsValidation(errors.New("boom")))
}

func TestEligibilityError_JoinsViolationMessages(t *testing.T) {
	err := apperrors.NewEligibilityError([]apperrors.Violation{
		{Field: "venue_id", Type: models.ViolationVenueMismatch, Message: "venue is not in the staff member's list"},
		{Field: "date", Type: models.ViolationDoubleBooking, Message: "staff member already works that night"},
	})

	assert.Contains(t, err.Error(), "venue is not in the staff member's list")
	assert.Contains(t, err.Error(), "staff member already works that night")
}

func TestAsEligibility(t *testing.T) {
	inner := apperrors.NewEligibilityError([]apperrors.Violation{
		{Field: "staff_id", Message: "already assigned"},
	})
	wrapped := fmt.Errorf("assignment rejected: %w", inner)

	eligibility := apperrors.AsEligibility(wrapped)
	assert.NotNil(t, eligibility)
	assert.Len(t, eligibility.Violations, 1)

	assert.Nil(t, apperrors.AsEligibility(errors.New("boom")))
	assert.True(t, apperrors.IsEligibility(wrapped))
}
