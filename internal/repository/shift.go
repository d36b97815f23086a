package repository

import (
	"time"

	"barshift-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift
func (r *ShiftRepository) Create(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a shift by ID with its venue preloaded
func (r *ShiftRepository) GetByID(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.Preload("Venue").First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetByVenueAndDateRange retrieves shifts for a venue within a date range
func (r *ShiftRepository) GetByVenueAndDateRange(venueID uuid.UUID, from, to time.Time, limit, offset int) ([]models.Shift, int64, error) {
	var shifts []models.Shift
	var total int64

	query := r.db.Model(&models.Shift{}).
		Where("venue_id = ? AND date >= ? AND date <= ?", venueID, from, to)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("date ASC, start_time ASC").Limit(limit).Offset(offset).Find(&shifts).Error
	return shifts, total, err
}

// Update updates a shift
func (r *ShiftRepository) Update(shift *models.Shift) error {
	return r.db.Save(shift).Error
}

// Delete deletes a shift
func (r *ShiftRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Shift{}, "id = ?", id).Error
}
