package repository

import (
	"barshift-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityRepository handles database operations for monthly availability
type AvailabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository creates a new availability repository
func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// GetByStaffAndMonth retrieves one staff member's availability for a month
func (r *AvailabilityRepository) GetByStaffAndMonth(staffID uuid.UUID, month string) (*models.Availability, error) {
	var availability models.Availability
	err := r.db.First(&availability, "staff_id = ? AND month = ?", staffID, month).Error
	if err != nil {
		return nil, err
	}
	return &availability, nil
}

// GetByMonth retrieves all availability records for a month
func (r *AvailabilityRepository) GetByMonth(month string) ([]models.Availability, error) {
	var availabilities []models.Availability
	err := r.db.Where("month = ?", month).Find(&availabilities).Error
	return availabilities, err
}

// Save creates or updates an availability record. The (staff_id, month)
// unique index rejects concurrent duplicate creation.
func (r *AvailabilityRepository) Save(availability *models.Availability) error {
	return r.db.Save(availability).Error
}

// CreateUnlock records a manager-issued unlock for a locked month
func (r *AvailabilityRepository) CreateUnlock(unlock *models.AvailabilityUnlock) error {
	return r.db.Create(unlock).Error
}

// HasUnlock reports whether an unlock record exists for the staff member and month
func (r *AvailabilityRepository) HasUnlock(staffID uuid.UUID, month string) (bool, error) {
	var count int64
	err := r.db.Model(&models.AvailabilityUnlock{}).
		Where("staff_id = ? AND month = ?", staffID, month).
		Count(&count).Error
	return count > 0, err
}
