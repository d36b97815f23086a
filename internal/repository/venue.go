package repository

import (
	"barshift-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VenueRepository handles database operations for venues
type VenueRepository struct {
	db *gorm.DB
}

// NewVenueRepository creates a new venue repository
func NewVenueRepository(db *gorm.DB) *VenueRepository {
	return &VenueRepository{db: db}
}

// Create creates a new venue
func (r *VenueRepository) Create(venue *models.Venue) error {
	return r.db.Create(venue).Error
}

// GetByID retrieves a venue by ID
func (r *VenueRepository) GetByID(id uuid.UUID) (*models.Venue, error) {
	var venue models.Venue
	err := r.db.First(&venue, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

// GetAll retrieves all venues ordered by display priority
func (r *VenueRepository) GetAll(limit, offset int) ([]models.Venue, int64, error) {
	var venues []models.Venue
	var total int64

	if err := r.db.Model(&models.Venue{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("priority DESC, name ASC").Limit(limit).Offset(offset).Find(&venues).Error
	return venues, total, err
}

// GetNetworked retrieves all venues participating in the shared
// no-double-booking scope
func (r *VenueRepository) GetNetworked() ([]models.Venue, error) {
	var venues []models.Venue
	err := r.db.Where("is_networked = ?", true).Find(&venues).Error
	return venues, err
}

// Update updates a venue
func (r *VenueRepository) Update(venue *models.Venue) error {
	return r.db.Save(venue).Error
}

// Delete deletes a venue
func (r *VenueRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Venue{}, "id = ?", id).Error
}
