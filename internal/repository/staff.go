package repository

import (
	"barshift-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffRepository handles database operations for staff members
type StaffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new staff repository
func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// Create creates a new staff member
func (r *StaffRepository) Create(staff *models.StaffMember) error {
	return r.db.Create(staff).Error
}

// GetByID retrieves a staff member by ID with venue preferences preloaded
func (r *StaffRepository) GetByID(id uuid.UUID) (*models.StaffMember, error) {
	var staff models.StaffMember
	err := r.db.Preload("VenuePreferences").First(&staff, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

// GetByEmail retrieves a staff member by email
func (r *StaffRepository) GetByEmail(email string) (*models.StaffMember, error) {
	var staff models.StaffMember
	err := r.db.Preload("VenuePreferences").First(&staff, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

// GetAll retrieves all staff members with pagination
func (r *StaffRepository) GetAll(limit, offset int) ([]models.StaffMember, int64, error) {
	var staff []models.StaffMember
	var total int64

	if err := r.db.Model(&models.StaffMember{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("VenuePreferences").Order("full_name ASC").Limit(limit).Offset(offset).Find(&staff).Error
	return staff, total, err
}

// GetActiveByVenue retrieves active bartenders and barbacks that list the
// venue among their preferred venues. This is the raw auto-fill pool before
// availability filtering.
func (r *StaffRepository) GetActiveByVenue(venueID uuid.UUID) ([]models.StaffMember, error) {
	var staff []models.StaffMember
	err := r.db.Preload("VenuePreferences").
		Joins("JOIN staff_venue_preferences svp ON svp.staff_id = staff_members.id").
		Where("svp.venue_id = ?", venueID).
		Where("staff_members.status = ?", models.StaffStatusActive).
		Where("staff_members.role IN ?", []models.StaffRole{models.StaffRoleBartender, models.StaffRoleBarback}).
		Order("staff_members.created_at ASC").
		Find(&staff).Error
	return staff, err
}

// GetManagersByVenue retrieves active managers affiliated with the venue
func (r *StaffRepository) GetManagersByVenue(venueID uuid.UUID) ([]models.StaffMember, error) {
	var staff []models.StaffMember
	err := r.db.Preload("VenuePreferences").
		Joins("JOIN staff_venue_preferences svp ON svp.staff_id = staff_members.id").
		Where("svp.venue_id = ?", venueID).
		Where("staff_members.status = ?", models.StaffStatusActive).
		Where("staff_members.role IN ?", []models.StaffRole{models.StaffRoleManager, models.StaffRoleGeneralManager, models.StaffRoleSuperAdmin}).
		Find(&staff).Error
	return staff, err
}

// Update updates a staff member
func (r *StaffRepository) Update(staff *models.StaffMember) error {
	return r.db.Save(staff).Error
}

// Delete deletes a staff member
func (r *StaffRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.StaffMember{}, "id = ?", id).Error
}

// SetVenuePreferences replaces the staff member's ordered preferred-venue
// list. Existing management ranks for retained venues are preserved.
func (r *StaffRepository) SetVenuePreferences(staffID uuid.UUID, prefs []models.StaffVenuePreference) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.StaffVenuePreference
		if err := tx.Where("staff_id = ?", staffID).Find(&existing).Error; err != nil {
			return err
		}
		ranks := make(map[uuid.UUID]*int, len(existing))
		for _, p := range existing {
			ranks[p.VenueID] = p.Rank
		}

		if err := tx.Where("staff_id = ?", staffID).Delete(&models.StaffVenuePreference{}).Error; err != nil {
			return err
		}

		for i := range prefs {
			prefs[i].StaffID = staffID
			if prefs[i].Rank == nil {
				prefs[i].Rank = ranks[prefs[i].VenueID]
			}
			if err := tx.Create(&prefs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// SetVenueRank sets or clears the management ranking for one staff member at
// one venue
func (r *StaffRepository) SetVenueRank(staffID, venueID uuid.UUID, rank *int) error {
	result := r.db.Model(&models.StaffVenuePreference{}).
		Where("staff_id = ? AND venue_id = ?", staffID, venueID).
		Update("rank", rank)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
