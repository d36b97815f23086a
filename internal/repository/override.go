package repository

import (
	"barshift-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OverrideRepository handles database operations for the override ledger
type OverrideRepository struct {
	db *gorm.DB
}

// NewOverrideRepository creates a new override repository
func NewOverrideRepository(db *gorm.DB) *OverrideRepository {
	return &OverrideRepository{db: db}
}

// Create creates a new override
func (r *OverrideRepository) Create(override *models.Override) error {
	return r.db.Create(override).Error
}

// GetByID retrieves an override with approvals and events preloaded
func (r *OverrideRepository) GetByID(id uuid.UUID) (*models.Override, error) {
	var override models.Override
	err := r.db.Preload("Approvals").
		Preload("Events", func(db *gorm.DB) *gorm.DB {
			return db.Order("override_events.created_at ASC")
		}).
		First(&override, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &override, nil
}

// GetActiveForAssignment retrieves the active override covering one
// (shift, staff) pair, or gorm.ErrRecordNotFound
func (r *OverrideRepository) GetActiveForAssignment(shiftID, staffID uuid.UUID) (*models.Override, error) {
	var override models.Override
	err := r.db.Preload("Approvals").
		First(&override, "shift_id = ? AND staff_id = ? AND status = ?",
			shiftID, staffID, models.OverrideStatusActive).Error
	if err != nil {
		return nil, err
	}
	return &override, nil
}

// GetByStaffID retrieves overrides targeting a staff member
func (r *OverrideRepository) GetByStaffID(staffID uuid.UUID, limit, offset int) ([]models.Override, int64, error) {
	var overrides []models.Override
	var total int64

	if err := r.db.Model(&models.Override{}).Where("staff_id = ?", staffID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("Approvals").Where("staff_id = ?", staffID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&overrides).Error
	return overrides, total, err
}

// UpdateStatus transitions an override's status
func (r *OverrideRepository) UpdateStatus(id uuid.UUID, status models.OverrideStatus) error {
	result := r.db.Model(&models.Override{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddApproval records one party's sign-off. The (override_id, approver_id)
// unique index rejects a second response from the same approver.
func (r *OverrideRepository) AddApproval(approval *models.OverrideApproval) error {
	return r.db.Create(approval).Error
}

// AppendEvent appends an immutable ledger entry. Events are never updated
// or deleted.
func (r *OverrideRepository) AppendEvent(event *models.OverrideEvent) error {
	return r.db.Create(event).Error
}

// GetEvents retrieves the ordered ledger for an override
func (r *OverrideRepository) GetEvents(overrideID uuid.UUID) ([]models.OverrideEvent, error) {
	var events []models.OverrideEvent
	err := r.db.Where("override_id = ?", overrideID).Order("created_at ASC").Find(&events).Error
	return events, err
}
