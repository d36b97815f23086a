package repository

import (
	"time"

	"barshift-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for shift assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create inserts a new assignment. A unique-index failure on
// (shift_id, staff_id) surfaces here; callers detect it with
// IsUniqueViolation.
func (r *AssignmentRepository) Create(assignment *models.ShiftAssignment) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(id uuid.UUID) (*models.ShiftAssignment, error) {
	var assignment models.ShiftAssignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByShiftID retrieves all assignments for a shift with staff preloaded
func (r *AssignmentRepository) GetByShiftID(shiftID uuid.UUID) ([]models.ShiftAssignment, error) {
	var assignments []models.ShiftAssignment
	err := r.db.Preload("Staff").Where("shift_id = ?", shiftID).Order("created_at ASC").Find(&assignments).Error
	return assignments, err
}

// GetByShiftAndStaff retrieves the assignment for one staff member on one shift
func (r *AssignmentRepository) GetByShiftAndStaff(shiftID, staffID uuid.UUID) (*models.ShiftAssignment, error) {
	var assignment models.ShiftAssignment
	err := r.db.First(&assignment, "shift_id = ? AND staff_id = ?", shiftID, staffID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByStaffAndDate retrieves a staff member's assignments on a calendar date
// across the given venue scope. An empty venueIDs slice matches no rows.
func (r *AssignmentRepository) GetByStaffAndDate(staffID uuid.UUID, date time.Time, venueIDs []uuid.UUID) ([]models.ShiftAssignment, error) {
	if len(venueIDs) == 0 {
		return nil, nil
	}
	var assignments []models.ShiftAssignment
	err := r.db.
		Joins("JOIN shifts ON shifts.id = shift_assignments.shift_id").
		Where("shift_assignments.staff_id = ?", staffID).
		Where("shifts.date = ?", date).
		Where("shifts.venue_id IN ?", venueIDs).
		Find(&assignments).Error
	return assignments, err
}

// Update updates an assignment
func (r *AssignmentRepository) Update(assignment *models.ShiftAssignment) error {
	return r.db.Save(assignment).Error
}

// Reassign transfers ownership of an existing assignment row to a new staff
// member. Role, lead flag, and any attached tip data carry over unchanged;
// the row is mutated, not replaced.
func (r *AssignmentRepository) Reassign(assignmentID, newStaffID uuid.UUID) error {
	result := r.db.Model(&models.ShiftAssignment{}).
		Where("id = ?", assignmentID).
		Update("staff_id", newStaffID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes an assignment
func (r *AssignmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ShiftAssignment{}, "id = ?", id).Error
}
