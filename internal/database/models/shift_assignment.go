package models

import (
	"github.com/google/uuid"
)

// ShiftAssignment places one staff member on one shift. The composite unique
// index over (shift_id, staff_id) is the system's sole duplicate-assignment
// guard; concurrent writers race against it rather than a lock.
type ShiftAssignment struct {
	BaseModel
	ShiftID   uuid.UUID    `json:"shift_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignments_shift_staff" validate:"required"`
	StaffID   uuid.UUID    `json:"staff_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignments_shift_staff;index" validate:"required"`
	Role      AssignedRole `json:"role" gorm:"type:varchar(50);not null" validate:"required"`
	IsLead    bool         `json:"is_lead" gorm:"default:false"`
	TipAmount *float64     `json:"tip_amount,omitempty" gorm:"type:numeric(10,2)"`
	TipNote   string       `json:"tip_note" gorm:"type:text"`

	// Relationships
	Shift Shift       `json:"shift,omitempty" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
	Staff StaffMember `json:"staff,omitempty" gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShiftAssignment
func (ShiftAssignment) TableName() string {
	return "shift_assignments"
}
