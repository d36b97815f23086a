package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DayEntry is a single day's availability declaration
type DayEntry struct {
	Available bool   `json:"available"`
	Note      string `json:"note,omitempty"`
}

// AvailabilityDays maps "YYYY-MM-DD" date keys to day entries, stored as jsonb
type AvailabilityDays map[string]DayEntry

// Value implements driver.Valuer for jsonb storage
func (d AvailabilityDays) Value() (driver.Value, error) {
	if d == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner for jsonb retrieval
func (d *AvailabilityDays) Scan(value interface{}) error {
	if value == nil {
		*d = AvailabilityDays{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for AvailabilityDays: %T", value)
	}
	return json.Unmarshal(raw, d)
}

// Availability holds one staff member's declared availability for one month.
// Unsubmitted availability (SubmittedAt nil) is ignored by auto-fill.
type Availability struct {
	BaseModel
	StaffID     uuid.UUID        `json:"staff_id" gorm:"type:uuid;not null;uniqueIndex:idx_availability_staff_month" validate:"required"`
	Month       string           `json:"month" gorm:"size:7;not null;uniqueIndex:idx_availability_staff_month" validate:"required"` // "YYYY-MM"
	Days        AvailabilityDays `json:"days" gorm:"type:jsonb;not null;default:'{}'"`
	SubmittedAt *time.Time       `json:"submitted_at,omitempty"`
	IsLocked    bool             `json:"is_locked" gorm:"default:false"`

	// Relationships
	Staff StaffMember `json:"staff,omitempty" gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Availability
func (Availability) TableName() string {
	return "availabilities"
}

// IsSubmitted reports whether the month has been submitted
func (a *Availability) IsSubmitted() bool {
	return a != nil && a.SubmittedAt != nil
}

// AvailableOn reports whether the date key has an explicit available=true entry
func (a *Availability) AvailableOn(dateKey string) bool {
	if a == nil {
		return false
	}
	entry, ok := a.Days[dateKey]
	return ok && entry.Available
}

// MarkedOff reports whether the date key has an explicit available=false entry
func (a *Availability) MarkedOff(dateKey string) bool {
	if a == nil {
		return false
	}
	entry, ok := a.Days[dateKey]
	return ok && !entry.Available
}

// AvailabilityUnlock is a manager-issued record allowing edits to a locked
// (staff, month) availability after the submission deadline
type AvailabilityUnlock struct {
	BaseModel
	StaffID   uuid.UUID  `json:"staff_id" gorm:"type:uuid;not null;uniqueIndex:idx_unlocks_staff_month" validate:"required"`
	Month     string     `json:"month" gorm:"size:7;not null;uniqueIndex:idx_unlocks_staff_month" validate:"required"`
	ManagerID uuid.UUID  `json:"manager_id" gorm:"type:uuid;not null" validate:"required"`
	Reason    string     `json:"reason" gorm:"type:text"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	// Relationships
	Staff   StaffMember `json:"staff,omitempty" gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE"`
	Manager StaffMember `json:"manager,omitempty" gorm:"foreignKey:ManagerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AvailabilityUnlock
func (AvailabilityUnlock) TableName() string {
	return "availability_unlocks"
}
