package models

import (
	"time"

	"github.com/google/uuid"
)

// Shift represents one staffing slot set at a venue on a calendar date.
// StartTime/EndTime are zero-padded 24h "HH:MM" strings; a shift may cross
// midnight (EndTime lexicographically before StartTime).
type Shift struct {
	BaseModel
	VenueID            uuid.UUID  `json:"venue_id" gorm:"type:uuid;not null;index" validate:"required"`
	Date               time.Time  `json:"date" gorm:"type:date;not null;index" validate:"required"`
	StartTime          string     `json:"start_time" gorm:"size:5;not null" validate:"required"`
	EndTime            string     `json:"end_time" gorm:"size:5;not null" validate:"required"`
	BartendersRequired int        `json:"bartenders_required" gorm:"not null;default:0" validate:"min=0"`
	BarbacksRequired   int        `json:"barbacks_required" gorm:"not null;default:0" validate:"min=0"`
	LeadsRequired      int        `json:"leads_required" gorm:"not null;default:0" validate:"min=0"`
	Notes              string     `json:"notes" gorm:"type:text"`
	UpForTrade         bool       `json:"up_for_trade" gorm:"default:false"`
	TradeProposerID    *uuid.UUID `json:"trade_proposer_id,omitempty" gorm:"type:uuid"`
	TradeReason        string     `json:"trade_reason" gorm:"type:text"`

	// Relationships
	Venue       Venue             `json:"venue,omitempty" gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
	Assignments []ShiftAssignment `json:"assignments,omitempty" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// DateKey returns the shift date as a "YYYY-MM-DD" availability key
func (s *Shift) DateKey() string {
	return s.Date.Format("2006-01-02")
}

// MonthKey returns the shift month as a "YYYY-MM" availability key
func (s *Shift) MonthKey() string {
	return s.Date.Format("2006-01")
}
