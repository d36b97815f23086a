package models

import (
	"github.com/google/uuid"
)

// StaffMember represents a bartender, barback, or manager in the shared pool.
// IsLead is only meaningful when Role is bartender.
type StaffMember struct {
	BaseModel
	FullName     string      `json:"full_name" gorm:"size:200;not null" validate:"required,max=200"`
	Email        string      `json:"email" gorm:"size:255;not null;uniqueIndex" validate:"required,email,max=255"`
	PasswordHash string      `json:"-" gorm:"size:60;not null"`
	PhoneNumber  string      `json:"phone_number" gorm:"size:20"`
	Role         StaffRole   `json:"role" gorm:"type:varchar(50);not null;default:'bartender'" validate:"required"`
	IsLead       bool        `json:"is_lead" gorm:"default:false"`
	HasDayJob    bool        `json:"has_day_job" gorm:"default:false"`
	DayJobCutoff *string     `json:"day_job_cutoff,omitempty" gorm:"size:5"` // "HH:MM", 24h zero-padded
	Status       StaffStatus `json:"status" gorm:"type:varchar(50);not null;default:'active'"`

	// Relationships
	VenuePreferences []StaffVenuePreference `json:"venue_preferences,omitempty" gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE"`
	Assignments      []ShiftAssignment      `json:"assignments,omitempty" gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE"`
	Availabilities   []Availability         `json:"availabilities,omitempty" gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for StaffMember
func (StaffMember) TableName() string {
	return "staff_members"
}

// CanLead reports whether the staff member may be assigned as a shift lead.
// Barbacks can never lead, even when the flag is set.
func (m *StaffMember) CanLead() bool {
	return m.IsLead && m.Role == StaffRoleBartender
}

// PrefersVenue reports whether the venue appears in the member's preferred list
func (m *StaffMember) PrefersVenue(venueID uuid.UUID) bool {
	for _, pref := range m.VenuePreferences {
		if pref.VenueID == venueID {
			return true
		}
	}
	return false
}

// VenuePosition returns the member's preference position for the venue,
// or -1 when the venue is not in the preferred list. Lower means more preferred.
func (m *StaffMember) VenuePosition(venueID uuid.UUID) int {
	for _, pref := range m.VenuePreferences {
		if pref.VenueID == venueID {
			return pref.Position
		}
	}
	return -1
}

// VenueRank returns the management-set ranking for the venue, or nil when unranked
func (m *StaffMember) VenueRank(venueID uuid.UUID) *int {
	for _, pref := range m.VenuePreferences {
		if pref.VenueID == venueID {
			return pref.Rank
		}
	}
	return nil
}

// StaffVenuePreference links a staff member to a venue they work at.
// Position is the member's own preference order (lower = more preferred);
// Rank is the optional management-set priority for auto-fill (lower = higher).
type StaffVenuePreference struct {
	BaseModel
	StaffID  uuid.UUID `json:"staff_id" gorm:"type:uuid;not null;uniqueIndex:idx_staff_venue_prefs" validate:"required"`
	VenueID  uuid.UUID `json:"venue_id" gorm:"type:uuid;not null;uniqueIndex:idx_staff_venue_prefs" validate:"required"`
	Position int       `json:"position" gorm:"not null;default:0"`
	Rank     *int      `json:"rank,omitempty"`

	// Relationships
	Staff StaffMember `json:"staff,omitempty" gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE"`
	Venue Venue       `json:"venue,omitempty" gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for StaffVenuePreference
func (StaffVenuePreference) TableName() string {
	return "staff_venue_preferences"
}
