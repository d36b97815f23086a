package models

// Venue represents a bar or event location staffed from the shared pool
type Venue struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null;uniqueIndex" validate:"required,min=1,max=100"`
	Address     string `json:"address" gorm:"size:200"`
	IsNetworked bool   `json:"is_networked" gorm:"default:false"`
	Priority    int    `json:"priority" gorm:"default:0"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`

	// Relationships
	Shifts []Shift `json:"shifts,omitempty" gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Venue
func (Venue) TableName() string {
	return "venues"
}
